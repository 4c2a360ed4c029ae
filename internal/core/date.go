package core

import (
	"encoding/json"
	"strings"
	"time"
)

const (
	DayLayout      = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"
)

// Date is a calendar date with an optional time-of-day component.
type Date struct {
	time.Time
}

var dateLayouts = []string{
	DayLayout,
	DateTimeLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
	time.RFC3339,
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate reads s using the supported layouts. Values without a zone are
// read as UTC. The second result is false when s is empty or unparseable.
func ParseDate(s string) (Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return Date{Time: t}, true
		}
	}
	return Date{}, false
}

// MustParseDate is ParseDate for literals known to be valid.
func MustParseDate(s string) Date {
	d, ok := ParseDate(s)
	if !ok {
		panic("core: invalid date " + s)
	}
	return d
}

// IsEmpty returns true if the date is zero
func (d Date) IsEmpty() bool {
	return d.IsZero()
}

// EndOfDay returns the last millisecond of d's calendar day.
func (d Date) EndOfDay() Date {
	y, m, day := d.Date()
	start := time.Date(y, m, day, 0, 0, 0, 0, d.Location())
	return Date{Time: start.Add(24*time.Hour - time.Millisecond)}
}

// String renders a midnight date as 2006-01-02 and anything else with its
// time of day. The zero date renders as "".
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	if d.Hour() == 0 && d.Minute() == 0 && d.Second() == 0 && d.Nanosecond() == 0 {
		return d.Format(DayLayout)
	}
	return d.Format(DateTimeLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON never fails on bad text: an unreadable date becomes zero.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = Date{}
		return nil
	}
	parsed, _ := ParseDate(s)
	*d = parsed
	return nil
}
