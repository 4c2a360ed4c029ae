package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		ok   bool
		want time.Time
	}{
		{"2024-01-15", true, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-01-15T23:00:00", true, time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)},
		{"2024-01-15T23:00", true, time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)},
		{"2024-01-15T23:00:00Z", true, time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)},
		{"", false, time.Time{}},
		{"15/01/2024", false, time.Time{}},
	}
	for _, tc := range cases {
		d, ok := ParseDate(tc.in)
		if ok != tc.ok {
			t.Fatalf("%q ok = %v, want %v", tc.in, ok, tc.ok)
		}
		if ok && !d.Equal(tc.want) {
			t.Fatalf("%q parsed to %v, want %v", tc.in, d.Time, tc.want)
		}
	}
}

func TestEndOfDay(t *testing.T) {
	got := NewDate(2024, 1, 15).EndOfDay()
	want := time.Date(2024, 1, 15, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got.Time)
	}
}

func TestDateJSON(t *testing.T) {
	type wrap struct {
		D Date `json:"d"`
	}

	out, err := json.Marshal(wrap{D: NewDate(2024, 1, 15)})
	if err != nil || string(out) != `{"d":"2024-01-15"}` {
		t.Fatalf("unexpected marshal: %s err=%v", out, err)
	}

	out, _ = json.Marshal(wrap{D: MustParseDate("2024-01-15T08:30:00")})
	if string(out) != `{"d":"2024-01-15T08:30:00"}` {
		t.Fatalf("unexpected marshal with time: %s", out)
	}

	var w wrap
	if err := json.Unmarshal([]byte(`{"d":"garbage"}`), &w); err != nil {
		t.Fatalf("bad date should not fail decoding: %v", err)
	}
	if !w.D.IsEmpty() {
		t.Fatalf("bad date should decode to zero")
	}
	if err := json.Unmarshal([]byte(`{"d":42}`), &w); err != nil || !w.D.IsEmpty() {
		t.Fatalf("non-string date should decode to zero, err=%v", err)
	}
}
