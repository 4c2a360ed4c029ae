package view

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"speseview/internal/core"
)

// SortField represents the field to sort by.
type SortField string

const (
	SortByDate          SortField = "date"
	SortByAmount        SortField = "amount"
	SortByDescription   SortField = "description"
	SortByCategory      SortField = "category"
	SortByPaymentMethod SortField = "paymentMethod"
)

// SortDirection represents sort order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

var ErrUnknownSortField = errors.New("unknown sort field")

// SortState is the single active sort.
type SortState struct {
	Field     SortField
	Direction SortDirection
}

// DefaultSort returns the default sort (date descending, newest first).
func DefaultSort() SortState {
	return SortState{Field: SortByDate, Direction: SortDesc}
}

// SortFields lists the sortable fields.
func SortFields() []SortField {
	return []SortField{SortByDate, SortByAmount, SortByDescription, SortByCategory, SortByPaymentMethod}
}

// ParseSortField matches s case-insensitively against the sortable fields.
func ParseSortField(s string) (SortField, error) {
	for _, f := range SortFields() {
		if strings.EqualFold(string(f), strings.TrimSpace(s)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortField, s)
}

// String returns the sort state as a string (e.g., "date:desc").
func (s SortState) String() string {
	return string(s.Field) + ":" + string(s.Direction)
}

// Toggle returns the state after the user picks field: the active field
// flips direction, any other field starts ascending.
func (s SortState) Toggle(field SortField) SortState {
	if s.Field == field {
		if s.Direction == SortAsc {
			return SortState{Field: field, Direction: SortDesc}
		}
		return SortState{Field: field, Direction: SortAsc}
	}
	return SortState{Field: field, Direction: SortAsc}
}

// Sort returns a stably sorted copy of records. Descending order negates the
// comparison, so records with equal keys keep their input order either way.
func Sort(records []core.Expense, s SortState) []core.Expense {
	out := slices.Clone(records)
	if out == nil {
		out = []core.Expense{}
	}
	cmp := comparator(s.Field)
	sign := 1
	if s.Direction == SortDesc {
		sign = -1
	}
	slices.SortStableFunc(out, func(a, b core.Expense) int {
		return sign * cmp(a, b)
	})
	return out
}

func comparator(field SortField) func(a, b core.Expense) int {
	switch field {
	case SortByAmount:
		return func(a, b core.Expense) int {
			return compareFloat(core.NewAmount(a.Amount.Float()).Float(), core.NewAmount(b.Amount.Float()).Float())
		}
	case SortByDate:
		return func(a, b core.Expense) int {
			return a.Date.Compare(b.Date.Time)
		}
	case SortByDescription:
		return func(a, b core.Expense) int {
			return compareFold(a.Description, b.Description)
		}
	case SortByCategory:
		return func(a, b core.Expense) int {
			return compareFold(string(a.Category), string(b.Category))
		}
	case SortByPaymentMethod:
		return func(a, b core.Expense) int {
			return compareFold(string(a.PaymentMethod), string(b.PaymentMethod))
		}
	default:
		return func(a, b core.Expense) int { return 0 }
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
