// Package view derives the expense list and summary statistics from the
// current records. Every function here is pure: inputs are never mutated and
// results are freshly allocated, so callers can recompute on every read.
package view

import (
	"strings"

	"speseview/internal/core"
)

// FilterKey names one field of Filters. The string values match the keys
// used by the expense form.
type FilterKey string

const (
	FilterSearch   FilterKey = "searchInput"
	FilterCategory FilterKey = "categoryFilter"
	FilterPayment  FilterKey = "paymentFilter"
	FilterFromDate FilterKey = "fromDate"
	FilterToDate   FilterKey = "toDate"
)

// Filters holds the active list constraints. An empty field never excludes
// a record.
type Filters struct {
	Search        string
	Category      string
	PaymentMethod string
	FromDate      string
	ToDate        string
}

// FilterKeys returns every settable key.
func FilterKeys() []FilterKey {
	return []FilterKey{FilterSearch, FilterCategory, FilterPayment, FilterFromDate, FilterToDate}
}

// With returns a copy of f with key set to value. Unknown keys leave f unchanged
// and report false.
func (f Filters) With(key FilterKey, value string) (Filters, bool) {
	switch key {
	case FilterSearch:
		f.Search = value
	case FilterCategory:
		f.Category = value
	case FilterPayment:
		f.PaymentMethod = value
	case FilterFromDate:
		f.FromDate = value
	case FilterToDate:
		f.ToDate = value
	default:
		return f, false
	}
	return f, true
}

// IsEmpty reports whether no constraint is active.
func (f Filters) IsEmpty() bool {
	return strings.TrimSpace(f.Search) == "" &&
		f.Category == "" &&
		f.PaymentMethod == "" &&
		f.FromDate == "" &&
		f.ToDate == ""
}

// Filter returns the records matching every active constraint, in input order.
//
// A date bound that cannot be parsed is ignored rather than excluding
// everything.
func Filter(records []core.Expense, f Filters) []core.Expense {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	from, hasFrom := core.ParseDate(f.FromDate)
	to, hasTo := core.ParseDate(f.ToDate)
	if hasTo {
		to = to.EndOfDay()
	}

	out := make([]core.Expense, 0, len(records))
	for _, e := range records {
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		if f.Category != "" && !strings.EqualFold(string(e.Category), f.Category) {
			continue
		}
		if f.PaymentMethod != "" && !strings.EqualFold(string(e.PaymentMethod), f.PaymentMethod) {
			continue
		}
		// A record without a usable date cannot satisfy a date bound.
		if hasFrom && (e.Date.IsEmpty() || e.Date.Before(from.Time)) {
			continue
		}
		if hasTo && (e.Date.IsEmpty() || e.Date.After(to.Time)) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesSearch(e core.Expense, lowered string) bool {
	return strings.Contains(strings.ToLower(e.Description), lowered) ||
		strings.Contains(strings.ToLower(string(e.Category)), lowered)
}
