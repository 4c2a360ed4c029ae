package view

import "speseview/internal/core"

const DefaultItemsPerPage = 5

// Page is the pagination window. Current is 1-based and may point past the
// last page; Paginate then yields an empty slice.
type Page struct {
	Current int
	PerPage int
}

// DefaultPage returns the first page with perPage items, falling back to
// DefaultItemsPerPage when perPage is not positive.
func DefaultPage(perPage int) Page {
	if perPage <= 0 {
		perPage = DefaultItemsPerPage
	}
	return Page{Current: 1, PerPage: perPage}
}

// Paginate returns the records in the current window, clipped to the
// available range. It never panics on out-of-range pages.
func Paginate(records []core.Expense, p Page) []core.Expense {
	if p.PerPage <= 0 || p.Current < 1 {
		return []core.Expense{}
	}
	// Checked before multiplying so huge page numbers cannot overflow.
	if p.Current-1 > len(records)/p.PerPage {
		return []core.Expense{}
	}
	start := (p.Current - 1) * p.PerPage
	if start >= len(records) {
		return []core.Expense{}
	}
	end := min(start+p.PerPage, len(records))
	out := make([]core.Expense, end-start)
	copy(out, records[start:end])
	return out
}

// TotalPages is ceil(n/perPage), never less than 1.
func TotalPages(n, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	return max(1, (n+perPage-1)/perPage)
}
