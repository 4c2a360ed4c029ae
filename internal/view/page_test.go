package view

import (
	"fmt"
	"math"
	"testing"

	"speseview/internal/core"
)

func makeExpenses(n int) []core.Expense {
	out := make([]core.Expense, n)
	for i := range out {
		out[i] = core.Expense{ID: fmt.Sprintf("e%d", i), Amount: core.Amount(i)}
	}
	return out
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		n, per, want int
	}{
		{0, 5, 1},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{11, 5, 3},
		{3, 0, 1},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.n, tc.per); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.n, tc.per, got, tc.want)
		}
	}
}

func TestPagesReconstructInput(t *testing.T) {
	for _, n := range []int{0, 1, 4, 5, 6, 13} {
		for _, per := range []int{1, 3, 5} {
			in := makeExpenses(n)
			var joined []core.Expense
			for c := 1; c <= TotalPages(n, per); c++ {
				page := Paginate(in, Page{Current: c, PerPage: per})
				if len(page) > per {
					t.Fatalf("n=%d per=%d page %d has %d items", n, per, c, len(page))
				}
				joined = append(joined, page...)
			}
			if len(joined) != n {
				t.Fatalf("n=%d per=%d: reconstructed %d items", n, per, len(joined))
			}
			for i := range joined {
				if joined[i].ID != in[i].ID {
					t.Fatalf("n=%d per=%d: item %d is %s, want %s", n, per, i, joined[i].ID, in[i].ID)
				}
			}
		}
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	in := makeExpenses(7)
	for _, p := range []Page{
		{Current: 3, PerPage: 5},
		{Current: 0, PerPage: 5},
		{Current: -2, PerPage: 5},
		{Current: 1, PerPage: 0},
		{Current: math.MaxInt, PerPage: 5},
	} {
		got := Paginate(in, p)
		if got == nil || len(got) != 0 {
			t.Fatalf("page %+v: expected empty slice, got %v", p, ids(got))
		}
	}
}

func TestPaginateLastPartialPage(t *testing.T) {
	got := Paginate(makeExpenses(7), Page{Current: 2, PerPage: 5})
	if !equalIDs(got, "e5", "e6") {
		t.Fatalf("got %v", ids(got))
	}
}

func TestDefaultPage(t *testing.T) {
	if p := DefaultPage(0); p.Current != 1 || p.PerPage != DefaultItemsPerPage {
		t.Fatalf("unexpected default: %+v", p)
	}
	if p := DefaultPage(10); p.PerPage != 10 {
		t.Fatalf("unexpected per page: %+v", p)
	}
}
