package view

import (
	"testing"

	"speseview/internal/core"
)

func TestBudgetUsage(t *testing.T) {
	records := []core.Expense{
		{Category: core.Food, Amount: 30},
		{Category: core.Food, Amount: 25},
		{Category: core.Bills, Amount: 10},
	}
	budgets := core.Budgets{
		"zoo":   5,
		"bills": 100,
		"food":  50,
		"pets":  20,
	}

	got := BudgetUsage(records, budgets)
	if len(got) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(got))
	}
	order := []core.Category{core.Food, core.Bills, "pets", "zoo"}
	for i, c := range order {
		if got[i].Category != c {
			t.Fatalf("row %d is %q, want %q", i, got[i].Category, c)
		}
	}
	if got[0].Spent != 55 || got[0].Remaining != -5 || !got[0].Over {
		t.Fatalf("unexpected food row: %+v", got[0])
	}
	if got[1].Spent != 10 || got[1].Remaining != 90 || got[1].Over {
		t.Fatalf("unexpected bills row: %+v", got[1])
	}
	if got[2].Spent != 0 || got[2].Remaining != 20 {
		t.Fatalf("unexpected pets row: %+v", got[2])
	}
}

func TestBudgetUsageEmpty(t *testing.T) {
	if got := BudgetUsage(nil, nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}
