package view

import (
	"slices"

	"speseview/internal/core"
)

// BudgetUsage reports spend against every budgeted category. Known
// categories come first in display order, then unknown keys alphabetically.
func BudgetUsage(records []core.Expense, budgets core.Budgets) []core.BudgetUsage {
	if len(budgets) == 0 {
		return []core.BudgetUsage{}
	}

	spent := make(map[string]core.Amount)
	for _, ca := range CategoryTotals(records) {
		spent[string(ca.Category)] = ca.Amount
	}

	keys := make([]string, 0, len(budgets))
	for _, c := range core.Categories() {
		if _, ok := budgets[string(c)]; ok {
			keys = append(keys, string(c))
		}
	}
	var unknown []string
	for k := range budgets {
		if !core.Category(k).IsKnown() {
			unknown = append(unknown, k)
		}
	}
	slices.Sort(unknown)
	keys = append(keys, unknown...)

	out := make([]core.BudgetUsage, 0, len(keys))
	for _, k := range keys {
		limit := budgets[k]
		s := spent[k]
		remaining := limit.Decimal().Sub(s.Decimal()).InexactFloat64()
		out = append(out, core.BudgetUsage{
			Category:  core.Category(k),
			Limit:     limit,
			Spent:     s,
			Remaining: remaining,
			Over:      remaining < 0,
		})
	}
	return out
}
