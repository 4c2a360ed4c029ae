package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"speseview/internal/core"
	"speseview/internal/notify"
	"speseview/internal/store"
)

var toastPrefix = map[notify.Type]string{
	notify.Success: "✔",
	notify.Info:    "ℹ",
	notify.Error:   "✖",
}

// printToasts writes the visible toasts and dismisses them.
func printToasts(w io.Writer, c *notify.Center) {
	for _, t := range c.Toasts() {
		fmt.Fprintf(w, "%s %s\n", toastPrefix[t.Type], t.Message)
		c.Dismiss(t.ID)
	}
}

func renderList(w io.Writer, v *store.ExpenseView) error {
	rows := v.PaginatedExpenses()
	page := v.Page()

	if len(rows) == 0 {
		if _, err := fmt.Fprintln(w, "No expenses found."); err != nil {
			return err
		}
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tDATE\tDESCRIPTION\tCATEGORY\tPAYMENT\tAMOUNT")
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			strings.Repeat("─", 8), strings.Repeat("─", 10), strings.Repeat("─", 20),
			strings.Repeat("─", 13), strings.Repeat("─", 7), strings.Repeat("─", 8))
		for _, e := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				e.ID, e.Date, e.Description, e.Category.Label(), e.PaymentMethod, e.Amount)
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("failed to write table: %w", err)
		}
	}

	scope := "matching"
	if v.Filters().IsEmpty() {
		scope = "total"
	}
	_, err := fmt.Fprintf(w, "Page %d of %d (%d %s, sorted by %s)\n",
		page.Current, v.TotalPages(), len(v.FilteredExpenses()), scope, v.Sort())
	return err
}

func renderSummary(w io.Writer, s core.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total expenses:\t%s\n", s.TotalExpenses)
	fmt.Fprintf(tw, "Average per day:\t%s\n", s.AvgDaily)
	fmt.Fprintf(tw, "Top category:\t%s\n", s.TopCategory)
	fmt.Fprintf(tw, "Cash : Card:\t%s\n", s.PaymentRatio)
	fmt.Fprintf(tw, "Expenses:\t%d\n", s.ExpenseCount)
	return tw.Flush()
}

func renderCategoryTotals(w io.Writer, totals []core.CategoryAmount) error {
	if len(totals) == 0 {
		_, err := fmt.Fprintln(w, "No expenses yet.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tTOTAL")
	for _, t := range totals {
		fmt.Fprintf(tw, "%s\t%s\n", t.Category.Label(), t.Amount)
	}
	return tw.Flush()
}

func renderBudgets(w io.Writer, usage []core.BudgetUsage) error {
	if len(usage) == 0 {
		_, err := fmt.Fprintln(w, "No budgets set. Use 'spese budget set <category> <amount>' to add one.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tLIMIT\tSPENT\tREMAINING\t")
	for _, u := range usage {
		status := ""
		if u.Over {
			status = "over budget"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			u.Category.Label(),
			u.Limit, u.Spent, signed(u.Remaining), status)
	}
	return tw.Flush()
}

func signed(f float64) string {
	if f < 0 {
		return "-" + core.NewAmount(-f).String()
	}
	return core.NewAmount(f).String()
}
