package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	var byCategory bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals over all expenses",
		Long: `Show the total spent, the average per day with expenses, the top
category and the cash to card ratio. Filters never apply here.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := appFrom(cmd)
			out := cmd.OutOrStdout()

			if err := renderSummary(out, app.View.Summary()); err != nil {
				return err
			}
			if !byCategory {
				return nil
			}
			fmt.Fprintln(out)
			return renderCategoryTotals(out, app.View.CategoryTotals())
		},
	}

	cmd.Flags().BoolVar(&byCategory, "by-category", false, "also show the total per category")
	return cmd
}
