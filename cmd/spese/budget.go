package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"speseview/internal/core"
	"speseview/internal/log"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage spending limits per category",
	}

	cmd.AddCommand(budgetSetCmd())
	cmd.AddCommand(budgetDeleteCmd())
	cmd.AddCommand(budgetListCmd())

	return cmd
}

func budgetSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "set <category> <amount>",
		Short:   "Set the limit for a category",
		Example: "  spese budget set food 250",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)

			category := strings.ToLower(strings.TrimSpace(args[0]))
			if category == "" {
				return core.ErrEmptyCategory
			}
			err := app.View.SetBudget(cmd.Context(), category, core.ParseAmount(args[1]))
			printToasts(cmd.OutOrStdout(), app.Toasts)
			return err
		},
	}
}

func budgetDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <category>",
		Aliases: []string{"rm"},
		Short:   "Remove the limit for a category",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)

			category := strings.ToLower(strings.TrimSpace(args[0]))
			if _, ok := app.View.Budgets()[category]; !ok {
				loggerFrom(cmd).WarnContext(cmd.Context(), "Delete of unknown budget",
					log.FieldOperation, log.OpDeleteBudget,
					log.FieldCategory, category)
				return fmt.Errorf("no budget for %q", category)
			}
			err := app.View.DeleteBudget(cmd.Context(), category)
			printToasts(cmd.OutOrStdout(), app.Toasts)
			return err
		},
	}
}

func budgetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show each budget against what was spent",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderBudgets(cmd.OutOrStdout(), appFrom(cmd).View.BudgetUsage())
		},
	}
}
