package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"speseview/internal/core"
	"speseview/internal/log"
	"speseview/internal/view"
)

var errNotFound = errors.New("expense not found")

type expenseFlags struct {
	date        string
	description string
	category    string
	payment     string
	amount      string
}

func (f *expenseFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.date, "date", "d", "", "date (YYYY-MM-DD or YYYY-MM-DDTHH:MM)")
	cmd.Flags().StringVarP(&f.description, "description", "m", "", "what the money was spent on")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "category ("+strings.Join(categoryNames(), ", ")+")")
	cmd.Flags().StringVarP(&f.payment, "payment", "p", "", "payment method (cash, card)")
	cmd.Flags().StringVarP(&f.amount, "amount", "a", "", "amount, e.g. 12.50 or 12,50")
}

// apply copies the flags the user set onto e.
func (f *expenseFlags) apply(cmd *cobra.Command, e core.Expense) (core.Expense, error) {
	if cmd.Flags().Changed("date") {
		d, ok := core.ParseDate(f.date)
		if !ok {
			return e, fmt.Errorf("invalid date %q", f.date)
		}
		e.Date = d
	}
	if cmd.Flags().Changed("description") {
		e.Description = strings.TrimSpace(f.description)
	}
	if cmd.Flags().Changed("category") {
		e.Category = core.Category(strings.ToLower(strings.TrimSpace(f.category)))
	}
	if cmd.Flags().Changed("payment") {
		e.PaymentMethod = core.PaymentMethod(strings.ToLower(strings.TrimSpace(f.payment)))
	}
	if cmd.Flags().Changed("amount") {
		e.Amount = core.ParseAmount(f.amount)
	}
	return e, nil
}

func categoryNames() []string {
	cats := core.Categories()
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}

func addCmd() *cobra.Command {
	var flags expenseFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an expense",
		Example: `  spese add -m "Pizza" -c food -p card -a 12,50
  spese add -d 2024-03-01 -m "Bus pass" -c transport -p cash -a 30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := appFrom(cmd)

			now := time.Now()
			e := core.Expense{
				Date:          core.NewDate(now.Year(), int(now.Month()), now.Day()),
				Category:      core.Others,
				PaymentMethod: core.Cash,
			}
			e, err := flags.apply(cmd, e)
			if err != nil {
				return err
			}
			if strings.TrimSpace(e.Description) == "" {
				return core.ErrEmptyDescription
			}

			stored, err := app.View.AddExpense(cmd.Context(), e)
			printToasts(cmd.OutOrStdout(), app.Toasts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "id: %s\n", stored.ID)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func editCmd() *cobra.Command {
	var flags expenseFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of an existing expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)

			current, ok := findExpense(app.View.Expenses(), args[0])
			if !ok {
				loggerFrom(cmd).WarnContext(cmd.Context(), "Edit of unknown expense",
					log.FieldOperation, log.OpUpdate,
					log.FieldExpenseID, args[0])
				return fmt.Errorf("%w: %s", errNotFound, args[0])
			}
			app.View.StartEdit(current)

			updated, err := flags.apply(cmd, current)
			if err == nil {
				err = updated.Validate()
			}
			if err != nil {
				app.View.ClearEditing()
				return err
			}

			err = app.View.FinishEdit(cmd.Context(), updated)
			printToasts(cmd.OutOrStdout(), app.Toasts)
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an expense",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)

			if _, ok := findExpense(app.View.Expenses(), args[0]); !ok {
				loggerFrom(cmd).WarnContext(cmd.Context(), "Delete of unknown expense",
					log.FieldOperation, log.OpDelete,
					log.FieldExpenseID, args[0])
				return fmt.Errorf("%w: %s", errNotFound, args[0])
			}
			err := app.View.DeleteExpense(cmd.Context(), args[0])
			printToasts(cmd.OutOrStdout(), app.Toasts)
			return err
		},
	}
}

func listCmd() *cobra.Command {
	var (
		search, category, payment, from, to string
		sortBy                              string
		desc                                bool
		page                                int
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List expenses with filters, sorting and pages",
		Example: `  spese list --search pizza
  spese list --category food --from 2024-01-01 --to 2024-01-31
  spese list --sort amount --desc --page 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := appFrom(cmd)
			v := app.View

			filters := map[view.FilterKey]string{
				view.FilterSearch:   search,
				view.FilterCategory: category,
				view.FilterPayment:  payment,
				view.FilterFromDate: from,
				view.FilterToDate:   to,
			}
			v.ClearFilters()
			for _, key := range view.FilterKeys() {
				if filters[key] == "" {
					continue
				}
				if err := v.SetFilter(key, filters[key]); err != nil {
					return err
				}
			}

			if cmd.Flags().Changed("sort") {
				field, err := view.ParseSortField(sortBy)
				if err != nil {
					return err
				}
				// The first toggle on a new field sorts ascending; a second
				// one flips it.
				if v.Sort().Field != field {
					v.SortTable(field)
				}
				if (v.Sort().Direction == view.SortDesc) != desc {
					v.SortTable(field)
				}
			}

			v.ChangePage(page)

			loggerFrom(cmd).DebugContext(cmd.Context(), "Listing expenses",
				log.FieldOperation, log.OpList,
				log.FieldCount, len(v.FilteredExpenses()),
				log.FieldSort, v.Sort().String(),
				log.FieldPage, page)
			return renderList(cmd.OutOrStdout(), v)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "match text in description or category")
	cmd.Flags().StringVarP(&category, "category", "c", "", "only this category")
	cmd.Flags().StringVarP(&payment, "payment", "p", "", "only this payment method")
	cmd.Flags().StringVar(&from, "from", "", "earliest date, inclusive")
	cmd.Flags().StringVar(&to, "to", "", "latest date, inclusive of the whole day")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort field (date, amount, description, category, paymentMethod)")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending (with --sort)")
	cmd.Flags().IntVar(&page, "page", 1, "page number")

	return cmd
}

func findExpense(records []core.Expense, id string) (core.Expense, bool) {
	for _, e := range records {
		if e.ID == id {
			return e, true
		}
	}
	return core.Expense{}, false
}
