// Package store holds the application state behind the expense list: the
// records, the budgets and the current list controls. Derived views are
// recomputed from that state on every read.
//
// An ExpenseView is created once per application instance and handed to
// whatever needs it; there is no package-level state.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"speseview/internal/core"
	"speseview/internal/log"
	"speseview/internal/notify"
	"speseview/internal/storage"
	"speseview/internal/view"
)

// Fixed messages shown after each action.
const (
	MsgExpenseAdded   = "Expense added successfully!"
	MsgExpenseUpdated = "Expense updated"
	MsgExpenseDeleted = "Expense deleted successfully!"
	MsgBudgetSaved    = "Budget saved successfully!"
	MsgBudgetDeleted  = "Budget deleted successfully!"
	MsgSaveFailed     = "Could not save your changes"
)

var ErrUnknownFilter = errors.New("unknown filter key")

// Notifier receives one message per completed action.
type Notifier interface {
	Push(message string, typ notify.Type) notify.Toast
}

// ExpenseView is the state container for the expense list.
type ExpenseView struct {
	mu       sync.Mutex
	kv       storage.KeyValue
	notifier Notifier
	logger   *log.Logger

	expenses []core.Expense // newest first
	budgets  core.Budgets
	filters  view.Filters
	sort     view.SortState
	page     view.Page
	editing  *core.Expense
}

// Option configures an ExpenseView.
type Option func(*ExpenseView)

// WithItemsPerPage sets the page size; non-positive values keep the default.
func WithItemsPerPage(n int) Option {
	return func(v *ExpenseView) {
		v.page = view.DefaultPage(n)
	}
}

// WithLogger injects a logger.
func WithLogger(l *log.Logger) Option {
	return func(v *ExpenseView) {
		if l != nil {
			v.logger = l.WithComponent(log.ComponentStore)
		}
	}
}

// WithSort overrides the initial sort (date descending).
func WithSort(s view.SortState) Option {
	return func(v *ExpenseView) {
		v.sort = s
	}
}

// New loads the persisted collections from kv and returns the view. Missing
// or unreadable collections start empty; loading never fails.
func New(ctx context.Context, kv storage.KeyValue, notifier Notifier, opts ...Option) *ExpenseView {
	v := &ExpenseView{
		kv:       kv,
		notifier: notifier,
		logger:   log.Default(log.ComponentStore),
		sort:     view.DefaultSort(),
		page:     view.DefaultPage(view.DefaultItemsPerPage),
	}
	for _, opt := range opts {
		opt(v)
	}

	v.expenses = storage.LoadJSON(ctx, kv, storage.KeyExpenses, []core.Expense{})
	v.budgets = storage.LoadJSON(ctx, kv, storage.KeyBudgets, core.Budgets{})
	if v.budgets == nil {
		v.budgets = core.Budgets{}
	}

	v.logger.DebugContext(ctx, "Expense view loaded",
		log.FieldOperation, log.OpLoad,
		log.FieldCount, len(v.expenses),
		"budgets", len(v.budgets))
	return v
}

// --- reads ---

// Expenses returns a copy of every record, newest first.
func (v *ExpenseView) Expenses() []core.Expense {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.expenses)
}

// FilteredExpenses applies the filters and the sort to every record.
func (v *ExpenseView) FilteredExpenses() []core.Expense {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filteredLocked()
}

func (v *ExpenseView) filteredLocked() []core.Expense {
	return view.Sort(view.Filter(v.expenses, v.filters), v.sort)
}

// PaginatedExpenses returns the current page of FilteredExpenses.
func (v *ExpenseView) PaginatedExpenses() []core.Expense {
	v.mu.Lock()
	defer v.mu.Unlock()
	return view.Paginate(v.filteredLocked(), v.page)
}

// TotalPages is the page count of FilteredExpenses, at least 1.
func (v *ExpenseView) TotalPages() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return view.TotalPages(len(view.Filter(v.expenses, v.filters)), v.page.PerPage)
}

func (v *ExpenseView) TotalExpenses() core.Amount {
	v.mu.Lock()
	defer v.mu.Unlock()
	return view.TotalExpenses(v.expenses)
}

func (v *ExpenseView) AvgDaily() core.Amount {
	v.mu.Lock()
	defer v.mu.Unlock()
	return view.AvgDaily(v.expenses)
}

func (v *ExpenseView) TopCategory() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return view.TopCategory(v.expenses)
}

func (v *ExpenseView) PaymentRatio() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return view.PaymentRatio(v.expenses)
}

func (v *ExpenseView) ExpenseCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.expenses)
}

// Summary bundles every statistic over the unfiltered records.
func (v *ExpenseView) Summary() core.Summary {
	v.mu.Lock()
	defer v.mu.Unlock()
	return view.Summarize(v.expenses)
}

// CategoryTotals sums spend per category over every record.
func (v *ExpenseView) CategoryTotals() []core.CategoryAmount {
	v.mu.Lock()
	defer v.mu.Unlock()
	return view.CategoryTotals(v.expenses)
}

// Budgets returns a copy of the budget mapping.
func (v *ExpenseView) Budgets() core.Budgets {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.budgets.Clone()
}

// BudgetUsage compares spend with every budget.
func (v *ExpenseView) BudgetUsage() []core.BudgetUsage {
	v.mu.Lock()
	defer v.mu.Unlock()
	return view.BudgetUsage(v.expenses, v.budgets)
}

func (v *ExpenseView) Filters() view.Filters {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filters
}

func (v *ExpenseView) Sort() view.SortState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.sort
}

func (v *ExpenseView) Page() view.Page {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

// Editing returns the record being edited, if any.
func (v *ExpenseView) Editing() (core.Expense, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.editing == nil {
		return core.Expense{}, false
	}
	return *v.editing, true
}

// --- expense actions ---

// AddExpense puts e at the top of the list. An empty ID is replaced by a
// fresh one; the stored record is returned.
func (v *ExpenseView) AddExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.Amount = core.NewAmount(e.Amount.Float())

	v.mu.Lock()
	v.expenses = slices.Insert(v.expenses, 0, e)
	err := v.saveExpensesLocked(ctx)
	v.mu.Unlock()

	v.logger.InfoContext(ctx, "Expense added",
		log.NewFields().
			WithOperation(log.OpCreate).
			WithExpense(e.ID, e.Description, e.Amount.Float(), string(e.Category), string(e.PaymentMethod)).
			ToSlice()...)
	return e, v.complete(ctx, err, MsgExpenseAdded)
}

// UpdateExpense replaces the record with e's ID. An unknown ID changes
// nothing but is still saved and reported, like any other update.
func (v *ExpenseView) UpdateExpense(ctx context.Context, e core.Expense) error {
	v.mu.Lock()
	found := v.updateLocked(e)
	err := v.saveExpensesLocked(ctx)
	v.mu.Unlock()

	v.logger.InfoContext(ctx, "Expense updated",
		log.FieldOperation, log.OpUpdate,
		log.FieldExpenseID, e.ID,
		"found", found)
	return v.complete(ctx, err, MsgExpenseUpdated)
}

func (v *ExpenseView) updateLocked(e core.Expense) bool {
	e.Amount = core.NewAmount(e.Amount.Float())
	i := slices.IndexFunc(v.expenses, func(x core.Expense) bool { return x.ID == e.ID })
	if i < 0 {
		return false
	}
	v.expenses[i] = e
	return true
}

// DeleteExpense removes the record with id. Unknown ids are ignored.
func (v *ExpenseView) DeleteExpense(ctx context.Context, id string) error {
	v.mu.Lock()
	before := len(v.expenses)
	v.expenses = slices.DeleteFunc(v.expenses, func(x core.Expense) bool { return x.ID == id })
	removed := before - len(v.expenses)
	err := v.saveExpensesLocked(ctx)
	v.mu.Unlock()

	v.logger.InfoContext(ctx, "Expense deleted",
		log.FieldOperation, log.OpDelete,
		log.FieldExpenseID, id,
		"removed", removed)
	return v.complete(ctx, err, MsgExpenseDeleted)
}

// StartEdit marks e as the record being edited.
func (v *ExpenseView) StartEdit(e core.Expense) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.editing = &e
}

// FinishEdit saves e over the stored record and leaves edit mode.
func (v *ExpenseView) FinishEdit(ctx context.Context, e core.Expense) error {
	v.mu.Lock()
	found := v.updateLocked(e)
	err := v.saveExpensesLocked(ctx)
	v.editing = nil
	v.mu.Unlock()

	v.logger.InfoContext(ctx, "Expense edit finished",
		log.FieldOperation, log.OpUpdate,
		log.FieldExpenseID, e.ID,
		"found", found)
	return v.complete(ctx, err, MsgExpenseUpdated)
}

// ClearEditing leaves edit mode without saving.
func (v *ExpenseView) ClearEditing() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.editing = nil
}

// --- budget actions ---

// SetBudget sets the limit for category. Category strings are not checked
// against the known categories.
func (v *ExpenseView) SetBudget(ctx context.Context, category string, amount core.Amount) error {
	v.mu.Lock()
	budgets := v.budgets.Clone()
	budgets[category] = core.NewAmount(amount.Float())
	v.budgets = budgets
	err := v.saveBudgetsLocked(ctx)
	v.mu.Unlock()

	v.logger.InfoContext(ctx, "Budget set",
		log.FieldOperation, log.OpSetBudget,
		log.FieldCategory, category,
		log.FieldAmount, amount.Float())
	return v.complete(ctx, err, MsgBudgetSaved)
}

// DeleteBudget removes the limit for category.
func (v *ExpenseView) DeleteBudget(ctx context.Context, category string) error {
	v.mu.Lock()
	budgets := v.budgets.Clone()
	delete(budgets, category)
	v.budgets = budgets
	err := v.saveBudgetsLocked(ctx)
	v.mu.Unlock()

	v.logger.InfoContext(ctx, "Budget deleted",
		log.FieldOperation, log.OpDeleteBudget,
		log.FieldCategory, category)
	return v.complete(ctx, err, MsgBudgetDeleted)
}

// --- list controls ---

// SetFilter sets one filter field and goes back to the first page.
func (v *ExpenseView) SetFilter(key view.FilterKey, value string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	filters, ok := v.filters.With(key, value)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFilter, key)
	}
	v.filters = filters
	v.page.Current = 1

	v.logger.Debug("Filter set",
		log.FieldOperation, log.OpFilter,
		log.FieldFilterKey, string(key),
		log.FieldFilterValue, value)
	return nil
}

// ClearFilters drops every filter. The current page is left alone.
func (v *ExpenseView) ClearFilters() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filters = view.Filters{}
}

// ChangePage moves to page n. Pages past the end are allowed and show
// nothing.
func (v *ExpenseView) ChangePage(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page.Current = n

	v.logger.Debug("Page changed",
		log.FieldOperation, log.OpPage,
		log.FieldPage, n)
}

// SortTable sorts by field, flipping direction if field is already active.
func (v *ExpenseView) SortTable(field view.SortField) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sort = v.sort.Toggle(field)

	v.logger.Debug("Sort changed",
		log.FieldOperation, log.OpSort,
		log.FieldSort, v.sort.String())
}

// --- persistence ---

func (v *ExpenseView) saveExpensesLocked(ctx context.Context) error {
	return storage.SaveJSON(ctx, v.kv, storage.KeyExpenses, v.expenses)
}

func (v *ExpenseView) saveBudgetsLocked(ctx context.Context) error {
	return storage.SaveJSON(ctx, v.kv, storage.KeyBudgets, v.budgets)
}

// complete reports the outcome of an action. The in-memory change is kept
// even when saving failed.
func (v *ExpenseView) complete(ctx context.Context, saveErr error, message string) error {
	if saveErr != nil {
		v.logger.ErrorContext(ctx, "Failed to persist change",
			log.NewFields().WithOperation(log.OpSave).WithError(saveErr).ToSlice()...)
		v.notify(notify.Error, MsgSaveFailed)
		return fmt.Errorf("persist: %w", saveErr)
	}
	v.notify(notify.Success, message)
	return nil
}

func (v *ExpenseView) notify(typ notify.Type, message string) {
	if v.notifier == nil {
		return
	}
	v.notifier.Push(message, typ)
}
