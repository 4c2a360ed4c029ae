package log

// Common field names for structured logging
const (
	FieldComponent    = "component"
	FieldError        = "error"
	FieldOperation    = "operation"
	FieldKey          = "key"
	FieldExpenseID    = "expense_id"
	FieldExpenseDesc  = "expense_description"
	FieldAmount       = "amount"
	FieldCategory     = "category"
	FieldPayment      = "payment_method"
	FieldCount        = "count"
	FieldFilterKey    = "filter_key"
	FieldFilterValue  = "filter_value"
	FieldSort         = "sort"
	FieldPage         = "page"
	FieldBackend      = "backend"
	FieldDBPath       = "db_path"
	FieldNotification = "notification"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentCLI     = "cli"
	ComponentStore   = "store"
	ComponentStorage = "storage"
	ComponentNotify  = "notify"
	ComponentBackend = "backend"
	ComponentConfig  = "config"
)

// Operations defines standard operation names
const (
	OpCreate       = "create"
	OpRead         = "read"
	OpUpdate       = "update"
	OpDelete       = "delete"
	OpList         = "list"
	OpFilter       = "filter"
	OpSort         = "sort"
	OpPage         = "page"
	OpSetBudget    = "set_budget"
	OpDeleteBudget = "delete_budget"
	OpLoad         = "load"
	OpSave         = "save"
	OpStartup      = "startup"
	OpShutdown     = "shutdown"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithExpense adds expense-related fields
func (f LogFields) WithExpense(id, desc string, amount float64, category, payment string) LogFields {
	f[FieldExpenseID] = id
	f[FieldExpenseDesc] = desc
	f[FieldAmount] = amount
	f[FieldCategory] = category
	f[FieldPayment] = payment
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
