package core

// CategoryAmount represents an amount aggregated by category.
type CategoryAmount struct {
	Category Category
	Amount   Amount
}

// BudgetUsage compares what was spent in a category against its budget.
type BudgetUsage struct {
	Category  Category
	Limit     Amount
	Spent     Amount
	Remaining float64 // negative when over budget
	Over      bool
}

// Summary is the set of statistics shown above the expense list.
type Summary struct {
	TotalExpenses Amount
	AvgDaily      Amount
	TopCategory   string
	PaymentRatio  string
	ExpenseCount  int
}
