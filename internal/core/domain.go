package core

import (
	"errors"
	"strings"
)

const (
	Food          Category = "food"
	Transport     Category = "transport"
	Entertainment Category = "entertainment"
	Shopping      Category = "shopping"
	Bills         Category = "bills"
	Others        Category = "others"
)

const (
	Cash PaymentMethod = "cash"
	Card PaymentMethod = "card"
)

type (
	Category string

	PaymentMethod string

	Expense struct {
		ID            string        `json:"id"`
		Date          Date          `json:"date"`
		Description   string        `json:"description"`
		Category      Category      `json:"category"`
		PaymentMethod PaymentMethod `json:"paymentMethod"`
		Amount        Amount        `json:"amount"`
	}

	// Budgets maps a category identifier to its spending limit.
	// Keys are open-ended: unknown category strings are kept as-is.
	Budgets map[string]Amount
)

var (
	ErrEmptyID            = errors.New("empty id")
	ErrEmptyDescription   = errors.New("empty description")
	ErrEmptyCategory      = errors.New("empty category")
	ErrEmptyPaymentMethod = errors.New("empty payment method")
)

var categoryLabels = map[Category]string{
	Food:          "Food",
	Transport:     "Transport",
	Entertainment: "Entertainment",
	Shopping:      "Shopping",
	Bills:         "Bills",
	Others:        "Others",
}

// Categories returns the known categories in display order.
func Categories() []Category {
	return []Category{Food, Transport, Entertainment, Shopping, Bills, Others}
}

// Label returns the display label, or the raw identifier for unknown categories.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// IsKnown reports whether c is one of the predefined categories.
func (c Category) IsKnown() bool {
	_, ok := categoryLabels[c]
	return ok
}

func (p PaymentMethod) IsCash() bool {
	return strings.EqualFold(string(p), string(Cash))
}

// Validate checks fields a user must fill in. The amount is never rejected:
// invalid amounts are already coerced to zero by ParseAmount.
func (e Expense) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return ErrEmptyID
	}
	if len(strings.TrimSpace(e.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(e.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if strings.TrimSpace(string(e.Category)) == "" {
		return ErrEmptyCategory
	}
	if strings.TrimSpace(string(e.PaymentMethod)) == "" {
		return ErrEmptyPaymentMethod
	}
	return nil
}

// Clone returns a copy of the budgets map. A nil map clones to an empty one.
func (b Budgets) Clone() Budgets {
	out := make(Budgets, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}
