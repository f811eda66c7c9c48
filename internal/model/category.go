package model

import "time"

// CategoryKind indicates whether a category records income or expense.
// The kind is fixed at creation and drives the sign convention for every
// derived figure: income increases net worth, expense decreases it.
type CategoryKind string

const (
	// KindIncome represents categories for income transactions.
	KindIncome CategoryKind = "income"
	// KindExpense represents categories for expense transactions.
	KindExpense CategoryKind = "expense"
)

// Valid reports whether the kind is one of the two allowed values.
func (k CategoryKind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// DefaultCategoryColor is used when a category is created without an
// explicit display color.
const DefaultCategoryColor = "#007bff"

// Category represents a named income or expense bucket.
type Category struct {
	CreatedAt   time.Time
	Name        string
	Kind        CategoryKind
	Color       string
	ID          int64
	BudgetLimit float64
}
