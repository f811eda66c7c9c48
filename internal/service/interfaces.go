// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/1saman/personalfinancetracker/internal/model"
)

// TransactionFilter defines filtering options for ledger queries. All set
// predicates combine with AND; nil fields are ignored. Limit caps the
// result count when positive.
type TransactionFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *int64
	Limit      int
}

// Storage defines the contract for the persistence layer. Every mutating
// operation commits its writes, including derived balance updates, as one
// atomic unit.
type Storage interface {
	// Category operations
	CreateCategory(ctx context.Context, name string, kind model.CategoryKind, color string, budgetLimit float64) (*model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	CountCategories(ctx context.Context) (int, error)
	SeedDefaultCategories(ctx context.Context) error

	// Ledger operations
	AppendTransaction(ctx context.Context, txn *model.Transaction) (int64, error)
	QueryTransactions(ctx context.Context, filter TransactionFilter) ([]model.LedgerEntry, error)

	// Aggregation queries for reporting
	SumByKind(ctx context.Context, kind model.CategoryKind, from, to *time.Time) (float64, error)
	CategoryTotals(ctx context.Context, from, to *time.Time) ([]model.CategorySpend, error)
	DailyTotals(ctx context.Context, start, end time.Time) ([]model.DailyTotal, error)
	SumCategoryInWindow(ctx context.Context, categoryID int64, start, end time.Time) (float64, error)

	// Budget operations
	CreateBudget(ctx context.Context, budget *model.Budget) (int64, error)
	ActiveBudgets(ctx context.Context, asOf time.Time) ([]model.Budget, error)

	// Goal operations
	CreateGoal(ctx context.Context, goal *model.Goal) (int64, error)
	GetGoalByID(ctx context.Context, id int64) (*model.Goal, error)
	AddGoalProgress(ctx context.Context, id int64, amount float64) error
	ListGoals(ctx context.Context) ([]model.Goal, error)

	// Account operations
	CreateAccount(ctx context.Context, account *model.Account) (int64, error)
	PrimaryAccount(ctx context.Context) (*model.Account, error)
	ListAccounts(ctx context.Context) ([]model.Account, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
