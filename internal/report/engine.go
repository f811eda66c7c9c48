// Package report aggregates ledger data into balance summaries, category
// breakdowns, and monthly reports, and derives rule-based insights from
// them.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/1saman/personalfinancetracker/internal/model"
	"github.com/1saman/personalfinancetracker/internal/service"
)

// Engine computes derived figures from the immutable transaction log.
type Engine struct {
	store service.Storage
	now   func() time.Time
}

// NewEngine creates a reporting engine backed by the given store.
func NewEngine(store service.Storage) *Engine {
	return &Engine{store: store, now: time.Now}
}

// WithClock overrides the engine's notion of "now". Used by tests.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// BalanceSummary returns all-time totals by category kind plus figures
// restricted to the current calendar month.
func (e *Engine) BalanceSummary(ctx context.Context) (*model.BalanceSummary, error) {
	totalIncome, err := e.store.SumByKind(ctx, model.KindIncome, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sum total income: %w", err)
	}
	totalExpenses, err := e.store.SumByKind(ctx, model.KindExpense, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sum total expenses: %w", err)
	}

	monthStart := firstOfMonth(e.now())
	monthlyIncome, err := e.store.SumByKind(ctx, model.KindIncome, &monthStart, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sum monthly income: %w", err)
	}
	monthlyExpenses, err := e.store.SumByKind(ctx, model.KindExpense, &monthStart, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sum monthly expenses: %w", err)
	}

	return &model.BalanceSummary{
		TotalIncome:     totalIncome,
		TotalExpenses:   totalExpenses,
		NetWorth:        totalIncome - totalExpenses,
		MonthlyIncome:   monthlyIncome,
		MonthlyExpenses: monthlyExpenses,
		MonthlySavings:  monthlyIncome - monthlyExpenses,
	}, nil
}

// CategorySpending returns per-category sums for the requested window,
// largest first.
func (e *Engine) CategorySpending(ctx context.Context, period model.SpendingPeriod) ([]model.CategorySpend, error) {
	var from *time.Time
	switch period {
	case model.SpendingMonthly:
		start := firstOfMonth(e.now())
		from = &start
	case model.SpendingYearly:
		now := e.now()
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		from = &start
	case model.SpendingAll:
		// Full history
	default:
		return nil, fmt.Errorf("unknown spending period: %s", period)
	}

	return e.store.CategoryTotals(ctx, from, nil)
}

// MonthlyReport aggregates one calendar month: totals by kind, the
// savings rate, a category breakdown, and a daily time series.
func (e *Engine) MonthlyReport(ctx context.Context, year int, month time.Month) (*model.MonthlyReport, error) {
	start, end := monthWindow(year, month)

	income, err := e.store.SumByKind(ctx, model.KindIncome, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum income: %w", err)
	}
	expenses, err := e.store.SumByKind(ctx, model.KindExpense, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	categories, err := e.store.CategoryTotals(ctx, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("failed to load category breakdown: %w", err)
	}

	daily, err := e.store.DailyTotals(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily totals: %w", err)
	}

	savings := income - expenses
	savingsRate := 0.0
	if income > 0 {
		savingsRate = savings / income * 100
	}

	return &model.MonthlyReport{
		Period:      fmt.Sprintf("%d-%02d", year, month),
		Income:      income,
		Expenses:    expenses,
		Savings:     savings,
		SavingsRate: savingsRate,
		Categories:  categories,
		Daily:       daily,
	}, nil
}

// firstOfMonth returns midnight UTC on the first day of t's month.
func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// monthWindow returns the inclusive first and last day of a calendar
// month. The end is computed by stepping to the first day of the next
// month and backing up one day, which rolls December into January of the
// following year.
func monthWindow(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return start, end
}
