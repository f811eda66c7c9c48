// Package budget evaluates spend-to-limit ratios for active budget windows.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/1saman/personalfinancetracker/internal/model"
	"github.com/1saman/personalfinancetracker/internal/service"
)

// Monitor checks budgets against the ledger. Budgets bind to a category's
// stable id; windows are explicit and never auto-renew.
type Monitor struct {
	store service.Storage
	now   func() time.Time
}

// NewMonitor creates a monitor backed by the given store.
func NewMonitor(store service.Storage) *Monitor {
	return &Monitor{store: store, now: time.Now}
}

// WithClock overrides the monitor's notion of "today". Used by tests.
func (m *Monitor) WithClock(now func() time.Time) *Monitor {
	m.now = now
	return m
}

// Create adds a budget for a category over an explicit window.
func (m *Monitor) Create(ctx context.Context, categoryID int64, amount float64, period model.BudgetPeriod, start, end time.Time) (int64, error) {
	budget := &model.Budget{
		CategoryID:     categoryID,
		Amount:         amount,
		Period:         period,
		StartDate:      model.DateOnly(start),
		EndDate:        model.DateOnly(end),
		AlertThreshold: model.DefaultAlertThreshold,
	}
	return m.store.CreateBudget(ctx, budget)
}

// CheckStatus evaluates every budget whose window has not elapsed, today
// inclusive. Remaining may go negative, signaling an overrun.
func (m *Monitor) CheckStatus(ctx context.Context) ([]model.BudgetStatus, error) {
	budgets, err := m.store.ActiveBudgets(ctx, m.now())
	if err != nil {
		return nil, fmt.Errorf("failed to load active budgets: %w", err)
	}

	statuses := make([]model.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		spent, err := m.store.SumCategoryInWindow(ctx, b.CategoryID, b.StartDate, b.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to sum spend for budget %d: %w", b.ID, err)
		}

		// Guard division by zero on a zero-amount budget.
		percentage := 0.0
		if b.Amount > 0 {
			percentage = spent / b.Amount * 100
		}

		statuses = append(statuses, model.BudgetStatus{
			Category:   b.CategoryName,
			Period:     b.Period,
			Budget:     b.Amount,
			Spent:      spent,
			Remaining:  b.Amount - spent,
			Percentage: percentage,
			Alert:      percentage >= b.AlertThreshold*100,
		})
	}

	return statuses, nil
}
