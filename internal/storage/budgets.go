package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/1saman/personalfinancetracker/internal/common"
	"github.com/1saman/personalfinancetracker/internal/model"
)

// CreateBudget creates a new budget window for a category. Whether the
// (category, period) combination is sensible is the caller's concern.
func (s *SQLiteStorage) CreateBudget(ctx context.Context, budget *model.Budget) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateBudget(budget); err != nil {
		return 0, err
	}

	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM categories WHERE id = ?)`, budget.CategoryID).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("failed to check category existence: %w", err)
	}
	if !exists {
		return 0, fmt.Errorf("%w: category %d", common.ErrNotFound, budget.CategoryID)
	}

	threshold := budget.AlertThreshold
	if threshold == 0 {
		threshold = model.DefaultAlertThreshold
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO budgets (category_id, amount, period, start_date, end_date, alert_threshold, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		budget.CategoryID,
		budget.Amount,
		string(budget.Period),
		model.DateOnly(budget.StartDate),
		model.DateOnly(budget.EndDate),
		threshold,
		time.Now(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create budget: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get budget ID: %w", err)
	}

	slog.Info("created budget", "id", id, "category_id", budget.CategoryID, "amount", budget.Amount, "period", budget.Period)
	return id, nil
}

// ActiveBudgets returns budgets whose window has not elapsed as of the
// given date (end date inclusive), joined with their category name.
func (s *SQLiteStorage) ActiveBudgets(ctx context.Context, asOf time.Time) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT b.id, b.category_id, c.name, b.amount, b.period,
		       b.start_date, b.end_date, b.alert_threshold, b.created_at
		FROM budgets b
		JOIN categories c ON b.category_id = c.id
		WHERE b.end_date >= ?
		ORDER BY b.id`,
		model.DateOnly(asOf))
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var budgets []model.Budget
	for rows.Next() {
		var b model.Budget
		var period string
		var created sql.NullTime
		if err := rows.Scan(
			&b.ID,
			&b.CategoryID,
			&b.CategoryName,
			&b.Amount,
			&period,
			&b.StartDate,
			&b.EndDate,
			&b.AlertThreshold,
			&created,
		); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		b.Period = model.BudgetPeriod(period)
		b.CreatedAt = created.Time
		budgets = append(budgets, b)
	}

	return budgets, rows.Err()
}
