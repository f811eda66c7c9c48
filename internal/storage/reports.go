package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/1saman/personalfinancetracker/internal/model"
)

// SumByKind returns the summed amount of all transactions whose category
// has the given kind, optionally restricted to a date window.
func (s *SQLiteStorage) SumByKind(ctx context.Context, kind model.CategoryKind, from, to *time.Time) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	query := `
		SELECT COALESCE(SUM(t.amount), 0)
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		WHERE c.kind = ?`
	args := []any{string(kind)}

	if from != nil {
		query += " AND t.date >= ?"
		args = append(args, model.DateOnly(*from))
	}
	if to != nil {
		query += " AND t.date <= ?"
		args = append(args, model.DateOnly(*to))
	}

	var total float64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum by kind: %w", err)
	}

	return total, nil
}

// CategoryTotals returns per-category summed amounts within the optional
// window, largest first.
func (s *SQLiteStorage) CategoryTotals(ctx context.Context, from, to *time.Time) ([]model.CategorySpend, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT c.name, c.color, SUM(t.amount) AS total, c.kind
		FROM transactions t
		JOIN categories c ON t.category_id = c.id`

	var conditions []string
	var args []any
	if from != nil {
		conditions = append(conditions, "t.date >= ?")
		args = append(args, model.DateOnly(*from))
	}
	if to != nil {
		conditions = append(conditions, "t.date <= ?")
		args = append(args, model.DateOnly(*to))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += `
		GROUP BY c.id, c.name, c.color, c.kind
		ORDER BY total DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query category totals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var totals []model.CategorySpend
	for rows.Next() {
		var spend model.CategorySpend
		var kind string
		if err := rows.Scan(&spend.Category, &spend.Color, &spend.Total, &kind); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		spend.Kind = model.CategoryKind(kind)
		totals = append(totals, spend)
	}

	return totals, rows.Err()
}

// DailyTotals returns the per-day expense and income sums within the
// window, ordered by date ascending.
func (s *SQLiteStorage) DailyTotals(ctx context.Context, start, end time.Time) ([]model.DailyTotal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT t.date,
		       SUM(CASE WHEN c.kind = 'expense' THEN t.amount ELSE 0 END) AS expenses,
		       SUM(CASE WHEN c.kind = 'income' THEN t.amount ELSE 0 END) AS income
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		WHERE t.date BETWEEN ? AND ?
		GROUP BY t.date
		ORDER BY t.date`,
		model.DateOnly(start), model.DateOnly(end))
	if err != nil {
		return nil, fmt.Errorf("failed to query daily totals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var totals []model.DailyTotal
	for rows.Next() {
		var day model.DailyTotal
		if err := rows.Scan(&day.Date, &day.Expenses, &day.Income); err != nil {
			return nil, fmt.Errorf("failed to scan daily total: %w", err)
		}
		totals = append(totals, day)
	}

	return totals, rows.Err()
}

// SumCategoryInWindow returns the summed transaction amount for one
// category within an inclusive date window. Budgets resolve spend through
// the category's stable id, so a rename never detaches a budget.
func (s *SQLiteStorage) SumCategoryInWindow(ctx context.Context, categoryID int64, start, end time.Time) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var total float64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE category_id = ? AND date BETWEEN ? AND ?`,
		categoryID, model.DateOnly(start), model.DateOnly(end)).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum category spend: %w", err)
	}

	return total, nil
}
