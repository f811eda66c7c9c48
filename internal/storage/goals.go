package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/1saman/personalfinancetracker/internal/common"
	"github.com/1saman/personalfinancetracker/internal/model"
)

// CreateGoal creates a new savings goal.
func (s *SQLiteStorage) CreateGoal(ctx context.Context, goal *model.Goal) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateGoal(goal); err != nil {
		return 0, err
	}

	priority := goal.Priority
	if priority == 0 {
		priority = 1
	}

	var targetDate any
	if goal.TargetDate != nil {
		targetDate = model.DateOnly(*goal.TargetDate)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO goals (name, target_amount, target_date, description, priority, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		goal.Name,
		goal.TargetAmount,
		targetDate,
		goal.Description,
		priority,
		time.Now(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create goal: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get goal ID: %w", err)
	}

	slog.Info("created goal", "id", id, "name", goal.Name, "target", goal.TargetAmount)
	return id, nil
}

// GetGoalByID returns a single goal with its progress annotation.
func (s *SQLiteStorage) GetGoalByID(ctx context.Context, id int64) (*model.Goal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, target_amount, current_amount, target_date,
		       description, priority, achieved, created_at
		FROM goals
		WHERE id = ?`, id)

	goal, err := scanGoal(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: goal %d", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query goal: %w", err)
	}

	return goal, nil
}

// AddGoalProgress adds amount to the goal's accumulated progress and
// evaluates the achieved flag, all in one database transaction. The flag
// is one-way: a later negative correction never resets it.
func (s *SQLiteStorage) AddGoalProgress(ctx context.Context, id int64, amount float64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `
		UPDATE goals
		SET current_amount = current_amount + ?
		WHERE id = ?`, amount, id)
	if err != nil {
		return fmt.Errorf("failed to update goal progress: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check goal update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: goal %d", common.ErrNotFound, id)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE goals
		SET achieved = 1
		WHERE id = ? AND current_amount >= target_amount`, id); err != nil {
		return fmt.Errorf("failed to evaluate goal achievement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit goal progress: %w", err)
	}

	slog.Debug("recorded goal progress", "id", id, "amount", amount)
	return nil
}

// ListGoals returns all goals ordered by priority, then target date with
// undated goals last. Progress is the percentage of target reached,
// rounded to two decimals.
func (s *SQLiteStorage) ListGoals(ctx context.Context) ([]model.Goal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, target_amount, current_amount, target_date,
		       description, priority, achieved, created_at
		FROM goals
		ORDER BY priority,
		         CASE WHEN target_date IS NULL THEN 1 ELSE 0 END,
		         target_date`)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var goals []model.Goal
	for rows.Next() {
		goal, err := scanGoal(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, *goal)
	}

	return goals, rows.Err()
}

func scanGoal(scan func(dest ...any) error) (*model.Goal, error) {
	var goal model.Goal
	var targetDate sql.NullTime
	var description sql.NullString
	if err := scan(
		&goal.ID,
		&goal.Name,
		&goal.TargetAmount,
		&goal.CurrentAmount,
		&targetDate,
		&description,
		&goal.Priority,
		&goal.Achieved,
		&goal.CreatedAt,
	); err != nil {
		return nil, err
	}
	if targetDate.Valid {
		d := targetDate.Time
		goal.TargetDate = &d
	}
	goal.Description = description.String
	goal.Progress = math.Round(goal.CurrentAmount/goal.TargetAmount*100*100) / 100
	return &goal, nil
}
