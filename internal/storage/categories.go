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

// defaultCategories is the fixed seed set applied to an empty registry.
var defaultCategories = []model.Category{
	{Name: "Salary", Kind: model.KindIncome, Color: "#28a745"},
	{Name: "Freelance", Kind: model.KindIncome, Color: "#17a2b8"},
	{Name: "Investments", Kind: model.KindIncome, Color: "#ffc107"},
	{Name: "Food & Dining", Kind: model.KindExpense, Color: "#dc3545"},
	{Name: "Transport", Kind: model.KindExpense, Color: "#6f42c1"},
	{Name: "Shopping", Kind: model.KindExpense, Color: "#fd7e14"},
	{Name: "Entertainment", Kind: model.KindExpense, Color: "#e83e8c"},
	{Name: "Bills & Utilities", Kind: model.KindExpense, Color: "#6c757d"},
	{Name: "Health", Kind: model.KindExpense, Color: "#20c997"},
	{Name: "Education", Kind: model.KindExpense, Color: "#0d6efd"},
}

// CreateCategory creates a new category. The kind is immutable after
// creation and an existing name is a duplicate error.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, name string, kind model.CategoryKind, color string, budgetLimit float64) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", common.ErrInvalidCategoryKind, kind)
	}
	if color == "" {
		color = model.DefaultCategoryColor
	}

	existing, err := s.GetCategoryByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: category %q", common.ErrDuplicateEntry, name)
	}

	now := time.Now()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (name, kind, color, budget_limit, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		name, string(kind), color, budgetLimit, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get category ID: %w", err)
	}

	category := &model.Category{
		ID:          id,
		Name:        name,
		Kind:        kind,
		Color:       color,
		BudgetLimit: budgetLimit,
		CreatedAt:   now,
	}

	slog.Info("created new category", "name", name, "kind", kind, "id", id)
	return category, nil
}

// GetCategoryByName returns a category by its name, or nil when absent.
func (s *SQLiteStorage) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	return s.scanCategory(s.db.QueryRowContext(ctx, `
		SELECT id, name, kind, color, budget_limit, created_at
		FROM categories
		WHERE name = ?`, name))
}

// GetCategoryByID returns a category by its id, or nil when absent.
func (s *SQLiteStorage) GetCategoryByID(ctx context.Context, id int64) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	return s.scanCategory(s.db.QueryRowContext(ctx, `
		SELECT id, name, kind, color, budget_limit, created_at
		FROM categories
		WHERE id = ?`, id))
}

func (s *SQLiteStorage) scanCategory(row *sql.Row) (*model.Category, error) {
	var cat model.Category
	var kind string
	err := row.Scan(&cat.ID, &cat.Name, &kind, &cat.Color, &cat.BudgetLimit, &cat.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil // Category not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}
	cat.Kind = model.CategoryKind(kind)
	return &cat, nil
}

// ListCategories returns all categories ordered by name.
func (s *SQLiteStorage) ListCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, kind, color, budget_limit, created_at
		FROM categories
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		var kind string
		if err := rows.Scan(&cat.ID, &cat.Name, &kind, &cat.Color, &cat.BudgetLimit, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		cat.Kind = model.CategoryKind(kind)
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// CountCategories returns the total number of categories.
func (s *SQLiteStorage) CountCategories(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}

	return count, nil
}

// SeedDefaultCategories inserts the default category set if and only if
// the registry is empty. Calling it again is a no-op, so initialization
// is idempotent.
func (s *SQLiteStorage) SeedDefaultCategories(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO categories (name, kind, color, created_at)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	now := time.Now()
	for _, cat := range defaultCategories {
		if _, err := stmt.ExecContext(ctx, cat.Name, string(cat.Kind), cat.Color, now); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", cat.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit default categories: %w", err)
	}

	slog.Info("seeded default categories", "count", len(defaultCategories))
	return nil
}
