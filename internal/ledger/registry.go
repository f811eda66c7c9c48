// Package ledger implements the transactional core: the category registry
// and the append-only transaction ledger.
package ledger

import (
	"context"
	"fmt"

	"github.com/1saman/personalfinancetracker/internal/model"
	"github.com/1saman/personalfinancetracker/internal/service"
)

// Registry manages the named income/expense buckets that transactions
// are recorded against.
type Registry struct {
	store service.Storage
}

// NewRegistry creates a registry backed by the given store.
func NewRegistry(store service.Storage) *Registry {
	return &Registry{store: store}
}

// Create adds a new category. The kind fixes the category's sign
// convention for good.
func (r *Registry) Create(ctx context.Context, name string, kind model.CategoryKind, color string, budgetLimit float64) (*model.Category, error) {
	return r.store.CreateCategory(ctx, name, kind, color, budgetLimit)
}

// GetByName looks up a category by its unique name. Returns nil without
// error when no category matches.
func (r *Registry) GetByName(ctx context.Context, name string) (*model.Category, error) {
	return r.store.GetCategoryByName(ctx, name)
}

// List returns all categories ordered by name.
func (r *Registry) List(ctx context.Context) ([]model.Category, error) {
	return r.store.ListCategories(ctx)
}

// SeedDefaults populates the default category set on first use. It only
// runs against an empty registry, so repeated calls never duplicate names.
func (r *Registry) SeedDefaults(ctx context.Context) error {
	if err := r.store.SeedDefaultCategories(ctx); err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}
	return nil
}

// FindOrCreate resolves a category by exact name, creating it with the
// given kind when absent. Import uses this to grow the registry lazily.
func (r *Registry) FindOrCreate(ctx context.Context, name string, kind model.CategoryKind) (*model.Category, error) {
	existing, err := r.store.GetCategoryByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return r.store.CreateCategory(ctx, name, kind, "", 0)
}
