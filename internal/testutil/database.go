// Package testutil provides test helpers for storage-backed tests.
package testutil

import (
	"context"
	"testing"

	"github.com/1saman/personalfinancetracker/internal/model"
	"github.com/1saman/personalfinancetracker/internal/storage"
)

// SetupTestDB creates a new in-memory database with migrations applied.
// Cleanup is registered automatically.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// MustCreateCategory creates a category or fails the test.
func MustCreateCategory(t *testing.T, store *storage.SQLiteStorage, name string, kind model.CategoryKind) *model.Category {
	t.Helper()

	cat, err := store.CreateCategory(context.Background(), name, kind, "", 0)
	if err != nil {
		t.Fatalf("failed to create category %q: %v", name, err)
	}
	return cat
}
