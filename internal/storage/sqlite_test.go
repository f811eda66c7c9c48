package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/1saman/personalfinancetracker/internal/model"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

// Helper to create a category or fail.
func mustCreateCategory(t *testing.T, store *SQLiteStorage, name string, kind model.CategoryKind) *model.Category {
	t.Helper()
	cat, err := store.CreateCategory(context.Background(), name, kind, "", 0)
	if err != nil {
		t.Fatalf("Failed to create category %q: %v", name, err)
	}
	return cat
}

// Helper to append a transaction or fail.
func mustAppend(t *testing.T, store *SQLiteStorage, categoryID int64, amount float64, description string, date time.Time) int64 {
	t.Helper()
	id, err := store.AppendTransaction(context.Background(), &model.Transaction{
		Amount:        amount,
		Description:   description,
		CategoryID:    categoryID,
		Date:          date,
		PaymentMethod: "cash",
	})
	if err != nil {
		t.Fatalf("Failed to append transaction: %v", err)
	}
	return id
}

func TestNewSQLiteStorage_Validation(t *testing.T) {
	if _, err := NewSQLiteStorage(""); err == nil {
		t.Error("Expected error for empty database path")
	}
}

func TestNewSQLiteStorage_InMemory(t *testing.T) {
	store, err := NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("Failed to create in-memory storage: %v", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate in-memory storage: %v", err)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Second run must be a no-op, not an error.
	if err := store.Migrate(context.Background()); err != nil {
		t.Errorf("Repeated migration failed: %v", err)
	}
}
