package main

import (
	"context"
	"fmt"
	"time"

	"github.com/1saman/personalfinancetracker/internal/config"
	"github.com/1saman/personalfinancetracker/internal/service"
	"github.com/1saman/personalfinancetracker/internal/storage"
	"github.com/spf13/viper"
)

// dateFlagLayout is the calendar-date format accepted by CLI flags.
const dateFlagLayout = "2006-01-02"

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/fintrack/fintrack.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// parseDateFlag parses a YYYY-MM-DD flag value. An empty value yields a
// zero time and no error.
func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateFlagLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", value, err)
	}
	return t, nil
}
