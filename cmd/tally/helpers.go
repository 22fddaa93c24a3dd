package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/tally-calc/tally/internal/config"
	"github.com/tally-calc/tally/internal/storage"
)

// openHistory initializes the history database with proper path expansion,
// honoring history.disabled. A nil, nil return means history is off.
func openHistory(ctx context.Context) (*storage.SQLiteStorage, error) {
	if viper.GetBool("history.disabled") {
		return nil, nil
	}

	dbPath := viper.GetString("history.path")
	if dbPath == "" {
		dbPath = config.DefaultHistoryPath
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}
