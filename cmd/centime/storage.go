package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/cfischer/centime/internal/common"
	"github.com/cfischer/centime/internal/storage"
)

// openStorage opens the configured database and brings its schema up to
// date.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("%w: db.path not set and no home directory: %v", common.ErrMissingConfig, err)
		}
		dbPath = filepath.Join(home, ".config", "centime", "centime.db")
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func profile() string {
	return viper.GetString("profile")
}
