package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/restock/restock/internal/config"
	"github.com/restock/restock/internal/service"
	"github.com/restock/restock/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	} else {
		dbPath = config.ExpandPath(dbPath)
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// currentUser returns the household user the command operates on.
func currentUser() string {
	user := viper.GetString("user")
	if user == "" {
		user = "default"
	}
	return user
}
