package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS purchase_log (
					id TEXT PRIMARY KEY,
					user_id TEXT NOT NULL,
					item_name TEXT NOT NULL,
					category TEXT NOT NULL,
					quantity REAL NOT NULL,
					unit TEXT NOT NULL,
					purchase_date DATE NOT NULL,
					inventory_id TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_purchase_log_user_item ON purchase_log(user_id, item_name COLLATE NOCASE)`,
				`CREATE INDEX idx_purchase_log_date ON purchase_log(purchase_date)`,

				`CREATE TABLE IF NOT EXISTS consumption_log (
					id TEXT PRIMARY KEY,
					user_id TEXT NOT NULL,
					item_name TEXT NOT NULL,
					category TEXT NOT NULL,
					quantity_consumed REAL NOT NULL,
					unit TEXT NOT NULL,
					consumed_date DATE NOT NULL,
					added_date DATE NOT NULL,
					days_lasted INTEGER NOT NULL,
					inventory_id TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_consumption_log_user_item ON consumption_log(user_id, item_name COLLATE NOCASE)`,

				`CREATE TABLE IF NOT EXISTS inventory (
					id TEXT PRIMARY KEY,
					user_id TEXT NOT NULL,
					item_name TEXT NOT NULL,
					category TEXT NOT NULL,
					quantity REAL NOT NULL,
					unit TEXT NOT NULL,
					added_date DATE NOT NULL,
					expiry_date DATE,
					status TEXT NOT NULL DEFAULT 'active',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_inventory_user_status ON inventory(user_id, status)`,
				`CREATE INDEX idx_inventory_user_item ON inventory(user_id, item_name COLLATE NOCASE)`,

				`CREATE TABLE IF NOT EXISTS predictions (
					id TEXT PRIMARY KEY,
					user_id TEXT NOT NULL,
					item_name TEXT NOT NULL,
					category TEXT NOT NULL,
					unit TEXT NOT NULL,
					current_stock REAL NOT NULL DEFAULT 0,
					avg_days_between_purchases REAL,
					avg_quantity_per_purchase REAL NOT NULL DEFAULT 0,
					avg_consumption_rate REAL,
					predicted_depletion_date DATE,
					suggested_quantity REAL NOT NULL DEFAULT 0,
					confidence_level TEXT NOT NULL DEFAULT 'low',
					urgency TEXT NOT NULL DEFAULT 'later',
					data_points_count INTEGER NOT NULL DEFAULT 0,
					last_analyzed DATETIME,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					UNIQUE(user_id, item_name COLLATE NOCASE)
				)`,
				`CREATE INDEX idx_predictions_user_urgency ON predictions(user_id, urgency)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add days_until_depletion to predictions",
		Up: func(tx *sql.Tx) error {
			query := `ALTER TABLE predictions ADD COLUMN days_until_depletion REAL NOT NULL DEFAULT 999`
			if _, err := tx.Exec(query); err != nil {
				return fmt.Errorf("failed to add days_until_depletion: %w", err)
			}
			return nil
		},
	},
}

// Migrate applies all pending schema migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to set schema version %d: %w", migration.Version, execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	return nil
}
