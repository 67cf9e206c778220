package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/restock/restock/internal/common"
	"github.com/restock/restock/internal/model"
)

// ErrInventoryItemNotFound is returned when an inventory row is not found.
var ErrInventoryItemNotFound = fmt.Errorf("inventory item %w", common.ErrNotFound)

// AddInventoryItem inserts a new stock row.
func (s *SQLiteStorage) AddInventoryItem(ctx context.Context, item *model.InventoryItem) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("%w: item", ErrNilParameter)
	}
	if err := item.Validate(); err != nil {
		return fmt.Errorf("invalid inventory item: %w", err)
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	query := `
		INSERT INTO inventory (
			id, user_id, item_name, category, quantity, unit,
			added_date, expiry_date, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		item.ID, item.UserID, item.ItemName, item.Category,
		item.Quantity, item.Unit, item.AddedDate, item.ExpiryDate, item.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to add inventory item: %w", err)
	}

	slog.Debug("added inventory item",
		"item", item.ItemName,
		"quantity", item.Quantity,
		"unit", item.Unit)
	return nil
}

// GetActiveItem returns the most recently added active stock row for an
// item, or nil when nothing is in stock. Item names match
// case-insensitively.
func (s *SQLiteStorage) GetActiveItem(ctx context.Context, userID, itemName string) (*model.InventoryItem, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}
	if err := validateString(itemName, "itemName"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, item_name, category, quantity, unit,
			added_date, expiry_date, status, created_at, updated_at
		FROM inventory
		WHERE user_id = ? AND item_name = ? COLLATE NOCASE AND status = ?
		ORDER BY added_date DESC, created_at DESC
		LIMIT 1`

	item := &model.InventoryItem{}
	var expiry sql.NullTime

	err := s.db.QueryRowContext(ctx, query, userID, itemName, model.StatusActive).Scan(
		&item.ID, &item.UserID, &item.ItemName, &item.Category,
		&item.Quantity, &item.Unit, &item.AddedDate, &expiry,
		&item.Status, &item.CreatedAt, &item.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query active item: %w", err)
	}

	if expiry.Valid {
		item.ExpiryDate = &expiry.Time
	}

	return item, nil
}

// UpdateInventoryStatus moves a stock row through its lifecycle
// (active to consumed, expired, or discarded).
func (s *SQLiteStorage) UpdateInventoryStatus(ctx context.Context, userID, itemID string, status model.ItemStatus) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if err := validateString(itemID, "itemID"); err != nil {
		return err
	}
	if !status.Valid() {
		return fmt.Errorf("invalid inventory status %q", status)
	}

	query := `
		UPDATE inventory
		SET status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, status, itemID, userID)
	if err != nil {
		return fmt.Errorf("failed to update inventory status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrInventoryItemNotFound
	}

	slog.Debug("updated inventory status", "id", itemID, "status", status)
	return nil
}
