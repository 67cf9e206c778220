package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/restock/restock/internal/model"
)

// AddPurchase records an inventory-add event. An ID is generated when the
// record has none.
func (s *SQLiteStorage) AddPurchase(ctx context.Context, record *model.PurchaseRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if record == nil {
		return fmt.Errorf("%w: record", ErrNilParameter)
	}
	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid purchase record: %w", err)
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
		INSERT INTO purchase_log (
			id, user_id, item_name, category, quantity, unit,
			purchase_date, inventory_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		record.ID, record.UserID, record.ItemName, record.Category,
		record.Quantity, record.Unit, record.PurchaseDate, nullable(record.InventoryID),
	)
	if err != nil {
		return fmt.Errorf("failed to add purchase: %w", err)
	}

	slog.Debug("recorded purchase",
		"item", record.ItemName,
		"quantity", record.Quantity,
		"unit", record.Unit)
	return nil
}

// GetPurchaseHistory returns up to limit purchase records for an item,
// newest first. Item names match case-insensitively.
func (s *SQLiteStorage) GetPurchaseHistory(ctx context.Context, userID, itemName string, limit int) ([]model.PurchaseRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}
	if err := validateString(itemName, "itemName"); err != nil {
		return nil, err
	}
	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, item_name, category, quantity, unit,
			purchase_date, COALESCE(inventory_id, ''), created_at
		FROM purchase_log
		WHERE user_id = ? AND item_name = ? COLLATE NOCASE
		ORDER BY purchase_date DESC, created_at DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, userID, itemName, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.PurchaseRecord
	for rows.Next() {
		var r model.PurchaseRecord
		if err := rows.Scan(
			&r.ID, &r.UserID, &r.ItemName, &r.Category, &r.Quantity,
			&r.Unit, &r.PurchaseDate, &r.InventoryID, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan purchase record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate purchase records: %w", err)
	}

	return records, nil
}

// GetFrequentItems returns items purchased at least minPurchases times
// since the cutoff, most purchased first.
func (s *SQLiteStorage) GetFrequentItems(ctx context.Context, userID string, since time.Time, minPurchases, limit int) ([]model.FrequentItem, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}
	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	query := `
		SELECT item_name, category, COUNT(*) AS purchase_count,
			MAX(purchase_date) AS last_purchase_date
		FROM purchase_log
		WHERE user_id = ? AND purchase_date >= ?
		GROUP BY item_name COLLATE NOCASE, category
		HAVING COUNT(*) >= ?
		ORDER BY purchase_count DESC, item_name COLLATE NOCASE ASC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, userID, since, minPurchases, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query frequent items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []model.FrequentItem
	for rows.Next() {
		var item model.FrequentItem
		var lastPurchase string
		if err := rows.Scan(&item.ItemName, &item.Category, &item.PurchaseCount, &lastPurchase); err != nil {
			return nil, fmt.Errorf("failed to scan frequent item: %w", err)
		}
		// MAX() strips the column type, so the driver hands back raw text
		// instead of a parsed timestamp.
		item.LastPurchaseDate, err = parseTimestamp(lastPurchase)
		if err != nil {
			return nil, fmt.Errorf("failed to parse last purchase date: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate frequent items: %w", err)
	}

	return items, nil
}

// HasPurchaseSince reports whether any purchase of the item exists on or
// after the cutoff date.
func (s *SQLiteStorage) HasPurchaseSince(ctx context.Context, userID, itemName string, since time.Time) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return false, err
	}
	if err := validateString(itemName, "itemName"); err != nil {
		return false, err
	}

	query := `
		SELECT EXISTS(
			SELECT 1 FROM purchase_log
			WHERE user_id = ? AND item_name = ? COLLATE NOCASE AND purchase_date >= ?
		)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, userID, itemName, since).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check recent purchases: %w", err)
	}

	return exists, nil
}

// timestampLayouts covers the formats the sqlite driver writes
// timestamps in.
var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

// nullable converts an empty string to a NULL-able value for optional
// soft-reference columns.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
