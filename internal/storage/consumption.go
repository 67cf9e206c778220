package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/restock/restock/internal/model"
)

// AddConsumption records a stock-used event.
func (s *SQLiteStorage) AddConsumption(ctx context.Context, record *model.ConsumptionRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if record == nil {
		return fmt.Errorf("%w: record", ErrNilParameter)
	}
	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid consumption record: %w", err)
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
		INSERT INTO consumption_log (
			id, user_id, item_name, category, quantity_consumed, unit,
			consumed_date, added_date, days_lasted, inventory_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		record.ID, record.UserID, record.ItemName, record.Category,
		record.QuantityConsumed, record.Unit, record.ConsumedDate,
		record.AddedDate, record.DaysLasted, nullable(record.InventoryID),
	)
	if err != nil {
		return fmt.Errorf("failed to add consumption: %w", err)
	}

	slog.Debug("recorded consumption",
		"item", record.ItemName,
		"days_lasted", record.DaysLasted)
	return nil
}

// GetConsumptionHistory returns up to limit consumption records for an
// item, newest first. Item names match case-insensitively.
func (s *SQLiteStorage) GetConsumptionHistory(ctx context.Context, userID, itemName string, limit int) ([]model.ConsumptionRecord, error) {
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
		SELECT id, user_id, item_name, category, quantity_consumed, unit,
			consumed_date, added_date, days_lasted, COALESCE(inventory_id, ''), created_at
		FROM consumption_log
		WHERE user_id = ? AND item_name = ? COLLATE NOCASE
		ORDER BY consumed_date DESC, created_at DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, userID, itemName, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query consumption history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.ConsumptionRecord
	for rows.Next() {
		var r model.ConsumptionRecord
		if err := rows.Scan(
			&r.ID, &r.UserID, &r.ItemName, &r.Category, &r.QuantityConsumed,
			&r.Unit, &r.ConsumedDate, &r.AddedDate, &r.DaysLasted,
			&r.InventoryID, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan consumption record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate consumption records: %w", err)
	}

	return records, nil
}
