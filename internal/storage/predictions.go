package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/restock/restock/internal/common"
	"github.com/restock/restock/internal/model"
	"github.com/restock/restock/internal/service"
)

// ErrPredictionNotFound is returned when a prediction is not found.
var ErrPredictionNotFound = fmt.Errorf("prediction %w", common.ErrNotFound)

// SavePrediction upserts a prediction keyed by (user, item name),
// case-insensitively. An existing row is overwritten in place and its
// last_analyzed timestamp refreshed; otherwise a new row is inserted.
func (s *SQLiteStorage) SavePrediction(ctx context.Context, prediction *model.Prediction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if prediction == nil {
		return fmt.Errorf("%w: prediction", ErrNilParameter)
	}
	if err := validateString(prediction.UserID, "prediction.UserID"); err != nil {
		return err
	}
	if err := validateString(prediction.ItemName, "prediction.ItemName"); err != nil {
		return err
	}

	if prediction.LastAnalyzed.IsZero() {
		prediction.LastAnalyzed = time.Now()
	}

	existing, err := s.GetPrediction(ctx, prediction.UserID, prediction.ItemName)
	if err != nil && !errors.Is(err, ErrPredictionNotFound) {
		return err
	}

	if existing != nil {
		query := `
			UPDATE predictions
			SET item_name = ?, category = ?, unit = ?, current_stock = ?,
				avg_days_between_purchases = ?, avg_quantity_per_purchase = ?,
				avg_consumption_rate = ?, predicted_depletion_date = ?,
				days_until_depletion = ?, suggested_quantity = ?,
				confidence_level = ?, urgency = ?, data_points_count = ?,
				last_analyzed = ?
			WHERE id = ?`

		_, err = s.db.ExecContext(ctx, query,
			prediction.ItemName, prediction.Category, prediction.Unit,
			prediction.CurrentStock, nullFloat(prediction.AvgDaysBetweenPurchases),
			prediction.AvgQuantityPerPurchase, nullFloat(prediction.AvgConsumptionRate),
			nullTime(prediction.PredictedDepletionDate), prediction.DaysUntilDepletion,
			prediction.SuggestedQuantity, prediction.Confidence, prediction.Urgency,
			prediction.DataPoints, prediction.LastAnalyzed,
			existing.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update prediction: %w", err)
		}

		prediction.ID = existing.ID
		prediction.CreatedAt = existing.CreatedAt
		slog.Debug("updated prediction", "item", prediction.ItemName, "urgency", prediction.Urgency)
		return nil
	}

	if prediction.ID == "" {
		prediction.ID = uuid.NewString()
	}

	query := `
		INSERT INTO predictions (
			id, user_id, item_name, category, unit, current_stock,
			avg_days_between_purchases, avg_quantity_per_purchase,
			avg_consumption_rate, predicted_depletion_date,
			days_until_depletion, suggested_quantity, confidence_level,
			urgency, data_points_count, last_analyzed
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = s.db.ExecContext(ctx, query,
		prediction.ID, prediction.UserID, prediction.ItemName,
		prediction.Category, prediction.Unit, prediction.CurrentStock,
		nullFloat(prediction.AvgDaysBetweenPurchases), prediction.AvgQuantityPerPurchase,
		nullFloat(prediction.AvgConsumptionRate), nullTime(prediction.PredictedDepletionDate),
		prediction.DaysUntilDepletion, prediction.SuggestedQuantity,
		prediction.Confidence, prediction.Urgency, prediction.DataPoints,
		prediction.LastAnalyzed,
	)
	if err != nil {
		return fmt.Errorf("failed to insert prediction: %w", err)
	}

	slog.Debug("created prediction", "item", prediction.ItemName, "urgency", prediction.Urgency)
	return nil
}

// GetPrediction returns the stored prediction for an item, matching
// case-insensitively, or ErrPredictionNotFound.
func (s *SQLiteStorage) GetPrediction(ctx context.Context, userID, itemName string) (*model.Prediction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}
	if err := validateString(itemName, "itemName"); err != nil {
		return nil, err
	}

	query := predictionSelect + `
		WHERE user_id = ? AND item_name = ? COLLATE NOCASE`

	row := s.db.QueryRowContext(ctx, query, userID, itemName)
	prediction, err := scanPrediction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPredictionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query prediction: %w", err)
	}

	return prediction, nil
}

// GetPredictions returns stored predictions for a user, most urgent first,
// optionally filtered by urgency tier or minimum confidence.
func (s *SQLiteStorage) GetPredictions(ctx context.Context, userID string, filter service.PredictionFilter) ([]model.Prediction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	var conditions []string
	args := []any{userID}
	conditions = append(conditions, "user_id = ?")

	if filter.Urgency != nil {
		conditions = append(conditions, "urgency = ?")
		args = append(args, *filter.Urgency)
	}

	if filter.MinConfidence != nil {
		levels := confidenceAtLeast(*filter.MinConfidence)
		placeholders := make([]string, len(levels))
		for i, level := range levels {
			placeholders[i] = "?"
			args = append(args, level)
		}
		conditions = append(conditions, fmt.Sprintf("confidence_level IN (%s)", strings.Join(placeholders, ", ")))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)

	query := predictionSelect + `
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY
			CASE urgency WHEN 'urgent' THEN 0 WHEN 'this_week' THEN 1 ELSE 2 END,
			predicted_depletion_date IS NULL,
			predicted_depletion_date
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var predictions []model.Prediction
	for rows.Next() {
		prediction, scanErr := scanPrediction(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", scanErr)
		}
		predictions = append(predictions, *prediction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate predictions: %w", err)
	}

	return predictions, nil
}

// DeletePrediction removes the stored prediction for an item. Deleting a
// missing prediction is not an error, so pruning stays idempotent.
func (s *SQLiteStorage) DeletePrediction(ctx context.Context, userID, itemName string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if err := validateString(itemName, "itemName"); err != nil {
		return err
	}

	query := `DELETE FROM predictions WHERE user_id = ? AND item_name = ? COLLATE NOCASE`
	if _, err := s.db.ExecContext(ctx, query, userID, itemName); err != nil {
		return fmt.Errorf("failed to delete prediction: %w", err)
	}

	return nil
}

const predictionSelect = `
	SELECT id, user_id, item_name, category, unit, current_stock,
		avg_days_between_purchases, avg_quantity_per_purchase,
		avg_consumption_rate, predicted_depletion_date,
		days_until_depletion, suggested_quantity, confidence_level,
		urgency, data_points_count, last_analyzed, created_at
	FROM predictions`

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPrediction(row rowScanner) (*model.Prediction, error) {
	p := &model.Prediction{}
	var (
		avgDays       sql.NullFloat64
		avgRate       sql.NullFloat64
		depletionDate sql.NullTime
		lastAnalyzed  sql.NullTime
	)

	err := row.Scan(
		&p.ID, &p.UserID, &p.ItemName, &p.Category, &p.Unit, &p.CurrentStock,
		&avgDays, &p.AvgQuantityPerPurchase, &avgRate, &depletionDate,
		&p.DaysUntilDepletion, &p.SuggestedQuantity, &p.Confidence,
		&p.Urgency, &p.DataPoints, &lastAnalyzed, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if avgDays.Valid {
		p.AvgDaysBetweenPurchases = &avgDays.Float64
	}
	if avgRate.Valid {
		p.AvgConsumptionRate = &avgRate.Float64
	}
	if depletionDate.Valid {
		p.PredictedDepletionDate = &depletionDate.Time
	}
	if lastAnalyzed.Valid {
		p.LastAnalyzed = lastAnalyzed.Time
	}

	return p, nil
}

// confidenceAtLeast returns every tier at or above the given minimum.
func confidenceAtLeast(min model.ConfidenceLevel) []model.ConfidenceLevel {
	all := []model.ConfidenceLevel{model.ConfidenceLow, model.ConfidenceMedium, model.ConfidenceHigh}
	var out []model.ConfidenceLevel
	for _, level := range all {
		if level.Rank() >= min.Rank() {
			out = append(out, level)
		}
	}
	return out
}

func nullFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
