package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/restock/restock/internal/model"
	"github.com/restock/restock/internal/service"
)

// prunePageLimit bounds how many stored predictions a prune sweep loads.
const prunePageLimit = 1000

// ItemFailure records one item that could not be synced.
type ItemFailure struct {
	Err      error
	ItemName string
}

// SyncSummary reports the outcome of a prediction sync batch.
type SyncSummary struct {
	Failures []ItemFailure
	Saved    int
}

// Failed returns the number of items that could not be saved.
func (s *SyncSummary) Failed() int {
	return len(s.Failures)
}

// SyncPredictions analyzes the household and upserts one prediction per
// analyzable item. A failed save is collected into the summary and the
// batch continues; Saved counts only successes. Re-running with no new
// data rewrites the same values, so the operation is idempotent.
func (e *Engine) SyncPredictions(ctx context.Context, userID string) (*SyncSummary, error) {
	analyses, err := e.AnalyzeHousehold(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &SyncSummary{}
	for i := range analyses {
		prediction := &model.Prediction{
			UserID:       userID,
			LastAnalyzed: e.now(),
		}
		prediction.FromAnalysis(&analyses[i])

		if saveErr := e.storage.SavePrediction(ctx, prediction); saveErr != nil {
			slog.Error("failed to save prediction",
				"item", analyses[i].ItemName,
				"error", saveErr)
			summary.Failures = append(summary.Failures, ItemFailure{
				ItemName: analyses[i].ItemName,
				Err:      saveErr,
			})
			continue
		}
		summary.Saved++
	}

	slog.Info("synced predictions",
		"user", userID,
		"saved", summary.Saved,
		"failed", summary.Failed())
	return summary, nil
}

// PrunePredictions deletes stored predictions for items with no purchase
// inside the trailing history window. It returns the number of deletions
// and is safe to re-run.
func (e *Engine) PrunePredictions(ctx context.Context, userID string) (int, error) {
	predictions, err := e.storage.GetPredictions(ctx, userID, service.PredictionFilter{Limit: prunePageLimit})
	if err != nil {
		return 0, fmt.Errorf("failed to load predictions: %w", err)
	}

	cutoff := dateOnly(e.now()).AddDate(0, 0, -e.cfg.HistoryWindowDays)

	deleted := 0
	for i := range predictions {
		recent, checkErr := e.storage.HasPurchaseSince(ctx, userID, predictions[i].ItemName, cutoff)
		if checkErr != nil {
			slog.Error("failed to check purchase recency",
				"item", predictions[i].ItemName,
				"error", checkErr)
			continue
		}
		if recent {
			continue
		}

		if delErr := e.storage.DeletePrediction(ctx, userID, predictions[i].ItemName); delErr != nil {
			slog.Error("failed to delete stale prediction",
				"item", predictions[i].ItemName,
				"error", delErr)
			continue
		}
		deleted++
	}

	slog.Info("pruned stale predictions", "user", userID, "deleted", deleted)
	return deleted, nil
}
