package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/restock/restock/internal/model"
	"github.com/restock/restock/internal/storage"
)

// ItemInsight returns the stored prediction for one actively stocked item,
// analyzing and persisting on demand when none exists yet. It returns
// (nil, nil) when the item is not in active inventory or has too little
// history to analyze.
func (e *Engine) ItemInsight(ctx context.Context, userID, itemName string) (*model.Prediction, error) {
	current, err := e.storage.GetActiveItem(ctx, userID, itemName)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory for %q: %w", itemName, err)
	}
	if current == nil {
		return nil, nil
	}

	prediction, err := e.storage.GetPrediction(ctx, userID, itemName)
	if err == nil {
		return prediction, nil
	}
	if !errors.Is(err, storage.ErrPredictionNotFound) {
		return nil, fmt.Errorf("failed to load prediction for %q: %w", itemName, err)
	}

	analysis, err := e.AnalyzeItem(ctx, userID, current.ItemName, current.Category)
	if err != nil {
		return nil, err
	}
	if analysis == nil {
		return nil, nil
	}

	prediction = &model.Prediction{
		UserID:       userID,
		LastAnalyzed: e.now(),
	}
	prediction.FromAnalysis(analysis)

	if err := e.storage.SavePrediction(ctx, prediction); err != nil {
		return nil, fmt.Errorf("failed to save prediction for %q: %w", itemName, err)
	}

	return prediction, nil
}
