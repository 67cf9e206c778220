// Package engine implements the consumption-pattern analysis and
// predictive shopping-list engine.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/restock/restock/internal/model"
	"github.com/restock/restock/internal/service"
)

// Engine analyzes purchase and consumption history per item and projects
// when stock runs out. It is stateless between invocations; all state
// lives in the injected storage.
type Engine struct {
	storage service.Storage
	now     func() time.Time
	cfg     Config
}

// Config holds the policy knobs of the analysis engine.
type Config struct {
	// HistoryWindowDays bounds the trailing window for frequent-item
	// discovery and prediction pruning.
	HistoryWindowDays int
	// MaxRecordsPerItem caps the purchase and consumption records
	// considered per item.
	MaxRecordsPerItem int
	// MinPurchases is the minimum purchase count for an item to be
	// analyzable.
	MinPurchases int
	// MaxItems caps the number of items analyzed per household run.
	MaxItems int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		HistoryWindowDays: 90,
		MaxRecordsPerItem: 10,
		MinPurchases:      2,
		MaxItems:          100,
	}
}

// New creates an analysis engine with the default configuration.
func New(storage service.Storage) *Engine {
	return NewWithConfig(storage, DefaultConfig())
}

// NewWithConfig creates an analysis engine with a custom configuration.
func NewWithConfig(storage service.Storage, cfg Config) *Engine {
	return &Engine{
		storage: storage,
		cfg:     cfg,
		now:     time.Now,
	}
}

// AnalyzeItem analyzes one (user, item) pair. It returns (nil, nil) when
// the item has too little purchase history to say anything useful.
func (e *Engine) AnalyzeItem(ctx context.Context, userID, itemName, category string) (*model.PatternAnalysis, error) {
	purchases, err := e.storage.GetPurchaseHistory(ctx, userID, itemName, e.cfg.MaxRecordsPerItem)
	if err != nil {
		return nil, fmt.Errorf("failed to load purchase history for %q: %w", itemName, err)
	}

	pattern := extractPurchasePattern(purchases, e.cfg.MinPurchases)
	if pattern == nil {
		slog.Debug("insufficient purchase history", "item", itemName, "records", len(purchases))
		return nil, nil
	}

	consumption, err := e.storage.GetConsumptionHistory(ctx, userID, itemName, e.cfg.MaxRecordsPerItem)
	if err != nil {
		return nil, fmt.Errorf("failed to load consumption history for %q: %w", itemName, err)
	}

	current, err := e.storage.GetActiveItem(ctx, userID, itemName)
	if err != nil {
		return nil, fmt.Errorf("failed to load current stock for %q: %w", itemName, err)
	}

	currentStock := 0.0
	unit := "units"
	if current != nil {
		currentStock = current.Quantity
		unit = current.Unit
	}

	consumptionPattern := extractConsumptionPattern(consumption)
	daysUntilDepletion, depletionDate := projectDepletion(currentStock, consumptionPattern.Rate, pattern, e.now())

	dataPoints := pattern.PurchaseCount + len(consumption)

	return &model.PatternAnalysis{
		ItemName:                itemName,
		Category:                category,
		Unit:                    unit,
		CurrentStock:            currentStock,
		AvgDaysBetweenPurchases: pattern.AvgDaysBetween,
		AvgQuantityPerPurchase:  pattern.AvgQuantity,
		AvgConsumptionRate:      consumptionPattern.Rate,
		PredictedDepletionDate:  depletionDate,
		DaysUntilDepletion:      daysUntilDepletion,
		SuggestedQuantity:       pattern.AvgQuantity,
		Confidence:              ConfidenceFor(dataPoints),
		Urgency:                 UrgencyFor(daysUntilDepletion, category, currentStock),
		DataPoints:              dataPoints,
	}, nil
}

// AnalyzeHousehold analyzes every frequently purchased item for a user and
// returns the results most urgent first. A failure on one item is logged
// and skipped; it never aborts the rest of the batch.
func (e *Engine) AnalyzeHousehold(ctx context.Context, userID string) ([]model.PatternAnalysis, error) {
	since := dateOnly(e.now()).AddDate(0, 0, -e.cfg.HistoryWindowDays)

	items, err := e.storage.GetFrequentItems(ctx, userID, since, e.cfg.MinPurchases, e.cfg.MaxItems)
	if err != nil {
		return nil, fmt.Errorf("failed to list frequent items: %w", err)
	}

	var analyses []model.PatternAnalysis
	for _, item := range items {
		analysis, itemErr := e.AnalyzeItem(ctx, userID, item.ItemName, item.Category)
		if itemErr != nil {
			slog.Error("item analysis failed", "item", item.ItemName, "error", itemErr)
			continue
		}
		if analysis == nil {
			continue
		}
		analyses = append(analyses, *analysis)
	}

	// Stable sort keeps the purchase-frequency order within each tier.
	sort.SliceStable(analyses, func(i, j int) bool {
		return analyses[i].Urgency.Rank() < analyses[j].Urgency.Rank()
	})

	slog.Info("analyzed household items", "user", userID, "count", len(analyses))
	return analyses, nil
}
