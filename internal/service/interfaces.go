// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/restock/restock/internal/model"
)

// PredictionFilter defines filtering options for stored prediction queries.
type PredictionFilter struct {
	Urgency       *model.UrgencyLevel
	MinConfidence *model.ConfidenceLevel
	Limit         int
}

// Storage defines the contract for our persistence layer. Item-name
// matching is case-insensitive throughout.
type Storage interface {
	// Purchase history
	AddPurchase(ctx context.Context, record *model.PurchaseRecord) error
	GetPurchaseHistory(ctx context.Context, userID, itemName string, limit int) ([]model.PurchaseRecord, error)
	GetFrequentItems(ctx context.Context, userID string, since time.Time, minPurchases, limit int) ([]model.FrequentItem, error)
	HasPurchaseSince(ctx context.Context, userID, itemName string, since time.Time) (bool, error)

	// Consumption history
	AddConsumption(ctx context.Context, record *model.ConsumptionRecord) error
	GetConsumptionHistory(ctx context.Context, userID, itemName string, limit int) ([]model.ConsumptionRecord, error)

	// Inventory
	AddInventoryItem(ctx context.Context, item *model.InventoryItem) error
	GetActiveItem(ctx context.Context, userID, itemName string) (*model.InventoryItem, error)
	UpdateInventoryStatus(ctx context.Context, userID, itemID string, status model.ItemStatus) error

	// Predictions
	SavePrediction(ctx context.Context, prediction *model.Prediction) error
	GetPrediction(ctx context.Context, userID, itemName string) (*model.Prediction, error)
	GetPredictions(ctx context.Context, userID string, filter PredictionFilter) ([]model.Prediction, error)
	DeletePrediction(ctx context.Context, userID, itemName string) error

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
