package engine

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/restock/restock/internal/model"
	"github.com/restock/restock/internal/service"
	"github.com/restock/restock/internal/storage"
)

// mockStorage is an in-memory service.Storage for engine tests.
type mockStorage struct {
	purchases   []model.PurchaseRecord
	consumption []model.ConsumptionRecord
	inventory   []model.InventoryItem
	predictions map[string]*model.Prediction // keyed by lowercased item name

	// failSaveFor and failHistoryFor inject failures for specific items.
	failSaveFor    map[string]error
	failHistoryFor map[string]error
	saveCalls      int
}

func newMockStorage() *mockStorage {
	return &mockStorage{
		predictions:    make(map[string]*model.Prediction),
		failSaveFor:    make(map[string]error),
		failHistoryFor: make(map[string]error),
	}
}

func sameItem(a, b string) bool {
	return strings.EqualFold(a, b)
}

func (m *mockStorage) AddPurchase(_ context.Context, record *model.PurchaseRecord) error {
	m.purchases = append(m.purchases, *record)
	return nil
}

func (m *mockStorage) GetPurchaseHistory(_ context.Context, userID, itemName string, limit int) ([]model.PurchaseRecord, error) {
	if err, ok := m.failHistoryFor[strings.ToLower(itemName)]; ok {
		return nil, err
	}
	var out []model.PurchaseRecord
	for _, r := range m.purchases {
		if r.UserID == userID && sameItem(r.ItemName, itemName) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PurchaseDate.After(out[j].PurchaseDate) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockStorage) GetFrequentItems(_ context.Context, userID string, since time.Time, minPurchases, limit int) ([]model.FrequentItem, error) {
	type key struct{ name, category string }
	counts := make(map[key]*model.FrequentItem)
	var order []key
	for _, r := range m.purchases {
		if r.UserID != userID || r.PurchaseDate.Before(since) {
			continue
		}
		k := key{strings.ToLower(r.ItemName), r.Category}
		item, ok := counts[k]
		if !ok {
			item = &model.FrequentItem{ItemName: r.ItemName, Category: r.Category}
			counts[k] = item
			order = append(order, k)
		}
		item.PurchaseCount++
		if r.PurchaseDate.After(item.LastPurchaseDate) {
			item.LastPurchaseDate = r.PurchaseDate
		}
	}

	var out []model.FrequentItem
	for _, k := range order {
		if counts[k].PurchaseCount >= minPurchases {
			out = append(out, *counts[k])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PurchaseCount > out[j].PurchaseCount })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockStorage) HasPurchaseSince(_ context.Context, userID, itemName string, since time.Time) (bool, error) {
	for _, r := range m.purchases {
		if r.UserID == userID && sameItem(r.ItemName, itemName) && !r.PurchaseDate.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockStorage) AddConsumption(_ context.Context, record *model.ConsumptionRecord) error {
	m.consumption = append(m.consumption, *record)
	return nil
}

func (m *mockStorage) GetConsumptionHistory(_ context.Context, userID, itemName string, limit int) ([]model.ConsumptionRecord, error) {
	var out []model.ConsumptionRecord
	for _, r := range m.consumption {
		if r.UserID == userID && sameItem(r.ItemName, itemName) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ConsumedDate.After(out[j].ConsumedDate) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockStorage) AddInventoryItem(_ context.Context, item *model.InventoryItem) error {
	m.inventory = append(m.inventory, *item)
	return nil
}

func (m *mockStorage) GetActiveItem(_ context.Context, userID, itemName string) (*model.InventoryItem, error) {
	var newest *model.InventoryItem
	for i := range m.inventory {
		item := &m.inventory[i]
		if item.UserID != userID || !sameItem(item.ItemName, itemName) || item.Status != model.StatusActive {
			continue
		}
		if newest == nil || item.AddedDate.After(newest.AddedDate) {
			newest = item
		}
	}
	if newest == nil {
		return nil, nil
	}
	copied := *newest
	return &copied, nil
}

func (m *mockStorage) UpdateInventoryStatus(_ context.Context, userID, itemID string, status model.ItemStatus) error {
	for i := range m.inventory {
		if m.inventory[i].UserID == userID && m.inventory[i].ID == itemID {
			m.inventory[i].Status = status
			return nil
		}
	}
	return storage.ErrInventoryItemNotFound
}

func (m *mockStorage) SavePrediction(_ context.Context, prediction *model.Prediction) error {
	m.saveCalls++
	if err, ok := m.failSaveFor[strings.ToLower(prediction.ItemName)]; ok {
		return err
	}
	key := strings.ToLower(prediction.ItemName)
	if existing, ok := m.predictions[key]; ok {
		prediction.ID = existing.ID
		prediction.CreatedAt = existing.CreatedAt
	}
	copied := *prediction
	m.predictions[key] = &copied
	return nil
}

func (m *mockStorage) GetPrediction(_ context.Context, _ string, itemName string) (*model.Prediction, error) {
	if p, ok := m.predictions[strings.ToLower(itemName)]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, storage.ErrPredictionNotFound
}

func (m *mockStorage) GetPredictions(_ context.Context, userID string, filter service.PredictionFilter) ([]model.Prediction, error) {
	var out []model.Prediction
	for _, p := range m.predictions {
		if p.UserID != userID {
			continue
		}
		if filter.Urgency != nil && p.Urgency != *filter.Urgency {
			continue
		}
		if filter.MinConfidence != nil && p.Confidence.Rank() < filter.MinConfidence.Rank() {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Urgency.Rank() != out[j].Urgency.Rank() {
			return out[i].Urgency.Rank() < out[j].Urgency.Rank()
		}
		return out[i].ItemName < out[j].ItemName
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (m *mockStorage) DeletePrediction(_ context.Context, _ string, itemName string) error {
	delete(m.predictions, strings.ToLower(itemName))
	return nil
}

func (m *mockStorage) Migrate(_ context.Context) error { return nil }

func (m *mockStorage) Close() error { return nil }
