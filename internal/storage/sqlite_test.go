package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restock/restock/internal/model"
)

const testUser = "user-1"

// createTestStorage spins up a migrated store on a temp database.
func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err, "failed to create storage")

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx), "failed to migrate")

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func day(offset int) time.Time {
	base := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func addTestPurchase(t *testing.T, store *SQLiteStorage, item, category string, quantity float64, purchaseDate time.Time) {
	t.Helper()
	err := store.AddPurchase(context.Background(), &model.PurchaseRecord{
		UserID:       testUser,
		ItemName:     item,
		Category:     category,
		Quantity:     quantity,
		Unit:         "units",
		PurchaseDate: purchaseDate,
	})
	require.NoError(t, err)
}

func TestSQLiteStorage_Migrate_Idempotent(t *testing.T) {
	store := createTestStorage(t)
	// Re-running migrations on a current schema is a no-op.
	require.NoError(t, store.Migrate(context.Background()))
}

func TestSQLiteStorage_PurchaseHistory(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	addTestPurchase(t, store, "Milk", "dairy", 2, day(-6))
	addTestPurchase(t, store, "Milk", "dairy", 2, day(-3))
	addTestPurchase(t, store, "Milk", "dairy", 1, day(0))
	addTestPurchase(t, store, "Rice", "staples", 5, day(-1))

	records, err := store.GetPurchaseHistory(ctx, testUser, "Milk", 10)
	require.NoError(t, err)
	require.Len(t, records, 3, "other items must not leak in")

	// Newest first.
	assert.True(t, records[0].PurchaseDate.After(records[1].PurchaseDate))
	assert.True(t, records[1].PurchaseDate.After(records[2].PurchaseDate))
	assert.InDelta(t, 1.0, records[0].Quantity, 0.001)

	limited, err := store.GetPurchaseHistory(ctx, testUser, "Milk", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSQLiteStorage_PurchaseHistory_CaseInsensitive(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	addTestPurchase(t, store, "Milk", "dairy", 2, day(-3))
	addTestPurchase(t, store, "MILK", "dairy", 2, day(0))

	records, err := store.GetPurchaseHistory(ctx, testUser, "milk", 10)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestSQLiteStorage_PurchaseHistory_OtherUserInvisible(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	addTestPurchase(t, store, "Milk", "dairy", 2, day(0))
	err := store.AddPurchase(ctx, &model.PurchaseRecord{
		UserID:       "someone-else",
		ItemName:     "Milk",
		Category:     "dairy",
		Quantity:     2,
		Unit:         "liters",
		PurchaseDate: day(0),
	})
	require.NoError(t, err)

	records, err := store.GetPurchaseHistory(ctx, testUser, "Milk", 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSQLiteStorage_AddPurchase_RejectsInvalid(t *testing.T) {
	store := createTestStorage(t)

	err := store.AddPurchase(context.Background(), &model.PurchaseRecord{
		UserID:       testUser,
		ItemName:     "Milk",
		Category:     "dairy",
		Quantity:     0, // must be positive
		Unit:         "liters",
		PurchaseDate: day(0),
	})
	assert.Error(t, err)
}

func TestSQLiteStorage_GetFrequentItems(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	addTestPurchase(t, store, "Milk", "dairy", 2, day(-6))
	addTestPurchase(t, store, "milk", "dairy", 2, day(-3))
	addTestPurchase(t, store, "Milk", "dairy", 2, day(0))
	addTestPurchase(t, store, "Rice", "staples", 5, day(-30))
	addTestPurchase(t, store, "Rice", "staples", 5, day(-1))
	addTestPurchase(t, store, "Saffron", "spices", 1, day(-10)) // single purchase
	addTestPurchase(t, store, "Ghee", "oils", 1, day(-100))     // outside window
	addTestPurchase(t, store, "Ghee", "oils", 1, day(-95))

	items, err := store.GetFrequentItems(ctx, testUser, day(-90), 2, 50)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Most purchased first; case variants count as one item.
	assert.Equal(t, 3, items[0].PurchaseCount)
	assert.Equal(t, "dairy", items[0].Category)
	assert.Equal(t, 2, items[1].PurchaseCount)
	assert.Equal(t, "Rice", items[1].ItemName)
	assert.True(t, items[1].LastPurchaseDate.Equal(day(-1)))
}

func TestSQLiteStorage_HasPurchaseSince(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	addTestPurchase(t, store, "Ghee", "oils", 1, day(-91))
	addTestPurchase(t, store, "Honey", "condiments", 1, day(-89))

	stale, err := store.HasPurchaseSince(ctx, testUser, "Ghee", day(-90))
	require.NoError(t, err)
	assert.False(t, stale)

	fresh, err := store.HasPurchaseSince(ctx, testUser, "honey", day(-90))
	require.NoError(t, err)
	assert.True(t, fresh)
}

func TestSQLiteStorage_ConsumptionHistory(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		record := model.NewConsumptionRecord(
			testUser, "Milk", "dairy", "liters", 2,
			day(-2*(i+1)), day(-2*i),
		)
		require.NoError(t, store.AddConsumption(ctx, &record))
	}

	records, err := store.GetConsumptionHistory(ctx, testUser, "MILK", 10)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.True(t, records[0].ConsumedDate.After(records[1].ConsumedDate))
	assert.Equal(t, 2, records[0].DaysLasted)

	limited, err := store.GetConsumptionHistory(ctx, testUser, "Milk", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSQLiteStorage_Inventory(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	older := &model.InventoryItem{
		UserID:    testUser,
		ItemName:  "Milk",
		Category:  "dairy",
		Quantity:  1,
		Unit:      "liters",
		AddedDate: day(-5),
		Status:    model.StatusActive,
	}
	require.NoError(t, store.AddInventoryItem(ctx, older))

	newer := &model.InventoryItem{
		UserID:    testUser,
		ItemName:  "milk",
		Category:  "dairy",
		Quantity:  2,
		Unit:      "liters",
		AddedDate: day(0),
		Status:    model.StatusActive,
	}
	require.NoError(t, store.AddInventoryItem(ctx, newer))

	// Most recent active row wins; name matching is case-insensitive.
	current, err := store.GetActiveItem(ctx, testUser, "MILK")
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.InDelta(t, 2.0, current.Quantity, 0.001)

	require.NoError(t, store.UpdateInventoryStatus(ctx, testUser, newer.ID, model.StatusConsumed))

	current, err = store.GetActiveItem(ctx, testUser, "Milk")
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.InDelta(t, 1.0, current.Quantity, 0.001, "older active row becomes current")

	require.NoError(t, store.UpdateInventoryStatus(ctx, testUser, older.ID, model.StatusConsumed))

	current, err = store.GetActiveItem(ctx, testUser, "Milk")
	require.NoError(t, err)
	assert.Nil(t, current, "no active stock left")
}

func TestSQLiteStorage_UpdateInventoryStatus_Missing(t *testing.T) {
	store := createTestStorage(t)

	err := store.UpdateInventoryStatus(context.Background(), testUser, "no-such-id", model.StatusConsumed)
	assert.ErrorIs(t, err, ErrInventoryItemNotFound)
}

func TestSQLiteStorage_NilContextRejected(t *testing.T) {
	store := createTestStorage(t)

	//nolint:staticcheck // deliberately passing a nil context
	_, err := store.GetPurchaseHistory(nil, testUser, "Milk", 10)
	assert.ErrorIs(t, err, ErrNilContext)
}
