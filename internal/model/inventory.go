package model

import (
	"fmt"
	"time"
)

// ItemStatus is the lifecycle state of an inventory row.
type ItemStatus string

// Inventory item statuses. Only active rows count as current stock.
const (
	StatusActive    ItemStatus = "active"
	StatusConsumed  ItemStatus = "consumed"
	StatusExpired   ItemStatus = "expired"
	StatusDiscarded ItemStatus = "discarded"
)

// Valid reports whether the status is one of the known states.
func (s ItemStatus) Valid() bool {
	switch s {
	case StatusActive, StatusConsumed, StatusExpired, StatusDiscarded:
		return true
	}
	return false
}

// InventoryItem is one household stock row. The engine only reads the most
// recent active row per (user, item name) as the current stock level.
type InventoryItem struct {
	AddedDate  time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ExpiryDate *time.Time
	ID         string
	UserID     string
	ItemName   string
	Category   string
	Unit       string
	Status     ItemStatus
	Quantity   float64
}

// Validate checks the field contracts before persistence.
func (i *InventoryItem) Validate() error {
	if i.UserID == "" {
		return fmt.Errorf("inventory item: missing user id")
	}
	if i.ItemName == "" {
		return fmt.Errorf("inventory item: missing item name")
	}
	if i.Quantity <= 0 {
		return fmt.Errorf("inventory item: quantity must be positive, got %v", i.Quantity)
	}
	if !i.Status.Valid() {
		return fmt.Errorf("inventory item: invalid status %q", i.Status)
	}
	return nil
}
