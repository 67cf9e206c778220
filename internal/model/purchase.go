// Package model defines the core domain types shared across the application.
package model

import (
	"fmt"
	"time"
)

// PurchaseRecord captures a single inventory-add event. Records are
// immutable once written and feed the purchase-cadence analysis.
type PurchaseRecord struct {
	PurchaseDate time.Time
	CreatedAt    time.Time
	ID           string
	UserID       string
	ItemName     string
	Category     string
	Unit         string
	InventoryID  string // soft reference, empty if the inventory row is gone
	Quantity     float64
}

// Validate checks the field contracts before persistence.
func (p *PurchaseRecord) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("purchase record: missing user id")
	}
	if p.ItemName == "" {
		return fmt.Errorf("purchase record: missing item name")
	}
	if p.Quantity <= 0 {
		return fmt.Errorf("purchase record: quantity must be positive, got %v", p.Quantity)
	}
	if p.PurchaseDate.IsZero() {
		return fmt.Errorf("purchase record: missing purchase date")
	}
	return nil
}

// FrequentItem is one row of the frequently-purchased summary used to pick
// analysis candidates for a household.
type FrequentItem struct {
	LastPurchaseDate time.Time
	ItemName         string
	Category         string
	PurchaseCount    int
}
