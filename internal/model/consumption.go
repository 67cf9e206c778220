package model

import (
	"fmt"
	"time"
)

// ConsumptionRecord captures a stock being used up or finished. DaysLasted
// is derived from the add and consume dates and is always at least 1 so
// that a same-day consumption never produces a zero or negative duration.
type ConsumptionRecord struct {
	ConsumedDate     time.Time
	AddedDate        time.Time
	CreatedAt        time.Time
	ID               string
	UserID           string
	ItemName         string
	Category         string
	Unit             string
	InventoryID      string
	QuantityConsumed float64
	DaysLasted       int
}

// NewConsumptionRecord builds a record with DaysLasted clamped to ≥1.
func NewConsumptionRecord(userID, itemName, category, unit string, quantity float64, addedDate, consumedDate time.Time) ConsumptionRecord {
	return ConsumptionRecord{
		UserID:           userID,
		ItemName:         itemName,
		Category:         category,
		Unit:             unit,
		QuantityConsumed: quantity,
		AddedDate:        addedDate,
		ConsumedDate:     consumedDate,
		DaysLasted:       DaysLastedBetween(addedDate, consumedDate),
	}
}

// DaysLastedBetween returns the whole days from added to consumed, clamped
// to a minimum of 1.
func DaysLastedBetween(added, consumed time.Time) int {
	days := int(consumed.Sub(added).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// Validate checks the field contracts before persistence.
func (c *ConsumptionRecord) Validate() error {
	if c.UserID == "" {
		return fmt.Errorf("consumption record: missing user id")
	}
	if c.ItemName == "" {
		return fmt.Errorf("consumption record: missing item name")
	}
	if c.QuantityConsumed <= 0 {
		return fmt.Errorf("consumption record: quantity must be positive, got %v", c.QuantityConsumed)
	}
	if c.DaysLasted < 1 {
		return fmt.Errorf("consumption record: days lasted must be ≥1, got %d", c.DaysLasted)
	}
	return nil
}
