package engine

import (
	"time"

	"github.com/restock/restock/internal/model"
)

// PurchasePattern summarizes the purchase cadence of one item.
// AvgDaysBetween is nil when no positive interval exists, e.g. when every
// purchase landed on the same day.
type PurchasePattern struct {
	LastPurchaseDate time.Time
	AvgDaysBetween   *float64
	AvgQuantity      float64
	PurchaseCount    int
}

// extractPurchasePattern computes interval statistics from purchase
// records ordered newest first. It returns nil when fewer than minRecords
// purchases exist; that is the "insufficient data" outcome, not an error.
func extractPurchasePattern(records []model.PurchaseRecord, minRecords int) *PurchasePattern {
	if len(records) < minRecords {
		return nil
	}

	// Reverse to chronological order for interval calculation.
	chronological := make([]model.PurchaseRecord, len(records))
	for i, r := range records {
		chronological[len(records)-1-i] = r
	}

	var intervals []float64
	for i := 0; i < len(chronological)-1; i++ {
		days := daysBetween(chronological[i].PurchaseDate, chronological[i+1].PurchaseDate)
		// Same-day duplicate purchases carry no cadence signal.
		if days > 0 {
			intervals = append(intervals, float64(days))
		}
	}

	var avgDays *float64
	if len(intervals) > 0 {
		avg := mean(intervals)
		avgDays = &avg
	}

	quantities := make([]float64, len(chronological))
	for i, r := range chronological {
		quantities[i] = r.Quantity
	}

	return &PurchasePattern{
		PurchaseCount:    len(records),
		AvgDaysBetween:   avgDays,
		AvgQuantity:      mean(quantities),
		LastPurchaseDate: chronological[len(chronological)-1].PurchaseDate,
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// dateOnly truncates a timestamp to midnight in its location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween returns whole days from a to b at date granularity.
func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}
