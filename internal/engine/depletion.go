package engine

import (
	"time"

	"github.com/restock/restock/internal/model"
)

// projectDepletion combines current stock, consumption rate, and purchase
// cadence into a depletion projection. The branches are ordered: a live
// consumption signal wins, then the purchase-cadence fallback for empty
// stock, then the unknown sentinel. The returned date is truncated to
// whole days; it is nil exactly when the sentinel applies.
func projectDepletion(currentStock float64, rate *float64, pattern *PurchasePattern, today time.Time) (float64, *time.Time) {
	today = dateOnly(today)

	if currentStock > 0 && rate != nil && *rate > 0 {
		days := currentStock / *rate
		date := today.AddDate(0, 0, int(days))
		return days, &date
	}

	if currentStock <= 0 && pattern != nil && pattern.AvgDaysBetween != nil {
		daysSinceLast := daysBetween(pattern.LastPurchaseDate, today)
		if float64(daysSinceLast) >= *pattern.AvgDaysBetween {
			// Past the usual repurchase interval: treat as already depleted.
			return 0, &today
		}
		date := dateOnly(pattern.LastPurchaseDate).AddDate(0, 0, int(*pattern.AvgDaysBetween))
		return float64(daysBetween(today, date)), &date
	}

	return model.UnknownDaysUntilDepletion, nil
}
