package engine

import "github.com/restock/restock/internal/model"

// ConsumptionPattern summarizes how fast one item gets used up.
// Rate stays nil when no consumption history exists; the depletion
// predictor then falls back to purchase cadence.
type ConsumptionPattern struct {
	Rate          *float64 // quantity consumed per day
	AvgDaysLasted float64
	AvgQuantity   float64
}

// extractConsumptionPattern averages days-lasted and quantity over the
// given records (newest first, already capped by the caller). Records with
// a non-positive days_lasted are excluded from the duration average but
// still count toward the quantity average.
func extractConsumptionPattern(records []model.ConsumptionRecord) ConsumptionPattern {
	if len(records) == 0 {
		return ConsumptionPattern{}
	}

	var daysLasted []float64
	for _, r := range records {
		if r.DaysLasted > 0 {
			daysLasted = append(daysLasted, float64(r.DaysLasted))
		}
	}
	if len(daysLasted) == 0 {
		return ConsumptionPattern{}
	}

	quantities := make([]float64, len(records))
	for i, r := range records {
		quantities[i] = r.QuantityConsumed
	}

	pattern := ConsumptionPattern{
		AvgDaysLasted: mean(daysLasted),
		AvgQuantity:   mean(quantities),
	}

	rate := pattern.AvgQuantity / pattern.AvgDaysLasted
	pattern.Rate = &rate
	return pattern
}
