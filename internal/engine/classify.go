package engine

import "github.com/restock/restock/internal/model"

// weekHorizonDays is the outer cutoff for the this_week tier, inclusive:
// an item depleting in exactly 7 days still lands in this_week.
const weekHorizonDays = 7

// ConfidenceFor maps a historical sample size to a confidence tier.
func ConfidenceFor(dataPoints int) model.ConfidenceLevel {
	switch {
	case dataPoints < 3:
		return model.ConfidenceLow
	case dataPoints < 5:
		return model.ConfidenceMedium
	default:
		return model.ConfidenceHigh
	}
}

// UrgencyFor classifies how soon an item must be repurchased. Empty stock
// is urgent regardless of any projection; otherwise the category buffer
// and the week horizon decide.
func UrgencyFor(daysUntilDepletion float64, category string, currentStock float64) model.UrgencyLevel {
	if currentStock <= 0 {
		return model.UrgencyUrgent
	}

	switch {
	case daysUntilDepletion <= float64(model.BufferDays(category)):
		return model.UrgencyUrgent
	case daysUntilDepletion <= weekHorizonDays:
		return model.UrgencyThisWeek
	default:
		return model.UrgencyLater
	}
}
