package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUrgencyLevel_Rank(t *testing.T) {
	assert.Equal(t, 0, UrgencyUrgent.Rank())
	assert.Equal(t, 1, UrgencyThisWeek.Rank())
	assert.Equal(t, 2, UrgencyLater.Rank())
	assert.Equal(t, 3, UrgencyLevel("bogus").Rank(), "unknown tiers sort last")
}

func TestConfidenceLevel_Rank(t *testing.T) {
	assert.Less(t, ConfidenceLow.Rank(), ConfidenceMedium.Rank())
	assert.Less(t, ConfidenceMedium.Rank(), ConfidenceHigh.Rank())
	assert.Equal(t, -1, ConfidenceLevel("bogus").Rank())
}

func TestItemStatus_Valid(t *testing.T) {
	for _, status := range []ItemStatus{StatusActive, StatusConsumed, StatusExpired, StatusDiscarded} {
		assert.True(t, status.Valid(), "status %q", status)
	}
	assert.False(t, ItemStatus("active ").Valid())
	assert.False(t, ItemStatus("").Valid())
}

func TestPrediction_FromAnalysis(t *testing.T) {
	rate := 0.5
	cadence := 4.0
	date := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

	analysis := &PatternAnalysis{
		ItemName:                "Milk",
		Category:                "dairy",
		Unit:                    "liters",
		CurrentStock:            2,
		AvgDaysBetweenPurchases: &cadence,
		AvgQuantityPerPurchase:  2,
		AvgConsumptionRate:      &rate,
		PredictedDepletionDate:  &date,
		DaysUntilDepletion:      4,
		SuggestedQuantity:       2,
		Confidence:              ConfidenceHigh,
		Urgency:                 UrgencyThisWeek,
		DataPoints:              8,
	}

	prediction := &Prediction{UserID: "user-1", ID: "keep-me"}
	prediction.FromAnalysis(analysis)

	assert.Equal(t, "keep-me", prediction.ID, "identity fields must survive")
	assert.Equal(t, "user-1", prediction.UserID)
	assert.Equal(t, "Milk", prediction.ItemName)
	assert.Equal(t, UrgencyThisWeek, prediction.Urgency)
	assert.Equal(t, ConfidenceHigh, prediction.Confidence)
	assert.Equal(t, 8, prediction.DataPoints)
	assert.Equal(t, &cadence, prediction.AvgDaysBetweenPurchases)
	assert.Equal(t, &date, prediction.PredictedDepletionDate)
}
