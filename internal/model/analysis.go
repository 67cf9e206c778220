package model

import "time"

// UnknownDaysUntilDepletion is the sentinel for "no usable depletion
// signal"; it sorts far in the future so such items never look urgent.
const UnknownDaysUntilDepletion = 999

// ConfidenceLevel grades a prediction by the amount of history behind it.
type ConfidenceLevel string

// Confidence tiers by data point count.
const (
	ConfidenceLow    ConfidenceLevel = "low"    // fewer than 3 data points
	ConfidenceMedium ConfidenceLevel = "medium" // 3-4 data points
	ConfidenceHigh   ConfidenceLevel = "high"   // 5 or more
)

// Valid reports whether the confidence level is one of the known tiers.
func (c ConfidenceLevel) Valid() bool {
	switch c {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
		return true
	}
	return false
}

// Rank orders confidence tiers from least to most reliable.
func (c ConfidenceLevel) Rank() int {
	switch c {
	case ConfidenceLow:
		return 0
	case ConfidenceMedium:
		return 1
	case ConfidenceHigh:
		return 2
	}
	return -1
}

// UrgencyLevel classifies how soon an item needs repurchasing.
type UrgencyLevel string

// Urgency tiers.
const (
	UrgencyUrgent   UrgencyLevel = "urgent"
	UrgencyThisWeek UrgencyLevel = "this_week"
	UrgencyLater    UrgencyLevel = "later"
)

// Valid reports whether the urgency level is one of the known tiers.
func (u UrgencyLevel) Valid() bool {
	switch u {
	case UrgencyUrgent, UrgencyThisWeek, UrgencyLater:
		return true
	}
	return false
}

// Rank orders urgency tiers most-urgent first for sorting; unknown values
// sort last.
func (u UrgencyLevel) Rank() int {
	switch u {
	case UrgencyUrgent:
		return 0
	case UrgencyThisWeek:
		return 1
	case UrgencyLater:
		return 2
	}
	return 3
}

// PatternAnalysis is the result of analyzing one item's purchase and
// consumption history. It is computed fresh on every run; nullable metrics
// are pointers and stay nil when the underlying signal is absent.
type PatternAnalysis struct {
	PredictedDepletionDate  *time.Time
	AvgDaysBetweenPurchases *float64
	AvgConsumptionRate      *float64 // quantity consumed per day
	ItemName                string
	Category                string
	Unit                    string
	CurrentStock            float64
	AvgQuantityPerPurchase  float64
	SuggestedQuantity       float64
	DaysUntilDepletion      float64
	Confidence              ConfidenceLevel
	Urgency                 UrgencyLevel
	DataPoints              int
}

// Prediction is the persisted projection of a PatternAnalysis, keyed by
// (user, item name) case-insensitively and refreshed on every sync.
type Prediction struct {
	LastAnalyzed            time.Time
	CreatedAt               time.Time
	PredictedDepletionDate  *time.Time
	AvgDaysBetweenPurchases *float64
	AvgConsumptionRate      *float64
	ID                      string
	UserID                  string
	ItemName                string
	Category                string
	Unit                    string
	CurrentStock            float64
	AvgQuantityPerPurchase  float64
	SuggestedQuantity       float64
	DaysUntilDepletion      float64
	Confidence              ConfidenceLevel
	Urgency                 UrgencyLevel
	DataPoints              int
}

// FromAnalysis copies every analysis field onto the prediction, leaving
// identity and timestamp fields untouched.
func (p *Prediction) FromAnalysis(a *PatternAnalysis) {
	p.ItemName = a.ItemName
	p.Category = a.Category
	p.Unit = a.Unit
	p.CurrentStock = a.CurrentStock
	p.AvgDaysBetweenPurchases = a.AvgDaysBetweenPurchases
	p.AvgQuantityPerPurchase = a.AvgQuantityPerPurchase
	p.AvgConsumptionRate = a.AvgConsumptionRate
	p.PredictedDepletionDate = a.PredictedDepletionDate
	p.DaysUntilDepletion = a.DaysUntilDepletion
	p.SuggestedQuantity = a.SuggestedQuantity
	p.Confidence = a.Confidence
	p.Urgency = a.Urgency
	p.DataPoints = a.DataPoints
}
