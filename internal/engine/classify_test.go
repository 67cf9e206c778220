package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/restock/restock/internal/model"
)

func TestConfidenceFor(t *testing.T) {
	tests := []struct {
		want       model.ConfidenceLevel
		dataPoints int
	}{
		{model.ConfidenceLow, 0},
		{model.ConfidenceLow, 2},
		{model.ConfidenceMedium, 3},
		{model.ConfidenceMedium, 4},
		{model.ConfidenceHigh, 5},
		{model.ConfidenceHigh, 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ConfidenceFor(tt.dataPoints),
			"data points = %d", tt.dataPoints)
	}
}

func TestUrgencyFor(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     model.UrgencyLevel
		days     float64
		stock    float64
	}{
		{
			name:     "empty stock is urgent regardless of projection",
			days:     0,
			category: "spices",
			stock:    0,
			want:     model.UrgencyUrgent,
		},
		{
			name:     "negative stock is urgent",
			days:     500,
			category: "oils",
			stock:    -1,
			want:     model.UrgencyUrgent,
		},
		{
			name:     "inside vegetables buffer",
			days:     1,
			category: "vegetables",
			stock:    1,
			want:     model.UrgencyUrgent,
		},
		{
			name:     "just past vegetables buffer",
			days:     2,
			category: "vegetables",
			stock:    1,
			want:     model.UrgencyThisWeek,
		},
		{
			name:     "spices buffer is a whole week",
			days:     7,
			category: "spices",
			stock:    1,
			want:     model.UrgencyUrgent,
		},
		{
			name:     "week horizon is inclusive",
			days:     7,
			category: "staples",
			stock:    1,
			want:     model.UrgencyThisWeek,
		},
		{
			name:     "past the week horizon",
			days:     7.5,
			category: "staples",
			stock:    1,
			want:     model.UrgencyLater,
		},
		{
			name:     "unknown category uses default buffer",
			days:     2,
			category: "exotic",
			stock:    1,
			want:     model.UrgencyUrgent,
		},
		{
			name:     "unknown depletion sentinel is never urgent",
			days:     model.UnknownDaysUntilDepletion,
			category: "dairy",
			stock:    3,
			want:     model.UrgencyLater,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UrgencyFor(tt.days, tt.category, tt.stock))
		})
	}
}
