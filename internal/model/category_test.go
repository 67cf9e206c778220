package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferDays(t *testing.T) {
	tests := []struct {
		category string
		want     int
	}{
		{"vegetables", 1},
		{"fruits", 1},
		{"dairy", 2},
		{"meat", 2},
		{"seafood", 1},
		{"bakery", 1},
		{"staples", 3},
		{"pulses", 3},
		{"oils", 5},
		{"condiments", 5},
		{"spices", 7},
		{"snacks", 2},
		{"beverages", 3},
		{"frozen", 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BufferDays(tt.category), "category %q", tt.category)
	}
}

func TestBufferDays_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 7, BufferDays("Spices"))
	assert.Equal(t, 1, BufferDays("VEGETABLES"))
}

func TestBufferDays_UnknownFallsThroughToDefault(t *testing.T) {
	for _, category := range []string{"", "exotic", "pet food", "default", "  "} {
		days := BufferDays(category)
		assert.Equal(t, DefaultBufferDays, days, "category %q", category)
		assert.GreaterOrEqual(t, days, 0)
	}
}
