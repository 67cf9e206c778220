package model

import "strings"

// DefaultBufferDays is used for categories without an explicit entry.
const DefaultBufferDays = 2

// categoryBuffers maps a lowercased category to the number of days before
// depletion at which an item should escalate to urgent. Fresh goods get
// short buffers, long-shelf-life goods get long ones.
var categoryBuffers = map[string]int{
	"vegetables": 1,
	"fruits":     1,
	"dairy":      2,
	"meat":       2,
	"seafood":    1,
	"bakery":     1,
	"staples":    3,
	"pulses":     3,
	"oils":       5,
	"condiments": 5,
	"spices":     7,
	"snacks":     2,
	"beverages":  3,
	"frozen":     3,
}

// BufferDays returns the restock lead time in days for a category. Unknown
// categories fall through to DefaultBufferDays; the lookup is total and
// never fails.
func BufferDays(category string) int {
	if days, ok := categoryBuffers[strings.ToLower(category)]; ok {
		return days
	}
	return DefaultBufferDays
}

// KnownCategories returns the categories with an explicit buffer entry.
func KnownCategories() []string {
	names := make([]string, 0, len(categoryBuffers))
	for name := range categoryBuffers {
		names = append(names, name)
	}
	return names
}
