package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/restock/restock/internal/model"
)

// ShoppingListItem is one suggested purchase with a human-readable reason.
type ShoppingListItem struct {
	PredictedDepletionDate *time.Time
	ItemName               string
	Category               string
	Unit                   string
	Reason                 string
	SuggestedQuantity      float64
	CurrentStock           float64
	Confidence             model.ConfidenceLevel
}

// ShoppingList groups suggested purchases by urgency tier.
type ShoppingList struct {
	Urgent   []ShoppingListItem
	ThisWeek []ShoppingListItem
	Later    []ShoppingListItem
}

// Total returns the number of items across all tiers.
func (l *ShoppingList) Total() int {
	return len(l.Urgent) + len(l.ThisWeek) + len(l.Later)
}

// BuildShoppingList analyzes the household and groups the results into
// urgency buckets. With a filter only the matching items appear anywhere
// in the result.
func (e *Engine) BuildShoppingList(ctx context.Context, userID string, filter *model.UrgencyLevel) (*ShoppingList, error) {
	analyses, err := e.AnalyzeHousehold(ctx, userID)
	if err != nil {
		return nil, err
	}

	list := &ShoppingList{}
	for i := range analyses {
		analysis := &analyses[i]
		if filter != nil && analysis.Urgency != *filter {
			continue
		}

		item := ShoppingListItem{
			ItemName:               analysis.ItemName,
			Category:               analysis.Category,
			SuggestedQuantity:      analysis.SuggestedQuantity,
			Unit:                   analysis.Unit,
			CurrentStock:           analysis.CurrentStock,
			PredictedDepletionDate: analysis.PredictedDepletionDate,
			Confidence:             analysis.Confidence,
			Reason:                 reasonFor(analysis),
		}

		switch analysis.Urgency {
		case model.UrgencyUrgent:
			list.Urgent = append(list.Urgent, item)
		case model.UrgencyThisWeek:
			list.ThisWeek = append(list.ThisWeek, item)
		case model.UrgencyLater:
			list.Later = append(list.Later, item)
		}
	}

	return list, nil
}

// reasonFor renders the first matching rule of the reason cascade. The
// order is load-bearing: out-of-stock beats every projection, and the
// near-term day counts beat the cadence wording.
func reasonFor(analysis *model.PatternAnalysis) string {
	if analysis.CurrentStock <= 0 {
		return "Out of stock"
	}

	days := int(analysis.DaysUntilDepletion)
	switch {
	case days == 0:
		return "Running out today"
	case days == 1:
		return "Will run out tomorrow"
	case days <= 3:
		return fmt.Sprintf("Will run out in %d days", days)
	case analysis.AvgDaysBetweenPurchases != nil:
		return fmt.Sprintf("Usually buy every %d days", int(*analysis.AvgDaysBetweenPurchases))
	default:
		return "Based on your usage pattern"
	}
}
