package cli

import (
	"fmt"
	"strings"

	"github.com/restock/restock/internal/engine"
	"github.com/restock/restock/internal/model"
)

// RenderShoppingList renders a grouped shopping list, skipping empty tiers.
func RenderShoppingList(list *engine.ShoppingList) string {
	var b strings.Builder

	if list.Total() == 0 {
		b.WriteString(SubtleStyle.Render("Nothing to buy. Pantry looks stocked."))
		b.WriteString("\n")
		return b.String()
	}

	renderTier(&b, UrgentIcon+" Urgent", UrgentStyle, list.Urgent)
	renderTier(&b, ClockIcon+" This week", ThisWeekStyle, list.ThisWeek)
	renderTier(&b, "Later", LaterStyle, list.Later)

	return b.String()
}

func renderTier(b *strings.Builder, heading string, style interface{ Render(...string) string }, items []engine.ShoppingListItem) {
	if len(items) == 0 {
		return
	}

	b.WriteString(style.Render(heading))
	b.WriteString("\n")
	for _, item := range items {
		line := fmt.Sprintf("  %s  %.1f %s", item.ItemName, item.SuggestedQuantity, item.Unit)
		b.WriteString(line)
		b.WriteString(SubtleStyle.Render("  (" + item.Reason + ")"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// RenderAnalyses renders household analyses as a table, most urgent first.
func RenderAnalyses(analyses []model.PatternAnalysis) string {
	var b strings.Builder

	if len(analyses) == 0 {
		b.WriteString(SubtleStyle.Render("No items with enough purchase history yet."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-20s %-12s %8s %10s %-10s %-8s",
		"ITEM", "CATEGORY", "STOCK", "DAYS LEFT", "URGENCY", "CONF")))
	b.WriteString("\n")

	for i := range analyses {
		a := &analyses[i]
		daysLeft := fmt.Sprintf("%.0f", a.DaysUntilDepletion)
		if a.DaysUntilDepletion >= model.UnknownDaysUntilDepletion {
			daysLeft = "-"
		}
		line := fmt.Sprintf("%-20s %-12s %8.1f %10s %-10s %-8s",
			a.ItemName, a.Category, a.CurrentStock, daysLeft, a.Urgency, a.Confidence)
		b.WriteString(UrgencyStyle(a.Urgency).Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderPrediction renders a single stored prediction in detail.
func RenderPrediction(p *model.Prediction) string {
	var b strings.Builder

	b.WriteString(FormatTitle(p.ItemName))
	b.WriteString("\n")

	write := func(label, value string) {
		b.WriteString(fmt.Sprintf("  %-26s %s\n", label, value))
	}

	write("Category:", p.Category)
	write("Current stock:", fmt.Sprintf("%.1f %s", p.CurrentStock, p.Unit))
	if p.AvgDaysBetweenPurchases != nil {
		write("Purchase cadence:", fmt.Sprintf("every %.1f days", *p.AvgDaysBetweenPurchases))
	}
	if p.AvgConsumptionRate != nil {
		write("Consumption rate:", fmt.Sprintf("%.2f %s/day", *p.AvgConsumptionRate, p.Unit))
	}
	if p.PredictedDepletionDate != nil {
		write("Runs out:", p.PredictedDepletionDate.Format("2006-01-02"))
	}
	write("Suggested quantity:", fmt.Sprintf("%.1f %s", p.SuggestedQuantity, p.Unit))
	write("Urgency:", UrgencyStyle(p.Urgency).Render(string(p.Urgency)))
	write("Confidence:", fmt.Sprintf("%s (%d data points)", p.Confidence, p.DataPoints))
	write("Last analyzed:", p.LastAnalyzed.Format("2006-01-02 15:04"))

	return b.String()
}
