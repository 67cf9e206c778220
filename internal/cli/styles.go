// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/restock/restock/internal/model"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#8BC34A") // Fresh green
	// UrgentColor highlights items needing immediate purchase.
	UrgentColor = lipgloss.Color("#FF6B6B") // Red
	// ThisWeekColor highlights items due within the week.
	ThisWeekColor = lipgloss.Color("#FFE66D") // Yellow
	// LaterColor marks items with no rush.
	LaterColor = lipgloss.Color("#95E1D3") // Light teal
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// UrgentStyle formats urgent-tier items.
	UrgentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(UrgentColor)

	// ThisWeekStyle formats this_week-tier items.
	ThisWeekStyle = lipgloss.NewStyle().
			Foreground(ThisWeekColor)

	// LaterStyle formats later-tier items.
	LaterStyle = lipgloss.NewStyle().
			Foreground(LaterColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	// ErrorStyle formats errors or failure messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(UrgentColor)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(lipgloss.Color("#333"))
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	CartIcon    = "🛒"
	UrgentIcon  = "❗"
	ClockIcon   = "🕐"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatTitle formats a title with the cart icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(CartIcon + " " + title)
}

// UrgencyStyle returns the style for an urgency tier.
func UrgencyStyle(urgency model.UrgencyLevel) lipgloss.Style {
	switch urgency {
	case model.UrgencyUrgent:
		return UrgentStyle
	case model.UrgencyThisWeek:
		return ThisWeekStyle
	default:
		return LaterStyle
	}
}
