package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	App lipgloss.Style

	// Tab bar
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Report content
	Title      lipgloss.Style
	RowComment lipgloss.Style
	RowValue   lipgloss.Style
	Total      lipgloss.Style
	Positive   lipgloss.Style
	Negative   lipgloss.Style
	Muted      lipgloss.Style

	// Status bar and help
	StatusBar lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style

	Error lipgloss.Style
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	// Color palette
	primary := lipgloss.Color("99")     // Purple
	secondary := lipgloss.Color("39")   // Cyan
	muted := lipgloss.Color("240")      // Gray
	success := lipgloss.Color("82")     // Green
	warning := lipgloss.Color("214")    // Orange
	errorColor := lipgloss.Color("196") // Red

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Underline(true).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),

		Title:      lipgloss.NewStyle().Foreground(secondary).Bold(true),
		RowComment: lipgloss.NewStyle(),
		RowValue:   lipgloss.NewStyle().Foreground(secondary),
		Total:      lipgloss.NewStyle().Bold(true),
		Positive:   lipgloss.NewStyle().Foreground(success),
		Negative:   lipgloss.NewStyle().Foreground(warning),
		Muted:      lipgloss.NewStyle().Foreground(muted),

		StatusBar: lipgloss.NewStyle().Foreground(muted),
		HelpKey:   lipgloss.NewStyle().Foreground(secondary),
		HelpDesc:  lipgloss.NewStyle().Foreground(muted),

		Error: lipgloss.NewStyle().Foreground(errorColor).Bold(true),
	}
}
