// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// FraudColor marks fraudulent verdicts.
	FraudColor = lipgloss.Color("#FF6B6B") // Red
	// LegitColor marks legitimate verdicts.
	LegitColor = lipgloss.Color("#4ECDC4") // Teal
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FraudColor).
			MarginBottom(1)

	// FraudStyle formats fraudulent verdicts.
	FraudStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FraudColor)

	// LegitStyle formats legitimate verdicts.
	LegitStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(LegitColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)
)

// RenderBox renders content in a styled box.
func RenderBox(title, content string) string {
	boxTitle := TitleStyle.
		UnsetMargins().
		Render(title)

	boxContent := lipgloss.JoinVertical(
		lipgloss.Left,
		boxTitle,
		content,
	)

	return BoxStyle.Render(boxContent)
}

// RenderVerdict styles a classification label by outcome.
func RenderVerdict(label string, fraudulent bool) string {
	if fraudulent {
		return FraudStyle.Render(label)
	}
	return LegitStyle.Render(label)
}
