// Package render prints recompute results as styled terminal cards.
package render

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#0EA5E9")
	accentColor  = lipgloss.Color("#F59E0B")
	subtleColor  = lipgloss.Color("#666666")
	favColor     = lipgloss.Color("#EF4444")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true)

	subtleStyle = lipgloss.NewStyle().Foreground(subtleColor)

	priceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	favoriteStyle = lipgloss.NewStyle().Foreground(favColor)

	tagStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			PaddingRight(1)

	premiumTagStyle = tagStyle.Foreground(accentColor)
	guideTagStyle   = tagStyle.Foreground(primaryColor)

	emptyStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtleColor).
			Padding(1, 2)
)
