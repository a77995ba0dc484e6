package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dalemusser/wellnesshub/internal/domain/models"
)

var (
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
)

// TypeStyle highlights helplines so they stand out in listings.
func TypeStyle(t models.ResourceType) lipgloss.Style {
	if t == models.ResourceTypeHelpline {
		return StyleRed
	}
	return StyleBlue
}
