package formatter

import (
	"github.com/ajrivet/tassel/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SlotStateStyle returns the style for a curriculum slot state.
func SlotStateStyle(state domain.SlotState) lipgloss.Style {
	switch state {
	case domain.SlotCompleted:
		return StyleGreen
	case domain.SlotInProgress:
		return StyleYellow
	case domain.SlotUnresolved:
		return StyleDim
	default:
		return StyleFg
	}
}

// SlotStateMarker returns the one-character prefix for a slot state.
func SlotStateMarker(state domain.SlotState) string {
	switch state {
	case domain.SlotCompleted:
		return StyleGreen.Render("✔")
	case domain.SlotInProgress:
		return StyleYellow.Render("▶")
	case domain.SlotUnresolved:
		return StyleDim.Render("?")
	default:
		return StyleDim.Render("·")
	}
}
