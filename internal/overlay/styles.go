package overlay

import (
	"github.com/charmbracelet/lipgloss"

	"closeguard/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Title is the overlay title style
	Title lipgloss.Style
	// Prompt is the confirmation question style
	Prompt lipgloss.Style
	// TargetLabel is the style for the "Target:" prefix
	TargetLabel lipgloss.Style
	// Target is the style for the resolved target description
	Target lipgloss.Style
	// Help is the style for the help line
	Help lipgloss.Style
	// HelpKey is the style for keybinding hints in the help line
	HelpKey lipgloss.Style
}

// NewStyles creates a new Styles instance using the Catppuccin Macchiato theme
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(styles.Green).
			Bold(true),

		Prompt: lipgloss.NewStyle().
			Foreground(styles.Text),

		TargetLabel: lipgloss.NewStyle().
			Foreground(styles.Sapphire),

		Target: lipgloss.NewStyle().
			Foreground(styles.Yellow),

		Help: lipgloss.NewStyle().
			Foreground(styles.Subtext0),

		HelpKey: lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true),
	}
}
