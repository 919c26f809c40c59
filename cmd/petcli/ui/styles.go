// Package ui provides the visual styling for the petcli terminal interface.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"

	"petcli/internal/pet"
)

// Color palette. Mood colors follow the classic traffic-light mapping the
// pet panel border cycles through.
var (
	ColorHappy   = lipgloss.Color("#8BC34A") // lime green
	ColorNeutral = lipgloss.Color("#FFC107") // amber
	ColorSad     = lipgloss.Color("#E57373") // soft red

	ColorPrimary = lipgloss.Color("#7AA2F7") // user accents
	ColorMuted   = lipgloss.Color("#565F89")
	ColorBorder  = lipgloss.Color("#3B4261")
	ColorText    = lipgloss.Color("#C0CAF5")
	ColorError   = lipgloss.Color("#E53935")
)

// MoodColor maps a mood band to its display color.
func MoodColor(m pet.Mood) lipgloss.Color {
	switch m {
	case pet.MoodHappy:
		return ColorHappy
	case pet.MoodNeutral:
		return ColorNeutral
	default:
		return ColorSad
	}
}

// Styles holds all the styled components used by the chat view.
type Styles struct {
	PetPanel  lipgloss.Style
	PetArt    lipgloss.Style
	ChatPanel lipgloss.Style
	InputBox  lipgloss.Style

	UserLabel lipgloss.Style
	PetLabel  lipgloss.Style
	Body      lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Spinner   lipgloss.Style
	Footer    lipgloss.Style
}

// NewStyles creates the style set.
func NewStyles() Styles {
	return Styles{
		PetPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),

		PetArt: lipgloss.NewStyle().
			Align(lipgloss.Center),

		ChatPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),

		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1),

		UserLabel: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		PetLabel: lipgloss.NewStyle().
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(ColorText),

		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted),

		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),

		Spinner: lipgloss.NewStyle().
			Foreground(ColorPrimary),

		Footer: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1),
	}
}

// GlamourStyle picks the markdown style for pet replies.
func GlamourStyle() string {
	if os.Getenv("PETCLI_LIGHT_MODE") == "1" {
		return "light"
	}
	return "dark"
}
