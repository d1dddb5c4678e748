package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the message styles for one output stream
type Styles struct {
	// Error styling for fatal diagnostics
	Error lipgloss.Style

	// Warning styling for non-fatal diagnostics
	Warning lipgloss.Style

	// Success styling for verbose deletion lines
	Success lipgloss.Style

	// Prompt styling for the confirmation question
	Prompt lipgloss.Style

	// Selected item styling
	Selected lipgloss.Style

	// Help text styling
	Help lipgloss.Style
}

// NewStyles creates styles rendered for w. Colors are only emitted when w is
// a terminal, and never when plain is set.
func NewStyles(w io.Writer, plain bool) Styles {
	r := lipgloss.NewRenderer(w)
	if plain {
		r.SetColorProfile(termenv.Ascii)
	}

	return Styles{
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true),
		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#FFA500")),
		Success: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true),
		Selected: r.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true),
		Help: r.NewStyle().
			Foreground(lipgloss.Color("#888888")),
	}
}
