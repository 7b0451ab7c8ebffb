// Package theme holds the color palette and shared lipgloss styles.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
	Coin         = lipgloss.Color("#EAB308") // Gold
	Bead         = lipgloss.Color("#B45309") // Abacus wood
)

// Typography
var (
	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Locked = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Components
var (
	// Beads on the progress rod.
	ProgressFilled = lipgloss.NewStyle().
			Foreground(Bead).
			Bold(true)

	ProgressEmpty = lipgloss.NewStyle().
			Foreground(Border)

	// ProblemCard frames a vertical column of terms.
	ProblemCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Bead).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)
)

// RankColor returns the display color for a rank letter.
func RankColor(rank string) color.Color {
	switch rank {
	case "A":
		return ArcadeYellow
	case "B":
		return Success
	case "C":
		return Secondary
	case "D":
		return Accent
	default:
		return Error
	}
}
