package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default wood
	MascotCelebrating                      // Gold, star eyes: recent perfect
	MascotAlert                            // Orange, exclamation: last stage failed
)

const mascotIdle = `╔═══════╗
║ ◉   ◉ ║
║   ▽   ║
╟─●─●─●─╢
╚═══════╝`

const mascotCelebrating = `╔═══════╗
║ ★   ★ ║
║   ▿   ║
╟─●─●─●─╢
╚═╥═══╥═╝
  ╚═══╝`

const mascotAlert = `╔═══════╗
║ ◉   ◉ ║ !
║   ▽   ║
╟─●─●─●─╢
╚═══════╝`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Bead

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
