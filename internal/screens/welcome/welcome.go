// Package welcome is the splash screen shown before the home menu.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/router"
	"github.com/abhisek/soroban/internal/screen"
	"github.com/abhisek/soroban/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond
)

// Tagline is shown under the banner.
const Tagline = "Beads in the hand, numbers in the head."

// abacus rows: the upper deck holds one bead per rod, the lower four.
var abacusRows = []string{
	"╔═════════════╗",
	"║ ● ● ● ● ● ● ║",
	"╠═════════════╣",
	"║ ● ● ● ● ● ● ║",
	"║ ● ● ● ● ● ● ║",
	"║ │ │ │ │ │ │ ║",
	"║ ● ● ● ● ● ● ║",
	"║ ● ● ● ● ● ● ║",
	"╚═════════════╝",
}

// beadFrames flick one lower bead per frame to animate the abacus.
var beadFrames = []int{0, 2, 4, 1, 5, 3}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

// renderAbacus draws the abacus; after phase 1 one rod's beads move.
func (w *WelcomeScreen) renderAbacus() string {
	rows := append([]string(nil), abacusRows...)
	if w.elapsed >= phase1End {
		rod := beadFrames[w.tickCount%len(beadFrames)]
		col := 2 + rod*2
		// Slide the rod's second lower bead up into the gap.
		rows[5] = replaceRune(rows[5], col, '●')
		rows[6] = replaceRune(rows[6], col, '│')
	}
	frame := lipgloss.NewStyle().Foreground(theme.Bead).Render(strings.Join(rows, "\n"))
	return frame
}

func replaceRune(s string, idx int, r rune) string {
	runes := []rune(s)
	if idx < 0 || idx >= len(runes) {
		return s
	}
	runes[idx] = r
	return string(runes)
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{w.renderAbacus()}

	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(Tagline)
		sections = append(sections, tagline, "")

		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
