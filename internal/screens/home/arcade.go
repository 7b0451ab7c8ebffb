package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/ui/components"
	"github.com/abhisek/soroban/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const arcadeTitleFull = `███████╗ ██████╗ ██████╗  ██████╗ ██████╗  █████╗ ███╗   ██╗
██╔════╝██╔═══██╗██╔══██╗██╔═══██╗██╔══██╗██╔══██╗████╗  ██║
███████╗██║   ██║██████╔╝██║   ██║██████╔╝███████║██╔██╗ ██║
╚════██║██║   ██║██╔══██╗██║   ██║██╔══██╗██╔══██║██║╚██╗██║
███████║╚██████╔╝██║  ██║╚██████╔╝██████╔╝██║  ██║██║ ╚████║
╚══════╝ ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═══╝`

const arcadeTitleCompact = "S · O · R · O · B · A · N"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact || cw < lipgloss.Width(arcadeTitleFull) {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// stats is what the dashboard bar shows.
type stats struct {
	coins    int
	frontier string
	badges   int
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(s stats, cw int, compact bool) string {
	coinStyle := lipgloss.NewStyle().Foreground(theme.Coin).Bold(true)
	gradeStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	badgeStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)

	var line string
	if compact {
		line = fmt.Sprintf("%s %s %s",
			coinStyle.Render(fmt.Sprintf("●%d", s.coins)),
			gradeStyle.Render("▲"+s.frontier),
			badgeStyle.Render(fmt.Sprintf("★%d", s.badges)),
		)
	} else {
		line = fmt.Sprintf("%s  %s  %s",
			coinStyle.Render(fmt.Sprintf("● %d COINS", s.coins)),
			gradeStyle.Render("▲ "+strings.ToUpper(s.frontier)),
			badgeStyle.Render(fmt.Sprintf("★ %d BADGES", s.badges)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	buttons := make([]string, len(items))
	for i, label := range items {
		buttons[i] = components.ArcadeButton(label, i == selected, buttonWidth)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as numbered lines for small
// terminals where bordered buttons would overflow. The number is the
// item's shortcut key.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	lines := make([]string, len(items))
	for i, label := range items {
		if i == selected {
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Coin).
				Bold(true).
				Render(fmt.Sprintf(" %d ● %s ", i+1, label))
		} else {
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render(fmt.Sprintf(" %d ○ %s", i+1, label))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

func renderError(err error, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Error).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ " + err.Error())
}
