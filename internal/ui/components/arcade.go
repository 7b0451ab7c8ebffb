package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/ui/theme"
)

// ContentWidth returns the inner width shared by every section inside the
// cabinet, leaving room for the frame border and padding.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 60)
}

// CabinetFrame wraps content in the wooden double border of the abacus
// cabinet, centered in width × height.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Bead).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a rounded card at content width cw.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ReckoningBar draws the soroban's beam: a rule across cw with a unit dot
// every third column, as on the real frame.
func ReckoningBar(cw int) string {
	if cw <= 0 {
		return ""
	}
	var b strings.Builder
	for i := range cw {
		if i%3 == 1 {
			b.WriteString("•")
		} else {
			b.WriteString("━")
		}
	}
	return lipgloss.NewStyle().Foreground(theme.Bead).Render(b.String())
}

// ArcadeButton renders a menu button. The selected one is a gold coin
// slot; the others show an idle bead.
func ArcadeButton(label string, selected bool, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if selected {
		return style.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Coin).
			BorderForeground(theme.Coin).
			Render("● " + label + " ●")
	}
	return style.
		Foreground(theme.Text).
		BorderForeground(theme.Border).
		Render("○ " + label)
}
