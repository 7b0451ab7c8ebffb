package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/problemgen"
	"github.com/abhisek/soroban/internal/ui/theme"
)

// ProblemLines returns how many reveal steps a problem has: one per term
// for vertical problems, one for inline problems.
func ProblemLines(p problemgen.Problem) int {
	if p.Kind != problemgen.KindVertical {
		return 1
	}
	return strings.Count(p.Question, "\n") + 1
}

// ProblemCard renders a problem. Vertical problems show their first
// revealed terms and keep the card height fixed by blanking the rest.
func ProblemCard(p problemgen.Problem, revealed int) string {
	if p.Kind != problemgen.KindVertical {
		return theme.ProblemCard.Render(p.Question)
	}

	lines := strings.Split(p.Question, "\n")
	revealed = max(0, min(revealed, len(lines)))
	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l))
	}
	for i := revealed; i < len(lines); i++ {
		lines[i] = strings.Repeat(" ", width)
	}
	rule := strings.Repeat("─", width)
	return theme.ProblemCard.Render(strings.Join(lines, "\n") + "\n" + rule)
}
