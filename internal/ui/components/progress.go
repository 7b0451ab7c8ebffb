package components

import (
	"strings"

	"github.com/abhisek/soroban/internal/ui/theme"
)

// rodGroup is how many beads sit between two unit marks on the rod.
const rodGroup = 5

// BeadRod draws sheet progress as beads strung on a soroban rod, one bead
// per problem, with a unit mark after every fifth bead. Sheets too long
// for the width are scaled down to fit.
type BeadRod struct {
	Done  int
	Total int
	Width int
}

func NewBeadRod(done, total, width int) BeadRod {
	return BeadRod{Done: done, Total: total, Width: width}
}

// Beads returns how many beads fit on the rod.
func (r BeadRod) Beads() int {
	if r.Total <= 0 || r.Width <= 0 {
		return 0
	}
	// n beads take n + (n-1)/rodGroup cells.
	return min(r.Total, (rodGroup*r.Width+1)/(rodGroup+1))
}

func (r BeadRod) View() string {
	beads := r.Beads()
	if beads == 0 {
		return ""
	}
	done := min(max(r.Done, 0), r.Total)
	filled := done * beads / r.Total

	var b strings.Builder
	for i := range beads {
		if i > 0 && i%rodGroup == 0 {
			b.WriteString(theme.ProgressEmpty.Render("┊"))
		}
		if i < filled {
			b.WriteString(theme.ProgressFilled.Render("●"))
		} else {
			b.WriteString(theme.ProgressEmpty.Render("○"))
		}
	}
	return b.String()
}
