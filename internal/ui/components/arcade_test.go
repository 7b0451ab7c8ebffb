package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestContentWidth_Clamps(t *testing.T) {
	for _, tc := range []struct{ frame, want int }{{10, 20}, {50, 44}, {200, 60}} {
		if got := ContentWidth(tc.frame); got != tc.want {
			t.Errorf("ContentWidth(%d) = %d, want %d", tc.frame, got, tc.want)
		}
	}
}

func TestArcadeButton_CoinMarksSelection(t *testing.T) {
	on := ArcadeButton("SHOP", true, 22)
	off := ArcadeButton("SHOP", false, 22)
	if strings.Count(on, "●") != 2 {
		t.Errorf("selected button should carry two coins:\n%s", on)
	}
	if strings.Contains(off, "●") || !strings.Contains(off, "○ SHOP") {
		t.Errorf("idle button should show a bead:\n%s", off)
	}
	if lipgloss.Width(on) != lipgloss.Width(off) {
		t.Errorf("button widths differ: %d vs %d", lipgloss.Width(on), lipgloss.Width(off))
	}
}

func TestReckoningBar(t *testing.T) {
	bar := ReckoningBar(10)
	if lipgloss.Width(bar) != 10 {
		t.Errorf("width = %d, want 10", lipgloss.Width(bar))
	}
	if strings.Count(bar, "•") != 3 {
		t.Errorf("want a unit dot every third column: %q", bar)
	}
	if ReckoningBar(0) != "" {
		t.Error("zero width bar should be empty")
	}
}
