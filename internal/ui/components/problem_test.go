package components

import (
	"strings"
	"testing"

	"github.com/abhisek/soroban/internal/problemgen"
)

func TestProblemCard_Reveal(t *testing.T) {
	p := problemgen.Problem{
		Kind:     problemgen.KindVertical,
		Question: " 1,234\n-  567\n    89",
		Answer:   "756",
		Terms:    []int64{1234, -567, 89},
	}
	if ProblemLines(p) != 3 {
		t.Fatalf("ProblemLines = %d, want 3", ProblemLines(p))
	}

	partial := ProblemCard(p, 1)
	if !strings.Contains(partial, "1,234") || strings.Contains(partial, "567") {
		t.Errorf("only the first term should be visible:\n%s", partial)
	}

	full := ProblemCard(p, 99)
	for _, want := range []string{"1,234", "567", "89"} {
		if !strings.Contains(full, want) {
			t.Errorf("missing %q in:\n%s", want, full)
		}
	}
	if strings.Count(partial, "\n") != strings.Count(full, "\n") {
		t.Error("card height should not change while revealing")
	}
}

func TestProblemCard_Inline(t *testing.T) {
	p := problemgen.Problem{Kind: problemgen.KindInline, Question: "123 × 45", Answer: "5535"}
	if ProblemLines(p) != 1 {
		t.Errorf("ProblemLines = %d, want 1", ProblemLines(p))
	}
	if !strings.Contains(ProblemCard(p, 0), "123 × 45") {
		t.Error("inline problems render in full")
	}
}
