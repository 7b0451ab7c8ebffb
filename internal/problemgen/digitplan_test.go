package problemgen

import (
	"testing"

	"github.com/abhisek/soroban/internal/rng"
)

func TestDigitPlan_MeetsBudget(t *testing.T) {
	src := rng.New(7)
	cases := []struct{ terms, min, max, chars int }{
		{5, 3, 5, 20},
		{10, 6, 10, 80},
		{10, 3, 6, 45},
		{4, 2, 2, 8},
		{3, 1, 9, 27},
	}
	for _, c := range cases {
		for trial := 0; trial < 200; trial++ {
			plan, ok := DigitPlan(src, c.terms, c.min, c.max, c.chars)
			if !ok {
				t.Fatalf("DigitPlan(%+v) reported infeasible", c)
			}
			if len(plan) != c.terms {
				t.Fatalf("plan has %d terms, want %d", len(plan), c.terms)
			}
			sum := 0
			for _, d := range plan {
				if d < c.min || d > c.max {
					t.Fatalf("plan %v has digit count %d outside [%d,%d]", plan, d, c.min, c.max)
				}
				sum += d
			}
			if sum != c.chars {
				t.Fatalf("plan %v sums to %d, want %d", plan, sum, c.chars)
			}
		}
	}
}

func TestDigitPlan_Infeasible(t *testing.T) {
	src := rng.New(1)
	cases := []struct {
		name                   string
		terms, min, max, chars int
	}{
		{"below minimum", 5, 3, 5, 14},
		{"above maximum", 5, 3, 5, 26},
		{"no terms", 0, 1, 2, 0},
		{"inverted range", 3, 4, 2, 9},
	}
	for _, c := range cases {
		if plan, ok := DigitPlan(src, c.terms, c.min, c.max, c.chars); ok {
			t.Errorf("%s: expected infeasible, got %v", c.name, plan)
		}
	}
}

func TestTermDigits_FallsBack(t *testing.T) {
	src := rng.New(3)
	// chars 100 cannot fit 5 terms of at most 4 digits.
	for trial := 0; trial < 100; trial++ {
		plan := termDigits(src, 5, 2, 4, 100)
		if len(plan) != 5 {
			t.Fatalf("expected 5 terms, got %d", len(plan))
		}
		for _, d := range plan {
			if d < 2 || d > 4 {
				t.Fatalf("fallback digit count %d outside [2,4]", d)
			}
		}
	}
}
