package problemgen

import "github.com/abhisek/soroban/internal/rng"

// DigitPlan distributes a total digit budget over terms. Every term starts
// at digitsMin and the remaining chars-digitsMin*terms units go to random
// terms that are still below digitsMax. It reports false when the budget
// cannot be met within the bounds.
func DigitPlan(src rng.Source, terms, digitsMin, digitsMax, chars int) ([]int, bool) {
	if terms < 1 || digitsMin < 1 || digitsMax < digitsMin {
		return nil, false
	}
	if chars < digitsMin*terms || chars > digitsMax*terms {
		return nil, false
	}

	plan := make([]int, terms)
	for i := range plan {
		plan[i] = digitsMin
	}

	open := make([]int, 0, terms)
	for extra := chars - digitsMin*terms; extra > 0; extra-- {
		open = open[:0]
		for i, d := range plan {
			if d < digitsMax {
				open = append(open, i)
			}
		}
		pick := open[src.Int(0, int64(len(open)-1))]
		plan[pick]++
	}
	return plan, true
}

// termDigits returns a digit count per term, honoring the chars budget
// when one is set and feasible.
func termDigits(src rng.Source, terms, digitsMin, digitsMax, chars int) []int {
	if chars > 0 {
		if plan, ok := DigitPlan(src, terms, digitsMin, digitsMax, chars); ok {
			return plan
		}
	}
	plan := make([]int, terms)
	for i := range plan {
		plan[i] = int(src.Int(int64(digitsMin), int64(digitsMax)))
	}
	return plan
}
