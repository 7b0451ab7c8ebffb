package specs

import (
	"fmt"
	"strings"
)

// validateSpecs performs all structural checks on the given specs.
// Returns a combined error describing all problems found, or nil if valid.
func validateSpecs(all []GradeSpec) error {
	var errs []string

	seen := make(map[tableKey]bool, len(all))
	for _, gs := range all {
		key := tableKey{gs.ExamBody, gs.Grade}
		if seen[key] {
			errs = append(errs, fmt.Sprintf("duplicate grade %s for %s", gs.Grade, gs.ExamBody))
		}
		seen[key] = true

		where := fmt.Sprintf("%s %s", gs.ExamBody, gs.Grade)
		if !gs.Grade.Valid() {
			errs = append(errs, fmt.Sprintf("%s: grade out of range", where))
		}
		if gs.Mul.DigitsSum < 2 {
			errs = append(errs, fmt.Sprintf("%s: mul digits sum %d < 2", where, gs.Mul.DigitsSum))
		}
		if gs.Div.DigitsSum < 2 {
			errs = append(errs, fmt.Sprintf("%s: div digits sum %d < 2", where, gs.Div.DigitsSum))
		}
		if gs.Mul.Count < 1 || gs.Div.Count < 1 || gs.Mitori.Count < 1 {
			errs = append(errs, fmt.Sprintf("%s: problem count must be positive", where))
		}
		errs = append(errs, checkColumn(where+" mitori", gs.Mitori.DigitsMin, gs.Mitori.DigitsMax, gs.Mitori.Terms, gs.Mitori.Chars)...)
		if gs.Denpyo != nil {
			if gs.Denpyo.Count < 1 {
				errs = append(errs, fmt.Sprintf("%s denpyo: problem count must be positive", where))
			}
			errs = append(errs, checkColumn(where+" denpyo", gs.Denpyo.DigitsMin, gs.Denpyo.DigitsMax, gs.Denpyo.Terms, gs.Denpyo.Chars)...)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("spec table validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func checkColumn(where string, min, max, terms, chars int) []string {
	var errs []string
	if min < 1 || max < min {
		errs = append(errs, fmt.Sprintf("%s: digit range [%d,%d] invalid", where, min, max))
	}
	if terms < 1 {
		errs = append(errs, fmt.Sprintf("%s: terms %d < 1", where, terms))
	}
	if chars > 0 && (chars < min*terms || chars > max*terms) {
		errs = append(errs, fmt.Sprintf("%s: chars %d outside [%d,%d]", where, chars, min*terms, max*terms))
	}
	return errs
}
