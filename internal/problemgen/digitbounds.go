package problemgen

import (
	"fmt"
	"strconv"

	"github.com/abhisek/soroban/internal/specs"
)

// DigitBoundsValidator checks operand and term digit counts against the
// grade's rubric.
type DigitBoundsValidator struct{}

func (v *DigitBoundsValidator) Name() string { return "digit-bounds" }

func (v *DigitBoundsValidator) Validate(p *Problem, input Input) *ValidationError {
	switch input.Subject {
	case specs.SubjectMul:
		a, _, b, err := parseInline(p.Question)
		if err != nil {
			return v.fail(err.Error())
		}
		if b < 1 {
			return v.fail("right operand must be at least 1")
		}
		if got := digitCount(a) + digitCount(b); got != input.Spec.Mul.DigitsSum {
			return v.fail(fmt.Sprintf("operand digits sum to %d, want %d", got, input.Spec.Mul.DigitsSum))
		}

	case specs.SubjectDiv:
		_, _, divisor, err := parseInline(p.Question)
		if err != nil {
			return v.fail(err.Error())
		}
		if divisor < 1 {
			return v.fail("divisor must be at least 1")
		}
		quotient, err := strconv.ParseInt(p.Answer, 10, 64)
		if err != nil {
			return v.fail(fmt.Sprintf("answer %q is not an integer", p.Answer))
		}
		if got := digitCount(divisor) + digitCount(quotient); got != input.Spec.Div.DigitsSum {
			return v.fail(fmt.Sprintf("divisor and quotient digits sum to %d, want %d", got, input.Spec.Div.DigitsSum))
		}

	case specs.SubjectMitori:
		m := input.Spec.Mitori
		return v.checkTerms(p.Terms, m.Terms, m.DigitsMin, m.DigitsMax, true)

	case specs.SubjectDenpyo:
		if input.Spec.Denpyo == nil {
			return v.fail("grade has no denpyo section")
		}
		d := input.Spec.Denpyo
		return v.checkTerms(p.Terms, d.Terms, d.DigitsMin, d.DigitsMax, false)

	default:
		return v.fail(fmt.Sprintf("unknown subject %q", input.Subject))
	}
	return nil
}

func (v *DigitBoundsValidator) checkTerms(terms []int64, want, min, max int, allowNegative bool) *ValidationError {
	if len(terms) != want {
		return v.fail(fmt.Sprintf("%d terms, want %d", len(terms), want))
	}
	for i, t := range terms {
		if t < 0 && !allowNegative {
			return v.fail(fmt.Sprintf("term %d is negative", i+1))
		}
		if d := digitCount(t); d < min || d > max {
			return v.fail(fmt.Sprintf("term %d has %d digits, want %d..%d", i+1, d, min, max))
		}
	}
	return nil
}

func (v *DigitBoundsValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg}
}
