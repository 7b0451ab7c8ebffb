package problemgen

import (
	"strconv"

	"github.com/abhisek/soroban/internal/rng"
	"github.com/abhisek/soroban/internal/specs"
)

// NegativeTermChance is the probability that an eligible mitori term is
// subtracted rather than added.
var NegativeTermChance = 0.4

// GenerateMul returns spec.Count multiplication problems whose operand
// digit counts add up to spec.DigitsSum.
func GenerateMul(src rng.Source, spec specs.MulSpec) []Problem {
	if !inlineOK(spec.DigitsSum) || spec.Count < 1 {
		return []Problem{}
	}
	out := make([]Problem, 0, spec.Count)
	for range spec.Count {
		aDigits := int(src.Int(1, int64(spec.DigitsSum-1)))
		bDigits := spec.DigitsSum - aDigits

		aLo, aHi := digitRange(aDigits, true)
		bLo, bHi := digitRange(bDigits, false)
		a := src.Int(aLo, aHi)
		b := src.Int(bLo, bHi)

		out = append(out, Problem{
			Kind:     KindInline,
			Subject:  specs.SubjectMul,
			Question: strconv.FormatInt(a, 10) + " × " + strconv.FormatInt(b, 10),
			Answer:   strconv.FormatInt(a*b, 10),
		})
	}
	return out
}

// GenerateDiv returns spec.Count exact division problems. The divisor and
// quotient digit counts add up to spec.DigitsSum.
func GenerateDiv(src rng.Source, spec specs.DivSpec) []Problem {
	if !inlineOK(spec.DigitsSum) || spec.Count < 1 {
		return []Problem{}
	}
	out := make([]Problem, 0, spec.Count)
	for range spec.Count {
		divisorDigits := int(src.Int(1, int64(spec.DigitsSum-1)))
		quotientDigits := spec.DigitsSum - divisorDigits

		dLo, dHi := digitRange(divisorDigits, false)
		qLo, qHi := digitRange(quotientDigits, false)
		divisor := src.Int(dLo, dHi)
		quotient := src.Int(qLo, qHi)
		dividend := divisor * quotient

		out = append(out, Problem{
			Kind:     KindInline,
			Subject:  specs.SubjectDiv,
			Question: strconv.FormatInt(dividend, 10) + " ÷ " + strconv.FormatInt(divisor, 10),
			Answer:   strconv.FormatInt(quotient, 10),
		})
	}
	return out
}

// GenerateMitori returns spec.Count column problems. Terms from
// spec.NegativeFrom() onwards may be subtracted, but never so that the
// running total drops below zero.
func GenerateMitori(src rng.Source, spec specs.MitoriSpec) []Problem {
	if !columnOK(spec.DigitsMin, spec.DigitsMax, spec.Terms) || spec.Count < 1 {
		return []Problem{}
	}
	negFrom := spec.NegativeFrom()
	out := make([]Problem, 0, spec.Count)
	for range spec.Count {
		digits := termDigits(src, spec.Terms, spec.DigitsMin, spec.DigitsMax, spec.Chars)
		terms := make([]int64, spec.Terms)
		var total int64
		for i, d := range digits {
			lo, hi := digitRange(d, false)
			mag := src.Int(lo, hi)
			if i >= negFrom && rng.Chance(src, NegativeTermChance) && total-mag >= 0 {
				terms[i] = -mag
				total -= mag
				continue
			}
			terms[i] = mag
			total += mag
		}
		out = append(out, verticalProblem(specs.SubjectMitori, terms, total, spec.DigitsMax))
	}
	return out
}

// GenerateDenpyo returns spec.Count invoice problems. All terms are
// non-negative.
func GenerateDenpyo(src rng.Source, spec specs.DenpyoSpec) []Problem {
	if !columnOK(spec.DigitsMin, spec.DigitsMax, spec.Terms) || spec.Count < 1 {
		return []Problem{}
	}
	out := make([]Problem, 0, spec.Count)
	for range spec.Count {
		digits := termDigits(src, spec.Terms, spec.DigitsMin, spec.DigitsMax, spec.Chars)
		terms := make([]int64, spec.Terms)
		var total int64
		for i, d := range digits {
			lo, hi := digitRange(d, false)
			terms[i] = src.Int(lo, hi)
			total += terms[i]
		}
		out = append(out, verticalProblem(specs.SubjectDenpyo, terms, total, spec.DigitsMax))
	}
	return out
}

func verticalProblem(subject specs.Subject, terms []int64, total int64, digitsMax int) Problem {
	return Problem{
		Kind:     KindVertical,
		Subject:  subject,
		Question: renderColumn(terms, digitsMax),
		Answer:   strconv.FormatInt(total, 10),
		Terms:    terms,
	}
}

// inlineOK reports whether two operands of digitsSum digits in total,
// and their product, fit in an int64.
func inlineOK(digitsSum int) bool {
	return digitsSum >= 2 && digitsSum <= len(pow10)-1
}

func columnOK(digitsMin, digitsMax, terms int) bool {
	return terms >= 1 && digitsMin >= 1 && digitsMax >= digitsMin && digitsMax < len(pow10)-1
}
