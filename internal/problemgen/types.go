package problemgen

import "github.com/abhisek/soroban/internal/specs"

// Kind tells the presenter how a problem is laid out.
type Kind string

const (
	// KindInline is a one-line expression such as "123 × 45".
	KindInline Kind = "inline"

	// KindVertical is a column of right-aligned terms, one per line.
	KindVertical Kind = "vertical"
)

// Problem is a single generated exercise. Problems are values and are
// never modified after generation.
type Problem struct {
	Kind Kind

	// Subject is the sheet section the problem belongs to.
	Subject specs.Subject

	// Question is the display text. Inline problems use "a × b" or
	// "a ÷ b"; vertical problems hold one rendered term per line.
	Question string

	// Answer is the plain decimal result, without separators.
	Answer string

	// Terms are the signed addends of a vertical problem, in display
	// order. Nil for inline problems.
	Terms []int64
}

// Input is the context a validator checks a problem against.
type Input struct {
	Spec    specs.GradeSpec
	Subject specs.Subject
}
