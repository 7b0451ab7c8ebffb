// Package specs holds the certification rubric: for each exam body and
// grade, the digit counts, term counts, problem counts and time limits of
// every subject.
package specs

import (
	"strconv"
	"strings"
)

// ExamBody identifies the certifying organization whose rubric is used.
type ExamBody string

const (
	ExamZenshuren ExamBody = "zenshuren"
	ExamNissho    ExamBody = "nissho"
)

// DefaultExamBody is used when a save or config names no valid exam body.
const DefaultExamBody = ExamZenshuren

// ExamBodies returns all exam bodies in display order.
func ExamBodies() []ExamBody {
	return []ExamBody{ExamZenshuren, ExamNissho}
}

// ParseExamBody maps a string to a known exam body.
func ParseExamBody(s string) (ExamBody, bool) {
	switch ExamBody(strings.ToLower(strings.TrimSpace(s))) {
	case ExamZenshuren:
		return ExamZenshuren, true
	case ExamNissho:
		return ExamNissho, true
	}
	return "", false
}

// DisplayName returns a human-readable label for the exam body.
func (b ExamBody) DisplayName() string {
	switch b {
	case ExamZenshuren:
		return "Zenshuren"
	case ExamNissho:
		return "Nissho"
	default:
		return string(b)
	}
}

// Grade is a certification level (kyu). Grade 1 is the hardest.
type Grade int

const (
	MinGrade Grade = 1
	MaxGrade Grade = 10
)

// String renders the grade as "6kyu".
func (g Grade) String() string {
	return strconv.Itoa(int(g)) + "kyu"
}

// Valid reports whether g is in [MinGrade, MaxGrade].
func (g Grade) Valid() bool {
	return g >= MinGrade && g <= MaxGrade
}

// Subject is a kind of problem on the exam sheet.
type Subject string

const (
	SubjectMitori Subject = "mitori"
	SubjectMul    Subject = "mul"
	SubjectDiv    Subject = "div"
	SubjectDenpyo Subject = "denpyo"
)

// AllSubjects returns every subject in sheet order.
func AllSubjects() []Subject {
	return []Subject{SubjectMul, SubjectDiv, SubjectMitori, SubjectDenpyo}
}

// ParseSubject maps a string to a known subject.
func ParseSubject(s string) (Subject, bool) {
	switch Subject(strings.ToLower(strings.TrimSpace(s))) {
	case SubjectMitori:
		return SubjectMitori, true
	case SubjectMul:
		return SubjectMul, true
	case SubjectDiv:
		return SubjectDiv, true
	case SubjectDenpyo:
		return SubjectDenpyo, true
	}
	return "", false
}

// DisplayName returns a human-readable label for the subject.
func (s Subject) DisplayName() string {
	switch s {
	case SubjectMitori:
		return "Mitori (column sums)"
	case SubjectMul:
		return "Multiplication"
	case SubjectDiv:
		return "Division"
	case SubjectDenpyo:
		return "Denpyo (invoice sums)"
	default:
		return string(s)
	}
}

// MulSpec describes multiplication problems: the digit counts of both
// operands add up to DigitsSum.
type MulSpec struct {
	DigitsSum int
	Count     int
	Minutes   int
}

// DivSpec describes division problems: divisor digits plus quotient
// digits add up to DigitsSum.
type DivSpec struct {
	DigitsSum int
	Count     int
	Minutes   int
}

// MitoriSpec describes column addition/subtraction problems.
type MitoriSpec struct {
	DigitsMin int
	DigitsMax int
	Count     int
	Minutes   int
	Terms     int

	// AllowNegativeFromTerm is the zero-based term index from which terms
	// may be subtracted. Zero selects the default Terms/3+1; a value above
	// Terms disables subtraction.
	AllowNegativeFromTerm int

	// Chars is the total digit budget across all terms. Zero means none.
	Chars int
}

// NegativeFrom resolves AllowNegativeFromTerm.
func (s MitoriSpec) NegativeFrom() int {
	if s.AllowNegativeFromTerm > 0 {
		return s.AllowNegativeFromTerm
	}
	return s.Terms/3 + 1
}

// DenpyoSpec describes invoice-slip addition problems.
type DenpyoSpec struct {
	DigitsMin int
	DigitsMax int
	Count     int
	Minutes   int
	Terms     int
	Chars     int
}

// GradeSpec is the full rubric for one grade of one exam body.
type GradeSpec struct {
	ExamBody ExamBody
	Grade    Grade
	Mul      MulSpec
	Div      DivSpec
	Mitori   MitoriSpec

	// Denpyo is nil for grades that do not sit the invoice section.
	Denpyo *DenpyoSpec
}

// HasSubject reports whether the grade defines the subject.
func (g GradeSpec) HasSubject(s Subject) bool {
	switch s {
	case SubjectMul, SubjectDiv, SubjectMitori:
		return true
	case SubjectDenpyo:
		return g.Denpyo != nil
	}
	return false
}

// Minutes returns the time limit of a subject, or 0 if it is not defined.
func (g GradeSpec) Minutes(s Subject) int {
	switch s {
	case SubjectMul:
		return g.Mul.Minutes
	case SubjectDiv:
		return g.Div.Minutes
	case SubjectMitori:
		return g.Mitori.Minutes
	case SubjectDenpyo:
		if g.Denpyo != nil {
			return g.Denpyo.Minutes
		}
	}
	return 0
}

// Count returns the number of problems of a subject, or 0 if it is not defined.
func (g GradeSpec) Count(s Subject) int {
	switch s {
	case SubjectMul:
		return g.Mul.Count
	case SubjectDiv:
		return g.Div.Count
	case SubjectMitori:
		return g.Mitori.Count
	case SubjectDenpyo:
		if g.Denpyo != nil {
			return g.Denpyo.Count
		}
	}
	return 0
}
