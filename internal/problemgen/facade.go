package problemgen

import (
	"github.com/abhisek/soroban/internal/rng"
	"github.com/abhisek/soroban/internal/specs"
)

// GenerateProblems looks up the rubric for grade and exam body and runs
// the generator for subject. It returns an empty slice when the grade or
// subject is not available.
func GenerateProblems(src rng.Source, grade specs.Grade, subject specs.Subject, body specs.ExamBody) []Problem {
	gs, ok := specs.GetGradeSpec(body, grade)
	if !ok {
		return []Problem{}
	}
	switch subject {
	case specs.SubjectMul:
		return GenerateMul(src, gs.Mul)
	case specs.SubjectDiv:
		return GenerateDiv(src, gs.Div)
	case specs.SubjectMitori:
		return GenerateMitori(src, gs.Mitori)
	case specs.SubjectDenpyo:
		if gs.Denpyo == nil {
			return []Problem{}
		}
		return GenerateDenpyo(src, *gs.Denpyo)
	}
	return []Problem{}
}

// SubjectMinutes returns the time limit for a subject, or 0 when the
// grade or subject is not available.
func SubjectMinutes(grade specs.Grade, subject specs.Subject, body specs.ExamBody) int {
	gs, ok := specs.GetGradeSpec(body, grade)
	if !ok {
		return 0
	}
	return gs.Minutes(subject)
}
