package specs

import (
	"slices"
)

type tableKey struct {
	body  ExamBody
	grade Grade
}

// table holds the rubric with precomputed ladders.
type table struct {
	specs   map[tableKey]GradeSpec
	ladders map[ExamBody][]Grade
}

// t is the package-level table, set by init() in seed.go.
var t *table

func buildTable(all []GradeSpec) *table {
	tb := &table{
		specs:   make(map[tableKey]GradeSpec, len(all)),
		ladders: make(map[ExamBody][]Grade),
	}
	for _, gs := range all {
		tb.specs[tableKey{gs.ExamBody, gs.Grade}] = gs
		tb.ladders[gs.ExamBody] = append(tb.ladders[gs.ExamBody], gs.Grade)
	}
	// Ladder order: easiest (largest number) first.
	for body, grades := range tb.ladders {
		slices.SortFunc(grades, func(a, b Grade) int { return int(b) - int(a) })
		tb.ladders[body] = grades
	}
	return tb
}

// GetGradeSpec returns the rubric for a grade, or false if the exam body
// does not define that grade.
func GetGradeSpec(body ExamBody, grade Grade) (GradeSpec, bool) {
	gs, ok := t.specs[tableKey{body, grade}]
	if !ok {
		return GradeSpec{}, false
	}
	if gs.Denpyo != nil {
		d := *gs.Denpyo
		gs.Denpyo = &d
	}
	return gs, true
}

// AvailableGrades returns the grades of an exam body from easiest to
// hardest. Unknown exam bodies yield nil.
func AvailableGrades(body ExamBody) []Grade {
	return slices.Clone(t.ladders[body])
}

// All returns every grade spec of an exam body in ladder order.
func All(body ExamBody) []GradeSpec {
	grades := t.ladders[body]
	out := make([]GradeSpec, 0, len(grades))
	for _, g := range grades {
		gs, _ := GetGradeSpec(body, g)
		out = append(out, gs)
	}
	return out
}

// Validate checks every rubric entry against the structural invariants.
func Validate() error {
	var all []GradeSpec
	for _, body := range ExamBodies() {
		all = append(all, All(body)...)
	}
	return validateSpecs(all)
}
