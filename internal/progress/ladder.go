package progress

import (
	"slices"

	"github.com/abhisek/soroban/internal/specs"
)

// UnlockedGrades returns the unlocked grades available to the exam body,
// easiest first. The start grade is always included.
func UnlockedGrades(p RegisterProgress, body specs.ExamBody) []specs.Grade {
	body = resolveBody(body)
	var out []specs.Grade
	for _, g := range specs.AvailableGrades(body) {
		if slices.Contains(p.UnlockedGrades, g) {
			out = append(out, g)
		}
	}
	if len(out) == 0 {
		out = []specs.Grade{StartGrade(body)}
	}
	return out
}

// UnlockedSubjects returns the selectable register subjects of a grade, in
// unlock order. Locked grades have none.
func UnlockedSubjects(p RegisterProgress, grade specs.Grade) []specs.Subject {
	if !slices.Contains(p.UnlockedGrades, grade) {
		return nil
	}
	stage := clampInt(p.UnlockedStageByGrade[grade], 0, len(RegisterSubjects())-1)
	return RegisterSubjects()[:stage+1]
}

// ClampSelection maps a requested grade and subject onto an unlocked pair.
// A locked grade is replaced by the first unlocked grade and its first
// subject; a locked subject on an unlocked grade by the grade's first
// subject.
func ClampSelection(p RegisterProgress, body specs.ExamBody, grade specs.Grade, subject specs.Subject) (specs.Grade, specs.Subject) {
	grades := UnlockedGrades(p, body)
	if !slices.Contains(grades, grade) {
		grade = grades[0]
		subject = ""
	}
	subjects := UnlockedSubjects(p, grade)
	if len(subjects) == 0 {
		return grade, specs.SubjectMitori
	}
	if !slices.Contains(subjects, subject) {
		subject = subjects[0]
	}
	return grade, subject
}

// CanPlayStage reports whether a stage may be started. The grade and
// subject must be selectable as given; stage 1 is then always open and
// stage n needs stage n-1 cleared.
func CanPlayStage(p RegisterProgress, body specs.ExamBody, grade specs.Grade, subject specs.Subject, stage int) bool {
	if stage < MinStage || stage > MaxStage {
		return false
	}
	g, s := ClampSelection(p, body, grade, subject)
	if g != grade || s != subject {
		return false
	}
	return stage == MinStage || ClearedStage(p, grade, subject) >= stage-1
}

// ClearedStage returns the highest cleared stage, 0 if none.
func ClearedStage(p RegisterProgress, grade specs.Grade, subject specs.Subject) int {
	return clampInt(p.StageClearByGradeSubject[grade][subject], 0, MaxStage)
}

// MarkStageCleared raises the cleared stage to stage. It never lowers it.
func MarkStageCleared(p RegisterProgress, grade specs.Grade, subject specs.Subject, stage int) RegisterProgress {
	out := clone(p)
	if stage < MinStage || stage > MaxStage || subjectIndex(subject) < 0 {
		return out
	}
	if ClearedStage(out, grade, subject) >= stage {
		return out
	}
	if out.StageClearByGradeSubject == nil {
		out.StageClearByGradeSubject = make(map[specs.Grade]map[specs.Subject]int)
	}
	if out.StageClearByGradeSubject[grade] == nil {
		out.StageClearByGradeSubject[grade] = make(map[specs.Subject]int)
	}
	out.StageClearByGradeSubject[grade][subject] = stage
	return out
}

// Advance describes what AdvanceOnClear unlocked. Zero means nothing.
type Advance struct {
	SubjectUnlocked specs.Subject
	GradeUnlocked   specs.Grade
}

// Changed reports whether anything was unlocked.
func (a Advance) Changed() bool {
	return a.SubjectUnlocked != "" || a.GradeUnlocked != 0
}

// AdvanceOnClear moves the frontier after a stage clear. Clearing stage
// AdvanceStage on the grade's frontier subject exposes the next subject,
// or after div unlocks the next grade at mitori. Clears of any other
// stage or of a non-frontier subject change nothing.
func AdvanceOnClear(p RegisterProgress, body specs.ExamBody, grade specs.Grade, subject specs.Subject, stage int) (RegisterProgress, Advance) {
	out := clone(p)
	if stage != AdvanceStage || !slices.Contains(UnlockedGrades(p, body), grade) {
		return out, Advance{}
	}
	frontier := clampInt(out.UnlockedStageByGrade[grade], 0, len(RegisterSubjects())-1)
	if subjectIndex(subject) != frontier {
		return out, Advance{}
	}

	if frontier < len(RegisterSubjects())-1 {
		out.UnlockedStageByGrade[grade] = frontier + 1
		return out, Advance{SubjectUnlocked: RegisterSubjects()[frontier+1]}
	}

	next, ok := NextGrade(body, grade)
	if !ok || slices.Contains(out.UnlockedGrades, next) {
		return out, Advance{}
	}
	out.UnlockedGrades = append(out.UnlockedGrades, next)
	out.UnlockedStageByGrade[next] = 0
	return Normalize(out, body), Advance{GradeUnlocked: next}
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
