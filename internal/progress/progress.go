// Package progress is the register mini-game's progression model. All
// functions take a RegisterProgress by value and return a new, normalized
// value; nothing here touches storage.
package progress

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/abhisek/soroban/internal/specs"
)

const (
	// MinStage and MaxStage bound the within-subject difficulty tiers.
	MinStage = 1
	MaxStage = 6

	// AdvanceStage is the stage whose clear moves the frontier forward.
	AdvanceStage = 3

	// DefaultShelfRows and DefaultShelfCols size a new shelf.
	DefaultShelfRows = 3
	DefaultShelfCols = 4

	// MaxShelfSide caps both shelf dimensions.
	MaxShelfSide = 6
)

// RegisterProgress is the persisted state of the register mini-game.
type RegisterProgress struct {
	Coins            int      `json:"coins" yaml:"coins"`
	PurchasedItemIDs []string `json:"purchasedItemIds" yaml:"purchasedItemIds"`
	BadgeIDs         []string `json:"badgeIds" yaml:"badgeIds"`

	ShelfRows  int   `json:"shelfRows" yaml:"shelfRows"`
	ShelfCols  int   `json:"shelfCols" yaml:"shelfCols"`
	ShelfSlots Slots `json:"shelfSlots" yaml:"shelfSlots"`

	UnlockedGrades []specs.Grade `json:"unlockedGrades" yaml:"unlockedGrades"`

	// UnlockedStageByGrade is the index of the last selectable register
	// subject per grade: 0 is mitori only, 2 is all three.
	UnlockedStageByGrade map[specs.Grade]int `json:"unlockedStageByGrade" yaml:"unlockedStageByGrade"`

	// StageClearByGradeSubject is the highest stage cleared per grade and
	// subject.
	StageClearByGradeSubject map[specs.Grade]map[specs.Subject]int `json:"stageClearByGradeSubject" yaml:"stageClearByGradeSubject"`
}

// Slots is the shelf layout in row-major order. An empty string is an
// empty slot and is persisted as null.
type Slots []string

func (s Slots) MarshalJSON() ([]byte, error) {
	out := make([]*string, len(s))
	for i := range s {
		if s[i] != "" {
			out[i] = &s[i]
		}
	}
	return json.Marshal(out)
}

// RegisterSubjects is the fixed unlock order of register subjects.
func RegisterSubjects() []specs.Subject {
	return []specs.Subject{specs.SubjectMitori, specs.SubjectMul, specs.SubjectDiv}
}

func subjectIndex(s specs.Subject) int {
	return slices.Index(RegisterSubjects(), s)
}

// New returns the starting progress for an exam body: only the easiest
// grade unlocked at mitori, no coins and an empty default shelf.
func New(body specs.ExamBody) RegisterProgress {
	start := StartGrade(body)
	return RegisterProgress{
		PurchasedItemIDs:         []string{},
		BadgeIDs:                 []string{},
		ShelfRows:                DefaultShelfRows,
		ShelfCols:                DefaultShelfCols,
		ShelfSlots:               make(Slots, DefaultShelfRows*DefaultShelfCols),
		UnlockedGrades:           []specs.Grade{start},
		UnlockedStageByGrade:     map[specs.Grade]int{start: 0},
		StageClearByGradeSubject: map[specs.Grade]map[specs.Subject]int{},
	}
}

// clone returns a deep copy so callers never share slices or maps.
func clone(p RegisterProgress) RegisterProgress {
	out := p
	out.PurchasedItemIDs = slices.Clone(p.PurchasedItemIDs)
	out.BadgeIDs = slices.Clone(p.BadgeIDs)
	out.ShelfSlots = slices.Clone(p.ShelfSlots)
	out.UnlockedGrades = slices.Clone(p.UnlockedGrades)
	out.UnlockedStageByGrade = maps.Clone(p.UnlockedStageByGrade)
	if out.UnlockedStageByGrade == nil {
		out.UnlockedStageByGrade = make(map[specs.Grade]int)
	}
	out.StageClearByGradeSubject = make(map[specs.Grade]map[specs.Subject]int, len(p.StageClearByGradeSubject))
	for g, m := range p.StageClearByGradeSubject {
		out.StageClearByGradeSubject[g] = maps.Clone(m)
	}
	return out
}

func resolveBody(body specs.ExamBody) specs.ExamBody {
	if len(specs.AvailableGrades(body)) == 0 {
		return specs.DefaultExamBody
	}
	return body
}

// StartGrade is the easiest grade of the exam body.
func StartGrade(body specs.ExamBody) specs.Grade {
	return specs.AvailableGrades(resolveBody(body))[0]
}

// NextGrade returns the next harder grade on the ladder after g.
func NextGrade(body specs.ExamBody, g specs.Grade) (specs.Grade, bool) {
	ladder := specs.AvailableGrades(resolveBody(body))
	i := slices.Index(ladder, g)
	if i < 0 || i+1 >= len(ladder) {
		return 0, false
	}
	return ladder[i+1], true
}
