package progress

import (
	"slices"

	"github.com/abhisek/soroban/internal/badges"
	"github.com/abhisek/soroban/internal/specs"
)

// Normalize re-applies every invariant to p. Each field is repaired on its
// own, so one bad field never discards the rest.
func Normalize(p RegisterProgress, body specs.ExamBody) RegisterProgress {
	body = resolveBody(body)
	out := clone(p)

	out.Coins = max(0, out.Coins)
	out.PurchasedItemIDs = dedupe(out.PurchasedItemIDs)
	out.BadgeIDs = badges.BestGameBadgeIDs(out.BadgeIDs)

	out = normalizeShelf(out)

	out.UnlockedGrades = append(out.UnlockedGrades, StartGrade(body))
	out.UnlockedGrades = UnlockedGrades(out, body)

	stages := make(map[specs.Grade]int, len(out.UnlockedGrades))
	for _, g := range out.UnlockedGrades {
		stages[g] = clampInt(out.UnlockedStageByGrade[g], 0, len(RegisterSubjects())-1)
	}
	out.UnlockedStageByGrade = stages

	clears := make(map[specs.Grade]map[specs.Subject]int)
	for _, g := range specs.AvailableGrades(body) {
		for _, s := range RegisterSubjects() {
			v := clampInt(out.StageClearByGradeSubject[g][s], 0, MaxStage)
			if v == 0 {
				continue
			}
			if clears[g] == nil {
				clears[g] = make(map[specs.Subject]int)
			}
			clears[g][s] = v
		}
	}
	out.StageClearByGradeSubject = clears

	return out
}

func normalizeShelf(p RegisterProgress) RegisterProgress {
	if p.ShelfRows < 1 || p.ShelfCols < 1 {
		p.ShelfRows, p.ShelfCols = DefaultShelfRows, DefaultShelfCols
	}
	p.ShelfRows = min(p.ShelfRows, MaxShelfSide)
	p.ShelfCols = min(p.ShelfCols, MaxShelfSide)

	slots := make(Slots, p.ShelfRows*p.ShelfCols)
	placed := make(map[string]bool)
	for i := range min(len(slots), len(p.ShelfSlots)) {
		id := p.ShelfSlots[i]
		if id == "" || placed[id] || !slices.Contains(p.PurchasedItemIDs, id) {
			continue
		}
		slots[i] = id
		placed[id] = true
	}
	p.ShelfSlots = slots
	return p
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
