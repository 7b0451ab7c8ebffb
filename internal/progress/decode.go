package progress

import (
	"math"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/abhisek/soroban/internal/specs"
)

// DecodeRegisterProgress reads a saved progress record. It never fails:
// invalid JSON yields New(body), and each malformed field falls back to
// its default independently.
func DecodeRegisterProgress(data []byte, body specs.ExamBody) RegisterProgress {
	p := New(body)
	if !gjson.ValidBytes(data) {
		return p
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return p
	}

	if v, ok := intField(doc.Get("coins")); ok {
		p.Coins = v
	}
	if ids, ok := stringArray(doc.Get("purchasedItemIds")); ok {
		p.PurchasedItemIDs = ids
	}
	if ids, ok := stringArray(doc.Get("badgeIds")); ok {
		p.BadgeIDs = ids
	}

	rows, rowsOK := intField(doc.Get("shelfRows"))
	cols, colsOK := intField(doc.Get("shelfCols"))
	if rowsOK && colsOK {
		p.ShelfRows, p.ShelfCols = rows, cols
	}
	if slots := doc.Get("shelfSlots"); slots.IsArray() {
		p.ShelfSlots = p.ShelfSlots[:0]
		for _, s := range slots.Array() {
			if s.Type == gjson.String {
				p.ShelfSlots = append(p.ShelfSlots, s.Str)
			} else {
				p.ShelfSlots = append(p.ShelfSlots, "")
			}
		}
	}

	if grades := doc.Get("unlockedGrades"); grades.IsArray() {
		var unlocked []specs.Grade
		for _, g := range grades.Array() {
			if v, ok := intField(g); ok {
				unlocked = append(unlocked, specs.Grade(v))
			}
		}
		p.UnlockedGrades = unlocked
	}

	if stages := doc.Get("unlockedStageByGrade"); stages.IsObject() {
		p.UnlockedStageByGrade = make(map[specs.Grade]int)
		stages.ForEach(func(key, value gjson.Result) bool {
			g, err := strconv.Atoi(key.String())
			if v, ok := intField(value); err == nil && ok {
				p.UnlockedStageByGrade[specs.Grade(g)] = v
			}
			return true
		})
	}

	if clears := doc.Get("stageClearByGradeSubject"); clears.IsObject() {
		p.StageClearByGradeSubject = make(map[specs.Grade]map[specs.Subject]int)
		clears.ForEach(func(key, bySubject gjson.Result) bool {
			g, err := strconv.Atoi(key.String())
			if err != nil || !bySubject.IsObject() {
				return true
			}
			m := make(map[specs.Subject]int)
			bySubject.ForEach(func(sk, sv gjson.Result) bool {
				if v, ok := intField(sv); ok {
					m[specs.Subject(sk.String())] = v
				}
				return true
			})
			p.StageClearByGradeSubject[specs.Grade(g)] = m
			return true
		})
	}

	return Normalize(p, body)
}

// intField reads a finite JSON number, truncated toward zero.
func intField(r gjson.Result) (int, bool) {
	if r.Type != gjson.Number || math.IsNaN(r.Num) || math.IsInf(r.Num, 0) {
		return 0, false
	}
	if r.Num > math.MaxInt32 {
		return math.MaxInt32, true
	}
	if r.Num < math.MinInt32 {
		return math.MinInt32, true
	}
	return int(r.Num), true
}

// stringArray reads the string elements of a JSON array, skipping others.
func stringArray(r gjson.Result) ([]string, bool) {
	if !r.IsArray() {
		return nil, false
	}
	out := []string{}
	for _, v := range r.Array() {
		if v.Type == gjson.String {
			out = append(out, v.Str)
		}
	}
	return out, true
}
