// Package badges encodes achievement badges as persisted string ids and
// reduces badge collections to the best rank per key.
package badges

// Rank is a letter grade awarded for a play session.
type Rank string

const (
	RankF Rank = "F"
	RankE Rank = "E"
	RankD Rank = "D"
	RankC Rank = "C"
	RankB Rank = "B"
	RankA Rank = "A"
)

// AllRanks returns all ranks in order from lowest to highest.
func AllRanks() []Rank {
	return []Rank{RankF, RankE, RankD, RankC, RankB, RankA}
}

// ParseRank maps a single letter to a rank.
func ParseRank(s string) (Rank, bool) {
	switch r := Rank(s); r {
	case RankF, RankE, RankD, RankC, RankB, RankA:
		return r, true
	}
	return "", false
}

// Level orders ranks: F is 0, A is 5. Unknown ranks are -1.
func (r Rank) Level() int {
	switch r {
	case RankF:
		return 0
	case RankE:
		return 1
	case RankD:
		return 2
	case RankC:
		return 3
	case RankB:
		return 4
	case RankA:
		return 5
	default:
		return -1
	}
}

// Badgeable reports whether the rank earns a badge.
func (r Rank) Badgeable() bool {
	return r.Level() >= RankC.Level()
}

// Icon returns the display icon for the rank.
func (r Rank) Icon() string {
	switch r {
	case RankA:
		return "🥇"
	case RankB:
		return "🥈"
	case RankC:
		return "🥉"
	default:
		return "·"
	}
}

// RankForAccuracy returns the rank for correct answers out of total.
func RankForAccuracy(correct, total int) Rank {
	if total <= 0 || correct <= 0 {
		return RankF
	}
	accuracy := float64(correct) / float64(total)
	switch {
	case accuracy >= 0.95:
		return RankA
	case accuracy >= 0.85:
		return RankB
	case accuracy >= 0.75:
		return RankC
	case accuracy >= 0.60:
		return RankD
	case accuracy >= 0.40:
		return RankE
	default:
		return RankF
	}
}

// Difficulty is the level of the snack mini-game.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// AllDifficulties returns all difficulties in display order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParseDifficulty maps a string to a known difficulty.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch d := Difficulty(s); d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return d, true
	}
	return "", false
}

// DisplayName returns a human-readable label for the difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	default:
		return string(d)
	}
}

func (d Difficulty) order() int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyNormal:
		return 1
	default:
		return 2
	}
}
