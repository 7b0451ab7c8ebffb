package progress

import "github.com/abhisek/soroban/internal/specs"

var stageClearBonus = [MaxStage + 1]int{0, 10, 20, 40, 80, 150, 300}

// RewardPerCorrect is the coin reward for one correct answer. Mitori pays
// more than mul and div, and every three grades of difficulty add one.
func RewardPerCorrect(grade specs.Grade, subject specs.Subject) int {
	base := 2
	if subject == specs.SubjectMitori {
		base = 3
	}
	g := clampInt(int(grade), int(specs.MinGrade), int(specs.MaxGrade))
	return base + (int(specs.MaxGrade)-g)/3
}

// StageClearBonus is the lump sum paid for a perfect clear of a stage.
// Stages outside 1..6 pay nothing.
func StageClearBonus(stage int) int {
	if stage < MinStage || stage > MaxStage {
		return 0
	}
	return stageClearBonus[stage]
}

// AddCoins adjusts the coin balance, never below zero.
func AddCoins(p RegisterProgress, n int) RegisterProgress {
	out := clone(p)
	out.Coins = max(0, out.Coins+n)
	return out
}
