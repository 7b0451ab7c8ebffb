package progress

import (
	"testing"

	"github.com/abhisek/soroban/internal/specs"
)

func TestRewardPerCorrect_HarderPaysMore(t *testing.T) {
	for _, s := range RegisterSubjects() {
		for g := specs.MinGrade; g < specs.MaxGrade; g++ {
			harder, easier := RewardPerCorrect(g, s), RewardPerCorrect(g+1, s)
			if harder < easier {
				t.Errorf("%s: %s pays %d, less than %s's %d", s, g, harder, g+1, easier)
			}
		}
	}
}

func TestRewardPerCorrect_MitoriPaysMore(t *testing.T) {
	for g := specs.MinGrade; g <= specs.MaxGrade; g++ {
		if RewardPerCorrect(g, specs.SubjectMitori) <= RewardPerCorrect(g, specs.SubjectMul) {
			t.Errorf("%s: mitori should pay more than mul", g)
		}
	}
	if got := RewardPerCorrect(10, specs.SubjectMul); got != 2 {
		t.Errorf("10kyu mul = %d, want 2", got)
	}
	if got := RewardPerCorrect(1, specs.SubjectMitori); got != 6 {
		t.Errorf("1kyu mitori = %d, want 6", got)
	}
}

func TestStageClearBonus_StrictlyIncreasing(t *testing.T) {
	for stage := MinStage + 1; stage <= MaxStage; stage++ {
		if StageClearBonus(stage) <= StageClearBonus(stage-1) {
			t.Errorf("bonus for stage %d (%d) not above stage %d (%d)",
				stage, StageClearBonus(stage), stage-1, StageClearBonus(stage-1))
		}
	}
	if StageClearBonus(0) != 0 || StageClearBonus(7) != 0 {
		t.Error("out-of-range stages should pay nothing")
	}
}

func TestAddCoins_NeverNegative(t *testing.T) {
	p := AddCoins(New(body), 25)
	if p.Coins != 25 {
		t.Fatalf("coins = %d, want 25", p.Coins)
	}
	p = AddCoins(p, -100)
	if p.Coins != 0 {
		t.Errorf("coins = %d, want 0", p.Coins)
	}
}
