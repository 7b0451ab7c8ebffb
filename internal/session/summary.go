package session

import (
	"time"

	"github.com/abhisek/soroban/internal/badges"
	"github.com/abhisek/soroban/internal/problemgen"
	"github.com/abhisek/soroban/internal/progress"
)

// Mistake pairs a missed problem with what was typed.
type Mistake struct {
	Problem problemgen.Problem
	Input   string
}

// SessionSummary holds the data displayed on the summary screen.
type SessionSummary struct {
	Duration       time.Duration
	TotalQuestions int // problems in the stage
	Answered       int
	TotalCorrect   int
	Accuracy       float64 // over TotalQuestions
	Rank           badges.Rank
	Cleared        bool
	Perfect        bool
	TimeExpired    bool
	CoinsEarned    int
	Mistakes       []Mistake
}

// BuildSummary scores the session against every problem in the plan.
func BuildSummary(state *SessionState) *SessionSummary {
	total := 0
	if state.Plan != nil {
		total = len(state.Plan.Problems)
	}

	var accuracy float64
	if total > 0 {
		accuracy = float64(state.TotalCorrect) / float64(total)
	}

	sum := &SessionSummary{
		Duration:       state.Elapsed,
		TotalQuestions: total,
		Answered:       state.TotalQuestions,
		TotalCorrect:   state.TotalCorrect,
		Accuracy:       accuracy,
		Rank:           badges.RankForAccuracy(state.TotalCorrect, total),
		Cleared:        total > 0 && accuracy >= ClearAccuracy,
		Perfect:        total > 0 && state.TotalCorrect == total,
		TimeExpired:    state.TimeExpired,
	}

	for _, a := range state.Answers {
		if !a.Correct && a.Index < total {
			sum.Mistakes = append(sum.Mistakes, Mistake{Problem: state.Plan.Problems[a.Index], Input: a.Input})
		}
	}

	if state.Plan != nil && !state.Plan.Practice {
		sum.CoinsEarned = state.TotalCorrect * progress.RewardPerCorrect(state.Plan.Grade, state.Plan.Subject)
		if sum.Perfect {
			sum.CoinsEarned += progress.StageClearBonus(state.Plan.Stage)
		}
	}
	return sum
}
