package session

import (
	"strconv"

	"github.com/abhisek/soroban/internal/badges"
	"github.com/abhisek/soroban/internal/progress"
)

// Result is what a finished session changed.
type Result struct {
	Summary  *SessionSummary
	Progress progress.RegisterProgress
	Advance  progress.Advance
	BadgeID  string // empty when no badge was earned
}

// Unlocked describes the advance as stored in the event log, e.g.
// "subject:mul" or "grade:9".
func (r *Result) Unlocked() string {
	switch {
	case r.Advance.SubjectUnlocked != "":
		return "subject:" + string(r.Advance.SubjectUnlocked)
	case r.Advance.GradeUnlocked != 0:
		return "grade:" + strconv.Itoa(int(r.Advance.GradeUnlocked))
	}
	return ""
}

// ApplyOutcome folds a session into progress: coins are always paid; a
// clear marks the stage, may advance the ladder and awards a register
// badge when the rank earns one. The input record is not modified.
func ApplyOutcome(p progress.RegisterProgress, plan *Plan, sum *SessionSummary) *Result {
	out := progress.AddCoins(p, sum.CoinsEarned)
	res := &Result{Summary: sum}

	if sum.Cleared {
		out = progress.MarkStageCleared(out, plan.Grade, plan.Subject, plan.Stage)
		out, res.Advance = progress.AdvanceOnClear(out, plan.ExamBody, plan.Grade, plan.Subject, plan.Stage)
		if sum.Rank.Badgeable() {
			res.BadgeID = badges.BuildRegisterBadgeID(plan.Grade, plan.Subject, sum.Rank)
			out = progress.AddBadge(out, res.BadgeID)
		}
	}

	res.Progress = progress.Normalize(out, plan.ExamBody)
	return res
}
