package session

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/soroban/internal/badges"
	"github.com/abhisek/soroban/internal/progress"
	"github.com/abhisek/soroban/internal/specs"
)

func TestApplyOutcome_ClearAdvancesAndBadges(t *testing.T) {
	start := progress.MarkStageCleared(progress.New(body), 10, specs.SubjectMitori, 2)
	before := progress.Normalize(start, body)

	plan := testPlan(10)
	plan.Stage = 3
	state := NewSessionState(plan, "s")
	play(state, 0)
	sum := BuildSummary(state)

	res := ApplyOutcome(start, plan, sum)

	assert.Equal(t, 3, progress.ClearedStage(res.Progress, 10, specs.SubjectMitori))
	assert.Equal(t, specs.SubjectMul, res.Advance.SubjectUnlocked)
	assert.Equal(t, "subject:mul", res.Unlocked())
	assert.Equal(t, sum.CoinsEarned, res.Progress.Coins)

	wantBadge := badges.BuildRegisterBadgeID(10, specs.SubjectMitori, badges.RankA)
	assert.Equal(t, wantBadge, res.BadgeID)
	assert.Contains(t, res.Progress.BadgeIDs, wantBadge)

	// The input record is untouched.
	if diff := cmp.Diff(before, progress.Normalize(start, body)); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}

func TestApplyOutcome_FailPaysCoinsOnly(t *testing.T) {
	start := progress.New(body)
	plan := testPlan(10)
	state := NewSessionState(plan, "s")
	play(state, 5)
	sum := BuildSummary(state)

	res := ApplyOutcome(start, plan, sum)

	assert.False(t, sum.Cleared)
	assert.Equal(t, 0, progress.ClearedStage(res.Progress, 10, specs.SubjectMitori))
	assert.False(t, res.Advance.Changed())
	assert.Empty(t, res.BadgeID)
	assert.Empty(t, res.Unlocked())
	assert.Equal(t, 5*progress.RewardPerCorrect(10, specs.SubjectMitori), res.Progress.Coins)
}

func TestApplyOutcome_BorderlineClear(t *testing.T) {
	plan := testPlan(10)
	state := NewSessionState(plan, "s")
	play(state, 2)
	sum := BuildSummary(state)
	res := ApplyOutcome(progress.New(body), plan, sum)

	assert.True(t, sum.Cleared)
	assert.Equal(t, badges.RankC, sum.Rank)
	assert.Equal(t, badges.BuildRegisterBadgeID(10, specs.SubjectMitori, badges.RankC), res.BadgeID)
	// Stage 1 does not move the ladder.
	assert.False(t, res.Advance.Changed())
}

func TestApplyOutcome_GradeUnlock(t *testing.T) {
	p := progress.New(body)
	p.UnlockedStageByGrade[10] = 2 // div is the frontier

	plan := testPlan(10)
	plan.Subject = specs.SubjectDiv
	plan.Stage = 3
	state := NewSessionState(plan, "s")
	play(state, 0)

	res := ApplyOutcome(p, plan, BuildSummary(state))
	assert.Equal(t, specs.Grade(9), res.Advance.GradeUnlocked)
	assert.Equal(t, "grade:9", res.Unlocked())
	assert.Contains(t, progress.UnlockedGrades(res.Progress, body), specs.Grade(9))
}
