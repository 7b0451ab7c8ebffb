package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/soroban/internal/problemgen"
	"github.com/abhisek/soroban/internal/progress"
	"github.com/abhisek/soroban/internal/rng"
	"github.com/abhisek/soroban/internal/specs"
)

func TestStageCount(t *testing.T) {
	tests := []struct {
		spec, stage, want int
	}{
		{10, 1, 5},
		{10, 3, 5},
		{10, 4, 10},
		{20, 2, 10},
		{20, 6, 20},
		{6, 1, 5},
		{4, 1, 4},
		{0, 1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StageCount(tt.spec, tt.stage), "StageCount(%d, %d)", tt.spec, tt.stage)
	}
}

func TestStageDuration(t *testing.T) {
	assert.Equal(t, 450*time.Second, StageDuration(10, 5, 10, 1))
	assert.Equal(t, 10*time.Minute, StageDuration(10, 10, 10, 4))
	assert.Equal(t, 7*time.Minute, StageDuration(10, 10, 10, 6))
	assert.Zero(t, StageDuration(10, 10, 10, 7))
	assert.Zero(t, StageDuration(0, 10, 10, 1))
}

func TestBuildPlan_StartStage(t *testing.T) {
	p := progress.New(body)
	plan, err := BuildPlan(rng.New(7), p, body, progress.DefaultPlayConfig(body))
	require.NoError(t, err)

	assert.Equal(t, specs.Grade(10), plan.Grade)
	assert.Equal(t, specs.SubjectMitori, plan.Subject)
	assert.Equal(t, 1, plan.Stage)

	gs, ok := specs.GetGradeSpec(body, 10)
	require.True(t, ok)
	count := StageCount(gs.Count(specs.SubjectMitori), 1)
	assert.Len(t, plan.Problems, count)
	assert.Equal(t, StageDuration(gs.Minutes(specs.SubjectMitori), count, gs.Count(specs.SubjectMitori), 1), plan.Duration)

	in := problemgen.Input{Spec: gs, Subject: specs.SubjectMitori}
	checks := problemgen.DefaultConfig().Check(plan.Problems, in)
	assert.Empty(t, checks)
}

func TestBuildPlan_Locked(t *testing.T) {
	p := progress.New(body)
	tests := []progress.PlayConfig{
		{Grade: 10, Subject: specs.SubjectMitori, Stage: 2},
		{Grade: 10, Subject: specs.SubjectMul, Stage: 1},
		{Grade: 9, Subject: specs.SubjectMitori, Stage: 1},
	}
	for _, cfg := range tests {
		_, err := BuildPlan(rng.New(1), p, body, cfg)
		assert.True(t, errors.Is(err, progress.ErrStageLocked), "%+v: got %v", cfg, err)
	}
}

func TestBuildPlan_AfterClear(t *testing.T) {
	p := progress.MarkStageCleared(progress.New(body), 10, specs.SubjectMitori, 3)
	plan, err := BuildPlan(rng.New(3), p, body, progress.PlayConfig{Grade: 10, Subject: specs.SubjectMitori, Stage: 4})
	require.NoError(t, err)
	gs, _ := specs.GetGradeSpec(body, 10)
	assert.Len(t, plan.Problems, gs.Count(specs.SubjectMitori))
}

func TestBuildPracticePlan(t *testing.T) {
	cfg := progress.PracticeConfig{ExamBody: body, Grade: 3, Subject: specs.SubjectDenpyo}
	plan, err := BuildPracticePlan(rng.New(9), cfg)
	require.NoError(t, err)

	gs, _ := specs.GetGradeSpec(body, 3)
	assert.True(t, plan.Practice)
	assert.Len(t, plan.Problems, gs.Count(specs.SubjectDenpyo))
	assert.Equal(t, time.Duration(gs.Minutes(specs.SubjectDenpyo))*time.Minute, plan.Duration)

	_, err = BuildPracticePlan(rng.New(9), progress.PracticeConfig{ExamBody: body, Grade: 8, Subject: specs.SubjectDenpyo})
	assert.ErrorIs(t, err, ErrNoProblems)
}

func TestBuildSummary_PracticePaysNothing(t *testing.T) {
	plan, err := BuildPracticePlan(rng.New(2), progress.PracticeConfig{ExamBody: body, Grade: 10, Subject: specs.SubjectMul})
	require.NoError(t, err)
	state := NewSessionState(plan, "p")
	for q := CurrentProblem(state); q != nil; q = CurrentProblem(state) {
		HandleAnswer(state, q.Answer)
		NextProblem(state)
	}
	sum := BuildSummary(state)
	assert.True(t, sum.Perfect)
	assert.Zero(t, sum.CoinsEarned)
}
