package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/soroban/internal/problemgen"
	"github.com/abhisek/soroban/internal/progress"
	"github.com/abhisek/soroban/internal/rng"
	"github.com/abhisek/soroban/internal/specs"
)

// ErrNoProblems is returned when the rubric has nothing for the selection.
var ErrNoProblems = errors.New("no problems for selection")

// ClearAccuracy is the share of a stage's problems that must be right to
// clear it. Unanswered problems count as wrong.
const ClearAccuracy = 0.8

// MinStageProblems is the smallest problem count a stage is cut down to.
const MinStageProblems = 5

// stageTimeScale stretches or squeezes the rubric's time limit per stage.
var stageTimeScale = [progress.MaxStage + 1]float64{0, 1.5, 1.25, 1.0, 1.0, 0.85, 0.7}

// Plan is one register stage: its problems and its time budget.
type Plan struct {
	ExamBody specs.ExamBody
	Grade    specs.Grade
	Subject  specs.Subject
	Stage    int
	Problems []problemgen.Problem
	Duration time.Duration

	// Practice plans run the full rubric sheet and never touch progress.
	Practice bool
}

// StageCount is how many of the rubric's count problems a stage serves.
// Stages 1 to 3 serve half (at least MinStageProblems), later stages all.
func StageCount(specCount, stage int) int {
	if specCount <= 0 {
		return 0
	}
	if stage > 3 {
		return specCount
	}
	return min(specCount, max(MinStageProblems, specCount/2))
}

// StageDuration is the time budget for count problems at stage, given the
// rubric's minutes for specCount problems.
func StageDuration(minutes, count, specCount, stage int) time.Duration {
	if minutes <= 0 || count <= 0 || specCount <= 0 || stage < progress.MinStage || stage > progress.MaxStage {
		return 0
	}
	full := time.Duration(minutes) * time.Minute
	scaled := float64(full) * stageTimeScale[stage] * float64(count) / float64(specCount)
	return time.Duration(scaled).Round(time.Second)
}

// BuildPlan generates the problems for a stage the player has unlocked.
func BuildPlan(src rng.Source, p progress.RegisterProgress, body specs.ExamBody, cfg progress.PlayConfig) (*Plan, error) {
	if !progress.CanPlayStage(p, body, cfg.Grade, cfg.Subject, cfg.Stage) {
		return nil, fmt.Errorf("%s %s stage %d: %w", cfg.Grade, cfg.Subject, cfg.Stage, progress.ErrStageLocked)
	}

	all := problemgen.GenerateProblems(src, cfg.Grade, cfg.Subject, body)
	if len(all) == 0 {
		return nil, fmt.Errorf("%s %s: %w", cfg.Grade, cfg.Subject, ErrNoProblems)
	}
	count := StageCount(len(all), cfg.Stage)
	minutes := problemgen.SubjectMinutes(cfg.Grade, cfg.Subject, body)

	return &Plan{
		ExamBody: body,
		Grade:    cfg.Grade,
		Subject:  cfg.Subject,
		Stage:    cfg.Stage,
		Problems: all[:count],
		Duration: StageDuration(minutes, count, len(all), cfg.Stage),
	}, nil
}

// BuildPracticePlan generates a full exam sheet for any available grade
// and subject, denpyo included. Unlocks are not consulted.
func BuildPracticePlan(src rng.Source, cfg progress.PracticeConfig) (*Plan, error) {
	all := problemgen.GenerateProblems(src, cfg.Grade, cfg.Subject, cfg.ExamBody)
	if len(all) == 0 {
		return nil, fmt.Errorf("%s %s %s: %w", cfg.ExamBody, cfg.Grade, cfg.Subject, ErrNoProblems)
	}
	minutes := problemgen.SubjectMinutes(cfg.Grade, cfg.Subject, cfg.ExamBody)
	return &Plan{
		ExamBody: cfg.ExamBody,
		Grade:    cfg.Grade,
		Subject:  cfg.Subject,
		Problems: all,
		Duration: time.Duration(minutes) * time.Minute,
		Practice: true,
	}, nil
}
