package session

import (
	"time"

	"github.com/abhisek/soroban/internal/problemgen"
)

// SessionPhase represents the current phase of the session.
type SessionPhase int

const (
	PhaseLoading  SessionPhase = iota // Generating problems
	PhaseActive                       // Serving problems
	PhaseFeedback                     // Showing answer feedback
	PhaseEnding                       // Out of problems, time, or quit confirmed
	PhaseSummary                      // Showing summary screen
)

// AnswerRecord is one answered problem.
type AnswerRecord struct {
	Index    int
	Input    string
	Correct  bool
	Duration time.Duration
}

// SessionState tracks the runtime state of an active session.
type SessionState struct {
	// Plan is the stage being played.
	Plan *Plan

	// SessionID is the UUID for this session.
	SessionID string

	// Current is the index into Plan.Problems of the problem on screen.
	Current int

	// Answers holds one record per answered problem, in order.
	Answers []AnswerRecord

	TotalQuestions int
	TotalCorrect   int

	StartTime time.Time
	Elapsed   time.Duration

	Phase SessionPhase

	// ShowingFeedback is true when the feedback overlay is displayed.
	ShowingFeedback bool

	// ShowingQuitConfirm is true when the quit confirmation dialog is displayed.
	ShowingQuitConfirm bool

	// LastAnswerCorrect records whether the most recent answer was correct.
	LastAnswerCorrect bool

	// QuestionStartTime tracks when the current problem was first displayed.
	QuestionStartTime time.Time

	// TimeExpired indicates the stage timer has run out.
	TimeExpired bool
}

// NewSessionState creates a session positioned on the plan's first problem.
func NewSessionState(plan *Plan, sessionID string) *SessionState {
	now := time.Now()
	return &SessionState{
		Plan:              plan,
		SessionID:         sessionID,
		StartTime:         now,
		QuestionStartTime: now,
		Phase:             PhaseActive,
	}
}

// CurrentProblem returns the problem on screen, or nil when none is left.
func CurrentProblem(state *SessionState) *problemgen.Problem {
	if state.Plan == nil || state.Current < 0 || state.Current >= len(state.Plan.Problems) {
		return nil
	}
	return &state.Plan.Problems[state.Current]
}

// Remaining is the time left on the stage clock.
func Remaining(state *SessionState) time.Duration {
	if state.Plan == nil {
		return 0
	}
	return max(0, state.Plan.Duration-state.Elapsed)
}
