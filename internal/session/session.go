package session

import (
	"time"

	"github.com/abhisek/soroban/internal/problemgen"
)

// HandleAnswer checks input against the current problem and records it.
// It returns false without recording when no problem is on screen or the
// session is not accepting answers.
func HandleAnswer(state *SessionState, input string) bool {
	q := CurrentProblem(state)
	if q == nil || state.Phase != PhaseActive || state.TimeExpired {
		return false
	}

	correct := problemgen.CheckAnswer(input, *q)
	state.LastAnswerCorrect = correct
	state.TotalQuestions++
	if correct {
		state.TotalCorrect++
	}
	state.Answers = append(state.Answers, AnswerRecord{
		Index:    state.Current,
		Input:    input,
		Correct:  correct,
		Duration: time.Since(state.QuestionStartTime),
	})
	state.ShowingFeedback = true
	state.Phase = PhaseFeedback
	return true
}

// NextProblem leaves feedback and moves to the next problem. It returns
// false and moves to PhaseEnding once the plan is exhausted or time is up.
func NextProblem(state *SessionState) bool {
	state.ShowingFeedback = false
	if state.TimeExpired {
		state.Phase = PhaseEnding
		return false
	}
	state.Current++
	if CurrentProblem(state) == nil {
		state.Phase = PhaseEnding
		return false
	}
	state.Phase = PhaseActive
	state.QuestionStartTime = time.Now()
	return true
}

// Tick advances the stage clock. When the budget runs out the session
// ends; a problem on screen is left unanswered.
func Tick(state *SessionState, elapsed time.Duration) {
	state.Elapsed = elapsed
	if state.Plan == nil || state.Plan.Duration <= 0 || state.TimeExpired {
		return
	}
	if elapsed >= state.Plan.Duration {
		state.TimeExpired = true
		if state.Phase == PhaseActive {
			state.Phase = PhaseEnding
		}
	}
}

// Quit ends the session early. Remaining problems count as wrong.
func Quit(state *SessionState) {
	state.ShowingQuitConfirm = false
	state.ShowingFeedback = false
	state.Phase = PhaseEnding
}
