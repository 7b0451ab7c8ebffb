package play

import (
	"time"

	sess "github.com/abhisek/soroban/internal/session"
)

// startedMsg is sent when the stage plan has been built.
type startedMsg struct {
	State *sess.SessionState
	Err   error
}

// timerTickMsg is sent every second to update the countdown.
type timerTickMsg time.Time

// revealTickMsg reveals the next mitori term of problem Index.
type revealTickMsg struct {
	Index int
}

// finishedMsg is sent once the outcome has been scored and saved.
type finishedMsg struct {
	Result *sess.Result
	Err    error
}
