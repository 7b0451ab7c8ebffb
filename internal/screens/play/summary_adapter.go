package play

import (
	"github.com/abhisek/soroban/internal/screen"
	"github.com/abhisek/soroban/internal/screens/summary"
	sess "github.com/abhisek/soroban/internal/session"
)

// newSummaryScreenAdapter creates a summary screen from a finished session.
func newSummaryScreenAdapter(plan *sess.Plan, res *sess.Result) screen.Screen {
	return summary.New(plan, res)
}
