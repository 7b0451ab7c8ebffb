package play

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/problemgen"
	sess "github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/ui/components"
	"github.com/abhisek/soroban/internal/ui/theme"
)

func centered(width int) lipgloss.Style {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
}

// stageLabel names what is being played, e.g. "6kyu Multiplication · Stage 3".
func stageLabel(plan *sess.Plan) string {
	label := fmt.Sprintf("%s %s", plan.Grade, plan.Subject.DisplayName())
	if plan.Practice {
		return label + " · Practice"
	}
	return fmt.Sprintf("%s · Stage %d", label, plan.Stage)
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// renderProblemView renders the problem on screen with the status line.
func (s *PlayScreen) renderProblemView(width int) string {
	state := s.state
	p := sess.CurrentProblem(state)
	if p == nil {
		return renderSaving(width)
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + stageLabel(state.Plan))

	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	remaining := sess.Remaining(state)
	if remaining <= 30*time.Second {
		timerStyle = timerStyle.Foreground(theme.Error).Bold(true)
	}
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d  %s",
			state.Current+1,
			len(state.Plan.Problems),
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			state.TotalCorrect,
			timerStyle.Render("⏱ "+formatClock(remaining)),
		))

	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	rod := components.NewBeadRod(state.Current, len(state.Plan.Problems), max(width-4, 0))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rod.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.ProblemCard(*p, s.revealed)))
	b.WriteString("\n\n")

	b.WriteString(centered(width).Render("Answer: " + s.input.View()))
	return b.String()
}

// renderFeedback shows whether the last answer was right.
func (s *PlayScreen) renderFeedback(width int) string {
	state := s.state
	p := sess.CurrentProblem(state)

	var b strings.Builder
	b.WriteString("\n\n")

	if state.LastAnswerCorrect {
		b.WriteString(centered(width).Render(theme.Correct.Render("Correct!")))
	} else {
		b.WriteString(centered(width).Render(theme.Incorrect.Render("Not quite")))
		if p != nil {
			b.WriteString("\n")
			b.WriteString(centered(width).Foreground(theme.TextDim).
				Render("Correct answer: " + displayAnswer(*p)))
		}
	}
	b.WriteString("\n\n")

	if state.TimeExpired {
		b.WriteString(centered(width).Foreground(theme.Accent).Bold(true).Render("Time's up!"))
		b.WriteString("\n\n")
	}

	b.WriteString(centered(width).Render(theme.Hint.Render("Press any key to continue...")))
	return b.String()
}

// displayAnswer formats the answer with thousands separators.
func displayAnswer(p problemgen.Problem) string {
	n, err := strconv.ParseInt(p.Answer, 10, 64)
	if err != nil {
		return p.Answer
	}
	return problemgen.FormatThousands(n)
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int, practice bool) string {
	note := "Unanswered problems count as wrong."
	if practice {
		note = "Practice results are not saved."
	}

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(centered(width).Foreground(theme.Text).Bold(true).Render("End this stage early?"))
	b.WriteString("\n")
	b.WriteString(centered(width).Foreground(theme.TextDim).Render(note))
	b.WriteString("\n\n")
	b.WriteString(centered(width).Foreground(theme.Success).Render("[Y] Yes, end now"))
	b.WriteString("\n")
	b.WriteString(centered(width).Foreground(theme.Primary).Render("[N] No, keep going"))
	return b.String()
}

func renderLoading(width int) string {
	return centered(width).
		Foreground(theme.TextDim).
		Render("\n\n\n  Laying out the sheet...")
}

func renderSaving(width int) string {
	return centered(width).
		Foreground(theme.TextDim).
		Render("\n\n\n  Scoring...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return centered(width).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
