package summary

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/badges"
	"github.com/abhisek/soroban/internal/problemgen"
	"github.com/abhisek/soroban/internal/router"
	"github.com/abhisek/soroban/internal/screen"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/ui/layout"
	"github.com/abhisek/soroban/internal/ui/theme"
)

// maxMistakes caps the mistakes listed on screen.
const maxMistakes = 5

// SummaryScreen displays the result of a finished stage.
type SummaryScreen struct {
	plan   *session.Plan
	result *session.Result
}

var (
	_ screen.Screen          = (*SummaryScreen)(nil)
	_ screen.KeyHintProvider = (*SummaryScreen)(nil)
	_ screen.EscInterceptor  = (*SummaryScreen)(nil)
)

// New creates a new SummaryScreen.
func New(plan *session.Plan, result *session.Result) *SummaryScreen {
	return &SummaryScreen{plan: plan, result: result}
}

// Init pushes the new coin balance to the header. Practice never changes it.
func (s *SummaryScreen) Init() tea.Cmd {
	if s.result == nil || s.plan == nil || s.plan.Practice {
		return nil
	}
	coins := s.result.Progress.Coins
	return func() tea.Msg { return screen.StatusMsg{Coins: coins} }
}

func (s *SummaryScreen) Title() string {
	return "Stage Summary"
}

func (s *SummaryScreen) InterceptsEsc() bool { return true }

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{Refresh: true} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.result == nil || s.result.Summary == nil || s.plan == nil {
		return ""
	}
	sum := s.result.Summary
	line := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text) + "\n"
	}

	var b strings.Builder

	title := "Stage failed"
	titleColor := theme.Error
	switch {
	case s.plan.Practice:
		title, titleColor = "Sheet complete!", theme.Primary
	case sum.Perfect:
		title, titleColor = "Perfect clear!", theme.ArcadeYellow
	case sum.Cleared:
		title, titleColor = "Stage cleared!", theme.Success
	}
	b.WriteString(line(lipgloss.NewStyle().Foreground(titleColor).Bold(true), title))
	b.WriteString(line(lipgloss.NewStyle().Foreground(theme.TextDim), stageName(s.plan)))
	b.WriteString("\n")

	rankStyle := lipgloss.NewStyle().Foreground(theme.RankColor(string(sum.Rank))).Bold(true)
	b.WriteString(line(rankStyle, fmt.Sprintf("%s RANK %s", sum.Rank.Icon(), sum.Rank)))
	b.WriteString("\n")

	stats := fmt.Sprintf("Correct: %d/%d        Accuracy: %.0f%%        Time: %s",
		sum.TotalCorrect, sum.TotalQuestions, sum.Accuracy*100, formatDuration(sum))
	b.WriteString(line(lipgloss.NewStyle().Foreground(theme.Text), stats))
	if sum.TimeExpired {
		b.WriteString(line(lipgloss.NewStyle().Foreground(theme.Accent), "Time ran out"))
	}
	b.WriteString("\n")

	if !s.plan.Practice {
		coinStyle := lipgloss.NewStyle().Foreground(theme.Coin).Bold(true)
		b.WriteString(line(coinStyle, fmt.Sprintf("● +%d coins  (total %d)", sum.CoinsEarned, s.result.Progress.Coins)))
	}
	if u := unlockedText(s.result); u != "" {
		b.WriteString(line(lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true), u))
	}
	if s.result.BadgeID != "" {
		if badge, ok := badges.Parse(s.result.BadgeID); ok {
			b.WriteString(line(lipgloss.NewStyle().Foreground(theme.ArcadeYellow),
				fmt.Sprintf("%s Badge: %s (%s)", badge.Rank.Icon(), badge.DisplayName(), badge.Rank)))
		}
	}

	if len(sum.Mistakes) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", max(min(width-8, 60), 0)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Mistakes")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
		for i, m := range sum.Mistakes {
			if i == maxMistakes {
				b.WriteString(line(lipgloss.NewStyle().Foreground(theme.TextDim),
					fmt.Sprintf("... and %d more", len(sum.Mistakes)-maxMistakes)))
				break
			}
			b.WriteString(line(lipgloss.NewStyle().Foreground(theme.Text), mistakeLine(m)))
		}
	}

	return b.String()
}

func stageName(plan *session.Plan) string {
	name := fmt.Sprintf("%s · %s %s", plan.ExamBody.DisplayName(), plan.Grade, plan.Subject.DisplayName())
	if plan.Practice {
		return name + " · Practice"
	}
	return fmt.Sprintf("%s · Stage %d", name, plan.Stage)
}

func formatDuration(sum *session.SessionSummary) string {
	return fmt.Sprintf("%d:%02d", int(sum.Duration.Minutes()), int(sum.Duration.Seconds())%60)
}

func unlockedText(res *session.Result) string {
	switch {
	case res.Advance.SubjectUnlocked != "":
		return "Unlocked: " + res.Advance.SubjectUnlocked.DisplayName()
	case res.Advance.GradeUnlocked != 0:
		return "Unlocked: grade " + res.Advance.GradeUnlocked.String()
	}
	return ""
}

// mistakeLine shows a missed problem on one line; vertical problems are
// summarized by their term count.
func mistakeLine(m session.Mistake) string {
	q := m.Problem.Question
	if m.Problem.Kind == problemgen.KindVertical {
		q = fmt.Sprintf("%d-term column", len(m.Problem.Terms))
	}
	return fmt.Sprintf("%s   you: %s   answer: %s", q, m.Input, formatAnswer(m.Problem.Answer))
}

func formatAnswer(s string) string {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return s
	}
	return problemgen.FormatThousands(n)
}
