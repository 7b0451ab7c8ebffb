package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/screen"
	"github.com/abhisek/soroban/internal/specs"
	"github.com/abhisek/soroban/internal/store"
	"github.com/abhisek/soroban/internal/ui/layout"
	"github.com/abhisek/soroban/internal/ui/theme"
)

// historyLimit caps how many stage results are loaded.
const historyLimit = 50

type historyLoadedMsg struct {
	Events []store.StageClearEvent
	Err    error
}

// HistoryScreen displays past stage results, newest first.
type HistoryScreen struct {
	eventRepo store.EventRepo
	events    []store.StageClearEvent
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		events, err := repo.ListStageClears(context.Background(), store.QueryOpts{Limit: historyLimit})
		return historyLoadedMsg{Events: events, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.events = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.events) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No stages played yet. Pick one from STAGES!")
	}

	var lines []string
	selectedLine := 0
	for i, ev := range s.events {
		if i == s.selected {
			selectedLine = len(lines)
		}
		lines = append(lines, s.renderRow(i, ev))
		if s.expanded[i] {
			lines = append(lines, renderDetails(ev)...)
		}
	}

	// Keep the selected row on screen.
	start := 0
	if height > 0 && selectedLine >= height {
		start = selectedLine - height + 1
	}
	end := len(lines)
	if height > 0 {
		end = min(end, start+height)
	}

	var b strings.Builder
	for _, l := range lines[start:end] {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, l))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *HistoryScreen) renderRow(i int, ev store.StageClearEvent) string {
	prefix := "  "
	if i == s.selected {
		prefix = "> "
	}
	result := "FAIL "
	switch {
	case ev.Perfect:
		result = "PERF "
	case ev.Cleared:
		result = "CLEAR"
	}

	line := fmt.Sprintf("%s%s  %-5s %-8s st%d  %2d/%-2d  %s",
		prefix,
		ev.Timestamp.Local().Format("Jan 02 15:04"),
		specs.Grade(ev.Grade),
		ev.Subject,
		ev.Stage,
		ev.Correct, ev.Total,
		result,
	)
	rank := lipgloss.NewStyle().Foreground(theme.RankColor(ev.Rank)).Bold(true).Render(ev.Rank)

	style := lipgloss.NewStyle().Foreground(theme.Text)
	if i == s.selected {
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return style.Render(line) + "  " + rank
}

func renderDetails(ev store.StageClearEvent) []string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	lines := []string{
		dim.Render(fmt.Sprintf("    %s · %s", specs.ExamBody(ev.ExamBody).DisplayName(), specs.Subject(ev.Subject).DisplayName())),
		lipgloss.NewStyle().Foreground(theme.Coin).Render(fmt.Sprintf("    ● +%d coins", ev.CoinsEarned)),
	}
	if ev.Unlocked != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render("    Unlocked "+ev.Unlocked))
	}
	return lines
}
