// Package practice is the free practice picker: any exam body, grade and
// subject, outside the register game's unlocks.
package practice

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/problemgen"
	"github.com/abhisek/soroban/internal/progress"
	"github.com/abhisek/soroban/internal/router"
	"github.com/abhisek/soroban/internal/screen"
	"github.com/abhisek/soroban/internal/screens/play"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/specs"
	"github.com/abhisek/soroban/internal/ui/components"
	"github.com/abhisek/soroban/internal/ui/layout"
	"github.com/abhisek/soroban/internal/ui/theme"
)

const (
	fieldExam = iota
	fieldGrade
	fieldSubject
	fieldCount
)

type configLoadedMsg struct {
	cfg progress.PracticeConfig
}

type configSavedMsg struct {
	cfg progress.PracticeConfig
	err error
}

// PracticeScreen picks a full exam sheet to practice.
type PracticeScreen struct {
	svc    *session.Service
	cfg    progress.PracticeConfig
	field  int
	loaded bool
	errMsg string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen.
func New(svc *session.Service) *PracticeScreen {
	return &PracticeScreen{
		svc: svc,
		cfg: progress.DecodePracticeConfig(nil, svc.ExamBody()),
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		// A read error falls back to the default selection.
		cfg, _ := svc.LoadPracticeConfig(context.Background())
		return configLoadedMsg{cfg: cfg}
	}
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case configLoadedMsg:
		s.cfg = msg.cfg
		s.loaded = true
		return s, nil

	case configSavedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		next := play.NewPractice(s.svc, msg.cfg)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.field = max(s.field-1, 0)
		case "down", "j":
			s.field = min(s.field+1, fieldCount-1)
		case "left", "h":
			s.change(-1)
		case "right", "l":
			s.change(1)
		case "enter":
			if !s.loaded {
				return s, nil
			}
			cfg, svc := s.cfg, s.svc
			return s, func() tea.Msg {
				return configSavedMsg{cfg: cfg, err: svc.SavePracticeConfig(context.Background(), cfg)}
			}
		}
	}
	return s, nil
}

// change steps the focused field, keeping the grade and subject valid for
// the exam body.
func (s *PracticeScreen) change(delta int) {
	switch s.field {
	case fieldExam:
		s.cfg.ExamBody = step(specs.ExamBodies(), s.cfg.ExamBody, delta)
		if !slices.Contains(specs.AvailableGrades(s.cfg.ExamBody), s.cfg.Grade) {
			s.cfg.Grade = progress.StartGrade(s.cfg.ExamBody)
		}
	case fieldGrade:
		s.cfg.Grade = step(specs.AvailableGrades(s.cfg.ExamBody), s.cfg.Grade, delta)
	case fieldSubject:
		s.cfg.Subject = step(s.subjects(), s.cfg.Subject, delta)
	}
	if subjects := s.subjects(); !slices.Contains(subjects, s.cfg.Subject) && len(subjects) > 0 {
		s.cfg.Subject = subjects[0]
	}
}

func (s *PracticeScreen) subjects() []specs.Subject {
	gs, ok := specs.GetGradeSpec(s.cfg.ExamBody, s.cfg.Grade)
	if !ok {
		return nil
	}
	var out []specs.Subject
	for _, subj := range specs.AllSubjects() {
		if gs.HasSubject(subj) {
			out = append(out, subj)
		}
	}
	return out
}

// step moves delta positions through values, wrapping around.
func step[T comparable](values []T, current T, delta int) T {
	if len(values) == 0 {
		return current
	}
	i := slices.Index(values, current)
	if i < 0 {
		return values[0]
	}
	n := len(values)
	return values[((i+delta)%n+n)%n]
}

func (s *PracticeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	fields := []struct{ label, value string }{
		{"Exam", s.cfg.ExamBody.DisplayName()},
		{"Grade", s.cfg.Grade.String()},
		{"Subject", s.cfg.Subject.DisplayName()},
	}
	var lines []string
	for i, f := range fields {
		style := theme.Unselected
		value := "  " + f.value + "  "
		if i == s.field {
			style = theme.Selected
			value = "◂ " + f.value + " ▸"
		}
		lines = append(lines, style.Render(fmt.Sprintf("%-8s %s", f.label, value)))
	}

	gs, _ := specs.GetGradeSpec(s.cfg.ExamBody, s.cfg.Grade)
	count := gs.Count(s.cfg.Subject)
	minutes := problemgen.SubjectMinutes(s.cfg.Grade, s.cfg.Subject, s.cfg.ExamBody)
	info := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d problems · %d minutes · no coins, nothing saved", count, minutes))

	var sections []string
	sections = append(sections, components.ArcadeCard(strings.Join(lines, "\n"), cw))
	sections = append(sections, info)
	if s.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}
