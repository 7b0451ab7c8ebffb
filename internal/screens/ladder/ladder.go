// Package ladder is the stage select screen: every grade of the exam
// body with its register subjects and six stages each.
package ladder

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/progress"
	"github.com/abhisek/soroban/internal/router"
	"github.com/abhisek/soroban/internal/screen"
	"github.com/abhisek/soroban/internal/screens/play"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/specs"
	"github.com/abhisek/soroban/internal/ui/layout"
	"github.com/abhisek/soroban/internal/ui/theme"
)

type rowKind int

const (
	rowGradeHeader rowKind = iota
	rowSubject
)

type row struct {
	kind    rowKind
	grade   specs.Grade
	subject specs.Subject
}

// loadedMsg carries the progress and last selection.
type loadedMsg struct {
	progress progress.RegisterProgress
	cfg      progress.PlayConfig
	err      error
}

// savedMsg is sent once the chosen play config is stored.
type savedMsg struct {
	cfg progress.PlayConfig
	err error
}

// LadderScreen lets the player pick a grade, subject and stage.
type LadderScreen struct {
	svc          *session.Service
	rows         []row
	cursor       int
	scrollOffset int
	stage        int
	speed        progress.ReadingSpeed
	progress     progress.RegisterProgress
	loaded       bool
	notice       string
}

var (
	_ screen.Screen          = (*LadderScreen)(nil)
	_ screen.KeyHintProvider = (*LadderScreen)(nil)
)

// New creates a LadderScreen. Progress is loaded by Init.
func New(svc *session.Service) *LadderScreen {
	var rows []row
	for _, g := range specs.AvailableGrades(svc.ExamBody()) {
		rows = append(rows, row{kind: rowGradeHeader, grade: g})
		for _, subj := range progress.RegisterSubjects() {
			rows = append(rows, row{kind: rowSubject, grade: g, subject: subj})
		}
	}
	s := &LadderScreen{
		svc:      svc,
		rows:     rows,
		stage:    progress.MinStage,
		speed:    progress.ReadingNormal,
		progress: progress.New(svc.ExamBody()),
	}
	s.moveCursor(1)
	return s
}

func (s *LadderScreen) Init() tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		ctx := context.Background()
		p, err := svc.LoadProgress(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		cfg, err := svc.LoadPlayConfig(ctx, p)
		return loadedMsg{progress: p, cfg: cfg, err: err}
	}
}

func (s *LadderScreen) Title() string {
	return "Stages"
}

// KeyHints returns the key binding hints for the footer.
func (s *LadderScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Subject"},
		{Key: "←→", Description: "Stage"},
		{Key: "Tab", Description: "Grade"},
		{Key: "R", Description: "Reading"},
		{Key: "Enter", Description: "Play"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LadderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			s.notice = msg.err.Error()
			return s, nil
		}
		s.progress = msg.progress
		s.loaded = true
		s.stage = msg.cfg.Stage
		s.speed = msg.cfg.ReadingSpeed
		s.selectRow(msg.cfg.Grade, msg.cfg.Subject)
		return s, nil

	case savedMsg:
		if msg.err != nil {
			s.notice = msg.err.Error()
			return s, nil
		}
		next := play.New(s.svc, msg.cfg)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }

	case tea.KeyMsg:
		s.notice = ""
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "left", "h":
			s.stage = max(s.stage-1, progress.MinStage)
		case "right", "l":
			s.stage = min(s.stage+1, progress.MaxStage)
		case "tab":
			s.nextGrade()
		case "shift+tab":
			s.prevGrade()
		case "r":
			s.speed = nextSpeed(s.speed)
		case "enter":
			return s, s.choose()
		}
	}
	return s, nil
}

// choose saves the selection and opens the play screen, or explains why
// the stage is locked.
func (s *LadderScreen) choose() tea.Cmd {
	if !s.loaded {
		return nil
	}
	r := s.rows[s.cursor]
	if !progress.CanPlayStage(s.progress, s.svc.ExamBody(), r.grade, r.subject, s.stage) {
		s.notice = s.lockedReason(r)
		return nil
	}
	cfg := progress.PlayConfig{
		Grade:        r.grade,
		Subject:      r.subject,
		Stage:        s.stage,
		ReadingSpeed: s.speed,
	}
	svc := s.svc
	return func() tea.Msg {
		return savedMsg{cfg: cfg, err: svc.SavePlayConfig(context.Background(), cfg)}
	}
}

func (s *LadderScreen) lockedReason(r row) string {
	unlocked := progress.UnlockedSubjects(s.progress, r.grade)
	switch {
	case len(unlocked) == 0:
		return fmt.Sprintf("%s is locked. Clear stage %d of the previous grade's division first.", r.grade, progress.AdvanceStage)
	case !slices.Contains(unlocked, r.subject):
		return fmt.Sprintf("%s is locked. Clear stage %d of %s first.",
			r.subject.DisplayName(), progress.AdvanceStage, unlocked[len(unlocked)-1].DisplayName())
	}
	return fmt.Sprintf("Stage %d is locked. Clear stage %d first.", s.stage, s.stage-1)
}

func nextSpeed(r progress.ReadingSpeed) progress.ReadingSpeed {
	switch r {
	case progress.ReadingSlow:
		return progress.ReadingNormal
	case progress.ReadingNormal:
		return progress.ReadingFast
	default:
		return progress.ReadingSlow
	}
}

func (s *LadderScreen) selectRow(g specs.Grade, subj specs.Subject) {
	for i, r := range s.rows {
		if r.kind == rowSubject && r.grade == g && r.subject == subj {
			s.cursor = i
			return
		}
	}
}

// moveCursor moves the cursor by delta, skipping grade headers.
func (s *LadderScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowSubject {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextGrade jumps the cursor to the first subject of the next grade.
func (s *LadderScreen) nextGrade() {
	current := s.rows[s.cursor].grade
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowSubject && s.rows[i].grade != current {
			s.cursor = i
			return
		}
	}
}

// prevGrade jumps the cursor to the first subject of the previous grade.
func (s *LadderScreen) prevGrade() {
	current := s.rows[s.cursor].grade
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].kind == rowGradeHeader && s.rows[i].grade != current {
			s.cursor = i + 1
			return
		}
	}
}

// adjustScroll ensures the cursor is visible within the viewport.
func (s *LadderScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	// Also show the grade header above the cursor if possible
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowGradeHeader {
		headerRow--
	}
	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *LadderScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	status := s.renderStatus(width)
	listHeight := height - lipgloss.Height(status) - 1
	s.adjustScroll(listHeight)

	var lines []string
	for i := s.scrollOffset; i < len(s.rows) && len(lines) < listHeight; i++ {
		r := s.rows[i]
		switch r.kind {
		case rowGradeHeader:
			lines = append(lines, s.renderGradeHeader(r.grade, width))
		case rowSubject:
			lines = append(lines, s.renderSubjectRow(r, i == s.cursor))
		}
	}

	return strings.Join(lines, "\n") + "\n\n" + status
}

func (s *LadderScreen) renderStatus(width int) string {
	if s.notice != "" {
		return lipgloss.NewStyle().Foreground(theme.Accent).Width(width).Padding(0, 2).Render("⚠ " + s.notice)
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Width(width).Padding(0, 2).
		Render(fmt.Sprintf("Stage %d · Reading %s", s.stage, s.speed))
}

func (s *LadderScreen) renderGradeHeader(g specs.Grade, width int) string {
	name := strings.ToUpper(g.String())
	style := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	if len(progress.UnlockedSubjects(s.progress, g)) == 0 {
		style = theme.Locked
		name += "  🔒"
	}
	return style.Width(width).PaddingLeft(2).Render(name)
}

// renderSubjectRow renders one subject with its stage pips: ● cleared,
// ◎ playable, ○ locked. The selected stage is bracketed.
func (s *LadderScreen) renderSubjectRow(r row, selected bool) string {
	body := s.svc.ExamBody()
	open := slices.Contains(progress.UnlockedSubjects(s.progress, r.grade), r.subject)
	cleared := progress.ClearedStage(s.progress, r.grade, r.subject)

	nameStyle := theme.Unselected
	switch {
	case selected:
		nameStyle = theme.Selected
	case !open:
		nameStyle = theme.Locked
	}

	var pips []string
	for st := progress.MinStage; st <= progress.MaxStage; st++ {
		var pip string
		switch {
		case st <= cleared:
			pip = lipgloss.NewStyle().Foreground(theme.Success).Render("●")
		case progress.CanPlayStage(s.progress, body, r.grade, r.subject, st):
			pip = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render("◎")
		default:
			pip = theme.Locked.Render("○")
		}
		if selected && st == s.stage {
			pip = "[" + pip + "]"
		} else {
			pip = " " + pip + " "
		}
		pips = append(pips, pip)
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}
	return fmt.Sprintf("    %s%s %s", cursor, nameStyle.Render(fmt.Sprintf("%-22s", r.subject.DisplayName())), strings.Join(pips, ""))
}
