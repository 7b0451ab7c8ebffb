package play

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/soroban/internal/problemgen"
	"github.com/abhisek/soroban/internal/progress"
	"github.com/abhisek/soroban/internal/router"
	"github.com/abhisek/soroban/internal/screen"
	sess "github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/specs"
	"github.com/abhisek/soroban/internal/ui/components"
	"github.com/abhisek/soroban/internal/ui/layout"
)

// PlayScreen implements screen.Screen for a running stage or practice sheet.
type PlayScreen struct {
	svc      *sess.Service
	cfg      progress.PlayConfig
	practice *progress.PracticeConfig

	state     *sess.SessionState
	input     components.TextInput
	revealed  int
	interval  time.Duration
	finishing bool
	errMsg    string
}

var (
	_ screen.Screen          = (*PlayScreen)(nil)
	_ screen.KeyHintProvider = (*PlayScreen)(nil)
	_ screen.EscInterceptor  = (*PlayScreen)(nil)
)

// New creates a PlayScreen for a register stage.
func New(svc *sess.Service, cfg progress.PlayConfig) *PlayScreen {
	return &PlayScreen{
		svc:      svc,
		cfg:      cfg,
		interval: cfg.ReadingSpeed.Interval(),
		input:    newAnswerInput(),
	}
}

// NewPractice creates a PlayScreen for a practice sheet. Mitori terms are
// shown all at once, as on a printed sheet.
func NewPractice(svc *sess.Service, cfg progress.PracticeConfig) *PlayScreen {
	return &PlayScreen{
		svc:      svc,
		practice: &cfg,
		input:    newAnswerInput(),
	}
}

func newAnswerInput() components.TextInput {
	return components.NewTextInput("Type your answer...", true, 16)
}

func (s *PlayScreen) Init() tea.Cmd {
	return tea.Batch(
		s.start(),
		s.input.Init(),
	)
}

func (s *PlayScreen) Title() string {
	if s.practice != nil {
		return "Practice"
	}
	return "Play"
}

// InterceptsEsc keeps Esc for the quit dialog while a session runs.
func (s *PlayScreen) InterceptsEsc() bool {
	return s.state != nil && s.errMsg == ""
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	if s.state == nil {
		return nil
	}
	if s.state.ShowingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End stage"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.state.ShowingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *PlayScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.state == nil {
		return renderLoading(width)
	}
	if s.finishing {
		return renderSaving(width)
	}
	if s.state.ShowingQuitConfirm {
		return renderQuitConfirm(width, s.practice != nil)
	}
	if s.state.ShowingFeedback {
		return s.renderFeedback(width)
	}
	return s.renderProblemView(width)
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return s.handleStarted(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case revealTickMsg:
		return s.handleReveal(msg)

	case finishedMsg:
		return s.handleFinished(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.answering() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// start builds the plan off the update loop.
func (s *PlayScreen) start() tea.Cmd {
	svc, cfg, practice := s.svc, s.cfg, s.practice
	return func() tea.Msg {
		ctx := context.Background()
		var (
			state *sess.SessionState
			err   error
		)
		if practice != nil {
			state, err = svc.StartPractice(ctx, *practice)
		} else {
			state, err = svc.Start(ctx, cfg)
		}
		return startedMsg{State: state, Err: err}
	}
}

func (s *PlayScreen) handleStarted(msg startedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.state = msg.State
	return s, tea.Batch(tickCmd(), s.beginProblem())
}

func (s *PlayScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.state == nil || s.finishing || s.state.Phase >= sess.PhaseEnding {
		return s, nil
	}
	sess.Tick(s.state, time.Since(s.state.StartTime))
	if s.state.Phase == sess.PhaseEnding {
		s.state.ShowingQuitConfirm = false
		return s, s.finish()
	}
	return s, tickCmd()
}

func (s *PlayScreen) handleReveal(msg revealTickMsg) (screen.Screen, tea.Cmd) {
	if s.state == nil || msg.Index != s.state.Current {
		return s, nil
	}
	p := sess.CurrentProblem(s.state)
	if p == nil {
		return s, nil
	}
	s.revealed++
	if s.revealed < components.ProblemLines(*p) {
		return s, revealCmd(s.state.Current, s.interval)
	}
	return s, nil
}

func (s *PlayScreen) handleFinished(msg finishedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.finishing = false
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	next := newSummaryScreenAdapter(s.state.Plan, msg.Result)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.state == nil || s.finishing {
		return s, nil
	}

	if s.state.ShowingQuitConfirm {
		switch key {
		case "y", "Y":
			sess.Quit(s.state)
			return s, s.finish()
		case "n", "N", "esc":
			s.state.ShowingQuitConfirm = false
		}
		return s, nil
	}

	// Feedback overlay: any key dismisses.
	if s.state.ShowingFeedback {
		if !sess.NextProblem(s.state) {
			return s, s.finish()
		}
		return s, s.beginProblem()
	}

	if s.state.Phase == sess.PhaseActive {
		switch key {
		case "esc":
			s.state.ShowingQuitConfirm = true
			return s, nil
		case "enter":
			return s.submitAnswer()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PlayScreen) answering() bool {
	return s.state != nil && !s.finishing &&
		s.state.Phase == sess.PhaseActive &&
		!s.state.ShowingQuitConfirm
}

// submitAnswer checks the typed answer and shows feedback.
func (s *PlayScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	value := s.input.Value()
	if value == "" {
		return s, nil
	}
	if sess.HandleAnswer(s.state, value) {
		s.input.Submit(s.state.LastAnswerCorrect)
	}
	return s, nil
}

// beginProblem resets the input for the current problem and starts the
// mitori reveal when reading is paced.
func (s *PlayScreen) beginProblem() tea.Cmd {
	s.input.Reset()
	p := sess.CurrentProblem(s.state)
	if p == nil {
		return nil
	}
	lines := components.ProblemLines(*p)
	if s.interval <= 0 || p.Kind != problemgen.KindVertical || p.Subject != specs.SubjectMitori || lines < 2 {
		s.revealed = lines
		return s.input.Init()
	}
	s.revealed = 1
	return tea.Batch(s.input.Init(), revealCmd(s.state.Current, s.interval))
}

// finish scores and saves the session.
func (s *PlayScreen) finish() tea.Cmd {
	s.finishing = true
	svc, state := s.svc, s.state
	return func() tea.Msg {
		res, err := svc.Finish(context.Background(), state)
		return finishedMsg{Result: res, Err: err}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func revealCmd(index int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return revealTickMsg{Index: index}
	})
}
