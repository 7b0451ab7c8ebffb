package ladder

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/soroban/internal/progress"
	"github.com/abhisek/soroban/internal/rng"
	"github.com/abhisek/soroban/internal/router"
	"github.com/abhisek/soroban/internal/screens/play"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/specs"
	"github.com/abhisek/soroban/internal/store"
)

const body = specs.ExamZenshuren

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestService(t *testing.T) *session.Service {
	t.Helper()
	st, err := store.Open("file:"+t.Name()+"?mode=memory&cache=shared", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return session.NewService(st, body, rng.New(3), zap.NewNop())
}

func loaded(t *testing.T, svc *session.Service) *LadderScreen {
	t.Helper()
	s := New(svc)
	s.Update(s.Init()())
	require.True(t, s.loaded)
	return s
}

func TestLadder_StartsOnSavedSelection(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.SavePlayConfig(context.Background(), progress.PlayConfig{
		Grade: progress.StartGrade(body), Subject: specs.SubjectMitori, Stage: 1, ReadingSpeed: progress.ReadingFast,
	}))

	s := loaded(t, svc)
	r := s.rows[s.cursor]
	assert.Equal(t, progress.StartGrade(body), r.grade)
	assert.Equal(t, specs.SubjectMitori, r.subject)
	assert.Equal(t, progress.ReadingFast, s.speed)
}

func TestLadder_Navigation(t *testing.T) {
	s := loaded(t, newTestService(t))
	start := s.rows[s.cursor]

	s.Update(specialKey(tea.KeyDown))
	assert.Equal(t, specs.SubjectMul, s.rows[s.cursor].subject)

	s.Update(specialKey(tea.KeyTab))
	assert.NotEqual(t, start.grade, s.rows[s.cursor].grade)
	assert.Equal(t, rowSubject, s.rows[s.cursor].kind)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, start.grade, s.rows[s.cursor].grade)

	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyRight))
	assert.Equal(t, 3, s.stage)
	for range 10 {
		s.Update(specialKey(tea.KeyRight))
	}
	assert.Equal(t, progress.MaxStage, s.stage)

	s.Update(keyPress('r'))
	assert.Equal(t, progress.ReadingFast, s.speed)
}

func TestLadder_LockedStage(t *testing.T) {
	s := loaded(t, newTestService(t))
	s.Update(specialKey(tea.KeyRight))

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Contains(t, s.notice, "Stage 2 is locked")
	assert.Contains(t, s.View(100, 30), "locked")
}

func TestLadder_LockedSubject(t *testing.T) {
	s := loaded(t, newTestService(t))
	s.Update(specialKey(tea.KeyDown))

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.True(t, strings.HasPrefix(s.notice, specs.SubjectMul.DisplayName()))
}

func TestLadder_PlayStage(t *testing.T) {
	svc := newTestService(t)
	s := loaded(t, svc)
	s.Update(keyPress('r'))

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	_, cmd = s.Update(cmd())
	require.NotNil(t, cmd)

	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &play.PlayScreen{}, push.Screen)

	p, err := svc.LoadProgress(context.Background())
	require.NoError(t, err)
	cfg, err := svc.LoadPlayConfig(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, progress.ReadingFast, cfg.ReadingSpeed)
	assert.Equal(t, specs.SubjectMitori, cfg.Subject)
}

func TestLadder_View(t *testing.T) {
	s := loaded(t, newTestService(t))
	view := s.View(100, 20)
	assert.Contains(t, view, strings.ToUpper(progress.StartGrade(body).String()))
	assert.Contains(t, view, "◎")
	assert.Contains(t, view, "🔒")
}
