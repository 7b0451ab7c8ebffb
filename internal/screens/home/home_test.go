package home

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/soroban/internal/progress"
	"github.com/abhisek/soroban/internal/rng"
	"github.com/abhisek/soroban/internal/router"
	"github.com/abhisek/soroban/internal/screen"
	"github.com/abhisek/soroban/internal/screens/ladder"
	"github.com/abhisek/soroban/internal/screens/play"
	"github.com/abhisek/soroban/internal/screens/shop"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/specs"
	"github.com/abhisek/soroban/internal/store"
)

func newHome(t *testing.T, coins int) *HomeScreen {
	t.Helper()
	st, err := store.Open("file:"+t.Name()+"?mode=memory&cache=shared", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	svc := session.NewService(st, specs.ExamZenshuren, rng.New(9), zap.NewNop())

	p := progress.New(specs.ExamZenshuren)
	p.Coins = coins
	require.NoError(t, svc.SaveProgress(context.Background(), p))
	return New(svc, st.EventRepo())
}

func TestHome_LoadsProgress(t *testing.T) {
	h := newHome(t, 123)
	_, cmd := h.Update(h.Init()())
	require.NotNil(t, cmd)
	assert.Equal(t, screen.StatusMsg{Coins: 123}, cmd())
	assert.Equal(t, 123, h.stats().coins)
	assert.Equal(t, "10kyu", h.stats().frontier)

	assert.Contains(t, h.View(120, 40), "123 COINS")
	assert.Contains(t, h.View(80, 20), "●123")
}

func TestHome_MenuContinue(t *testing.T) {
	h := newHome(t, 0)
	h.Update(h.Init()())

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &play.PlayScreen{}, push.Screen)
}

func TestHome_MenuStages(t *testing.T) {
	h := newHome(t, 0)
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &ladder.LadderScreen{}, push.Screen)
}

func TestHome_MenuExit(t *testing.T) {
	h := newHome(t, 0)
	for range len(h.menuLabels) {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHome_DigitShortcut(t *testing.T) {
	h := newHome(t, 0)
	_, cmd := h.Update(tea.KeyPressMsg{Code: '4', Text: "4"})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &shop.ShopScreen{}, push.Screen)
	assert.Equal(t, 3, h.menu.Selected)
}

func TestHome_CompactMenuNumbered(t *testing.T) {
	h := newHome(t, 0)
	view := h.View(80, 20)
	assert.Contains(t, view, "1 ● CONTINUE")
	assert.Contains(t, view, "6 ○ EXIT GAME")
}

func TestMascotFor(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, MascotIdle, mascotFor(nil, now))
	assert.Equal(t, MascotCelebrating, mascotFor(&store.StageClearEvent{Perfect: true, Cleared: true, Timestamp: now.Add(-time.Hour)}, now))
	assert.Equal(t, MascotIdle, mascotFor(&store.StageClearEvent{Perfect: true, Cleared: true, Timestamp: now.Add(-48 * time.Hour)}, now))
	assert.Equal(t, MascotAlert, mascotFor(&store.StageClearEvent{Timestamp: now}, now))
}
