package shop

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/soroban/internal/badges"
	"github.com/abhisek/soroban/internal/progress"
	"github.com/abhisek/soroban/internal/rng"
	"github.com/abhisek/soroban/internal/screen"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/specs"
	"github.com/abhisek/soroban/internal/store"
)

const body = specs.ExamZenshuren

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newShop(t *testing.T, coins int) (*ShopScreen, *session.Service) {
	t.Helper()
	st, err := store.Open("file:"+t.Name()+"?mode=memory&cache=shared", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	svc := session.NewService(st, body, rng.New(1), zap.NewNop())

	p := progress.New(body)
	p.Coins = coins
	require.NoError(t, svc.SaveProgress(context.Background(), p))

	s := New(svc)
	s.Update(s.Init()())
	require.True(t, s.loaded)
	return s, svc
}

// press sends a key and runs any save command it starts.
func press(t *testing.T, s *ShopScreen, msg tea.KeyPressMsg) tea.Msg {
	t.Helper()
	_, cmd := s.Update(msg)
	if cmd == nil {
		return nil
	}
	_, status := s.Update(cmd())
	if status == nil {
		return nil
	}
	return status()
}

func TestShop_Buy(t *testing.T) {
	s, svc := newShop(t, 100)
	first := progress.Catalog()[0]

	msg := press(t, s, specialKey(tea.KeyEnter))
	assert.Equal(t, screen.StatusMsg{Coins: 100 - first.Price}, msg)
	assert.Contains(t, s.notice, "Bought")

	p, err := svc.LoadProgress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100-first.Price, p.Coins)
	assert.Equal(t, []string{first.ID}, p.PurchasedItemIDs)
	assert.Equal(t, first.ID, p.ShelfSlots[0])
}

func TestShop_BuyErrors(t *testing.T) {
	s, _ := newShop(t, 40)

	press(t, s, specialKey(tea.KeyEnter))
	press(t, s, specialKey(tea.KeyEnter))
	assert.Contains(t, s.notice, "already own")

	s.Update(specialKey(tea.KeyDown))
	assert.Nil(t, press(t, s, specialKey(tea.KeyEnter)))
	assert.Contains(t, s.notice, "costs")
	assert.Equal(t, 40-progress.Catalog()[0].Price, s.progress.Coins)
}

func TestShop_Shelf(t *testing.T) {
	s, svc := newShop(t, 100)
	first := progress.Catalog()[0]
	press(t, s, specialKey(tea.KeyEnter))

	s.Update(specialKey(tea.KeyTab))
	require.Equal(t, tabShelf, s.tab)

	s.Update(specialKey(tea.KeyRight))
	press(t, s, specialKey(tea.KeyEnter))
	assert.Equal(t, "", s.progress.ShelfSlots[0])
	assert.Equal(t, first.ID, s.progress.ShelfSlots[1])
	assert.Contains(t, s.View(100, 30), first.Name)

	press(t, s, keyPress('x'))
	p, err := svc.LoadProgress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", p.ShelfSlots[1])
	assert.Equal(t, []string{first.ID}, p.PurchasedItemIDs)
}

func TestShop_ShelfNeedsItems(t *testing.T) {
	s, _ := newShop(t, 0)
	s.Update(specialKey(tea.KeyTab))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Contains(t, s.notice, "Buy something")
}

func TestShop_Badges(t *testing.T) {
	s, _ := newShop(t, 0)
	s.Update(specialKey(tea.KeyTab))
	s.Update(specialKey(tea.KeyTab))
	assert.Contains(t, s.View(100, 30), "No badges yet")

	s.progress = progress.AddBadge(s.progress, badges.BuildRegisterBadgeID(10, specs.SubjectMitori, badges.RankA))
	assert.Contains(t, s.View(100, 30), "10kyu Mitori")
}
