package home

import (
	"context"
	"slices"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/soroban/internal/progress"
	"github.com/abhisek/soroban/internal/router"
	"github.com/abhisek/soroban/internal/screen"
	"github.com/abhisek/soroban/internal/screens/history"
	"github.com/abhisek/soroban/internal/screens/ladder"
	"github.com/abhisek/soroban/internal/screens/play"
	"github.com/abhisek/soroban/internal/screens/practice"
	"github.com/abhisek/soroban/internal/screens/shop"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/store"
	"github.com/abhisek/soroban/internal/ui/components"
	"github.com/abhisek/soroban/internal/ui/layout"
)

// loadedMsg carries the state the home screen shows.
type loadedMsg struct {
	progress progress.RegisterProgress
	playCfg  progress.PlayConfig
	last     *store.StageClearEvent
	err      error
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	svc    *session.Service
	events store.EventRepo

	menu       components.Menu
	menuLabels []string

	progress progress.RegisterProgress
	playCfg  progress.PlayConfig
	mascot   MascotVariant
	err      error
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. Progress is loaded by Init.
func New(svc *session.Service, events store.EventRepo) *HomeScreen {
	h := &HomeScreen{
		svc:      svc,
		events:   events,
		progress: progress.New(svc.ExamBody()),
		playCfg:  progress.DefaultPlayConfig(svc.ExamBody()),
	}

	h.menuLabels = []string{"CONTINUE", "STAGES", "PRACTICE", "SHOP", "HISTORY", "EXIT GAME"}
	push := func(s screen.Screen) tea.Cmd {
		return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
	}
	items := []components.MenuItem{
		{Label: h.menuLabels[0], Action: func() tea.Cmd {
			return push(play.New(h.svc, h.playCfg))
		}},
		{Label: h.menuLabels[1], Action: func() tea.Cmd {
			return push(ladder.New(h.svc))
		}},
		{Label: h.menuLabels[2], Action: func() tea.Cmd {
			return push(practice.New(h.svc))
		}},
		{Label: h.menuLabels[3], Action: func() tea.Cmd {
			return push(shop.New(h.svc))
		}},
		{Label: h.menuLabels[4], Action: func() tea.Cmd {
			return push(history.New(h.events))
		}},
		{Label: h.menuLabels[5], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	svc, events := h.svc, h.events
	return func() tea.Msg {
		ctx := context.Background()
		p, err := svc.LoadProgress(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		cfg, err := svc.LoadPlayConfig(ctx, p)
		if err != nil {
			return loadedMsg{err: err}
		}
		msg := loadedMsg{progress: p, playCfg: cfg}
		if events != nil {
			recent, err := events.ListStageClears(ctx, store.QueryOpts{Limit: 1})
			if err == nil && len(recent) > 0 {
				msg.last = &recent[0]
			}
		}
		return msg
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(loadedMsg); ok {
		if msg.err != nil {
			h.err = msg.err
			return h, nil
		}
		h.err = nil
		h.progress = msg.progress
		h.playCfg = msg.playCfg
		h.mascot = mascotFor(msg.last, time.Now())
		coins := msg.progress.Coins
		return h, func() tea.Msg { return screen.StatusMsg{Coins: coins} }
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// mascotFor picks the mascot mood from the most recent stage result.
func mascotFor(last *store.StageClearEvent, now time.Time) MascotVariant {
	switch {
	case last == nil:
		return MascotIdle
	case last.Perfect && now.Sub(last.Timestamp) < 24*time.Hour:
		return MascotCelebrating
	case !last.Cleared:
		return MascotAlert
	}
	return MascotIdle
}

func (h *HomeScreen) stats() stats {
	frontier := "-"
	// Grade 1 is the hardest, so the frontier is the smallest unlocked.
	if len(h.progress.UnlockedGrades) > 0 {
		frontier = slices.Min(h.progress.UnlockedGrades).String()
	}
	return stats{
		coins:    h.progress.Coins,
		frontier: frontier,
		badges:   len(h.progress.BadgeIDs),
	}
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascot, cw))
	}
	sections = append(sections, renderStatsBar(h.stats(), cw, compact))
	if !compact {
		sections = append(sections, components.ReckoningBar(cw))
	}
	if h.err != nil {
		sections = append(sections, renderError(h.err, cw))
	}
	if termHeight < 34 {
		sections = append(sections, renderArcadeMenuCompact(h.menu.Labels(), h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menu.Labels(), h.menu.Selected, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
