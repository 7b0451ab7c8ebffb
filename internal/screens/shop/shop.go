package shop

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/badges"
	"github.com/abhisek/soroban/internal/progress"
	"github.com/abhisek/soroban/internal/screen"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/ui/layout"
	"github.com/abhisek/soroban/internal/ui/theme"
)

type tab int

const (
	tabCatalog tab = iota
	tabShelf
	tabBadges
)

var tabNames = []string{"Catalog", "Shelf", "Badges"}

type progressLoadedMsg struct {
	Progress progress.RegisterProgress
	Err      error
}

type progressSavedMsg struct {
	Progress progress.RegisterProgress
	Notice   string
	Err      error
}

// ShopScreen sells shelf items for coins and shows the shelf and badges.
type ShopScreen struct {
	svc      *session.Service
	progress progress.RegisterProgress
	catalog  []progress.Item
	tab      tab
	cursor   int // catalog row, shelf slot or badge row
	loaded   bool
	saving   bool
	notice   string
	errMsg   string
}

var _ screen.Screen = (*ShopScreen)(nil)
var _ screen.KeyHintProvider = (*ShopScreen)(nil)

// New creates a new ShopScreen.
func New(svc *session.Service) *ShopScreen {
	return &ShopScreen{
		svc:     svc,
		catalog: progress.Catalog(),
	}
}

func (s *ShopScreen) Init() tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		p, err := svc.LoadProgress(context.Background())
		return progressLoadedMsg{Progress: p, Err: err}
	}
}

func (s *ShopScreen) Title() string {
	return "Shop"
}

func (s *ShopScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "Switch"}}
	switch s.tab {
	case tabCatalog:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Buy"})
	case tabShelf:
		hints = append(hints,
			layout.KeyHint{Key: "Enter", Description: "Place"},
			layout.KeyHint{Key: "X", Description: "Clear"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *ShopScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.progress = msg.Progress
		}
		s.loaded = true
		return s, nil

	case progressSavedMsg:
		s.saving = false
		if msg.Err != nil {
			s.notice = msg.Err.Error()
			return s, nil
		}
		s.progress = msg.Progress
		s.notice = msg.Notice
		coins := msg.Progress.Coins
		return s, func() tea.Msg { return screen.StatusMsg{Coins: coins} }

	case tea.KeyMsg:
		if !s.loaded || s.saving || s.errMsg != "" {
			return s, nil
		}
		return s.handleKey(msg.String())
	}
	return s, nil
}

func (s *ShopScreen) handleKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "tab":
		s.tab = (s.tab + 1) % tab(len(tabNames))
		s.cursor = 0
		s.notice = ""
		return s, nil
	case "shift+tab":
		s.tab = (s.tab + tab(len(tabNames)) - 1) % tab(len(tabNames))
		s.cursor = 0
		s.notice = ""
		return s, nil
	}

	switch s.tab {
	case tabCatalog:
		switch key {
		case "up", "k":
			s.cursor = max(s.cursor-1, 0)
		case "down", "j":
			s.cursor = min(s.cursor+1, len(s.catalog)-1)
		case "enter":
			return s, s.buy(s.catalog[s.cursor])
		}
	case tabShelf:
		cols := max(s.progress.ShelfCols, 1)
		last := len(s.progress.ShelfSlots) - 1
		switch key {
		case "left", "h":
			s.cursor = max(s.cursor-1, 0)
		case "right", "l":
			s.cursor = min(s.cursor+1, last)
		case "up", "k":
			if s.cursor-cols >= 0 {
				s.cursor -= cols
			}
		case "down", "j":
			if s.cursor+cols <= last {
				s.cursor += cols
			}
		case "enter":
			return s, s.cycleSlot()
		case "x", "delete", "backspace":
			return s, s.clearSlot()
		}
	case tabBadges:
		n := len(s.progress.BadgeIDs)
		switch key {
		case "up", "k":
			s.cursor = max(s.cursor-1, 0)
		case "down", "j":
			s.cursor = max(min(s.cursor+1, n-1), 0)
		}
	}
	return s, nil
}

// buy purchases an item and places it on the first empty shelf slot.
func (s *ShopScreen) buy(item progress.Item) tea.Cmd {
	next, err := progress.Purchase(s.progress, item.ID)
	if err != nil {
		switch {
		case errors.Is(err, progress.ErrInsufficientCoins):
			s.notice = fmt.Sprintf("%s costs %d coins, you have %d.", item.Name, item.Price, s.progress.Coins)
		case errors.Is(err, progress.ErrAlreadyOwned):
			s.notice = "You already own " + item.Name + "."
		default:
			s.notice = err.Error()
		}
		return nil
	}
	if slot := slices.Index(next.ShelfSlots, ""); slot >= 0 {
		if placed, err := progress.PlaceOnShelf(next, slot, item.ID); err == nil {
			next = placed
		}
	}
	return s.save(next, "Bought "+item.Icon+" "+item.Name+"!")
}

// cycleSlot puts the next owned item into the selected slot.
func (s *ShopScreen) cycleSlot() tea.Cmd {
	owned := s.progress.PurchasedItemIDs
	if len(owned) == 0 {
		s.notice = "Buy something from the catalog first."
		return nil
	}
	if s.cursor >= len(s.progress.ShelfSlots) {
		return nil
	}
	current := slices.Index(owned, s.progress.ShelfSlots[s.cursor])
	id := owned[(current+1)%len(owned)]
	next, err := progress.PlaceOnShelf(s.progress, s.cursor, id)
	if err != nil {
		s.notice = err.Error()
		return nil
	}
	return s.save(next, "")
}

func (s *ShopScreen) clearSlot() tea.Cmd {
	next, err := progress.ClearShelfSlot(s.progress, s.cursor)
	if err != nil {
		s.notice = err.Error()
		return nil
	}
	return s.save(next, "")
}

func (s *ShopScreen) save(p progress.RegisterProgress, notice string) tea.Cmd {
	s.saving = true
	svc := s.svc
	return func() tea.Msg {
		if err := svc.SaveProgress(context.Background(), p); err != nil {
			return progressSavedMsg{Err: err}
		}
		return progressSavedMsg{Progress: p, Notice: notice}
	}
}

func (s *ShopScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Opening the shop...")
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Coin).Bold(true).
		Render(fmt.Sprintf("\n● %d coins\n", s.progress.Coins)))
	b.WriteString("\n")

	var tabs []string
	for i, name := range tabNames {
		if tab(i) == s.tab {
			tabs = append(tabs, theme.Selected.Render(name))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(name))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "     ")))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	var body string
	switch s.tab {
	case tabCatalog:
		body = s.renderCatalog()
	case tabShelf:
		body = s.renderShelf()
	case tabBadges:
		body = s.renderBadges(max(height-10, 3))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Accent).
			Render(s.notice))
	}
	return b.String()
}

func (s *ShopScreen) renderCatalog() string {
	var lines []string
	for i, item := range s.catalog {
		owned := slices.Contains(s.progress.PurchasedItemIDs, item.ID)
		prefix := "  "
		if i == s.cursor {
			prefix = "▸ "
		}
		status := fmt.Sprintf("● %4d", item.Price)
		if owned {
			status = "owned "
		}
		line := fmt.Sprintf("%s%s %-16s %s", prefix, item.Icon, item.Name, status)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == s.cursor:
			style = style.Foreground(theme.Primary).Bold(true)
		case owned:
			style = style.Foreground(theme.Success)
		case item.Price > s.progress.Coins:
			style = theme.Locked
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}

// renderShelf draws the shelf grid with the selected slot highlighted.
func (s *ShopScreen) renderShelf() string {
	cols := max(s.progress.ShelfCols, 1)
	cell := lipgloss.NewStyle().
		Width(4).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Bead)
	selected := cell.BorderForeground(theme.ArcadeYellow)

	var rows []string
	for start := 0; start < len(s.progress.ShelfSlots); start += cols {
		var cells []string
		for i := start; i < min(start+cols, len(s.progress.ShelfSlots)); i++ {
			icon := " "
			if item, ok := progress.LookupItem(s.progress.ShelfSlots[i]); ok {
				icon = item.Icon
			}
			style := cell
			if i == s.cursor {
				style = selected
			}
			cells = append(cells, style.Render(icon))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	label := "empty slot"
	if s.cursor < len(s.progress.ShelfSlots) {
		if item, ok := progress.LookupItem(s.progress.ShelfSlots[s.cursor]); ok {
			label = item.Name
		}
	}
	rows = append(rows, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (s *ShopScreen) renderBadges(maxVisible int) string {
	if len(s.progress.BadgeIDs) == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("No badges yet. Clear a stage with rank C or better!")
	}
	start := 0
	if s.cursor >= maxVisible {
		start = s.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(s.progress.BadgeIDs))

	var lines []string
	for i := start; i < end; i++ {
		b, ok := badges.Parse(s.progress.BadgeIDs[i])
		if !ok {
			continue
		}
		line := fmt.Sprintf("%s %-32s %s", b.Rank.Icon(), b.DisplayName(), b.Rank)
		style := lipgloss.NewStyle().Foreground(theme.RankColor(string(b.Rank)))
		if i == s.cursor {
			style = style.Bold(true)
			line = "▸ " + line
		} else {
			line = "  " + line
		}
		lines = append(lines, style.Render(line))
	}
	if end < len(s.progress.BadgeIDs) {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(s.progress.BadgeIDs)-end)))
	}
	return strings.Join(lines, "\n")
}
