package progress

import (
	"errors"
	"fmt"
	"slices"

	"github.com/abhisek/soroban/internal/badges"
)

var (
	ErrInsufficientCoins = errors.New("not enough coins")
	ErrAlreadyOwned      = errors.New("item already owned")
	ErrNotOwned          = errors.New("item not owned")
	ErrUnknownItem       = errors.New("unknown item")
	ErrSlotOutOfRange    = errors.New("shelf slot out of range")
	ErrStageLocked       = errors.New("stage is locked")
)

// Item is something the shop sells for the shelf.
type Item struct {
	ID    string
	Name  string
	Icon  string
	Price int
}

var catalog = []Item{
	{ID: "abacus-mini", Name: "Mini Abacus", Icon: "🧮", Price: 30},
	{ID: "cat-lucky", Name: "Lucky Cat", Icon: "🐱", Price: 60},
	{ID: "daruma", Name: "Daruma", Icon: "🎎", Price: 90},
	{ID: "lantern", Name: "Paper Lantern", Icon: "🏮", Price: 120},
	{ID: "bonsai", Name: "Bonsai", Icon: "🌳", Price: 180},
	{ID: "fuji", Name: "Mt. Fuji Print", Icon: "🗻", Price: 250},
	{ID: "koi", Name: "Koi Bowl", Icon: "🐟", Price: 320},
	{ID: "abacus-gold", Name: "Golden Abacus", Icon: "🏆", Price: 800},
}

// Catalog returns the shop items, cheapest first.
func Catalog() []Item {
	return slices.Clone(catalog)
}

// LookupItem finds a catalog item by id.
func LookupItem(id string) (Item, bool) {
	i := slices.IndexFunc(catalog, func(it Item) bool { return it.ID == id })
	if i < 0 {
		return Item{}, false
	}
	return catalog[i], true
}

// Purchase buys an item, deducting its price.
func Purchase(p RegisterProgress, itemID string) (RegisterProgress, error) {
	item, ok := LookupItem(itemID)
	if !ok {
		return p, fmt.Errorf("purchase %q: %w", itemID, ErrUnknownItem)
	}
	if slices.Contains(p.PurchasedItemIDs, item.ID) {
		return p, fmt.Errorf("purchase %q: %w", itemID, ErrAlreadyOwned)
	}
	if p.Coins < item.Price {
		return p, fmt.Errorf("purchase %q costs %d, have %d: %w", itemID, item.Price, p.Coins, ErrInsufficientCoins)
	}
	out := clone(p)
	out.Coins -= item.Price
	out.PurchasedItemIDs = append(out.PurchasedItemIDs, item.ID)
	return out, nil
}

// PlaceOnShelf puts an owned item into a slot, moving it if it is
// already on the shelf. Whatever was in the slot is removed.
func PlaceOnShelf(p RegisterProgress, slot int, itemID string) (RegisterProgress, error) {
	if slot < 0 || slot >= len(p.ShelfSlots) {
		return p, fmt.Errorf("place in slot %d: %w", slot, ErrSlotOutOfRange)
	}
	if !slices.Contains(p.PurchasedItemIDs, itemID) {
		return p, fmt.Errorf("place %q: %w", itemID, ErrNotOwned)
	}
	out := clone(p)
	for i, id := range out.ShelfSlots {
		if id == itemID {
			out.ShelfSlots[i] = ""
		}
	}
	out.ShelfSlots[slot] = itemID
	return out, nil
}

// ClearShelfSlot empties a slot.
func ClearShelfSlot(p RegisterProgress, slot int) (RegisterProgress, error) {
	if slot < 0 || slot >= len(p.ShelfSlots) {
		return p, fmt.Errorf("clear slot %d: %w", slot, ErrSlotOutOfRange)
	}
	out := clone(p)
	out.ShelfSlots[slot] = ""
	return out, nil
}

// ResizeShelf changes the shelf dimensions, keeping items whose row and
// column still exist. Sizes are clamped to 1..MaxShelfSide.
func ResizeShelf(p RegisterProgress, rows, cols int) RegisterProgress {
	rows = clampInt(rows, 1, MaxShelfSide)
	cols = clampInt(cols, 1, MaxShelfSide)
	out := clone(p)
	slots := make(Slots, rows*cols)
	for i, id := range p.ShelfSlots {
		if id == "" || p.ShelfCols < 1 {
			continue
		}
		r, c := i/p.ShelfCols, i%p.ShelfCols
		if r < rows && c < cols {
			slots[r*cols+c] = id
		}
	}
	out.ShelfRows, out.ShelfCols, out.ShelfSlots = rows, cols, slots
	return out
}

// AddBadge records a badge id, keeping only the best rank per key.
func AddBadge(p RegisterProgress, id string) RegisterProgress {
	out := clone(p)
	out.BadgeIDs = badges.BestGameBadgeIDs(append(out.BadgeIDs, id))
	return out
}
