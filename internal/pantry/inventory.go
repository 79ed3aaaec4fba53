package pantry

import (
	"time"

	"github.com/google/uuid"
)

// Inventory is the ordered in-memory collection of items.
//
// Insertion order is preserved by Items(). No operation mutates a stored
// item's fields - the only transitions are append and removal.
//
// Inventory is not safe for concurrent use; the application mutates all
// state from a single logical thread.
type Inventory struct {
	items []Item
	newID func() string
	now   func() time.Time
}

// InventoryOption configures an Inventory.
type InventoryOption func(*Inventory)

// WithClock overrides the add-timestamp source. Tests inject a fixed clock
// here so classification boundaries are deterministic.
func WithClock(now func() time.Time) InventoryOption {
	return func(inv *Inventory) {
		inv.now = now
	}
}

// WithIDGenerator overrides identity generation. Tests inject a sequential
// generator to get stable IDs.
func WithIDGenerator(newID func() string) InventoryOption {
	return func(inv *Inventory) {
		inv.newID = newID
	}
}

// NewInventory creates an empty inventory.
func NewInventory(opts ...InventoryOption) *Inventory {
	inv := &Inventory{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Restore creates an inventory pre-populated with items, preserving their
// original identities and timestamps. Used when reloading session state.
func Restore(items []Item, opts ...InventoryOption) *Inventory {
	inv := NewInventory(opts...)
	inv.items = append(inv.items, items...)
	return inv
}

// Add appends one new item per draft, each with a freshly generated
// identity and an add-timestamp of now. Names are normalized for display.
// Returns the created items in the order they were appended.
func (inv *Inventory) Add(drafts []Draft) []Item {
	added := make([]Item, 0, len(drafts))
	now := inv.now()
	for _, d := range drafts {
		item := Item{
			ID:        inv.newID(),
			Name:      NormalizeName(d.Name),
			AddedAt:   now,
			ExpiresAt: d.ExpiresAt,
		}
		inv.items = append(inv.items, item)
		added = append(added, item)
	}
	return added
}

// Remove deletes the item with the given identity. Removing an unknown
// identity is a no-op, not an error; the return reports whether anything
// was removed.
func (inv *Inventory) Remove(id string) bool {
	for i, item := range inv.items {
		if item.ID == id {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the item with the given identity.
func (inv *Inventory) Get(id string) (Item, bool) {
	for _, item := range inv.items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// Items returns the items in insertion order. The slice is a copy; callers
// cannot mutate stored state through it.
func (inv *Inventory) Items() []Item {
	out := make([]Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Names returns the display names in insertion order, the shape the
// recipe-generation call wants.
func (inv *Inventory) Names() []string {
	names := make([]string, len(inv.items))
	for i, item := range inv.items {
		names[i] = item.Name
	}
	return names
}

// Len returns the number of stored items.
func (inv *Inventory) Len() int {
	return len(inv.items)
}
