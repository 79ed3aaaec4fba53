package pantry

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testInventory returns an inventory with a sequential ID generator and a
// fixed clock, so tests see stable identities and timestamps.
func testInventory(t *testing.T) *Inventory {
	t.Helper()
	n := 0
	return NewInventory(
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
		WithClock(func() time.Time {
			return time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
		}),
	)
}

func TestInventory_AddGeneratesIdentityAndTimestamp(t *testing.T) {
	inv := testInventory(t)

	added := inv.Add([]Draft{{Name: "tomates"}, {Name: "lait"}})
	require.Len(t, added, 2)

	assert.Equal(t, "id-1", added[0].ID)
	assert.Equal(t, "id-2", added[1].ID)
	assert.NotEqual(t, added[0].ID, added[1].ID, "identities must be unique")
	assert.Equal(t, "Tomates", added[0].Name, "name should be capitalized")
	assert.Equal(t, "Lait", added[1].Name)
	assert.False(t, added[0].AddedAt.IsZero())
	assert.Nil(t, added[0].ExpiresAt)
}

func TestInventory_AddPreservesExpirationDate(t *testing.T) {
	inv := testInventory(t)
	expires := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)

	added := inv.Add([]Draft{{Name: "yaourt", ExpiresAt: &expires}})
	require.Len(t, added, 1)
	require.NotNil(t, added[0].ExpiresAt)
	assert.True(t, added[0].ExpiresAt.Equal(expires))
}

func TestInventory_ItemsInsertionOrder(t *testing.T) {
	inv := testInventory(t)
	inv.Add([]Draft{{Name: "a"}, {Name: "b"}})
	inv.Add([]Draft{{Name: "c"}})

	items := inv.Items()
	require.Len(t, items, 3)
	assert.Equal(t, []string{"A", "B", "C"}, inv.Names())
}

func TestInventory_RemoveUnknownIsNoop(t *testing.T) {
	inv := testInventory(t)
	inv.Add([]Draft{{Name: "a"}, {Name: "b"}})

	before := inv.Items()
	removed := inv.Remove("no-such-id")

	assert.False(t, removed)
	assert.Equal(t, before, inv.Items(), "contents and order must be unchanged")
}

func TestInventory_RemoveByIdentity(t *testing.T) {
	inv := testInventory(t)
	added := inv.Add([]Draft{{Name: "a"}, {Name: "b"}, {Name: "c"}})

	removed := inv.Remove(added[1].ID)
	require.True(t, removed)

	assert.Equal(t, []string{"A", "C"}, inv.Names(), "remaining items keep their order")
	_, ok := inv.Get(added[1].ID)
	assert.False(t, ok)
}

func TestInventory_ItemsReturnsCopy(t *testing.T) {
	inv := testInventory(t)
	inv.Add([]Draft{{Name: "a"}})

	items := inv.Items()
	items[0].Name = "Mutated"

	assert.Equal(t, "A", inv.Items()[0].Name, "stored item must not change through the returned slice")
}

func TestInventory_Restore(t *testing.T) {
	added := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	items := []Item{
		{ID: "x-1", Name: "Oeufs", AddedAt: added},
		{ID: "x-2", Name: "Beurre", AddedAt: added},
	}

	inv := Restore(items)
	assert.Equal(t, 2, inv.Len())

	got, ok := inv.Get("x-1")
	require.True(t, ok)
	assert.Equal(t, "Oeufs", got.Name)
	assert.True(t, got.AddedAt.Equal(added), "restored timestamps are preserved")
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"tomates", "Tomates"},
		{"Lait", "Lait"},
		{"œufs", "Œufs"},
		{"", ""},
		{"a", "A"},
		{"pommes de terre", "Pommes de terre"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeName(tt.in), "NormalizeName(%q)", tt.in)
	}
}
