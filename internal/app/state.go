package app

import (
	"encoding/json"
	"fmt"

	"github.com/Charles-pyt/Frigo-Ai/internal/pantry"
	"github.com/Charles-pyt/Frigo-Ai/internal/recipe"
	"github.com/Charles-pyt/Frigo-Ai/internal/store"
)

// stateKey holds the serialized working state in the session scope.
// Inventory and recipes deliberately live here and not in the durable
// store: they exist only for the lifetime of the session.
const stateKey = "appState"

// View is the screen the front end is showing.
type View int

const (
	// ViewInventory is the default view: items, freshness, recipes.
	ViewInventory View = iota
	// ViewScan is the camera/confirm flow.
	ViewScan
)

// String returns the view's wire name.
func (v View) String() string {
	switch v {
	case ViewInventory:
		return "inventory"
	case ViewScan:
		return "scan"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// sessionState is the JSON document persisted between commands within a
// session.
type sessionState struct {
	Items   []pantry.Item   `json:"inventory"`
	Recipes []recipe.Recipe `json:"recipes"`
	View    string          `json:"view"`
}

// loadState reads the working state, returning a zero state when none
// has been written yet.
func loadState(scratch store.KV) (sessionState, error) {
	raw, ok, err := scratch.Get(stateKey)
	if err != nil {
		return sessionState{}, fmt.Errorf("read session state: %w", err)
	}
	if !ok {
		return sessionState{}, nil
	}

	var st sessionState
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return sessionState{}, fmt.Errorf("decode session state: %w", err)
	}
	return st, nil
}

// saveState writes the working state back to the session scope.
func saveState(scratch store.KV, st sessionState) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}
	if err := scratch.Set(stateKey, string(raw)); err != nil {
		return fmt.Errorf("write session state: %w", err)
	}
	return nil
}

func viewFromString(s string) View {
	if s == "scan" {
		return ViewScan
	}
	return ViewInventory
}
