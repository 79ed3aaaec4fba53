package account

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Charles-pyt/Frigo-Ai/internal/store"
)

func testGate(t *testing.T) (*Gate, *Credentials) {
	t.Helper()
	session := store.NewMemory()
	creds := NewCredentials(store.NewMemory(), session)
	return NewGate(creds, session), creds
}

func TestGate_RunsImmediatelyWithSession(t *testing.T) {
	gate, creds := testGate(t)
	require.NoError(t, creds.Register("a@b.c", "pw"))

	calls := 0
	ran, err := gate.Run(PendingAction{Kind: "generate_recipes"}, func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, 1, calls)

	_, pending, err := gate.Resolve()
	require.NoError(t, err)
	assert.False(t, pending, "nothing should be captured when the action ran")
}

func TestGate_DefersWithoutSession(t *testing.T) {
	gate, _ := testGate(t)

	calls := 0
	ran, err := gate.Run(PendingAction{Kind: "generate_recipes"}, func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.False(t, ran, "no session: caller must present the login interface")
	assert.Equal(t, 0, calls, "the action must not run before authentication")

	p, pending, err := gate.Resolve()
	require.NoError(t, err)
	require.True(t, pending)
	assert.Equal(t, "generate_recipes", p.Kind)
}

func TestGate_ResolveClearsBeforeReturning(t *testing.T) {
	gate, _ := testGate(t)

	_, err := gate.Run(PendingAction{Kind: "generate_recipes"}, nil)
	require.NoError(t, err)

	_, pending, err := gate.Resolve()
	require.NoError(t, err)
	require.True(t, pending)

	// Exactly once: a second resolve finds nothing.
	_, pending, err = gate.Resolve()
	require.NoError(t, err)
	assert.False(t, pending)
}

func TestGate_LastWriterWins(t *testing.T) {
	gate, _ := testGate(t)

	first, err := json.Marshal(map[string]int{"attempt": 1})
	require.NoError(t, err)
	second, err := json.Marshal(map[string]int{"attempt": 2})
	require.NoError(t, err)

	_, err = gate.Run(PendingAction{Kind: "add_items", Payload: first}, nil)
	require.NoError(t, err)
	_, err = gate.Run(PendingAction{Kind: "add_items", Payload: second}, nil)
	require.NoError(t, err)

	p, pending, err := gate.Resolve()
	require.NoError(t, err)
	require.True(t, pending)
	assert.JSONEq(t, `{"attempt":2}`, string(p.Payload), "second attempt overwrites the first")
}

func TestGate_DismissDiscards(t *testing.T) {
	gate, _ := testGate(t)

	_, err := gate.Run(PendingAction{Kind: "generate_recipes"}, nil)
	require.NoError(t, err)

	require.NoError(t, gate.Dismiss())

	_, pending, err := gate.Resolve()
	require.NoError(t, err)
	assert.False(t, pending, "dismissed action must not be invoked later")
}

func TestGate_RunErrorPropagates(t *testing.T) {
	gate, creds := testGate(t)
	require.NoError(t, creds.Register("a@b.c", "pw"))

	wantErr := assert.AnError
	ran, err := gate.Run(PendingAction{Kind: "generate_recipes"}, func() error {
		return wantErr
	})

	assert.True(t, ran)
	assert.ErrorIs(t, err, wantErr)
}
