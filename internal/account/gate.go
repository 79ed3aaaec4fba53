package account

import (
	"encoding/json"
	"fmt"

	"github.com/Charles-pyt/Frigo-Ai/internal/store"
)

// pendingKey holds the serialized pending action in the session scope.
const pendingKey = "pendingAction"

// PendingAction is the one action captured when a gated attempt finds no
// active session.
//
// It is an explicit {kind, payload} value rather than a stored closure:
// serializable, inspectable, and executable without trusting arbitrary
// code. The orchestrator owns the kinds and knows how to perform each.
//
// At most one may be pending at a time; a second gated attempt before
// resolution overwrites the first (last-writer-wins, no queuing).
type PendingAction struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Gate decides whether a gated action runs now or waits for a login.
type Gate struct {
	creds   *Credentials
	session store.KV
}

// NewGate creates a gate over the credential store. The pending action is
// kept in the same session scope as the login marker, so both expire
// together.
func NewGate(creds *Credentials, session store.KV) *Gate {
	return &Gate{creds: creds, session: session}
}

// Run executes run() immediately when a session is active and reports
// ran=true. With no session it captures p as the pending action instead,
// reports ran=false, and the caller is expected to present the login
// interface.
func (g *Gate) Run(p PendingAction, run func() error) (ran bool, err error) {
	_, active, err := g.creds.CurrentUser()
	if err != nil {
		return false, err
	}
	if !active {
		if err := g.capture(p); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, run()
}

// Resolve pops the pending action for execution after a successful login
// or signup. The action is cleared before it is returned, so it can be
// performed at most once even if the caller's execution fails.
func (g *Gate) Resolve() (PendingAction, bool, error) {
	raw, ok, err := g.session.Get(pendingKey)
	if err != nil {
		return PendingAction{}, false, fmt.Errorf("read pending action: %w", err)
	}
	if !ok {
		return PendingAction{}, false, nil
	}

	if err := g.session.Delete(pendingKey); err != nil {
		return PendingAction{}, false, fmt.Errorf("clear pending action: %w", err)
	}

	var p PendingAction
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return PendingAction{}, false, fmt.Errorf("decode pending action: %w", err)
	}
	return p, true, nil
}

// Dismiss discards the pending action without invoking it. Called when
// the login interface is closed without authenticating.
func (g *Gate) Dismiss() error {
	if err := g.session.Delete(pendingKey); err != nil {
		return fmt.Errorf("discard pending action: %w", err)
	}
	return nil
}

func (g *Gate) capture(p PendingAction) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode pending action: %w", err)
	}
	if err := g.session.Set(pendingKey, string(raw)); err != nil {
		return fmt.Errorf("capture pending action: %w", err)
	}
	return nil
}
