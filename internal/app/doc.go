// Package app is the orchestrator: it wires user actions through the
// auth gate, the inventory, and the AI client, and owns the surface
// state a front end renders (current view, in-flight phases, transient
// notices and failures).
//
// All state transitions run to completion on a single logical thread -
// no operation preempts another mid-transition. The only suspend points
// are the AI calls; nothing here is cancellable once issued and no
// timeout is imposed beyond whatever the transport enforces.
//
// There is no ambient global state: the orchestrator owns the credential
// store, the gate and the inventory, and everything it needs is passed
// in at construction.
package app
