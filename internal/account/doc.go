// Package account implements the simulated credential store and the auth
// gate that defers actions until a session exists.
//
// This is deliberately not a security design: passwords are stored as
// given and compared by exact match, because the whole account system
// exists only to gate certain UI actions. Do not reuse it anywhere that
// needs real authentication.
//
// Two storage scopes are involved. The registered credential list lives
// in the durable scope under a single key, serialized as a JSON array of
// {email, password} objects. The session marker - the bare email of the
// currently logged-in user - lives in the session scope and disappears
// with it. A marker is never re-validated after login establishes it.
package account
