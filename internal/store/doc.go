// Package store provides the two persistence scopes the application needs.
//
// The browser origins of this design had two storage lifetimes:
//
//   - a durable device-local store (credentials survive restarts)
//   - a session-scoped store (the login marker, the working inventory and
//     the last generated recipes live only as long as the session)
//
// Both are exposed through the same KV interface so callers never care
// which scope they were handed. The durable scope is SQLite-backed; the
// session scope is a directory of small files under the OS temp dir, which
// gives it exactly the wanted lifetime: it survives from one command to the
// next but not a reboot or temp cleanup.
//
// Values are opaque strings. Callers that need structure serialize JSON
// into them, mirroring how the original kept a JSON array under a single
// localStorage key.
package store
