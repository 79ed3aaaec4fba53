// Package pantry holds the inventory model: items, the ordered in-memory
// inventory store, and the freshness classifier.
//
// Items are immutable once created. The store supports append, removal by
// identity, and ordered listing - nothing edits a stored item in place.
// Identity is a generated UUID; uniqueness is what makes removal correct.
//
// The freshness classifier is a pure function of (item, reference date).
// It never reads the wall clock, so every date boundary is testable with
// an injected reference.
package pantry
