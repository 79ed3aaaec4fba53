package pantry

import (
	"time"
	"unicode"
	"unicode/utf8"
)

// Item is one entry in the fridge inventory.
//
// ID is opaque and unique; AddedAt is set at creation and never changes.
// ExpiresAt may be nil: an item without a printed date is a valid,
// permanent state, not a value waiting to be filled in later.
type Item struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	AddedAt   time.Time  `json:"addDate"`
	ExpiresAt *time.Time `json:"expirationDate,omitempty"`
}

// Draft is a not-yet-stored item, as confirmed from a scan.
type Draft struct {
	Name      string     `json:"name"`
	ExpiresAt *time.Time `json:"expirationDate,omitempty"`
}

// NormalizeName capitalizes the first letter of a display name, leaving
// the rest untouched ("tomates" -> "Tomates").
func NormalizeName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError && size <= 1 {
		return name
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return name
	}
	return string(upper) + name[size:]
}
