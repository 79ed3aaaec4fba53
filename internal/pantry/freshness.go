package pantry

import (
	"fmt"
	"math"
	"time"
)

// Tier buckets an item by urgency. Lower values sort first in displays.
//
// Items with an expiration date land in ExpiresToday, Expired,
// ExpiringSoon or Fresh. Items without one are bucketed by age instead:
// Urgent, ConsumeSoon or Fresh.
type Tier int

const (
	// TierExpiresToday is the highest urgency: the date is today.
	TierExpiresToday Tier = iota
	// TierExpired means the expiration date has passed.
	TierExpired
	// TierUrgent means an undated item has been sitting for a week or more.
	TierUrgent
	// TierExpiringSoon means the date is one to three days out.
	TierExpiringSoon
	// TierConsumeSoon means an undated item is three to six days old.
	TierConsumeSoon
	// TierFresh is the lowest urgency.
	TierFresh
)

// String returns the tier's short display name.
func (t Tier) String() string {
	switch t {
	case TierExpiresToday:
		return "expires today"
	case TierExpired:
		return "expired"
	case TierUrgent:
		return "urgent"
	case TierExpiringSoon:
		return "expiring soon"
	case TierConsumeSoon:
		return "consume soon"
	case TierFresh:
		return "fresh"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Freshness is the classification of one item against a reference date.
type Freshness struct {
	Tier  Tier
	Label string
}

// Classify maps an item's dates to a freshness bucket.
//
// Pure function of its inputs: the reference date is always passed in,
// never read from the wall clock.
//
// With an expiration date, the whole-day difference between expiration and
// reference decides the bucket: negative is expired, zero is expires
// today, one to three days is expiring soon, beyond that fresh. Without
// one, whole days since the add date decide instead: under three days
// fresh, three to six consume soon, a week or more urgent.
func Classify(item Item, ref time.Time) Freshness {
	if item.ExpiresAt != nil {
		days := daysBetween(ref, *item.ExpiresAt)
		switch {
		case days < 0:
			overdue := -days
			return Freshness{Tier: TierExpired, Label: fmt.Sprintf("expired, %d %s overdue", overdue, pluralDay(overdue))}
		case days == 0:
			return Freshness{Tier: TierExpiresToday, Label: "expires today"}
		case days <= 3:
			return Freshness{Tier: TierExpiringSoon, Label: "expiring soon"}
		default:
			return Freshness{Tier: TierFresh, Label: "fresh"}
		}
	}

	age := daysBetween(item.AddedAt, ref)
	switch {
	case age < 3:
		return Freshness{Tier: TierFresh, Label: "fresh"}
	case age < 7:
		return Freshness{Tier: TierConsumeSoon, Label: "consume soon"}
	default:
		return Freshness{Tier: TierUrgent, Label: "urgent"}
	}
}

// daysBetween returns the whole-day difference to - from, with both
// truncated to midnight before subtraction so partial days never shift
// the boundary. Rounding absorbs the odd-length days a DST transition
// produces.
func daysBetween(from, to time.Time) int {
	return int(math.Round(midnight(to).Sub(midnight(from)).Hours() / 24))
}

// midnight truncates a time to the start of its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func pluralDay(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}
