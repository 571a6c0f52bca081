package expiry

import (
	"math"
	"time"

	"expirywatch/pkg/api"
)

// DaysUntil returns the signed whole-day distance from now to the
// expiration instant: negative once the expiration is strictly past,
// zero when it falls within the current 24h window, positive otherwise.
// The arithmetic is plain wall-clock subtraction with a ceiling, so the
// value can shift by one near local midnight.
func DaysUntil(expiration, now time.Time) int {
	diff := expiration.Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}

// FoodDaysUntil computes the day-distance for a food item. The second
// return is false when the item carries an unparseable expiration date.
func FoodDaysUntil(food api.Food, now time.Time) (int, bool) {
	exp, err := food.Expiration()
	if err != nil {
		return 0, false
	}
	return DaysUntil(exp, now), true
}

// Tier classifies how soon an item expires.
type Tier int

const (
	TierExpired Tier = iota
	TierDanger
	TierWarning
	TierNormal
)

func (t Tier) String() string {
	switch t {
	case TierExpired:
		return "expired"
	case TierDanger:
		return "danger"
	case TierWarning:
		return "warning"
	default:
		return "normal"
	}
}

// Classify maps a day-distance to its urgency tier.
func Classify(daysUntil int) Tier {
	switch {
	case daysUntil < 0:
		return TierExpired
	case daysUntil <= 3:
		return TierDanger
	case daysUntil <= 7:
		return TierWarning
	default:
		return TierNormal
	}
}

// Threshold converts a notification timing value to its day-distance
// threshold. Unknown values fall back to the expiry date itself.
func Threshold(timing string) int {
	switch timing {
	case api.TimingThreeDaysBefore:
		return 3
	case api.TimingOneDayBefore:
		return 1
	default:
		return 0
	}
}
