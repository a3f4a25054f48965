package retention

import (
	"math"
	"time"
)

// millisPerDay is the divisor for day-unit expiry.
const millisPerDay = 1000 * 60 * 60 * 24

// IsExpired reports whether a snapshot created at createdAt has outlived a
// TTL of magnitude units as of now.
//
// Second, minute and hour units compare against the cutoff now-TTL and
// return true only when createdAt is strictly before it. The day unit
// compares elapsed milliseconds / 86400000 > magnitude instead. Unknown
// units, a zero createdAt and a TTL longer than time.Duration can hold all
// return false.
func IsExpired(createdAt time.Time, magnitude int, unit Unit, now time.Time) bool {
	if createdAt.IsZero() {
		return false
	}

	switch unit {
	case UnitSecond, UnitMinute, UnitHour:
		if int64(magnitude) > math.MaxInt64/int64(unit.Duration()) {
			return false
		}
		cutoff := now.Add(-time.Duration(magnitude) * unit.Duration())
		return createdAt.Before(cutoff)
	case UnitDay:
		elapsed := now.Sub(createdAt).Milliseconds()
		return float64(elapsed)/millisPerDay > float64(magnitude)
	default:
		return false
	}
}
