package retention

import (
	"strings"
	"time"
)

// Unit is the unit of a TTL magnitude.
type Unit string

const (
	// UnitSecond measures the TTL in seconds.
	UnitSecond Unit = "second"
	// UnitMinute measures the TTL in minutes.
	UnitMinute Unit = "minute"
	// UnitHour measures the TTL in hours.
	UnitHour Unit = "hour"
	// UnitDay measures the TTL in days of elapsed time.
	UnitDay Unit = "day"
)

// ParseUnit normalizes s. Unrecognized values are returned as-is so that the
// fail-safe in IsExpired applies to them.
func ParseUnit(s string) Unit {
	return Unit(strings.ToLower(strings.TrimSpace(s)))
}

// Known reports whether u is one of the supported units.
func (u Unit) Known() bool {
	switch u {
	case UnitSecond, UnitMinute, UnitHour, UnitDay:
		return true
	}
	return false
}

// Duration returns the length of one u, or 0 for unknown units.
func (u Unit) Duration() time.Duration {
	switch u {
	case UnitSecond:
		return time.Second
	case UnitMinute:
		return time.Minute
	case UnitHour:
		return time.Hour
	case UnitDay:
		return 24 * time.Hour
	}
	return 0
}

func (u Unit) String() string {
	return string(u)
}
