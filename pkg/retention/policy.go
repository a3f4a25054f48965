package retention

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// namePrefix starts every snapshot identifier the task creates.
const namePrefix = "snapper"

// Policy is the retention configuration for one invocation.
type Policy struct {
	// ClusterIdentifier identifies the target cluster.
	ClusterIdentifier string

	// TTLMagnitude is the number of TTLUnit a snapshot is kept for.
	TTLMagnitude int

	// TTLUnit is the unit of TTLMagnitude.
	TTLUnit Unit
}

// Prefix returns the identifier prefix that scopes which snapshots this
// policy may touch. It encodes magnitude, unit and cluster.
func (p Policy) Prefix() string {
	return fmt.Sprintf("%s-%s-%s-%s", namePrefix, strconv.Itoa(p.TTLMagnitude), p.TTLUnit, p.ClusterIdentifier)
}

// NewIdentifier returns the identifier for a snapshot taken at now:
// the prefix followed by "-" and the Unix time in milliseconds.
func (p Policy) NewIdentifier(now time.Time) string {
	return p.Prefix() + "-" + strconv.FormatInt(now.UnixMilli(), 10)
}

// Owns reports whether identifier carries this policy's prefix followed by
// the "-" separator. The comparison ignores case.
func (p Policy) Owns(identifier string) bool {
	return strings.HasPrefix(strings.ToLower(identifier), strings.ToLower(p.Prefix()+"-"))
}

// Validate checks the fields IsExpired and Prefix depend on. An unknown
// unit is not an error; it disables deletion.
func (p Policy) Validate() error {
	if p.ClusterIdentifier == "" {
		return fmt.Errorf("cluster identifier is required")
	}
	if p.TTLMagnitude <= 0 {
		return fmt.Errorf("ttl magnitude must be positive, got %d", p.TTLMagnitude)
	}
	return nil
}
