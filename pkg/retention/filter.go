package retention

import (
	"time"

	"mercator-hq/snapper/pkg/snapshot"
)

// Decision is the per-snapshot verdict of one evaluation.
type Decision struct {
	Snapshot snapshot.Descriptor `json:"snapshot"`
	Delete   bool                `json:"delete"`
}

// Decide evaluates every snapshot owned by policy. Snapshots outside the
// policy's prefix are skipped entirely and do not appear in the result,
// which is empty rather than nil when nothing is owned.
func Decide(all []snapshot.Descriptor, policy Policy, now time.Time) []Decision {
	decisions := []Decision{}
	for _, snap := range all {
		if !policy.Owns(snap.Identifier) {
			continue
		}
		decisions = append(decisions, Decision{
			Snapshot: snap,
			Delete:   IsExpired(snap.CreatedAt, policy.TTLMagnitude, policy.TTLUnit, now),
		})
	}
	return decisions
}

// SelectForDeletion returns the owned snapshots that have expired as of now.
// Order is not significant. An empty input yields an empty result.
func SelectForDeletion(all []snapshot.Descriptor, policy Policy, now time.Time) []snapshot.Descriptor {
	selected := []snapshot.Descriptor{}
	for _, d := range Decide(all, policy, now) {
		if d.Delete {
			selected = append(selected, d.Snapshot)
		}
	}
	return selected
}
