// Package retention decides which snapshots have outlived their
// time-to-live.
//
// # Policy
//
// A Policy names the target cluster and a TTL expressed as a magnitude and a
// Unit. The policy derives a name prefix of the form
//
//	snapper-<magnitude>-<unit>-<cluster>
//
// which the rotation task uses for every snapshot it creates. Only snapshots
// carrying that exact prefix are ever considered for deletion, so several
// instances with different clusters or TTLs never touch each other's
// snapshots.
//
// # Expiry
//
// For seconds, minutes and hours, IsExpired computes an absolute cutoff
// (now - TTL) and reports whether the snapshot was created strictly before
// it. For days it divides the elapsed time since creation by the length of a
// day and compares the fractional result with the magnitude. The two styles
// agree except at sub-millisecond boundaries; the day variant is kept as is.
//
// Unknown units never expire anything.
//
// All functions take "now" explicitly and have no side effects.
package retention
