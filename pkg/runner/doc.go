// Package runner orchestrates one snapshot rotation run.
//
// A run is a strict sequence of stages:
//
//  1. create: take a new manual snapshot named Policy.NewIdentifier(now)
//  2. list: list the cluster's manual snapshots
//  3. filter: select snapshots that carry the policy prefix and are expired
//  4. delete: delete every selected snapshot concurrently
//
// The first failing stage ends the run; later stages are never started. The
// delete stage always waits for the whole batch, so a single failure does not
// hide deletions that already succeeded. The finished Outcome is recorded in
// metrics and handed to the Reporter before Run returns.
package runner
