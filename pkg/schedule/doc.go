// Package schedule runs snapshot rotation on a cron schedule for
// "snapper serve".
//
// Runs never overlap: a tick that fires while the previous run is still in
// progress is skipped. The policy is read from a PolicySource on every tick,
// so a configuration reload takes effect at the next run.
package schedule
