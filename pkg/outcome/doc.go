// Package outcome describes the result of one snapshot rotation run.
//
// A run either succeeds, producing the descriptor of the newly created
// snapshot and the identifiers it deleted, or fails at one stage. Failures
// carry a *StageError whose Cause is the unmodified error returned by the
// remote store, so callers can inspect it with errors.As while still testing
// the stage with errors.Is:
//
//	if errors.Is(o.Err, outcome.ErrDeleteFailure) {
//	    // one or more deletions failed; o.Deleted lists those that succeeded
//	}
//
// SuccessReport and FailureReport are the JSON payloads handed to the
// invoking runtime and to the notification sink.
package outcome
