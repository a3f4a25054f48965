package outcome

import (
	"time"

	"mercator-hq/snapper/pkg/snapshot"
)

// Outcome is the result of one rotation run.
type Outcome struct {
	// RunID correlates logs, metrics and reports of one run.
	RunID string

	// ClusterIdentifier is the cluster the run targeted.
	ClusterIdentifier string

	// StartedAt and FinishedAt bound the run.
	StartedAt  time.Time
	FinishedAt time.Time

	// NewSnapshot is set once the create stage succeeds.
	NewSnapshot *snapshot.Descriptor

	// Deleted lists identifiers whose deletion succeeded.
	Deleted []string

	// FailedDeletes lists identifiers whose deletion failed.
	FailedDeletes []string

	// Err is nil on success.
	Err *StageError
}

// Succeeded reports whether every stage completed.
func (o *Outcome) Succeeded() bool {
	return o.Err == nil
}

// Error returns the stage error as an error value, or nil on success.
// It avoids the typed-nil pitfall of returning o.Err directly.
func (o *Outcome) Error() error {
	if o.Err == nil {
		return nil
	}
	return o.Err
}

// Duration returns how long the run took.
func (o *Outcome) Duration() time.Duration {
	return o.FinishedAt.Sub(o.StartedAt)
}

// SuccessReport is the payload of a successful run.
type SuccessReport struct {
	RunID            string               `json:"run_id"`
	Cluster          string               `json:"cluster"`
	NewSnapshot      *snapshot.Descriptor `json:"new_snapshot"`
	DeletedSnapshots []string             `json:"deleted_snapshots"`
}

// FailureReport is the payload of a failed run.
type FailureReport struct {
	RunID            string               `json:"run_id"`
	Cluster          string               `json:"cluster"`
	Stage            Stage                `json:"stage"`
	Failure          string               `json:"failure"`
	Error            string               `json:"error"`
	ErrorCode        string               `json:"error_code,omitempty"`
	NewSnapshot      *snapshot.Descriptor `json:"new_snapshot,omitempty"`
	DeletedSnapshots []string             `json:"deleted_snapshots,omitempty"`
	FailedSnapshots  []string             `json:"failed_snapshots,omitempty"`
}

// SuccessReport builds the success payload. DeletedSnapshots is never nil.
func (o *Outcome) SuccessReport() *SuccessReport {
	deleted := o.Deleted
	if deleted == nil {
		deleted = []string{}
	}
	return &SuccessReport{
		RunID:            o.RunID,
		Cluster:          o.ClusterIdentifier,
		NewSnapshot:      o.NewSnapshot,
		DeletedSnapshots: deleted,
	}
}

// FailureReport builds the failure payload. It returns nil on success.
func (o *Outcome) FailureReport() *FailureReport {
	if o.Err == nil {
		return nil
	}
	return &FailureReport{
		RunID:            o.RunID,
		Cluster:          o.ClusterIdentifier,
		Stage:            o.Err.Stage,
		Failure:          o.Err.Kind(),
		Error:            o.Err.Cause.Error(),
		ErrorCode:        ErrorCode(o.Err.Cause),
		NewSnapshot:      o.NewSnapshot,
		DeletedSnapshots: o.Deleted,
		FailedSnapshots:  o.FailedDeletes,
	}
}
