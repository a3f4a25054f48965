package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"mercator-hq/snapper/pkg/outcome"
	"mercator-hq/snapper/pkg/retention"
)

// Attribute keys use the "snapper.*" namespace.
const (
	AttrRunID        = "snapper.run_id"
	AttrCluster      = "snapper.cluster"
	AttrPrefix       = "snapper.prefix"
	AttrTTLMagnitude = "snapper.ttl.magnitude"
	AttrTTLUnit      = "snapper.ttl.unit"
	AttrSnapshotID   = "snapper.snapshot.id"
	AttrListed       = "snapper.snapshots.listed"
	AttrExpired      = "snapper.snapshots.expired"
	AttrDeleted      = "snapper.snapshots.deleted"
	AttrFailed       = "snapper.snapshots.failed"
	AttrStage        = "snapper.failure.stage"
	AttrFailure      = "snapper.failure.kind"
	AttrErrorCode    = "snapper.failure.error_code"
)

// PolicyAttributes describes the policy of a run.
func PolicyAttributes(runID string, policy retention.Policy) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(AttrRunID, runID),
		attribute.String(AttrCluster, policy.ClusterIdentifier),
		attribute.String(AttrPrefix, policy.Prefix()),
		attribute.Int(AttrTTLMagnitude, policy.TTLMagnitude),
		attribute.String(AttrTTLUnit, policy.TTLUnit.String()),
	}
}

// SetOutcomeAttributes records the result of a run on its root span.
func SetOutcomeAttributes(span trace.Span, o *outcome.Outcome) {
	span.SetAttributes(
		attribute.Int(AttrDeleted, len(o.Deleted)),
		attribute.Int(AttrFailed, len(o.FailedDeletes)),
	)
	if o.NewSnapshot != nil {
		span.SetAttributes(attribute.String(AttrSnapshotID, o.NewSnapshot.Identifier))
	}
	if o.Err != nil {
		span.SetAttributes(
			attribute.String(AttrStage, string(o.Err.Stage)),
			attribute.String(AttrFailure, o.Err.Kind()),
			attribute.String(AttrErrorCode, outcome.ErrorCode(o.Err.Cause)),
		)
	}
}
