// Package invoke adapts a rotation run to the AWS Lambda invocation
// contract: the event payload is ignored, success returns the success
// report and failure returns the stage-tagged error.
package invoke

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambdacontext"

	"mercator-hq/snapper/pkg/outcome"
	"mercator-hq/snapper/pkg/retention"
	"mercator-hq/snapper/pkg/telemetry/tracing"
)

// Job executes one rotation run.
type Job interface {
	Run(ctx context.Context, policy retention.Policy) *outcome.Outcome
}

// Handler serves Lambda invocations.
type Handler struct {
	job    Job
	policy retention.Policy
	tracer *tracing.Tracer
	logger *slog.Logger
}

// NewHandler creates a handler running job under policy. tracer may be nil.
func NewHandler(job Job, policy retention.Policy, tracer *tracing.Tracer, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		job:    job,
		policy: policy,
		tracer: tracer,
		logger: logger.With("component", "invoke"),
	}
}

// Invoke runs one rotation. It is passed to lambda.Start.
func (h *Handler) Invoke(ctx context.Context, event json.RawMessage) (*outcome.SuccessReport, error) {
	attrs := []any{"event_bytes", len(event)}
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		attrs = append(attrs, "request_id", lc.AwsRequestID)
	}
	h.logger.DebugContext(ctx, "invocation received", attrs...)

	o := h.job.Run(ctx, h.policy)

	if err := h.tracer.ForceFlush(ctx); err != nil {
		h.logger.WarnContext(ctx, "failed to flush spans", "error", err)
	}

	if err := o.Error(); err != nil {
		return nil, err
	}
	return o.SuccessReport(), nil
}
