package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"mercator-hq/snapper/pkg/outcome"
	"mercator-hq/snapper/pkg/telemetry/metrics"
	"mercator-hq/snapper/pkg/telemetry/tracing"
)

// Report kinds, used as the metrics label of publish attempts.
const (
	KindSuccess = "success"
	KindFailure = "failure"
)

// Publisher delivers a report to a notification sink.
type Publisher interface {
	Publish(ctx context.Context, subject, message string) error
}

// Reporter logs outcomes and optionally publishes them.
type Reporter struct {
	publisher        Publisher
	publishOnSuccess bool
	metrics          *metrics.Collector
	tracer           *tracing.Tracer
	logger           *slog.Logger
}

// ReporterOption configures a Reporter.
type ReporterOption func(*Reporter)

// WithPublisher sets the sink outcomes are published to. Without one the
// Reporter only logs.
func WithPublisher(p Publisher) ReporterOption {
	return func(r *Reporter) { r.publisher = p }
}

// WithPublishOnSuccess publishes successful outcomes too.
func WithPublishOnSuccess(enabled bool) ReporterOption {
	return func(r *Reporter) { r.publishOnSuccess = enabled }
}

// WithReporterMetrics counts publish attempts in c.
func WithReporterMetrics(c *metrics.Collector) ReporterOption {
	return func(r *Reporter) { r.metrics = c }
}

// WithReporterTracer traces publish attempts.
func WithReporterTracer(t *tracing.Tracer) ReporterOption {
	return func(r *Reporter) { r.tracer = t }
}

// WithReporterLogger sets the logger.
func WithReporterLogger(l *slog.Logger) ReporterOption {
	return func(r *Reporter) { r.logger = l }
}

// NewReporter creates a Reporter.
func NewReporter(opts ...ReporterOption) *Reporter {
	r := &Reporter{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("component", "reporter")
	return r
}

// Report logs o and publishes it when configured to.
func (r *Reporter) Report(ctx context.Context, o *outcome.Outcome) {
	if o.Succeeded() {
		r.reportSuccess(ctx, o)
		return
	}
	r.reportFailure(ctx, o)
}

func (r *Reporter) reportSuccess(ctx context.Context, o *outcome.Outcome) {
	report := o.SuccessReport()

	attrs := []any{
		"deleted", len(report.DeletedSnapshots),
		"duration_ms", o.Duration().Milliseconds(),
	}
	if report.NewSnapshot != nil {
		attrs = append(attrs, "new_snapshot", report.NewSnapshot.Identifier)
	}
	r.logger.InfoContext(ctx, "snapshot rotation succeeded", attrs...)

	if r.publisher == nil || !r.publishOnSuccess {
		return
	}
	r.publish(ctx, KindSuccess, SuccessSubject(o.ClusterIdentifier), report)
}

func (r *Reporter) reportFailure(ctx context.Context, o *outcome.Outcome) {
	report := o.FailureReport()

	r.logger.ErrorContext(ctx, "snapshot rotation failed",
		"stage", string(report.Stage),
		"failure", report.Failure,
		"error_code", report.ErrorCode,
		"error", report.Error,
		"deleted", len(report.DeletedSnapshots),
		"failed", len(report.FailedSnapshots),
	)

	if r.publisher == nil {
		return
	}
	r.publish(ctx, KindFailure, FailureSubject(o.ClusterIdentifier, report.Stage), report)
}

func (r *Reporter) publish(ctx context.Context, kind, subject string, report any) {
	ctx, span := r.tracer.Start(ctx, tracing.SpanPublish)

	message, err := json.MarshalIndent(report, "", "  ")
	if err == nil {
		err = r.publisher.Publish(ctx, subject, string(message))
	}

	tracing.EndSpan(span, err)
	r.metrics.RecordPublish(kind, err)

	if err != nil {
		err = outcome.NewStageError(outcome.StagePublish, err)
		r.logger.ErrorContext(ctx, "outcome publish failed",
			"stage", string(outcome.StagePublish),
			"kind", kind,
			"error_code", outcome.ErrorCode(err),
			"error", err,
		)
		return
	}

	r.logger.DebugContext(ctx, "outcome published", "kind", kind)
}

// SuccessSubject is the notification subject of a successful run.
func SuccessSubject(cluster string) string {
	return fmt.Sprintf("snapper: snapshot rotation succeeded for %s", cluster)
}

// FailureSubject is the notification subject of a failed run.
func FailureSubject(cluster string, stage outcome.Stage) string {
	return fmt.Sprintf("snapper: snapshot rotation failed for %s (%s)", cluster, stage)
}
