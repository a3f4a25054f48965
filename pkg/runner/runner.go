package runner

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"mercator-hq/snapper/pkg/outcome"
	"mercator-hq/snapper/pkg/retention"
	"mercator-hq/snapper/pkg/snapshot"
	"mercator-hq/snapper/pkg/telemetry/logging"
	"mercator-hq/snapper/pkg/telemetry/metrics"
	"mercator-hq/snapper/pkg/telemetry/tracing"
)

// Reporter receives every finished outcome.
type Reporter interface {
	Report(ctx context.Context, o *outcome.Outcome)
}

// Runner executes rotation runs against a snapshot store.
type Runner struct {
	store    snapshot.Store
	reporter Reporter
	metrics  *metrics.Collector
	tracer   *tracing.Tracer
	logger   *slog.Logger
	now      func() time.Time
	newRunID func() string

	deleteConcurrency int
}

// Option configures a Runner.
type Option func(*Runner)

// WithReporter sets the collaborator that reports outcomes.
func WithReporter(r Reporter) Option {
	return func(rn *Runner) { rn.reporter = r }
}

// WithMetrics sets the metrics collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(rn *Runner) { rn.metrics = c }
}

// WithTracer sets the tracer. Each run becomes one trace.
func WithTracer(t *tracing.Tracer) Option {
	return func(rn *Runner) { rn.tracer = t }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(rn *Runner) { rn.logger = l }
}

// WithClock sets the time source. It is read once per run.
func WithClock(now func() time.Time) Option {
	return func(rn *Runner) { rn.now = now }
}

// WithRunID sets the run ID generator.
func WithRunID(next func() string) Option {
	return func(rn *Runner) { rn.newRunID = next }
}

// WithDeleteConcurrency bounds the number of in-flight deletions.
// Zero or less means unbounded.
func WithDeleteConcurrency(n int) Option {
	return func(rn *Runner) { rn.deleteConcurrency = n }
}

// New creates a Runner over store.
func New(store snapshot.Store, opts ...Option) *Runner {
	r := &Runner{
		store:    store,
		logger:   slog.Default(),
		now:      time.Now,
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("component", "runner")
	return r
}

// Run executes one rotation under policy and returns its outcome. It never
// returns nil. Failures are carried in Outcome.Err tagged with their stage.
func (r *Runner) Run(ctx context.Context, policy retention.Policy) *outcome.Outcome {
	now := r.now()

	o := &outcome.Outcome{
		RunID:             r.newRunID(),
		ClusterIdentifier: policy.ClusterIdentifier,
		StartedAt:         now,
	}

	ctx = logging.WithRunID(ctx, o.RunID)
	ctx = logging.WithCluster(ctx, policy.ClusterIdentifier)

	ctx, span := r.tracer.Start(ctx, tracing.SpanRun)
	span.SetAttributes(tracing.PolicyAttributes(o.RunID, policy)...)

	r.logger.InfoContext(ctx, "rotation started",
		"prefix", policy.Prefix(),
		"ttl_magnitude", policy.TTLMagnitude,
		"ttl_unit", policy.TTLUnit.String(),
	)
	if !policy.TTLUnit.Known() {
		r.logger.WarnContext(ctx, "unrecognized ttl unit, no snapshot will be deleted",
			"ttl_unit", policy.TTLUnit.String())
	}

	r.rotate(ctx, policy, now, o)

	o.FinishedAt = r.now()
	r.metrics.RecordOutcome(o)

	if r.reporter != nil {
		r.reporter.Report(ctx, o)
	}

	tracing.SetOutcomeAttributes(span, o)
	tracing.EndSpan(span, o.Error())

	return o
}

func (r *Runner) rotate(ctx context.Context, policy retention.Policy, now time.Time, o *outcome.Outcome) {
	identifier := policy.NewIdentifier(now)

	stageCtx, span := r.tracer.Start(ctx, tracing.SpanCreate)
	created, err := r.store.Create(stageCtx, policy.ClusterIdentifier, identifier, []snapshot.Tag{snapshot.CreatorTag})
	tracing.EndSpan(span, err)
	if err != nil {
		o.Err = outcome.NewStageError(outcome.StageCreate, err)
		return
	}
	o.NewSnapshot = created

	r.logger.InfoContext(ctx, "snapshot created",
		"snapshot", created.Identifier,
		"status", created.Status,
	)

	stageCtx, span = r.tracer.Start(ctx, tracing.SpanList)
	all, err := r.store.List(stageCtx, policy.ClusterIdentifier)
	if err != nil {
		tracing.EndSpan(span, err)
		o.Err = outcome.NewStageError(outcome.StageList, err)
		return
	}

	expired := retention.SelectForDeletion(all, policy, now)
	span.SetAttributes(
		attribute.Int(tracing.AttrListed, len(all)),
		attribute.Int(tracing.AttrExpired, len(expired)),
	)
	tracing.EndSpan(span, nil)

	r.logger.InfoContext(ctx, "snapshots listed",
		"listed", len(all),
		"expired", len(expired),
	)

	if len(expired) == 0 {
		o.Deleted = []string{}
		return
	}

	stageCtx, span = r.tracer.Start(ctx, tracing.SpanDelete)
	err = r.deleteAll(stageCtx, expired, o)
	span.SetAttributes(
		attribute.Int(tracing.AttrDeleted, len(o.Deleted)),
		attribute.Int(tracing.AttrFailed, len(o.FailedDeletes)),
	)
	tracing.EndSpan(span, err)
	if err != nil {
		o.Err = outcome.NewStageError(outcome.StageDelete, err)
	}
}

// deleteAll deletes every snapshot concurrently and waits for all of them.
// It fills o.Deleted and o.FailedDeletes in selection order and returns the
// first failure the group observed.
func (r *Runner) deleteAll(ctx context.Context, expired []snapshot.Descriptor, o *outcome.Outcome) error {
	results := make([]error, len(expired))

	var g errgroup.Group
	if r.deleteConcurrency > 0 {
		g.SetLimit(r.deleteConcurrency)
	}

	for i, snap := range expired {
		g.Go(func() error {
			err := r.store.Delete(ctx, snap.Identifier)
			results[i] = err
			if err != nil {
				r.logger.ErrorContext(ctx, "snapshot delete failed",
					"snapshot", snap.Identifier,
					"error_code", outcome.ErrorCode(err),
					"error", err,
				)
				return err
			}
			r.logger.DebugContext(ctx, "snapshot deleted",
				"snapshot", snap.Identifier,
				"created_at", snap.CreatedAt,
			)
			return nil
		})
	}

	err := g.Wait()

	o.Deleted = make([]string, 0, len(expired))
	for i, snap := range expired {
		if results[i] != nil {
			o.FailedDeletes = append(o.FailedDeletes, snap.Identifier)
			continue
		}
		o.Deleted = append(o.Deleted, snap.Identifier)
	}

	r.logger.InfoContext(ctx, "expired snapshots deleted",
		"deleted", len(o.Deleted),
		"failed", len(o.FailedDeletes),
	)

	return err
}
