// Package telemetry groups the observability packages used by snapper.
//
// # Components
//
//   - logging: slog construction and run-scoped context fields
//   - metrics: Prometheus collectors for runs, snapshots and publishes
//   - tracing: OpenTelemetry spans for runs and their stages
//   - health: liveness and readiness endpoints for serve mode
//
// # Usage
//
//	logger, _ := logging.New(logging.Config{Level: "info", Format: "json"})
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	tracer, _ := tracing.New(&cfg.Telemetry.Tracing, version)
//	defer tracer.Shutdown(ctx)
//
// Every collaborator accepts a nil *metrics.Collector or *tracing.Tracer and
// then records nothing.
package telemetry
