// Package tracing provides OpenTelemetry tracing for rotation runs.
//
// Each run is one trace: a "snapper.run" root span with a child span per
// stage ("snapper.create", "snapper.list", "snapper.delete" and
// "snapper.publish"). Spans are exported over OTLP gRPC.
//
// When tracing is disabled, New returns a Tracer backed by the no-op
// provider. A nil *Tracer is also valid and starts non-recording spans, so
// callers never need to check whether tracing is configured.
//
// # Trace Context Propagation
//
// Published reports carry the W3C traceparent of the run as SNS message
// attributes (see InjectToMap), so a subscriber can continue the trace.
//
// # Usage
//
//	tracer, err := tracing.New(&cfg.Telemetry.Tracing, version.Version)
//	if err != nil {
//	    return err
//	}
//	defer tracer.Shutdown(context.Background())
//
//	ctx, span := tracer.Start(ctx, tracing.SpanRun)
//	defer span.End()
package tracing
