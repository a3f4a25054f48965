// Package metrics exposes Prometheus metrics for snapshot rotation runs.
//
// A Collector owns its own registry so tests and multiple runners never
// collide on the global one. Metrics are always recorded; only
// "snapper serve" exposes them over HTTP via Handler. A nil *Collector is
// valid and records nothing.
//
// # Metrics
//
//   - snapper_runs_total{result,stage}: completed runs by result and failed stage
//   - snapper_run_duration_seconds: run duration histogram
//   - snapper_last_success_timestamp_seconds: finish time of the last successful run
//   - snapper_snapshots_created_total: snapshots created
//   - snapper_snapshots_deleted_total: expired snapshots deleted
//   - snapper_delete_failures_total: expired snapshots whose deletion failed
//   - snapper_publish_total{kind}: reports published to the notification target
//   - snapper_publish_failures_total{kind}: publishes that failed
//
// # Usage
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	runner := runner.New(store, runner.WithMetrics(collector))
//	http.Handle(cfg.Telemetry.Metrics.Path, collector.Handler())
package metrics
