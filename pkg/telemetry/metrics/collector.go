package metrics

import (
	"mercator-hq/snapper/pkg/config"
	"mercator-hq/snapper/pkg/outcome"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values of snapper_runs_total.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Collector records rotation metrics into a dedicated Prometheus registry.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	runMetrics      *RunMetrics
	snapshotMetrics *SnapshotMetrics
	publishMetrics  *PublishMetrics
}

// NewCollector creates a collector and registers every metric. If registry
// is nil a fresh one is created.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if cfg == nil {
		cfg = &config.MetricsConfig{}
	}
	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	return &Collector{
		config:          cfg,
		registry:        registry,
		runMetrics:      NewRunMetrics(cfg, registry),
		snapshotMetrics: NewSnapshotMetrics(cfg, registry),
		publishMetrics:  NewPublishMetrics(cfg, registry),
	}
}

// RecordOutcome records a finished run: its result, duration and the
// snapshots it created and deleted.
func (c *Collector) RecordOutcome(o *outcome.Outcome) {
	if c == nil || o == nil {
		return
	}

	if o.NewSnapshot != nil {
		c.snapshotMetrics.RecordCreated()
	}
	c.snapshotMetrics.RecordDeleted(len(o.Deleted))
	c.snapshotMetrics.RecordDeleteFailures(len(o.FailedDeletes))

	if o.Succeeded() {
		c.runMetrics.RecordRun(ResultSuccess, "", o.Duration())
		c.runMetrics.MarkSuccess(o.FinishedAt)
		return
	}
	c.runMetrics.RecordRun(ResultFailure, string(o.Err.Stage), o.Duration())
}

// RecordPublish records one publish attempt. kind is "success" or
// "failure", matching the report that was sent.
func (c *Collector) RecordPublish(kind string, err error) {
	if c == nil {
		return
	}
	c.publishMetrics.Record(kind, err)
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
