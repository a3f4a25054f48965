package metrics

import (
	"mercator-hq/snapper/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// SnapshotMetrics tracks snapshot lifecycle operations.
type SnapshotMetrics struct {
	created        prometheus.Counter
	deleted        prometheus.Counter
	deleteFailures prometheus.Counter
}

// NewSnapshotMetrics creates and registers snapshot metrics with the provided registry.
func NewSnapshotMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *SnapshotMetrics {
	sm := &SnapshotMetrics{
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "snapshots_created_total",
			Help:      "Total number of cluster snapshots created",
		}),
		deleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "snapshots_deleted_total",
			Help:      "Total number of expired snapshots deleted",
		}),
		deleteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "delete_failures_total",
			Help:      "Total number of expired snapshots whose deletion failed",
		}),
	}

	registry.MustRegister(sm.created, sm.deleted, sm.deleteFailures)

	return sm
}

// RecordCreated counts one created snapshot.
func (sm *SnapshotMetrics) RecordCreated() {
	sm.created.Inc()
}

// RecordDeleted counts n deleted snapshots.
func (sm *SnapshotMetrics) RecordDeleted(n int) {
	sm.deleted.Add(float64(n))
}

// RecordDeleteFailures counts n failed deletions.
func (sm *SnapshotMetrics) RecordDeleteFailures(n int) {
	sm.deleteFailures.Add(float64(n))
}
