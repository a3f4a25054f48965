package metrics

import (
	"time"

	"mercator-hq/snapper/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// RunMetrics tracks rotation runs.
type RunMetrics struct {
	runsTotal   *prometheus.CounterVec
	duration    prometheus.Histogram
	lastSuccess prometheus.Gauge
}

// NewRunMetrics creates and registers run metrics with the provided registry.
func NewRunMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *RunMetrics {
	rm := &RunMetrics{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "runs_total",
				Help:      "Total number of rotation runs by result and failed stage",
			},
			[]string{"result", "stage"},
		),

		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "run_duration_seconds",
				Help:      "Duration of rotation runs in seconds",
				// Create and list are single API calls; delete fan-out dominates.
				Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
		),

		lastSuccess: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Name:      "last_success_timestamp_seconds",
				Help:      "Unix time at which the last successful run finished",
			},
		),
	}

	registry.MustRegister(rm.runsTotal, rm.duration, rm.lastSuccess)

	return rm
}

// RecordRun records a finished run. stage is empty for successful runs.
func (rm *RunMetrics) RecordRun(result, stage string, duration time.Duration) {
	rm.runsTotal.WithLabelValues(result, stage).Inc()
	rm.duration.Observe(duration.Seconds())
}

// MarkSuccess sets the last success timestamp.
func (rm *RunMetrics) MarkSuccess(at time.Time) {
	rm.lastSuccess.Set(float64(at.UnixMilli()) / 1000)
}
