package metrics

import (
	"mercator-hq/snapper/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// PublishMetrics tracks outcome notifications.
type PublishMetrics struct {
	published *prometheus.CounterVec
	failures  *prometheus.CounterVec
}

// NewPublishMetrics creates and registers publish metrics with the provided registry.
func NewPublishMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *PublishMetrics {
	pm := &PublishMetrics{
		published: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "publish_total",
				Help:      "Total number of reports published to the notification target",
			},
			[]string{"kind"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "publish_failures_total",
				Help:      "Total number of reports that could not be published",
			},
			[]string{"kind"},
		),
	}

	registry.MustRegister(pm.published, pm.failures)

	return pm
}

// Record counts one publish attempt of the given kind.
func (pm *PublishMetrics) Record(kind string, err error) {
	if err != nil {
		pm.failures.WithLabelValues(kind).Inc()
		return
	}
	pm.published.WithLabelValues(kind).Inc()
}
