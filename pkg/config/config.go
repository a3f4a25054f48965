package config

import (
	"time"

	"mercator-hq/snapper/pkg/retention"
)

// Config is the root configuration structure for snapper.
type Config struct {
	// ClusterIdentifier is the Aurora cluster to snapshot. Required.
	ClusterIdentifier string `yaml:"cluster_identifier"`

	// TTL is how long snapshots created by this task are kept.
	TTL TTLConfig `yaml:"ttl"`

	// Notification controls where run outcomes are published.
	Notification NotificationConfig `yaml:"notification"`

	// AWS contains client settings for the RDS and SNS APIs.
	AWS AWSConfig `yaml:"aws"`

	// Schedule is the cron expression used by "snapper serve".
	// Default: "0 * * * *" (hourly)
	Schedule string `yaml:"schedule"`

	// Server contains the HTTP settings of "snapper serve".
	Server ServerConfig `yaml:"server"`

	// Telemetry contains logging and metrics configuration.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// TTLConfig is the retention window.
type TTLConfig struct {
	// Magnitude is the number of Units a snapshot is kept for.
	// Default: 30
	Magnitude int `yaml:"magnitude"`

	// Unit is one of "second", "minute", "hour", "day". Any other value
	// disables deletion.
	// Default: "minute"
	Unit string `yaml:"unit"`
}

// NotificationConfig controls outcome publishing.
type NotificationConfig struct {
	// Target is the SNS topic ARN outcomes are published to. Empty disables
	// publishing.
	Target string `yaml:"target"`

	// PublishOnSuccess publishes successful runs too. Failures are always
	// published when Target is set.
	// Default: false
	PublishOnSuccess bool `yaml:"publish_on_success"`
}

// AWSConfig contains AWS client settings.
type AWSConfig struct {
	// Region is the AWS region. Empty uses the SDK's default resolution
	// (AWS_REGION, shared config).
	Region string `yaml:"region"`

	// Endpoint overrides the service endpoint, e.g. for a local emulator.
	Endpoint string `yaml:"endpoint"`

	// AccessKeyID and SecretAccessKey select static credentials. Both must be
	// set together; when empty the default credential chain is used.
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

// ServerConfig contains HTTP server configuration for serve mode.
type ServerConfig struct {
	// ListenAddress serves /metrics and /healthz.
	// Default: "127.0.0.1:9090"
	ListenAddress string `yaml:"listen_address"`

	// ShutdownTimeout bounds graceful shutdown.
	// Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing contains OpenTelemetry tracing configuration.
	Tracing TracingConfig `yaml:"tracing"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text"
	// Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains metrics configuration.
type MetricsConfig struct {
	// Path is the HTTP path for the Prometheus endpoint in serve mode.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace prefixes every metric name.
	// Default: "snapper"
	Namespace string `yaml:"namespace"`
}

// TracingConfig contains OpenTelemetry tracing configuration.
type TracingConfig struct {
	// Enabled exports one trace per run with a span per stage.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Sampler determines the sampling strategy.
	// Options: "always", "never", "ratio"
	// Default: "always"
	Sampler string `yaml:"sampler"`

	// SampleRatio is the fraction of runs to sample when Sampler is "ratio".
	SampleRatio float64 `yaml:"sample_ratio"`

	// Endpoint is the OTLP gRPC collector endpoint.
	// Default: "localhost:4317"
	Endpoint string `yaml:"endpoint"`

	// Insecure disables TLS to the collector.
	Insecure bool `yaml:"insecure"`

	// Timeout bounds each export.
	// Default: 10s
	Timeout time.Duration `yaml:"timeout"`

	// ServiceName is the service.name resource attribute.
	// Default: "snapper"
	ServiceName string `yaml:"service_name"`
}

// Policy builds the retention policy for one invocation.
func (c *Config) Policy() retention.Policy {
	return retention.Policy{
		ClusterIdentifier: c.ClusterIdentifier,
		TTLMagnitude:      c.TTL.Magnitude,
		TTLUnit:           retention.ParseUnit(c.TTL.Unit),
	}
}

// PublishingEnabled reports whether a notification target is configured.
func (c *Config) PublishingEnabled() bool {
	return c.Notification.Target != ""
}
