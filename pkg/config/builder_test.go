package config

import "time"

// ConfigBuilder provides a fluent API for building Config instances in tests.
// It starts with default values and allows selective overrides.
type ConfigBuilder struct {
	cfg Config
}

// NewTestConfig creates a new ConfigBuilder with sensible defaults for testing.
// The resulting configuration is valid and can be used immediately.
func NewTestConfig() *ConfigBuilder {
	cfg := Config{
		ClusterIdentifier: "orders-aurora",
	}
	ApplyDefaults(&cfg)

	return &ConfigBuilder{cfg: cfg}
}

// Build returns the built Config instance.
func (b *ConfigBuilder) Build() *Config {
	return &b.cfg
}

// WithCluster sets the cluster identifier.
func (b *ConfigBuilder) WithCluster(id string) *ConfigBuilder {
	b.cfg.ClusterIdentifier = id
	return b
}

// WithTTL sets the retention window.
func (b *ConfigBuilder) WithTTL(magnitude int, unit string) *ConfigBuilder {
	b.cfg.TTL = TTLConfig{Magnitude: magnitude, Unit: unit}
	return b
}

// WithTarget sets the notification target.
func (b *ConfigBuilder) WithTarget(arn string, publishOnSuccess bool) *ConfigBuilder {
	b.cfg.Notification = NotificationConfig{Target: arn, PublishOnSuccess: publishOnSuccess}
	return b
}

// WithStaticCredentials sets the AWS access key pair.
func (b *ConfigBuilder) WithStaticCredentials(id, secret string) *ConfigBuilder {
	b.cfg.AWS.AccessKeyID = id
	b.cfg.AWS.SecretAccessKey = secret
	return b
}

// WithSchedule sets the cron expression.
func (b *ConfigBuilder) WithSchedule(expr string) *ConfigBuilder {
	b.cfg.Schedule = expr
	return b
}

// WithShutdownTimeout sets the serve mode shutdown timeout.
func (b *ConfigBuilder) WithShutdownTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.Server.ShutdownTimeout = d
	return b
}

// WithLoggingLevel sets the logging level.
func (b *ConfigBuilder) WithLoggingLevel(level string) *ConfigBuilder {
	b.cfg.Telemetry.Logging.Level = level
	return b
}

// WithLoggingFormat sets the logging format.
func (b *ConfigBuilder) WithLoggingFormat(format string) *ConfigBuilder {
	b.cfg.Telemetry.Logging.Format = format
	return b
}

// MinimalConfig returns a minimal valid configuration for testing.
// This is useful for tests that don't care about most configuration values.
func MinimalConfig() *Config {
	return NewTestConfig().Build()
}
