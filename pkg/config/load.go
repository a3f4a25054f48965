package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any errors.
// The configuration is not modified by environment variables; use
// LoadConfigWithEnvOverrides for that functionality.
func LoadConfig(path string) (*Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables always take
// precedence over file-based configuration. An empty path builds the
// configuration from defaults and the environment alone.
//
// The loading sequence is:
// 1. Load YAML from file (if path is set)
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		var err error
		if cfg, err = readFile(path); err != nil {
			return nil, err
		}
	}

	ApplyDefaults(cfg)
	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	return &cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables use the format SNAPPER_FIELD. Unparseable numeric,
// boolean and duration values are ignored.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("SNAPPER_CLUSTER_IDENTIFIER"); val != "" {
		cfg.ClusterIdentifier = val
	}

	// TTL overrides
	if val := os.Getenv("SNAPPER_TTL_MAGNITUDE"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.TTL.Magnitude = i
		}
	}
	if val := os.Getenv("SNAPPER_TTL_UNIT"); val != "" {
		cfg.TTL.Unit = val
	}

	// Notification overrides
	if val := os.Getenv("SNAPPER_NOTIFICATION_TARGET"); val != "" {
		cfg.Notification.Target = val
	}
	if val := os.Getenv("SNAPPER_PUBLISH_ON_SUCCESS"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Notification.PublishOnSuccess = b
		}
	}

	// AWS overrides
	if val := os.Getenv("SNAPPER_AWS_REGION"); val != "" {
		cfg.AWS.Region = val
	}
	if val := os.Getenv("SNAPPER_AWS_ENDPOINT"); val != "" {
		cfg.AWS.Endpoint = val
	}
	if val := os.Getenv("SNAPPER_AWS_ACCESS_KEY_ID"); val != "" {
		cfg.AWS.AccessKeyID = val
	}
	if val := os.Getenv("SNAPPER_AWS_SECRET_ACCESS_KEY"); val != "" {
		cfg.AWS.SecretAccessKey = val
	}

	// Serve mode overrides
	if val := os.Getenv("SNAPPER_SCHEDULE"); val != "" {
		cfg.Schedule = val
	}
	if val := os.Getenv("SNAPPER_LISTEN_ADDRESS"); val != "" {
		cfg.Server.ListenAddress = val
	}
	if val := os.Getenv("SNAPPER_SHUTDOWN_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ShutdownTimeout = d
		}
	}

	// Telemetry overrides
	if val := os.Getenv("SNAPPER_LOG_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("SNAPPER_LOG_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("SNAPPER_METRICS_PATH"); val != "" {
		cfg.Telemetry.Metrics.Path = val
	}
	if val := os.Getenv("SNAPPER_METRICS_NAMESPACE"); val != "" {
		cfg.Telemetry.Metrics.Namespace = val
	}
	if val := os.Getenv("SNAPPER_TRACING_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Tracing.Enabled = b
		}
	}
	if val := os.Getenv("SNAPPER_TRACING_ENDPOINT"); val != "" {
		cfg.Telemetry.Tracing.Endpoint = val
	}
	if val := os.Getenv("SNAPPER_TRACING_SAMPLER"); val != "" {
		cfg.Telemetry.Tracing.Sampler = val
	}
	if val := os.Getenv("SNAPPER_TRACING_SAMPLE_RATIO"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Telemetry.Tracing.SampleRatio = f
		}
	}
}
