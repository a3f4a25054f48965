package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mercator-hq/snapper/pkg/retention"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapper.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	configPath := writeConfig(t, `
cluster_identifier: "orders-aurora"
ttl:
  magnitude: 7
  unit: "day"
notification:
  target: "arn:aws:sns:us-east-1:123456789012:snapper"
  publish_on_success: true
aws:
  region: "us-east-1"
schedule: "*/15 * * * *"
server:
  listen_address: "0.0.0.0:9100"
  shutdown_timeout: "10s"
telemetry:
  logging:
    level: "debug"
    format: "text"
`)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.ClusterIdentifier != "orders-aurora" {
		t.Errorf("expected cluster %q, got %q", "orders-aurora", cfg.ClusterIdentifier)
	}
	if cfg.TTL.Magnitude != 7 || cfg.TTL.Unit != "day" {
		t.Errorf("expected ttl 7 day, got %d %s", cfg.TTL.Magnitude, cfg.TTL.Unit)
	}
	if !cfg.Notification.PublishOnSuccess {
		t.Error("expected publish_on_success to be true")
	}
	if cfg.Schedule != "*/15 * * * *" {
		t.Errorf("expected schedule %q, got %q", "*/15 * * * *", cfg.Schedule)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected shutdown timeout 10s, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Telemetry.Logging.Format != "text" {
		t.Errorf("expected text format, got %q", cfg.Telemetry.Logging.Format)
	}

	// Defaults fill what the file leaves out.
	if cfg.Telemetry.Metrics.Path != DefaultMetricsPath {
		t.Errorf("expected default metrics path, got %q", cfg.Telemetry.Metrics.Path)
	}
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	configPath := writeConfig(t, "cluster_identifier: orders-aurora\n")

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.TTL.Magnitude != DefaultTTLMagnitude || cfg.TTL.Unit != DefaultTTLUnit {
		t.Errorf("expected default ttl, got %d %s", cfg.TTL.Magnitude, cfg.TTL.Unit)
	}
	if cfg.Schedule != DefaultSchedule {
		t.Errorf("expected default schedule, got %q", cfg.Schedule)
	}
	if cfg.PublishingEnabled() {
		t.Error("publishing should be disabled without a target")
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/snapper.yaml")
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist in chain, got %v", err)
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	configPath := writeConfig(t, "cluster_identifier: [unclosed\n")

	if _, err := LoadConfig(configPath); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoadConfig_ValidationFailure(t *testing.T) {
	configPath := writeConfig(t, "ttl:\n  magnitude: -1\n")

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var validationErr ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError in error chain, got %T: %v", err, err)
	}
	if len(validationErr.Errors) != 2 {
		t.Errorf("expected 2 field errors (cluster, magnitude), got %d: %v", len(validationErr.Errors), validationErr)
	}
}

func TestLoadConfigWithEnvOverrides_BasicOverrides(t *testing.T) {
	configPath := writeConfig(t, `
cluster_identifier: "file-cluster"
ttl:
  magnitude: 30
  unit: "minute"
`)

	t.Setenv("SNAPPER_CLUSTER_IDENTIFIER", "env-cluster")
	t.Setenv("SNAPPER_TTL_MAGNITUDE", "2")
	t.Setenv("SNAPPER_TTL_UNIT", "Hour")
	t.Setenv("SNAPPER_NOTIFICATION_TARGET", "arn:aws:sns:eu-west-1:123456789012:ops")
	t.Setenv("SNAPPER_PUBLISH_ON_SUCCESS", "true")
	t.Setenv("SNAPPER_LOG_LEVEL", "debug")

	cfg, err := LoadConfigWithEnvOverrides(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.ClusterIdentifier != "env-cluster" {
		t.Errorf("expected cluster from env, got %q", cfg.ClusterIdentifier)
	}
	if cfg.TTL.Magnitude != 2 {
		t.Errorf("expected magnitude 2 from env, got %d", cfg.TTL.Magnitude)
	}
	if !cfg.Notification.PublishOnSuccess {
		t.Error("expected publish_on_success from env")
	}
	if cfg.Telemetry.Logging.Level != "debug" {
		t.Errorf("expected logging level debug from env, got %q", cfg.Telemetry.Logging.Level)
	}

	policy := cfg.Policy()
	if policy.TTLUnit != retention.UnitHour {
		t.Errorf("expected policy unit hour, got %q", policy.TTLUnit)
	}
	if policy.Prefix() != "snapper-2-hour-env-cluster" {
		t.Errorf("unexpected prefix %q", policy.Prefix())
	}
}

func TestLoadConfigWithEnvOverrides_NoFile(t *testing.T) {
	t.Setenv("SNAPPER_CLUSTER_IDENTIFIER", "lambda-cluster")

	cfg, err := LoadConfigWithEnvOverrides("")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.ClusterIdentifier != "lambda-cluster" {
		t.Errorf("expected cluster from env, got %q", cfg.ClusterIdentifier)
	}
	if cfg.TTL.Unit != DefaultTTLUnit {
		t.Errorf("expected default unit, got %q", cfg.TTL.Unit)
	}
}

func TestLoadConfigWithEnvOverrides_InvalidEnvValues(t *testing.T) {
	configPath := writeConfig(t, `
cluster_identifier: "orders-aurora"
ttl:
  magnitude: 5
server:
  shutdown_timeout: "15s"
`)

	t.Setenv("SNAPPER_TTL_MAGNITUDE", "five")
	t.Setenv("SNAPPER_PUBLISH_ON_SUCCESS", "maybe")
	t.Setenv("SNAPPER_SHUTDOWN_TIMEOUT", "soon")

	cfg, err := LoadConfigWithEnvOverrides(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.TTL.Magnitude != 5 {
		t.Errorf("invalid magnitude should be ignored, got %d", cfg.TTL.Magnitude)
	}
	if cfg.Notification.PublishOnSuccess {
		t.Error("invalid boolean should be ignored")
	}
	if cfg.Server.ShutdownTimeout != 15*time.Second {
		t.Errorf("invalid duration should be ignored, got %v", cfg.Server.ShutdownTimeout)
	}
}

func TestApplyDefaults_Idempotent(t *testing.T) {
	cfg := &Config{TTL: TTLConfig{Magnitude: 3, Unit: "day"}}
	ApplyDefaults(cfg)
	ApplyDefaults(cfg)

	if cfg.TTL.Magnitude != 3 || cfg.TTL.Unit != "day" {
		t.Errorf("defaults overwrote explicit ttl: %+v", cfg.TTL)
	}
	if cfg.Telemetry.Metrics.Namespace != DefaultMetricsNamespace {
		t.Errorf("expected default namespace, got %q", cfg.Telemetry.Metrics.Namespace)
	}
}
