// Package config provides configuration management for snapper.
//
// This package handles loading, validating, and watching configuration from
// YAML files with environment variable overrides.
//
// # Configuration Loading
//
//	cfg, err := config.LoadConfigWithEnvOverrides("snapper.yaml")
//
// An empty path skips the file entirely, which is how the Lambda deployment
// runs: the function is configured through environment variables only.
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention SNAPPER_FIELD.
// For example:
//
//   - SNAPPER_CLUSTER_IDENTIFIER overrides cluster_identifier
//   - SNAPPER_TTL_MAGNITUDE overrides ttl.magnitude
//   - SNAPPER_NOTIFICATION_TARGET overrides notification.target
//
// # Configuration Precedence
//
//  1. Default values (defined in defaults.go)
//  2. Values from the YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid, reporting every problem at once)
//
// # Retention Policy
//
// Core packages never read configuration. The entry point builds a
// retention.Policy once with Config.Policy and passes it down.
//
// # Watching
//
// Watcher reloads the file when it changes and hands the new configuration
// to a callback. Invalid edits are logged and ignored.
package config
