package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"mercator-hq/snapper/pkg/cli"
	"mercator-hq/snapper/pkg/cloud"
	"mercator-hq/snapper/pkg/config"
	"mercator-hq/snapper/pkg/notify"
	"mercator-hq/snapper/pkg/runner"
	"mercator-hq/snapper/pkg/snapshot/rds"
	"mercator-hq/snapper/pkg/telemetry/logging"
	"mercator-hq/snapper/pkg/telemetry/metrics"
	"mercator-hq/snapper/pkg/telemetry/tracing"
)

// deleteConcurrency caps in-flight deletes; 0 submits the whole batch at once.
var deleteConcurrency int

// app holds the collaborators shared by every command.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	tracer  *tracing.Tracer
	metrics *metrics.Collector
	runner  *runner.Runner
}

// loadConfig reads path (may be empty) plus the environment. Failures are
// returned as *cli.ConfigError.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadConfigWithEnvOverrides(path)
	if err != nil {
		return nil, cli.NewConfigError(path, err)
	}
	return cfg, nil
}

// newLogger builds the process logger from cfg and installs it as the
// slog default.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.New(logging.Config{
		Level:     cfg.Telemetry.Logging.Level,
		Format:    cfg.Telemetry.Logging.Format,
		AddSource: cfg.Telemetry.Logging.AddSource,
	})
	if err != nil {
		return nil, cli.NewConfigError("", err)
	}
	slog.SetDefault(logger)

	for _, warning := range config.Warnings(cfg) {
		logger.Warn(warning)
	}
	return logger, nil
}

// newApp wires the runner to RDS, the reporter to SNS when a target is
// configured, and both to logging, metrics and tracing. registry may be nil.
func newApp(ctx context.Context, cfg *config.Config, registry *prometheus.Registry) (*app, error) {
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	tracer, err := tracing.New(&cfg.Telemetry.Tracing, Version)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	awsCfg, err := cloud.LoadAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return nil, err
	}

	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, registry)

	reporterOpts := []notify.ReporterOption{
		notify.WithPublishOnSuccess(cfg.Notification.PublishOnSuccess),
		notify.WithReporterMetrics(collector),
		notify.WithReporterTracer(tracer),
		notify.WithReporterLogger(logger),
	}
	if cfg.PublishingEnabled() {
		publisher := notify.NewSNSPublisher(notify.NewSNSClient(awsCfg), cfg.Notification.Target)
		reporterOpts = append(reporterOpts, notify.WithPublisher(publisher))
		logger.Debug("notifications enabled", "target", publisher.String())
	}

	store := rds.NewStore(rds.NewClient(awsCfg))

	r := runner.New(store,
		runner.WithReporter(notify.NewReporter(reporterOpts...)),
		runner.WithMetrics(collector),
		runner.WithTracer(tracer),
		runner.WithLogger(logger),
		runner.WithDeleteConcurrency(deleteConcurrency),
	)

	return &app{
		cfg:     cfg,
		logger:  logger,
		tracer:  tracer,
		metrics: collector,
		runner:  r,
	}, nil
}

// close flushes and stops the tracer.
func (a *app) close(ctx context.Context) {
	if err := a.tracer.Shutdown(ctx); err != nil {
		a.logger.Warn("failed to shut down tracer", "error", err)
	}
}
