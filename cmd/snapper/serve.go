package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"mercator-hq/snapper/pkg/cli"
	"mercator-hq/snapper/pkg/config"
	"mercator-hq/snapper/pkg/retention"
	"mercator-hq/snapper/pkg/schedule"
	"mercator-hq/snapper/pkg/telemetry/health"
)

// healthCheckTimeout bounds each readiness check.
const healthCheckTimeout = 5 * time.Second

var serveFlags struct {
	listenAddress string
	runOnStart    bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Rotate snapshots on a cron schedule",
	Long: `Run rotations on the configured cron schedule and serve Prometheus metrics
and health endpoints until interrupted.

Endpoints:
  /metrics   Prometheus metrics (path configurable)
  /healthz   liveness
  /readyz    scheduler running and last run result
  /version   build information

When a config file is given it is watched; schedule, cluster and TTL changes
apply without a restart.

Examples:
  snapper serve --config snapper.yaml
  snapper serve --config snapper.yaml --listen 0.0.0.0:9090 --run-on-start`,
	RunE: serve,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveFlags.listenAddress, "listen", "l", "", "override listen address")
	serveCmd.Flags().BoolVar(&serveFlags.runOnStart, "run-on-start", false, "run one rotation immediately")
	serveCmd.Flags().IntVar(&deleteConcurrency, "delete-concurrency", 0, "maximum concurrent deletes (0: unlimited)")
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}
	if serveFlags.listenAddress != "" {
		cfg.Server.ListenAddress = serveFlags.listenAddress
	}

	ctx, stop := cli.SetupSignalHandler(cmd.Context())
	defer stop()

	a, err := newApp(ctx, cfg, prometheus.NewRegistry())
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	var policy atomic.Pointer[retention.Policy]
	initial := cfg.Policy()
	policy.Store(&initial)

	runState := health.NewRunState()
	scheduler := schedule.NewScheduler(a.runner,
		func() retention.Policy { return *policy.Load() },
		schedule.WithObserver(runState.Observe),
		schedule.WithLogger(a.logger),
	)
	if err := scheduler.Start(ctx, cfg.Schedule); err != nil {
		return cli.NewCommandError("serve", err)
	}
	defer scheduler.Stop()

	if cfgFile != "" {
		if err := watchConfig(ctx, a, scheduler, &policy); err != nil {
			return cli.NewCommandError("serve", err)
		}
	}

	checker := health.New(healthCheckTimeout)
	checker.RegisterCheck("scheduler", scheduler.Check)
	checker.RegisterCheck("last_run", runState.Check)

	mux := http.NewServeMux()
	mux.Handle(cfg.Telemetry.Metrics.Path, a.metrics.Handler())
	health.Register(mux, checker, Version, GitCommit)

	srv := &http.Server{
		Addr:              cfg.Server.ListenAddress,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		a.logger.Info("starting HTTP server", "address", srv.Addr, "metrics_path", cfg.Telemetry.Metrics.Path)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	if serveFlags.runOnStart {
		go scheduler.RunNow(ctx)
	}

	a.logger.Info("snapper serving",
		"cluster", cfg.ClusterIdentifier,
		"schedule", cfg.Schedule,
		"next_run", scheduler.NextRun(),
	)

	select {
	case err := <-errChan:
		return cli.NewCommandError("serve", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("shutdown failed", "error", err)
		return cli.NewCommandError("serve", err)
	}
	return nil
}

// watchConfig applies valid edits of the config file: the policy is swapped
// for the next run and the scheduler follows schedule changes. Settings
// bound at startup are only reported.
func watchConfig(ctx context.Context, a *app, scheduler *schedule.Scheduler, policy *atomic.Pointer[retention.Policy]) error {
	watcher, err := config.NewWatcher(cfgFile, a.cfg, a.logger)
	if err != nil {
		return err
	}

	go func() {
		err := watcher.Watch(ctx, func(next *config.Config) {
			p := next.Policy()
			policy.Store(&p)

			if err := scheduler.Reschedule(next.Schedule); err != nil {
				a.logger.Error("failed to apply schedule", "schedule", next.Schedule, "error", err)
			}
			if requiresRestart(a.cfg, next) {
				a.logger.Warn("notification, AWS and telemetry changes apply after a restart")
			}
		})
		if err != nil {
			a.logger.Error("config watcher stopped", "error", err)
		}
	}()
	return nil
}

// requiresRestart reports whether next changes settings wired at startup.
func requiresRestart(current, next *config.Config) bool {
	return current.Notification != next.Notification ||
		current.AWS != next.AWS ||
		current.Server.ShutdownTimeout != next.Server.ShutdownTimeout ||
		current.Telemetry != next.Telemetry
}
