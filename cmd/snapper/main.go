// Snapper rotates manual snapshots of an Aurora RDS cluster.
//
// Each run creates a new manual cluster snapshot, lists the cluster's manual
// snapshots, deletes the ones this task created that have outlived their
// TTL, and reports the outcome through the logs and, optionally, an SNS
// topic.
//
// Deployed as an AWS Lambda function the binary serves invocations; the
// configuration then comes from SNAPPER_* environment variables. Run
// anywhere else it is a regular CLI:
//
//	# Run one rotation and print the report
//	snapper run --config snapper.yaml
//
//	# Show what a run would delete, without side effects
//	snapper plan --config snapper.yaml --output text
//
//	# Rotate on the configured cron schedule, serving /metrics and /healthz
//	snapper serve --config snapper.yaml
//
//	# Check a configuration file
//	snapper validate --config snapper.yaml
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

func init() {
	// A missing .env file is the normal case outside local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}
}

func main() {
	if runningInLambda() {
		startLambda()
		return
	}
	Execute()
}
