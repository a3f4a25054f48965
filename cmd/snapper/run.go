package main

import (
	"context"

	"github.com/spf13/cobra"

	"mercator-hq/snapper/pkg/cli"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one snapshot rotation",
	Long: `Create a new snapshot of the configured cluster, delete the expired snapshots
this task created, and print the run report.

The command exits non-zero when any stage fails; the failure report names the
stage (create, list or delete) and the AWS error.

Examples:
  # Rotate using environment configuration
  SNAPPER_CLUSTER_IDENTIFIER=orders-aurora snapper run

  # Rotate with a config file, printing a table
  snapper run --config snapper.yaml --output text`,
	RunE: runRotation,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVar(&deleteConcurrency, "delete-concurrency", 0, "maximum concurrent deletes (0: unlimited)")
}

func runRotation(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(outputFormat)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}

	ctx, stop := cli.SetupSignalHandler(cmd.Context())
	defer stop()

	a, err := newApp(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	o := a.runner.Run(ctx, cfg.Policy())

	formatter := cli.NewFormatter(format)
	if err := formatter.FormatTo(cmd.OutOrStdout(), newRunView(o)); err != nil {
		return err
	}

	if err := o.Error(); err != nil {
		return cli.NewCommandError("run", err)
	}
	return nil
}
