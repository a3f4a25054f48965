package main

import (
	"context"

	"github.com/spf13/cobra"

	"mercator-hq/snapper/pkg/cli"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show which snapshots a run would delete",
	Long: `List the cluster's manual snapshots and evaluate the ones this task owns
against the TTL, without creating or deleting anything.

Examples:
  snapper plan --config snapper.yaml --output text`,
	RunE: planRotation,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func planRotation(cmd *cobra.Command, args []string) error {
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

	plan, err := a.runner.Plan(ctx, cfg.Policy())
	if err != nil {
		return cli.NewCommandError("plan", err)
	}

	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), planView{plan})
}
