package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mercator-hq/snapper/pkg/cli"
)

var (
	// Global flags
	cfgFile      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "snapper",
	Short: "Snapper - Aurora cluster snapshot rotation",
	Long: `Snapper creates a manual snapshot of an Aurora RDS cluster and deletes the
manual snapshots it created earlier once they outlive their TTL.

Only snapshots whose identifier starts with the policy prefix
(snapper-<magnitude>-<unit>-<cluster>-) are ever considered for deletion.

Configuration is read from an optional YAML file and SNAPPER_* environment
variables, which take precedence.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with the code matching the error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", os.Getenv("SNAPPER_CONFIG"), "config file path (empty: defaults and environment only)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", string(cli.FormatJSON), "output format: json, text")
}
