package main

import (
	"github.com/spf13/cobra"

	"mercator-hq/snapper/pkg/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	Long: `Load the configuration file and environment overrides, apply defaults and
report every validation error at once.

Warnings, such as an unknown TTL unit that will never delete anything, are
printed but do not fail validation.

Examples:
  snapper validate --config snapper.yaml`,
	RunE: validateConfig,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateConfig(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(outputFormat)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}

	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), newValidateView(cfg))
}
