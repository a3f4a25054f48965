/*
Package cli provides command-line helpers used by the snapper command.

Output Formatting:

Command results are printed as JSON (the default, so output can be piped) or
as a human-readable table:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, report); err != nil {
		return err
	}

Errors and Exit Codes:

Configuration problems exit with status 2, failed rotation runs and other
command failures with status 1:

	os.Exit(cli.ExitCode(err))

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx, stop := cli.SetupSignalHandler(context.Background())
	defer stop()
*/
package cli
