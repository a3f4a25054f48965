// Package logging builds the structured slog logger used across snapper.
//
// # Overview
//
//   - JSON or text output, selected by configuration
//   - Configurable log levels (debug, info, warn, error)
//   - Run-scoped fields (run_id, cluster) taken from the context of every
//     *Context logging call
//
// # Usage
//
//	logger, err := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//	if err != nil {
//	    return err
//	}
//	slog.SetDefault(logger)
//
//	ctx = logging.WithRunID(ctx, runID)
//	logger.InfoContext(ctx, "snapshot created", "snapshot_id", id)
//	// {"level":"INFO","msg":"snapshot created","run_id":"...","snapshot_id":"..."}
package logging
