package logging

import (
	"context"
	"log/slog"
)

// Context keys for common log fields.
type contextKey string

const (
	// RunIDKey is the context key for rotation run IDs.
	RunIDKey contextKey = "run_id"

	// ClusterKey is the context key for the target cluster identifier.
	ClusterKey contextKey = "cluster"
)

// WithRunID adds a run ID to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// RunID retrieves the run ID from the context.
func RunID(ctx context.Context) string {
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return runID
	}
	return ""
}

// WithCluster adds a cluster identifier to the context.
func WithCluster(ctx context.Context, cluster string) context.Context {
	return context.WithValue(ctx, ClusterKey, cluster)
}

// Cluster retrieves the cluster identifier from the context.
func Cluster(ctx context.Context) string {
	if cluster, ok := ctx.Value(ClusterKey).(string); ok {
		return cluster
	}
	return ""
}

func contextAttrs(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}

	var attrs []slog.Attr
	if runID := RunID(ctx); runID != "" {
		attrs = append(attrs, slog.String(string(RunIDKey), runID))
	}
	if cluster := Cluster(ctx); cluster != "" {
		attrs = append(attrs, slog.String(string(ClusterKey), cluster))
	}
	return attrs
}
