package logging

import (
	"context"
	"testing"
)

func TestContextKeys(t *testing.T) {
	ctx := context.Background()

	if got := RunID(ctx); got != "" {
		t.Errorf("RunID() on empty context = %q, want empty", got)
	}

	ctx = WithRunID(ctx, "run-123")
	if got := RunID(ctx); got != "run-123" {
		t.Errorf("RunID() = %q, want %q", got, "run-123")
	}

	ctx = WithCluster(ctx, "c1")
	if got := Cluster(ctx); got != "c1" {
		t.Errorf("Cluster() = %q, want %q", got, "c1")
	}

	attrs := contextAttrs(ctx)
	if len(attrs) != 2 {
		t.Fatalf("contextAttrs() returned %d attrs, want 2", len(attrs))
	}
}
