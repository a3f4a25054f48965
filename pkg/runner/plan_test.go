package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"mercator-hq/snapper/pkg/outcome"
	"mercator-hq/snapper/pkg/snapshot"
)

func TestPlan_HasNoSideEffects(t *testing.T) {
	store := snapshot.NewMemoryStore()
	seed(store, "snapper-30-minute-c1-1000", 45*time.Minute)
	seed(store, "snapper-30-minute-c1-2000", 10*time.Minute)
	seed(store, "other-prefix-9999", 365*24*time.Hour)

	plan, err := newTestRunner(store).Plan(context.Background(), minutePolicy())
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	if len(plan.Decisions) != 2 {
		t.Fatalf("expected 2 owned snapshots, got %d", len(plan.Decisions))
	}
	if plan.Expired() != 1 {
		t.Errorf("expected 1 expired snapshot, got %d", plan.Expired())
	}
	if plan.NextIdentifier != "snapper-30-minute-c1-1709294400000" {
		t.Errorf("unexpected next identifier %q", plan.NextIdentifier)
	}

	create, list, del := store.Calls()
	if create != 0 || list != 1 || del != 0 {
		t.Errorf("expected calls create=0 list=1 delete=0, got %d %d %d", create, list, del)
	}
}

func TestPlan_ListFailure(t *testing.T) {
	store := snapshot.NewMemoryStore()
	store.FailList(errors.New("access denied"))

	_, err := newTestRunner(store).Plan(context.Background(), minutePolicy())
	if !errors.Is(err, outcome.ErrListFailure) {
		t.Fatalf("expected ListFailure, got %v", err)
	}
}
