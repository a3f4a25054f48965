package schedule

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"mercator-hq/snapper/pkg/outcome"
	"mercator-hq/snapper/pkg/retention"
)

type countingJob struct {
	calls   atomic.Int32
	mu      sync.Mutex
	cluster string
}

func (j *countingJob) Run(ctx context.Context, policy retention.Policy) *outcome.Outcome {
	j.calls.Add(1)
	j.mu.Lock()
	j.cluster = policy.ClusterIdentifier
	j.mu.Unlock()
	return &outcome.Outcome{RunID: "r", ClusterIdentifier: policy.ClusterIdentifier}
}

func staticPolicy(cluster string) PolicySource {
	return func() retention.Policy {
		return retention.Policy{ClusterIdentifier: cluster, TTLMagnitude: 30, TTLUnit: retention.UnitMinute}
	}
}

func TestScheduler_StartInvalidSchedule(t *testing.T) {
	s := NewScheduler(&countingJob{}, staticPolicy("c1"))

	if err := s.Start(context.Background(), "not a cron"); err == nil {
		t.Fatal("expected error for invalid schedule")
	}
	if s.IsRunning() {
		t.Error("scheduler should not be running")
	}
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(&countingJob{}, staticPolicy("c1"))

	if err := s.Start(context.Background(), "0 * * * *"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !s.IsRunning() {
		t.Error("expected scheduler to be running")
	}
	if err := s.Check(context.Background()); err != nil {
		t.Errorf("expected healthy check, got %v", err)
	}

	next := s.NextRun()
	if next == nil || !next.After(time.Now()) {
		t.Errorf("expected a future next run, got %v", next)
	}

	if err := s.Start(context.Background(), "0 * * * *"); err == nil {
		t.Error("expected error starting twice")
	}

	s.Stop()
	if s.IsRunning() {
		t.Error("expected scheduler to be stopped")
	}
	if err := s.Check(context.Background()); err == nil {
		t.Error("expected unhealthy check after Stop")
	}
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	s := NewScheduler(&countingJob{}, staticPolicy("c1"))

	ctx, cancel := context.WithCancel(context.Background())
	if err := s.Start(ctx, "0 * * * *"); err != nil {
		t.Fatalf("Start: %v", err)
	}

	cancel()

	deadline := time.Now().Add(2 * time.Second)
	for s.IsRunning() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if s.IsRunning() {
		t.Error("scheduler still running after context cancellation")
	}
}

func TestScheduler_RunsOnSchedule(t *testing.T) {
	job := &countingJob{}
	observed := make(chan *outcome.Outcome, 8)

	s := NewScheduler(job, staticPolicy("orders"), WithObserver(func(o *outcome.Outcome) {
		observed <- o
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := s.Start(ctx, "@every 1s"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Stop()

	select {
	case o := <-observed:
		if o.ClusterIdentifier != "orders" {
			t.Errorf("unexpected cluster %q", o.ClusterIdentifier)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for scheduled run")
	}
}

func TestScheduler_Reschedule(t *testing.T) {
	s := NewScheduler(&countingJob{}, staticPolicy("c1"))

	if err := s.Reschedule("0 * * * *"); err == nil {
		t.Error("expected error rescheduling a stopped scheduler")
	}

	if err := s.Start(context.Background(), "0 * * * *"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Stop()

	if err := s.Reschedule("bogus"); err == nil {
		t.Error("expected error for invalid schedule")
	}
	if s.schedule != "0 * * * *" {
		t.Errorf("invalid reschedule replaced schedule: %q", s.schedule)
	}

	if err := s.Reschedule("*/5 * * * *"); err != nil {
		t.Fatalf("Reschedule: %v", err)
	}
	if len(s.cron.Entries()) != 1 {
		t.Errorf("expected exactly one entry, got %d", len(s.cron.Entries()))
	}
}

func TestScheduler_RunNowReadsCurrentPolicy(t *testing.T) {
	job := &countingJob{}
	var cluster atomic.Value
	cluster.Store("first")

	s := NewScheduler(job, func() retention.Policy {
		return retention.Policy{ClusterIdentifier: cluster.Load().(string)}
	})

	s.RunNow(context.Background())
	cluster.Store("second")
	o := s.RunNow(context.Background())

	if o.ClusterIdentifier != "second" {
		t.Errorf("expected policy to be re-read, got %q", o.ClusterIdentifier)
	}
	if job.calls.Load() != 2 {
		t.Errorf("expected 2 runs, got %d", job.calls.Load())
	}
}
