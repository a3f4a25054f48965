package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"mercator-hq/snapper/pkg/outcome"
	"mercator-hq/snapper/pkg/retention"
)

// Job executes one rotation run.
type Job interface {
	Run(ctx context.Context, policy retention.Policy) *outcome.Outcome
}

// PolicySource returns the policy for the next run.
type PolicySource func() retention.Policy

// Scheduler runs a Job on a cron schedule.
type Scheduler struct {
	job       Job
	policy    PolicySource
	observers []func(*outcome.Outcome)
	logger    *slog.Logger

	mu       sync.Mutex
	cron     *cron.Cron
	schedule string
	entry    cron.EntryID
	running  bool
	ctx      context.Context
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithObserver registers fn to receive every outcome.
func WithObserver(fn func(*outcome.Outcome)) Option {
	return func(s *Scheduler) { s.observers = append(s.observers, fn) }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) { s.logger = l }
}

// NewScheduler creates a scheduler running job with the policy from source.
func NewScheduler(job Job, source PolicySource, opts ...Option) *Scheduler {
	s := &Scheduler{
		job:    job,
		policy: source,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "scheduler")

	s.cron = cron.New(cron.WithChain(
		cron.Recover(cronLogger{s.logger}),
		cron.SkipIfStillRunning(cronLogger{s.logger}),
	))
	return s
}

// Start schedules the job with the standard five-field cron expression
// and starts the scheduler. It stops when ctx is cancelled.
//
// Common cron expressions:
//   - "0 * * * *"    - Hourly
//   - "*/15 * * * *" - Every 15 minutes
//   - "0 3 * * *"    - Daily at 3 AM
func (s *Scheduler) Start(ctx context.Context, schedule string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	s.ctx = ctx
	if err := s.setSchedule(schedule); err != nil {
		return err
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("rotation scheduler started", "schedule", schedule)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Reschedule replaces the schedule of a running scheduler. An invalid
// expression leaves the current schedule in place.
func (s *Scheduler) Reschedule(schedule string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return fmt.Errorf("scheduler not running")
	}
	if schedule == s.schedule {
		return nil
	}

	previous := s.schedule
	if err := s.setSchedule(schedule); err != nil {
		return err
	}

	s.logger.Info("rotation rescheduled", "previous", previous, "schedule", schedule)
	return nil
}

// setSchedule must be called with s.mu held.
func (s *Scheduler) setSchedule(schedule string) error {
	sched, err := cron.ParseStandard(schedule)
	if err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", schedule, err)
	}

	if s.entry != 0 {
		s.cron.Remove(s.entry)
	}
	s.entry = s.cron.Schedule(sched, cron.FuncJob(s.tick))
	s.schedule = schedule
	return nil
}

// tick does not take s.mu: Stop holds it while waiting for running jobs.
// s.ctx is written by Start before the cron goroutine exists.
func (s *Scheduler) tick() {
	s.RunNow(s.ctx)
}

// RunNow executes one run immediately and notifies observers.
func (s *Scheduler) RunNow(ctx context.Context) *outcome.Outcome {
	policy := s.policy()

	s.logger.Debug("starting scheduled rotation", "cluster", policy.ClusterIdentifier)

	o := s.job.Run(ctx, policy)
	for _, observe := range s.observers {
		observe(o)
	}
	return o
}

// Stop stops the scheduler and waits for a running job to complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	done := s.cron.Stop()
	<-done.Done()
	s.running = false
	s.logger.Info("rotation scheduler stopped")
}

// IsRunning returns true if the scheduler is running.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

// Check is a health check that fails when the scheduler is not running.
func (s *Scheduler) Check(ctx context.Context) error {
	if !s.IsRunning() {
		return fmt.Errorf("scheduler is not running")
	}
	return nil
}

// NextRun returns the next scheduled run time, or nil if nothing is scheduled.
func (s *Scheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entry == 0 {
		return nil
	}

	entry := s.cron.Entry(s.entry)
	if !entry.Valid() || entry.Next.IsZero() {
		return nil
	}

	next := entry.Next
	return &next
}

// cronLogger adapts slog to the cron.Logger interface.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
