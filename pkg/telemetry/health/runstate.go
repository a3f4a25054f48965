package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mercator-hq/snapper/pkg/outcome"
)

// RunState remembers the most recent rotation outcome.
type RunState struct {
	mu   sync.RWMutex
	last *outcome.Outcome
}

// NewRunState creates an empty RunState. Before the first run it is healthy.
func NewRunState() *RunState {
	return &RunState{}
}

// Observe records o as the most recent outcome.
func (s *RunState) Observe(o *outcome.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = o
}

// Last returns the most recent outcome, or nil before the first run.
func (s *RunState) Last() *outcome.Outcome {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// Check is a CheckFunc that fails while the last run failed.
func (s *RunState) Check(ctx context.Context) error {
	last := s.Last()
	if last == nil || last.Succeeded() {
		return nil
	}
	return fmt.Errorf("last run %s at %s failed: %s",
		last.RunID, last.FinishedAt.UTC().Format(time.RFC3339), last.Err.Kind())
}
