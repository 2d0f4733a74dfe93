// Package latency simulates the "submitting" pause the dashboards show
// before a form is confirmed. It never changes what the submission does.
package latency

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSubmissionPending is returned when the same form is submitted again
// before its previous submission has finished.
var ErrSubmissionPending = errors.New("a submission for this form is already in progress")

// Simulator delays form submissions and admits at most one pending
// submission per form key.
type Simulator struct {
	delay time.Duration

	mu      sync.Mutex
	pending map[string]struct{}
}

// NewSimulator returns a Simulator that waits delay before each submission.
func NewSimulator(delay time.Duration) *Simulator {
	if delay < 0 {
		delay = 0
	}
	return &Simulator{delay: delay, pending: make(map[string]struct{})}
}

// Delay returns the configured pause.
func (s *Simulator) Delay() time.Duration { return s.delay }

// Submit waits out the delay and then runs fn. If ctx ends during the wait
// fn is not run and ctx.Err() is returned.
func (s *Simulator) Submit(ctx context.Context, formKey string, fn func() error) error {
	if !s.acquire(formKey) {
		return ErrSubmissionPending
	}
	defer s.release(formKey)

	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	return fn()
}

// Pending reports whether formKey has a submission in flight.
func (s *Simulator) Pending(formKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[formKey]
	return ok
}

func (s *Simulator) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.pending[key]; busy {
		return false
	}
	s.pending[key] = struct{}{}
	return true
}

func (s *Simulator) release(key string) {
	s.mu.Lock()
	delete(s.pending, key)
	s.mu.Unlock()
}
