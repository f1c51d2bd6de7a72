// Package scheduler drives the turn clock: one engine tick per interval until
// its context is cancelled.
package scheduler

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/louisbranch/titans/internal/platform/timeouts"
	"github.com/louisbranch/titans/internal/services/titans/engine"
)

// ErrTargetRequired indicates a scheduler without anything to tick.
var ErrTargetRequired = errors.New("tick target is required")

// Target receives ticks.
type Target interface {
	Tick(ctx context.Context) (engine.Result, error)
}

// Ticker is the subset of *time.Ticker the scheduler uses.
type Ticker interface {
	C() <-chan time.Time
	Reset(d time.Duration)
	Stop()
}

type timeTicker struct {
	*time.Ticker
}

func (t timeTicker) C() <-chan time.Time {
	return t.Ticker.C
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithTicker replaces the wall-clock ticker, mainly for tests.
func WithTicker(newTicker func(time.Duration) Ticker) Option {
	return func(s *Scheduler) {
		if newTicker != nil {
			s.newTicker = newTicker
		}
	}
}

// Scheduler ticks a target at a fixed interval.
type Scheduler struct {
	target    Target
	interval  time.Duration
	newTicker func(time.Duration) Ticker
	restart   chan struct{}
}

// New returns a scheduler ticking target every interval. A non-positive
// interval falls back to timeouts.Tick.
func New(target Target, interval time.Duration, opts ...Option) (*Scheduler, error) {
	if target == nil {
		return nil, ErrTargetRequired
	}
	if interval <= 0 {
		interval = timeouts.Tick
	}
	s := &Scheduler{
		target:   target,
		interval: interval,
		newTicker: func(d time.Duration) Ticker {
			return timeTicker{time.NewTicker(d)}
		},
		restart: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Restart drops the partial interval in progress so the next tick lands one
// full interval from now. It never blocks and is safe to call from a tick
// subscriber.
func (s *Scheduler) Restart() {
	select {
	case s.restart <- struct{}{}:
	default:
	}
}

// Run ticks until ctx is cancelled. Tick failures are logged and do not stop
// the loop.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := s.newTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.restart:
			ticker.Reset(s.interval)
		case <-ticker.C():
			if _, err := s.target.Tick(ctx); err != nil {
				log.Printf("scheduler tick: %v", err)
			}
		}
	}
}
