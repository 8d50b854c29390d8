// Package scheduler provides the recurring daily trigger for sync runs.
// It is a long-lived service object constructed once at process start
// with explicit Start/Stop lifecycle calls.
package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// RunFunc is the zero-argument sync entry point the scheduler invokes.
type RunFunc func(ctx context.Context)

// Scheduler fires a run once a day at a fixed UTC hour.
type Scheduler struct {
	hour   int
	run    RunFunc
	logger *zerolog.Logger
	now    func() time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a scheduler firing daily at hourUTC (0-23).
func New(hourUTC int, run RunFunc, logger *zerolog.Logger) *Scheduler {
	return &Scheduler{
		hour:   hourUTC,
		run:    run,
		logger: logger,
		now:    time.Now,
	}
}

// NextRun returns the first occurrence of the scheduler's UTC hour
// strictly after now.
func NextRun(now time.Time, hourUTC int) time.Time {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), hourUTC, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Start launches the trigger loop. It returns immediately; runs execute
// on a background goroutine until Stop is called or ctx is canceled.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.loop(ctx)

	s.logger.Info().
		Int("hour_utc", s.hour).
		Time("next_run", NextRun(s.now(), s.hour)).
		Msg("Scheduler started")
}

// Stop halts the trigger loop and waits for it to exit. An in-flight
// run is canceled through its context.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info().Msg("Scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.done)

	for {
		wait := time.Until(NextRun(s.now(), s.hour))
		timer := time.NewTimer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.logger.Info().Msg("Scheduled sync triggered")
			s.run(ctx)
		}
	}
}
