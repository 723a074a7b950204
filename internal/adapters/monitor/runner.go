// Package monitor runs the periodic session revalidation loop. Every live
// dashboard session is re-checked against the backend's who-am-I endpoint
// so that a session revoked upstream stops working here within one
// interval.
package monitor

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

const defaultInterval = 30 * time.Second

// Revalidator sweeps all live sessions once. Implemented by the auth
// service.
type Revalidator interface {
	RevalidateAll(ctx context.Context) error
}

// RunnerOptions holds the dependencies for creating a Runner.
type RunnerOptions struct {
	Revalidator Revalidator
	// Interval is the delay between the end of one sweep and the start of
	// the next; zero means the default of 30 seconds.
	Interval time.Duration
	Logger   *slog.Logger
}

// Runner drives the revalidation loop.
type Runner struct {
	revalidator Revalidator
	interval    time.Duration
	logger      *slog.Logger
}

// NewRunner creates a new monitor runner with the given options.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if opts.Revalidator == nil {
		return nil, errors.New("revalidator is required")
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		revalidator: opts.Revalidator,
		interval:    interval,
		logger:      logger.With("component", "session_monitor"),
	}, nil
}

// Run sweeps immediately, then on a fixed delay: the timer is armed only
// after a sweep finishes, so a slow backend stretches the cycle instead
// of stacking sweeps. Returns nil on graceful shutdown.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.InfoContext(ctx, "starting session monitor", "interval", r.interval)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.InfoContext(ctx, "session monitor stopping", "reason", ctx.Err())
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()

		case <-timer.C:
			if err := r.revalidator.RevalidateAll(ctx); err != nil {
				if ctx.Err() != nil {
					continue // loop exits via ctx.Done
				}
				r.logger.ErrorContext(ctx, "revalidation sweep failed", "error", err)
			}
			timer.Reset(r.interval)
		}
	}
}
