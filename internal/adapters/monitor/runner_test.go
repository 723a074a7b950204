package monitor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRevalidator struct {
	calls atomic.Int64
	err   error
	done  chan struct{}
}

func (c *countingRevalidator) RevalidateAll(ctx context.Context) error {
	if n := c.calls.Add(1); n == 1 && c.done != nil {
		close(c.done)
	}
	return c.err
}

func TestNewRunnerRequiresRevalidator(t *testing.T) {
	_, err := NewRunner(RunnerOptions{})
	assert.Error(t, err)
}

func TestRunnerSweepsImmediately(t *testing.T) {
	rev := &countingRevalidator{done: make(chan struct{})}
	runner, err := NewRunner(RunnerOptions{Revalidator: rev, Interval: time.Hour})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- runner.Run(ctx) }()

	select {
	case <-rev.done:
	case <-time.After(2 * time.Second):
		t.Fatal("first sweep never ran")
	}

	cancel()
	assert.NoError(t, <-errCh)
	assert.Equal(t, int64(1), rev.calls.Load())
}

func TestRunnerRepeatsOnInterval(t *testing.T) {
	rev := &countingRevalidator{}
	runner, err := NewRunner(RunnerOptions{Revalidator: rev, Interval: 10 * time.Millisecond})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- runner.Run(ctx) }()

	assert.Eventually(t, func() bool {
		return rev.calls.Load() >= 3
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	assert.NoError(t, <-errCh)
}

func TestRunnerKeepsGoingAfterSweepErrors(t *testing.T) {
	rev := &countingRevalidator{err: errors.New("backend down")}
	runner, err := NewRunner(RunnerOptions{Revalidator: rev, Interval: 10 * time.Millisecond})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- runner.Run(ctx) }()

	assert.Eventually(t, func() bool {
		return rev.calls.Load() >= 2
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	assert.NoError(t, <-errCh)
}

func TestRunnerStopsPromptlyOnCancel(t *testing.T) {
	rev := &countingRevalidator{}
	runner, err := NewRunner(RunnerOptions{Revalidator: rev, Interval: time.Hour})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("runner did not stop after cancel")
	}
}
