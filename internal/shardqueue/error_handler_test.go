package shardqueue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestErrorHandlerCalledOncePerFailedJob(t *testing.T) {
	t.Parallel()
	var calls int32
	ex := NewShardExecutor(Config{
		Shards: 1, QueueSize: 8, MaxAttempts: 1,
		ErrorHandler: func(err error) { atomic.AddInt32(&calls, 1) },
	})
	defer ex.Stop()

	submitAndDrain(t, ex, "workspace-a", JobFunc(func(ctx context.Context) error {
		return errors.New("generation failed")
	}))

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("handler calls = %d, want 1", got)
	}
}

func TestErrorHandlerPanicIsContained(t *testing.T) {
	t.Parallel()
	ex := NewShardExecutor(Config{
		Shards: 1, QueueSize: 8, MaxAttempts: 1,
		ErrorHandler: func(err error) { panic("handler panic") },
	})
	defer ex.Stop()

	// The panicking handler fires for this job; the drain sentinel inside
	// submitAndDrain proves the worker survived it.
	submitAndDrain(t, ex, "workspace-a", JobFunc(func(ctx context.Context) error {
		return errors.New("generation failed")
	}))
}

func TestNilErrorHandlerIgnoresFailures(t *testing.T) {
	t.Parallel()
	ex := NewShardExecutor(Config{Shards: 1, QueueSize: 4, MaxAttempts: 1})
	defer ex.Stop()

	submitAndDrain(t, ex, "workspace-a", JobFunc(func(ctx context.Context) error {
		return errors.New("dropped on the floor")
	}))
}
