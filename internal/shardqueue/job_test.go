package shardqueue

import (
	"context"
	"errors"
	"testing"
)

func TestJobFuncRunsAndPropagatesError(t *testing.T) {
	t.Parallel()
	ran := false
	j := JobFunc(func(ctx context.Context) error { ran = true; return nil })
	if err := j.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !ran {
		t.Fatal("wrapped function not called")
	}

	boom := errors.New("generation failed")
	j = JobFunc(func(ctx context.Context) error { return boom })
	if err := j.Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("Run err = %v, want %v", err, boom)
	}
}
