//go:build stress

package shardqueue

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// High-volume confirmation that one workspace key never has two jobs in
// flight, even with many concurrent submitters.
func TestStressSingleWorkspaceStaysSerial(t *testing.T) {
	t.Parallel()
	const jobs = 1_000

	ex := NewShardExecutor(Config{Shards: 4, QueueSize: 1024})
	defer ex.Stop()

	var (
		inFlight int32
		overlap  int32
		wg       sync.WaitGroup
	)
	wg.Add(jobs)
	for i := 0; i < jobs; i++ {
		go func() {
			defer wg.Done()
			_ = ex.Submit(context.Background(), "workspace-a", JobFunc(func(ctx context.Context) error {
				if atomic.AddInt32(&inFlight, 1) > 1 {
					atomic.StoreInt32(&overlap, 1)
				}
				time.Sleep(time.Microsecond)
				atomic.AddInt32(&inFlight, -1)
				return nil
			}))
		}()
	}
	waitOrTimeout(t, &wg, 5*time.Second)

	if atomic.LoadInt32(&overlap) == 1 {
		t.Fatal("overlapping execution for one workspace under load")
	}
}

// A tiny shard queue under heavy submission pressure must reject some but
// not all submissions with ErrQueueFull.
func TestStressBackpressure(t *testing.T) {
	t.Parallel()
	ex := NewShardExecutor(Config{Shards: 1, QueueSize: 4, EnqueueTimeout: 10 * time.Microsecond})
	defer ex.Stop()

	const attempts = 512
	const submitters = 16

	var full int32
	var wg sync.WaitGroup
	wg.Add(submitters)
	for s := 0; s < submitters; s++ {
		go func() {
			defer wg.Done()
			for i := 0; i < attempts/submitters; i++ {
				err := ex.Submit(context.Background(), "workspace-a", JobFunc(func(ctx context.Context) error {
					time.Sleep(200 * time.Microsecond)
					return nil
				}))
				if errors.Is(err, ErrQueueFull) {
					atomic.AddInt32(&full, 1)
				}
			}
		}()
	}
	wg.Wait()

	fc := atomic.LoadInt32(&full)
	if fc == 0 || fc == attempts {
		t.Fatalf("expected partial back-pressure, got full=%d of %d", fc, attempts)
	}
}

// Randomised mix of workspace keys, short-lived contexts and a concurrent
// Stop. The seed is logged and replayable via SHARDQUEUE_STRESS_SEED.
func TestStressRandomised(t *testing.T) {
	t.Parallel()
	const (
		duration   = 200 * time.Millisecond
		submitters = 8
		workspaces = 32
	)

	seed := time.Now().UnixNano()
	if s := os.Getenv("SHARDQUEUE_STRESS_SEED"); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			seed = v
		}
	}
	t.Logf("stress seed=%d", seed)

	ex := NewShardExecutor(Config{Shards: 8, QueueSize: 64})
	defer ex.Stop()

	stopCtx, stop := context.WithTimeout(context.Background(), duration)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(submitters)
	for id := 0; id < submitters; id++ {
		rng := rand.New(rand.NewSource(seed + int64(id)))
		go func(rng *rand.Rand) {
			defer wg.Done()
			for {
				select {
				case <-stopCtx.Done():
					return
				default:
				}
				key := fmt.Sprintf("workspace-%d", rng.Intn(workspaces))
				ctx, cancel := context.WithTimeout(context.Background(), time.Duration(rng.Intn(200))*time.Microsecond)
				sleep := time.Duration(rng.Intn(150)) * time.Microsecond
				_ = ex.Submit(ctx, key, JobFunc(func(ctx context.Context) error {
					time.Sleep(sleep)
					return nil
				}))
				cancel()
			}
		}(rng)
	}
	wg.Wait()
}
