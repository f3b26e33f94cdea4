package shardqueue

import (
	"errors"
	"fmt"
)

// ErrExecutorClosed is returned by Submit after Stop has been called.
var ErrExecutorClosed = errors.New("shardqueue: executor closed")

// ErrQueueFull is the target for errors.Is matching against *QueueFullError.
var ErrQueueFull = errors.New("shardqueue: queue full")

// QueueFullError reports which shard rejected a submission and how full it
// was at the time.
type QueueFullError struct {
	Shard    int
	Length   int
	Capacity int
}

func (e *QueueFullError) Error() string {
	return fmt.Sprintf("shardqueue: shard %d full (%d/%d)", e.Shard, e.Length, e.Capacity)
}

// Is lets errors.Is(err, ErrQueueFull) match a *QueueFullError.
func (e *QueueFullError) Is(target error) bool { return target == ErrQueueFull }
