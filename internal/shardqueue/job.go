package shardqueue

import "context"

// Job is one unit of work bound to a workspace key, typically a generation
// request. Run receives the context the job was submitted with.
type Job interface {
	Run(ctx context.Context) error
}

// JobFunc adapts a closure to Job, the usual way callers submit work.
type JobFunc func(ctx context.Context) error

func (f JobFunc) Run(ctx context.Context) error { return f(ctx) }
