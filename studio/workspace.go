// Package studio holds the in-memory content workspace: the merged list of
// generated and stored content items plus the item-level actions (copy,
// edit, delete, feedback) and the filter/group views built on top of it.
package studio

import (
	"context"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/incubyte/segmint/client"
	"github.com/incubyte/segmint/internal/shardqueue"
)

// ContentAPI is the slice of the SDK the workspace needs. *client.Client
// satisfies it.
type ContentAPI interface {
	GenerateContent(ctx context.Context, settings client.GenerationSettings) ([]client.ContentItem, error)
	FetchPostsByUser(ctx context.Context, userID string) ([]client.ContentItem, error)
}

// Workspace owns the content item list. Generation requests are serialized
// through a per-workspace FIFO queue so concurrent Generate calls merge in
// submission order; item-level actions take effect immediately under the
// workspace lock. Safe for concurrent use.
type Workspace struct {
	mu    sync.Mutex
	items []client.ContentItem

	api  ContentAPI
	exec *shardqueue.ShardExecutor
	key  string // shard key, one per workspace

	copyFn func(string) error
}

// WorkspaceOption configures a Workspace during construction.
type WorkspaceOption func(*Workspace)

// WithCopyFunc replaces the clipboard writer, mainly for tests and headless
// environments.
func WithCopyFunc(fn func(string) error) WorkspaceOption {
	return func(w *Workspace) { w.copyFn = fn }
}

// NewWorkspace constructs a workspace backed by api.
func NewWorkspace(api ContentAPI, opts ...WorkspaceOption) *Workspace {
	if api == nil {
		panic("studio: api cannot be nil")
	}
	w := &Workspace{
		api:    api,
		key:    uuid.NewString(),
		copyFn: clipboard.WriteAll,
		exec:   shardqueue.NewShardExecutor(queueConfig()),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// queueConfig builds the generation queue settings, honouring the SQ_* env
// tuning where it does not conflict with workspace semantics. A workspace
// serializes through a single key, and a failed generation is reported to
// the caller, never retried behind their back.
func queueConfig() shardqueue.Config {
	cfg, err := shardqueue.LoadConfig()
	if err != nil {
		log.Warn().Err(err).Msg("studio: bad SQ_* environment, using queue defaults")
		cfg = shardqueue.Config{}
	}
	cfg.Shards = 1
	cfg.MaxAttempts = 1
	return cfg
}

// Close stops the workspace's generation queue, draining pending jobs.
func (w *Workspace) Close() error {
	return w.exec.Close()
}

// Items returns a copy of the current content list, newest first.
func (w *Workspace) Items() []client.ContentItem {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]client.ContentItem, len(w.items))
	copy(out, w.items)
	return out
}

// Len returns the number of items in the workspace.
func (w *Workspace) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}

// Generate requests new suggestions and prepends them to the workspace.
// Calls are serialized per workspace, so two overlapping Generate calls
// merge their results in submission order. The new items are returned; on
// failure the workspace is left unchanged.
func (w *Workspace) Generate(ctx context.Context, settings client.GenerationSettings) ([]client.ContentItem, error) {
	var (
		items  []client.ContentItem
		jobErr error
	)
	done := make(chan struct{})
	job := shardqueue.JobFunc(func(jctx context.Context) error {
		defer close(done)
		items, jobErr = w.api.GenerateContent(jctx, settings)
		if jobErr != nil {
			return jobErr
		}
		w.mu.Lock()
		w.items = append(append([]client.ContentItem{}, items...), w.items...)
		w.mu.Unlock()
		return nil
	})
	if err := w.exec.Submit(ctx, w.key, job); err != nil {
		return nil, fmt.Errorf("studio: enqueue generation: %w", err)
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-done:
	}
	if jobErr != nil {
		return nil, jobErr
	}
	return items, nil
}

// Load replaces the workspace content with the user's stored posts. When the
// fetch fails the workspace falls back to the bundled sample items and the
// error is returned so callers can surface it.
func (w *Workspace) Load(ctx context.Context, userID string) error {
	items, err := w.api.FetchPostsByUser(ctx, userID)
	if err != nil {
		w.mu.Lock()
		w.items = FallbackItems()
		w.mu.Unlock()
		return err
	}
	w.mu.Lock()
	w.items = items
	w.mu.Unlock()
	return nil
}

// Copy writes the item's content to the clipboard. Copying a missing id is a
// no-op reported through the bool.
func (w *Workspace) Copy(id string) (bool, error) {
	w.mu.Lock()
	var content string
	found := false
	for _, it := range w.items {
		if it.ID == id {
			content = it.Content
			found = true
			break
		}
	}
	w.mu.Unlock()
	if !found {
		return false, nil
	}
	return true, w.copyFn(content)
}

// Edit replaces the item's content and marks it edited. Editing a missing id
// is a no-op.
func (w *Workspace) Edit(id, content string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.items {
		if w.items[i].ID == id {
			w.items[i].Content = content
			w.items[i].Status = client.StatusEdited
			return
		}
	}
}

// Delete removes the item. Deleting a missing id is a no-op.
func (w *Workspace) Delete(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.items {
		if w.items[i].ID == id {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return
		}
	}
}

// SetFeedback records feedback on the item, overwriting any previous value.
// Repeating the same feedback is idempotent; a missing id is a no-op.
func (w *Workspace) SetFeedback(id string, fb client.Feedback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.items {
		if w.items[i].ID == id {
			w.items[i].Feedback = fb
			return
		}
	}
}
