// Package persona caches the active persona for display. The provider loads
// the persona identified by the session and keeps serving the last good
// value when a refresh fails.
package persona

import (
	"context"
	"sync"

	"github.com/incubyte/segmint/client"
)

// State describes the provider's lifecycle.
type State int

const (
	// StateIdle means no persona id is available, so nothing was fetched.
	StateIdle State = iota
	// StateLoading means a fetch is in flight. On a refresh the previously
	// loaded persona stays in the snapshot while loading.
	StateLoading
	// StateLoaded means a persona is cached and current.
	StateLoaded
	// StateError means the most recent fetch failed. A previously loaded
	// persona is retained in the snapshot so callers can keep showing it.
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// FetchFunc retrieves a persona by id, typically (*client.Client).GetPersona.
type FetchFunc func(ctx context.Context, personaID string) (*client.Persona, error)

// IDSource resolves the persona id to load, typically a *session.Store.
type IDSource interface {
	ActivePersonaID() (string, bool)
}

// Snapshot is a point-in-time view of the provider.
type Snapshot struct {
	State State
	// Persona can be non-nil while State is Error: it is then the stale
	// value from before the failed refresh.
	Persona *client.Persona
	Err     error
}

// Provider caches the active persona. Safe for concurrent use.
type Provider struct {
	mu      sync.Mutex
	fetch   FetchFunc
	ids     IDSource
	state   State
	persona *client.Persona
	err     error
	closed  bool
}

// NewProvider constructs a Provider. fetch must not be nil; ids may be nil,
// in which case the provider stays idle.
func NewProvider(fetch FetchFunc, ids IDSource) *Provider {
	if fetch == nil {
		panic("persona: fetch func cannot be nil")
	}
	return &Provider{fetch: fetch, ids: ids, state: StateIdle}
}

// Init performs the initial load. When no persona id is available the
// provider stays idle, a valid steady state; a fetch failure leaves it in
// the error state with no cached persona.
func (p *Provider) Init(ctx context.Context) error {
	id, ok := p.activeID()
	if !ok {
		p.apply(func() {
			p.state = StateIdle
			p.persona = nil
			p.err = nil
		})
		return nil
	}

	p.apply(func() { p.state = StateLoading })

	got, err := p.fetch(ctx, id)
	if err != nil {
		p.apply(func() {
			p.state = StateError
			p.err = err
		})
		return err
	}
	p.apply(func() {
		p.state = StateLoaded
		p.persona = got
		p.err = nil
	})
	return nil
}

// Refresh re-fetches the persona, passing through the loading state while
// the fetch is in flight. On failure the state flips to Error but the
// previously cached persona is kept, so callers can keep showing the stale
// value alongside the error.
func (p *Provider) Refresh(ctx context.Context) error {
	id, ok := p.activeID()
	if !ok {
		p.apply(func() {
			p.state = StateIdle
			p.persona = nil
			p.err = nil
		})
		return nil
	}

	p.apply(func() { p.state = StateLoading })

	got, err := p.fetch(ctx, id)
	if err != nil {
		p.apply(func() {
			p.state = StateError
			p.err = err
		})
		return err
	}
	p.apply(func() {
		p.state = StateLoaded
		p.persona = got
		p.err = nil
	})
	return nil
}

// Snapshot returns the current state, cached persona and last error.
func (p *Provider) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{State: p.state, Persona: p.persona, Err: p.err}
}

// Close stops the provider. Fetches that complete afterwards no longer
// update its state. Idempotent.
func (p *Provider) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
}

// apply runs fn under the lock unless the provider is closed.
func (p *Provider) apply(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	fn()
}

func (p *Provider) activeID() (string, bool) {
	if p.ids == nil {
		return "", false
	}
	id, ok := p.ids.ActivePersonaID()
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
