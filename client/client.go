// Package client is the Go SDK for the Segmint content API: persona-aware
// content generation, stored-post listing, persona lookup and signup
// submission. It performs no local state management; the studio package
// layers workspace semantics on top.
package client

import (
	"context"
	"net/http"
	"time"

	"github.com/incubyte/segmint/internal/api"
)

// PersonaSource resolves the active persona id, typically backed by the
// session store. The second return is false when no persona is active.
type PersonaSource interface {
	ActivePersonaID() (string, bool)
}

// Client talks to the Segmint backend. Construct with New; the zero value is
// not usable. Safe for concurrent use.
type Client struct {
	baseURL  string
	http     *http.Client
	personas PersonaSource
}

// New constructs a Client for the given base URL. Additional options can be
// provided via functional arguments.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	return c
}

// activePersonaID resolves the persona attached to generation requests,
// falling back to the literal "default" when no source is configured or the
// source has no active persona.
func (c *Client) activePersonaID() string {
	if c.personas != nil {
		if id, ok := c.personas.ActivePersonaID(); ok && id != "" {
			return id
		}
	}
	return DefaultPersonaID
}

// --------------------------------------------------------------------
// Content operations - delegated to internal/api
// --------------------------------------------------------------------

// GenerateContent requests new content suggestions and returns them as
// normalized content items. The active persona id is attached automatically.
// The call mutates no local state; callers merge the result themselves.
func (c *Client) GenerateContent(ctx context.Context, settings GenerationSettings) ([]ContentItem, error) {
	items, err := api.GenerateContent(ctx, c.http, c.baseURL, c.activePersonaID(), settings)
	if err != nil {
		generationFailuresTotal.WithLabelValues(settings.Platform).Inc()
		return nil, err
	}
	generationsTotal.WithLabelValues(settings.Platform).Inc()
	suggestionsTotal.Add(float64(len(items)))
	return items, nil
}

// FetchPostsByUser retrieves all stored posts for a user, flattened into one
// content item per suggestion.
func (c *Client) FetchPostsByUser(ctx context.Context, userID string) ([]ContentItem, error) {
	return api.FetchPostsByUser(ctx, c.http, c.baseURL, userID)
}

// --------------------------------------------------------------------
// Persona operations - delegated to internal/api
// --------------------------------------------------------------------

// GetPersona retrieves a persona by id.
func (c *Client) GetPersona(ctx context.Context, personaID string) (*Persona, error) {
	return api.GetPersona(ctx, c.http, c.baseURL, personaID)
}

// ListPersonas retrieves the personas for a user email, newest first.
func (c *Client) ListPersonas(ctx context.Context, email string, limit int) ([]Persona, error) {
	return api.ListPersonas(ctx, c.http, c.baseURL, email, limit)
}

// CreatePersona submits signup questionnaire answers and returns the derived
// persona. The call is bounded to 15 seconds regardless of the caller's
// context.
func (c *Client) CreatePersona(ctx context.Context, req CreatePersonaRequest) (*CreatePersonaResponse, error) {
	return api.CreatePersona(ctx, c.http, c.baseURL, req)
}
