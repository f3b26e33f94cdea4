package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
// Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. It applies uniformly to generation, listing and persona calls.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client entirely. Useful for
// tests and for callers with their own transport configuration.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithPersonaSource wires the resolver for the active persona id, typically
// a *session.Store. Without one, generation requests use the "default"
// persona.
func WithPersonaSource(ps PersonaSource) Option {
	return func(c *Client) error {
		c.personas = ps
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments as it increases
// verbosity and may include headers and payloads in logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			base := c.http.Transport
			if base == nil {
				base = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: base}
		}
		return nil
	}
}
