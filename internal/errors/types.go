// Package errors defines the client-facing error taxonomy and its
// classification into recoverable and irrecoverable categories.
// Classification drives retry policy in the shard queue; the taxonomy
// itself is what SDK callers match against.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory determines how errors should be handled by retry logic.
type ErrorCategory int

const (
	// Recoverable errors may be retried with exponential backoff.
	// Examples: 500 Internal Server Error, network timeouts.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors fail immediately without retry.
	// Examples: validation failures, 400 Bad Request, unparseable bodies.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ValidationError reports a malformed request rejected before any network
// I/O. Always user-correctable.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// APIError is a non-2xx HTTP response, or a 2xx body carrying an explicit
// "error" field. Message holds the server-supplied text when available.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("API error: %d", e.StatusCode)
}

// TransportError is a network-level failure (connection refused, timeout,
// abort). No server response was obtained, which distinguishes it from
// APIError.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

// Unwrap returns the underlying error for error chain compatibility.
func (e *TransportError) Unwrap() error { return e.Err }

// InvalidResponseError is a 2xx response whose body cannot be parsed as
// JSON, or whose parsed shape matches no known response variant.
type InvalidResponseError struct {
	Reason string
}

func (e *InvalidResponseError) Error() string { return e.Reason }

// Classify maps an error to its retry category.
func Classify(err error) ErrorCategory {
	var ve *ValidationError
	if stderrors.As(err, &ve) {
		return Irrecoverable
	}
	var ire *InvalidResponseError
	if stderrors.As(err, &ire) {
		return Irrecoverable
	}
	var ae *APIError
	if stderrors.As(err, &ae) {
		return statusCategory(ae.StatusCode)
	}
	var te *TransportError
	if stderrors.As(err, &te) {
		return Recoverable
	}
	// Unknown errors - be conservative and allow retry.
	return Recoverable
}

// IsIrrecoverable reports whether err should not be retried.
func IsIrrecoverable(err error) bool {
	return Classify(err) == Irrecoverable
}
