package client

import (
	stderrors "errors"

	"github.com/incubyte/segmint/internal/errors"
)

// Error taxonomy, re-exported so SDK consumers only import this package.
//
//   - ValidationError: malformed request, rejected before any network I/O.
//   - APIError: non-2xx response, or a 2xx body carrying an "error" field.
//   - TransportError: network failure; no server response was obtained.
//   - InvalidResponseError: 2xx body that is not JSON or matches no known shape.
//
// None of these are retried automatically; all propagate to the caller.
type (
	ValidationError      = errors.ValidationError
	APIError             = errors.APIError
	TransportError       = errors.TransportError
	InvalidResponseError = errors.InvalidResponseError
)

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return stderrors.As(err, &ve)
}

// IsAPIError reports whether err is (or wraps) an APIError.
func IsAPIError(err error) bool {
	var ae *APIError
	return stderrors.As(err, &ae)
}

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return stderrors.As(err, &te)
}

// IsInvalidResponse reports whether err is (or wraps) an InvalidResponseError.
func IsInvalidResponse(err error) bool {
	var ire *InvalidResponseError
	return stderrors.As(err, &ire)
}
