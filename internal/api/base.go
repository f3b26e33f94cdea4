// Package api implements the raw HTTP calls against the Segmint backend.
// Each operation is a free function taking the caller's http.Client and
// base URL so the public client package stays a thin façade.
package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/incubyte/segmint/internal/errors"
)

// readBody drains and returns the response body. A read failure counts as a
// transport error: the response was never fully obtained.
func readBody(resp *http.Response, op string) ([]byte, error) {
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewTransportError(op, err)
	}
	return b, nil
}

// apiErrorFromBody builds an APIError for a non-2xx response, using the
// server-supplied "error" (or "message") field when the body decodes.
func apiErrorFromBody(statusCode int, body []byte) *errors.APIError {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &envelope) == nil {
		if envelope.Error != "" {
			return errors.NewAPIError(statusCode, envelope.Error)
		}
		if envelope.Message != "" {
			return errors.NewAPIError(statusCode, envelope.Message)
		}
	}
	return errors.NewAPIError(statusCode, "")
}

func is2xx(statusCode int) bool { return statusCode >= 200 && statusCode < 300 }
