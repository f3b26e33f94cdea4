package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/incubyte/segmint/internal/errors"
	"github.com/incubyte/segmint/internal/types"
)

// signupTimeout bounds the persona-creation call. Persona derivation runs an
// LLM pipeline server-side and can hang; the submission aborts rather than
// waiting indefinitely.
const signupTimeout = 15 * time.Second

// CreatePersona submits the signup questionnaire answers and returns the
// derived persona summary and traits.
func CreatePersona(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreatePersonaRequest) (*types.CreatePersonaResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateUserID(req.UserEmail); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, signupTimeout)
	defer cancel()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/persona/create-persona", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewTransportError("create persona", fmt.Errorf("request timed out after %s", signupTimeout))
		}
		return nil, errors.NewTransportError("create persona", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := readBody(resp, "create persona")
	if err != nil {
		return nil, err
	}
	if !is2xx(resp.StatusCode) {
		return nil, apiErrorFromBody(resp.StatusCode, raw)
	}

	var cr types.CreatePersonaResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return nil, &errors.InvalidResponseError{Reason: "invalid JSON response from API"}
	}
	return &cr, nil
}
