package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/incubyte/segmint/internal/errors"
	"github.com/incubyte/segmint/internal/types"
)

// GetPersona retrieves a single persona by id.
func GetPersona(ctx context.Context, httpClient *http.Client, baseURL, personaID string) (*types.Persona, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(personaID, "personaId"); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/persona/%s", baseURL, url.PathEscape(personaID))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.NewTransportError("fetch persona", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := readBody(resp, "fetch persona")
	if err != nil {
		return nil, err
	}
	if !is2xx(resp.StatusCode) {
		return nil, apiErrorFromBody(resp.StatusCode, raw)
	}

	var p types.Persona
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, &errors.InvalidResponseError{Reason: "invalid JSON response from API"}
	}
	return &p, nil
}

// ListPersonas retrieves the personas for a user email, newest first.
// Callers wanting the active persona take index 0.
func ListPersonas(ctx context.Context, httpClient *http.Client, baseURL, email string, limit int) ([]types.Persona, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateUserID(email); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}

	u := fmt.Sprintf("%s/persona?user_id=%s&limit=%d", baseURL, url.QueryEscape(email), limit)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.NewTransportError("list personas", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := readBody(resp, "list personas")
	if err != nil {
		return nil, err
	}
	if !is2xx(resp.StatusCode) {
		return nil, apiErrorFromBody(resp.StatusCode, raw)
	}

	var personas []types.Persona
	if err := json.Unmarshal(raw, &personas); err != nil {
		return nil, &errors.InvalidResponseError{Reason: "invalid JSON response from API"}
	}
	return personas, nil
}
