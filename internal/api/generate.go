package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/incubyte/segmint/internal/errors"
	"github.com/incubyte/segmint/internal/types"
)

// generationEnvelope covers both historical generation response shapes. The
// suggestions field is kept raw and decoded in a second step once the shape
// is known.
type generationEnvelope struct {
	ID             string          `json:"id"`
	Suggestions    json.RawMessage `json:"suggestions"`
	CreatedAt      string          `json:"created_at"`
	RequestDetails struct {
		CoreMessage    string `json:"core_message"`
		TargetPlatform string `json:"target_platform"`
	} `json:"request_details"`
	Error string `json:"error"`
}

// suggestionObject is one entry of the older response shape.
type suggestionObject struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// GenerateContent issues a generation request and normalizes the response
// into content items. personaID is the already-resolved active persona
// identifier ("default" when none is set).
//
// The remote API has emitted two shapes over time: a list of plain suggestion
// strings alongside a shared post id and creation time, and an older list of
// {id, content} objects. Both are normalized here; items from the string
// shape share a PostID and CoreMessage, items from the object shape stand
// alone with client-side ids and timestamps.
func GenerateContent(ctx context.Context, httpClient *http.Client, baseURL, personaID string, settings types.GenerationSettings) ([]types.ContentItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateGenerationSettings(settings); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"platform":              types.Capitalize(settings.Platform),
		"content_type":          types.Capitalize(settings.ContentType),
		"tone":                  types.Capitalize(settings.Tone),
		"persona_id":            personaID,
		"core_message":          settings.CoreMessage,
		"number_of_suggestions": settings.Count,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/post", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.NewTransportError("generate content", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := readBody(resp, "generate content")
	if err != nil {
		return nil, err
	}
	if !is2xx(resp.StatusCode) {
		return nil, apiErrorFromBody(resp.StatusCode, raw)
	}

	var env generationEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &errors.InvalidResponseError{Reason: "invalid JSON response from API"}
	}
	if env.Error != "" {
		return nil, errors.NewAPIError(resp.StatusCode, env.Error)
	}
	if len(env.Suggestions) == 0 {
		return nil, &errors.InvalidResponseError{Reason: "invalid API response: suggestions not found"}
	}

	// Newer shape: suggestions is a list of plain strings sharing one post id.
	var texts []string
	if json.Unmarshal(env.Suggestions, &texts) == nil {
		items := make([]types.ContentItem, 0, len(texts))
		createdAt := parseTimestamp(env.CreatedAt)
		for i, text := range texts {
			items = append(items, types.ContentItem{
				ID:          fmt.Sprintf("%s-%d", env.ID, i),
				Content:     text,
				Platform:    settings.Platform,
				ContentType: settings.ContentType,
				CreatedAt:   createdAt,
				Status:      types.StatusDraft,
				Persona:     personaOrDefault(settings.Persona),
				CoreMessage: env.RequestDetails.CoreMessage,
				PostID:      env.ID,
			})
		}
		return items, nil
	}

	// Older shape: suggestions is a list of {id, content} objects. The server
	// supplied no per-item timestamps and no shared post id.
	var objects []suggestionObject
	if err := json.Unmarshal(env.Suggestions, &objects); err != nil {
		return nil, &errors.InvalidResponseError{Reason: "invalid API response: suggestions not found or not an array"}
	}
	items := make([]types.ContentItem, 0, len(objects))
	for _, s := range objects {
		id := s.ID
		if id == "" {
			id = newItemID()
		}
		items = append(items, types.ContentItem{
			ID:          id,
			Content:     s.Content,
			Platform:    settings.Platform,
			ContentType: settings.ContentType,
			CreatedAt:   time.Now().UTC(),
			Status:      types.StatusDraft,
			Persona:     personaOrDefault(settings.Persona),
		})
	}
	return items, nil
}

func personaOrDefault(p string) string {
	if p == "" {
		return types.DefaultPersonaID
	}
	return p
}

// newItemID builds a client-side content item id: a timestamp for rough
// ordering plus a random suffix for uniqueness.
func newItemID() string {
	return fmt.Sprintf("new-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// parseTimestamp accepts the backend's timestamp spellings: RFC 3339 with or
// without sub-second precision, and the naive ISO form without a zone
// (interpreted as UTC). Anything else falls back to the current time, which
// matches how items without a server timestamp are handled.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Now().UTC()
}
