package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/incubyte/segmint/internal/errors"
	"github.com/incubyte/segmint/internal/types"
)

// postRecord is one stored generation result as returned by the listing
// endpoint: a post with its suggestion variants nested inside.
type postRecord struct {
	ID             string   `json:"id"`
	Suggestions    []string `json:"suggestions"`
	CreatedAt      string   `json:"created_at"`
	Platform       string   `json:"platform"`
	ContentType    string   `json:"content_type"`
	Tone           string   `json:"tone"`
	PersonaID      string   `json:"persona_id"`
	UserID         string   `json:"user_id"`
	RequestDetails struct {
		CoreMessage    string `json:"core_message"`
		TargetPlatform string `json:"target_platform"`
	} `json:"request_details"`
}

// FetchPostsByUser retrieves all stored posts for a user and flattens each
// post's suggestions into individually addressable content items. Item ids
// are synthesized as "{postId}-{index}" so per-suggestion identity is stable
// and derivable without a server round trip.
func FetchPostsByUser(ctx context.Context, httpClient *http.Client, baseURL, userID string) ([]types.ContentItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateUserID(userID); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/post?user_id=%s", baseURL, url.QueryEscape(userID))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.NewTransportError("fetch posts", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := readBody(resp, "fetch posts")
	if err != nil {
		return nil, err
	}
	if !is2xx(resp.StatusCode) {
		return nil, apiErrorFromBody(resp.StatusCode, raw)
	}

	var posts []postRecord
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, &errors.InvalidResponseError{Reason: "invalid JSON response from API"}
	}

	var items []types.ContentItem
	for _, post := range posts {
		createdAt := parseTimestamp(post.CreatedAt)
		for i, suggestion := range post.Suggestions {
			items = append(items, types.ContentItem{
				ID:          fmt.Sprintf("%s-%d", post.ID, i),
				Content:     suggestion,
				Platform:    strings.ToLower(post.Platform),
				ContentType: strings.ToLower(post.ContentType),
				CreatedAt:   createdAt,
				Status:      types.StatusDraft,
				Persona:     post.PersonaID,
				CoreMessage: post.RequestDetails.CoreMessage,
				PostID:      post.ID,
			})
		}
	}
	return items, nil
}
