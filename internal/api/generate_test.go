package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	clierrors "github.com/incubyte/segmint/internal/errors"
	"github.com/incubyte/segmint/internal/types"
)

func testSettings(count int) types.GenerationSettings {
	return types.GenerationSettings{
		Platform:    "twitter",
		ContentType: "post",
		Tone:        "casual",
		Count:       count,
		CoreMessage: "launch day",
	}
}

func TestGenerateContent_StringSuggestions(t *testing.T) {
	t.Parallel()
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":          "p1",
			"suggestions": []string{"A", "B"},
			"created_at":  "2025-01-01T00:00:00Z",
			"request_details": map[string]string{
				"core_message": "launch day",
			},
		})
	}))
	defer srv.Close()

	items, err := GenerateContent(context.Background(), srv.Client(), srv.URL, "default", testSettings(2))
	if err != nil {
		t.Fatalf("GenerateContent error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	first := items[0]
	if first.ID != "p1-0" || first.Content != "A" || first.PostID != "p1" {
		t.Fatalf("unexpected first item: %+v", first)
	}
	if first.CoreMessage != "launch day" || first.Platform != "twitter" || first.ContentType != "post" {
		t.Fatalf("unexpected first item metadata: %+v", first)
	}
	if first.Status != types.StatusDraft {
		t.Fatalf("expected draft status, got %q", first.Status)
	}
	want, _ := time.Parse(time.RFC3339, "2025-01-01T00:00:00Z")
	if !first.CreatedAt.Equal(want) {
		t.Fatalf("createdAt = %v, want %v", first.CreatedAt, want)
	}
	if items[1].ID != "p1-1" || items[1].Content != "B" || items[1].PostID != "p1" {
		t.Fatalf("unexpected second item: %+v", items[1])
	}

	// Outgoing request capitalizes enum-ish fields per the API convention.
	if gotBody["platform"] != "Twitter" || gotBody["content_type"] != "Post" || gotBody["tone"] != "Casual" {
		t.Fatalf("request body not capitalized: %+v", gotBody)
	}
	if gotBody["persona_id"] != "default" {
		t.Fatalf("persona_id = %v", gotBody["persona_id"])
	}
	if gotBody["number_of_suggestions"] != float64(2) {
		t.Fatalf("number_of_suggestions = %v", gotBody["number_of_suggestions"])
	}
}

func TestGenerateContent_ObjectSuggestions(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"suggestions": []map[string]string{
				{"id": "s1", "content": "first"},
				{"content": "second"}, // no server id
			},
		})
	}))
	defer srv.Close()

	items, err := GenerateContent(context.Background(), srv.Client(), srv.URL, "default", testSettings(2))
	if err != nil {
		t.Fatalf("GenerateContent error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "s1" || items[0].Content != "first" {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[0].PostID != "" || items[1].PostID != "" {
		t.Fatal("object-shape items must not share a post id")
	}
	if !strings.HasPrefix(items[1].ID, "new-") {
		t.Fatalf("expected client-generated id, got %q", items[1].ID)
	}
	if items[1].CreatedAt.IsZero() {
		t.Fatal("expected client-side createdAt")
	}
}

func TestGenerateContent_ValidationSkipsNetwork(t *testing.T) {
	t.Parallel()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	s := testSettings(2)
	s.Platform = ""
	_, err := GenerateContent(context.Background(), srv.Client(), srv.URL, "default", s)
	var ve *clierrors.ValidationError
	if !asErr(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatal("validation failure must not reach the network")
	}
}

func TestGenerateContent_ErrorField(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"suggestions": []string{},
			"error":       "persona not found",
		})
	}))
	defer srv.Close()

	_, err := GenerateContent(context.Background(), srv.Client(), srv.URL, "default", testSettings(1))
	var ae *clierrors.APIError
	if !asErr(err, &ae) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if ae.Message != "persona not found" {
		t.Fatalf("message = %q", ae.Message)
	}
}

func TestGenerateContent_NonOKStatus(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"detail": "upstream broke"}`))
	}))
	defer srv.Close()

	_, err := GenerateContent(context.Background(), srv.Client(), srv.URL, "default", testSettings(1))
	var ae *clierrors.APIError
	if !asErr(err, &ae) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if ae.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d", ae.StatusCode)
	}
	if ae.Error() != "API error: 502" {
		t.Fatalf("generic message expected, got %q", ae.Error())
	}
}

func TestGenerateContent_InvalidJSON(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := GenerateContent(context.Background(), srv.Client(), srv.URL, "default", testSettings(1))
	var ire *clierrors.InvalidResponseError
	if !asErr(err, &ire) {
		t.Fatalf("expected InvalidResponseError, got %v", err)
	}
}

func TestGenerateContent_UnknownSuggestionShape(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"p1","suggestions": 42}`))
	}))
	defer srv.Close()

	_, err := GenerateContent(context.Background(), srv.Client(), srv.URL, "default", testSettings(1))
	var ire *clierrors.InvalidResponseError
	if !asErr(err, &ire) {
		t.Fatalf("expected InvalidResponseError, got %v", err)
	}
}

func TestGenerateContent_TransportError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // connection refused from here on

	_, err := GenerateContent(context.Background(), http.DefaultClient, url, "default", testSettings(1))
	var te *clierrors.TransportError
	if !asErr(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}
