package types

import (
	"testing"

	"github.com/incubyte/segmint/internal/errors"
)

func validSettings() GenerationSettings {
	return GenerationSettings{
		Platform:    "twitter",
		ContentType: "post",
		Tone:        "casual",
		Count:       2,
	}
}

func TestValidateGenerationSettings(t *testing.T) {
	t.Parallel()
	if err := ValidateGenerationSettings(validSettings()); err != nil {
		t.Fatalf("valid settings rejected: %v", err)
	}

	cases := []struct {
		name   string
		mut    func(*GenerationSettings)
		field  string
		reason string
	}{
		{"missing platform", func(s *GenerationSettings) { s.Platform = "" }, "platform", "Platform is required"},
		{"missing content type", func(s *GenerationSettings) { s.ContentType = "" }, "contentType", "Content type is required"},
		{"missing tone", func(s *GenerationSettings) { s.Tone = "" }, "tone", "Tone is required"},
		{"zero count", func(s *GenerationSettings) { s.Count = 0 }, "count", "Number of suggestions must be at least 1"},
		{"negative count", func(s *GenerationSettings) { s.Count = -3 }, "count", "Number of suggestions must be at least 1"},
		{"count too large", func(s *GenerationSettings) { s.Count = 11 }, "count", "Number of suggestions must be at most 10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validSettings()
			tc.mut(&s)
			err := ValidateGenerationSettings(s)
			ve, ok := err.(*errors.ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
			}
			if ve.Field != tc.field || ve.Reason != tc.reason {
				t.Fatalf("got field=%q reason=%q", ve.Field, ve.Reason)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]string{
		"twitter":      "Twitter",
		"video script": "Video script",
		"X":            "X",
		"":             "",
	} {
		if got := Capitalize(in); got != want {
			t.Errorf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateUserID(t *testing.T) {
	t.Parallel()
	if err := ValidateUserID("user@example.com"); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if err := ValidateUserID("   "); err == nil {
		t.Fatal("expected validation error for blank user id")
	}
}
