package types

import (
	"strings"

	"github.com/incubyte/segmint/internal/errors"
)

// ValidateGenerationSettings checks a generation request before any network
// call is attempted. Violations fail fast with a *errors.ValidationError.
func ValidateGenerationSettings(s GenerationSettings) error {
	if s.Platform == "" {
		return &errors.ValidationError{Field: "platform", Reason: "Platform is required"}
	}
	if s.ContentType == "" {
		return &errors.ValidationError{Field: "contentType", Reason: "Content type is required"}
	}
	if s.Tone == "" {
		return &errors.ValidationError{Field: "tone", Reason: "Tone is required"}
	}
	if s.Count < 1 {
		return &errors.ValidationError{Field: "count", Reason: "Number of suggestions must be at least 1"}
	}
	if s.Count > 10 {
		return &errors.ValidationError{Field: "count", Reason: "Number of suggestions must be at most 10"}
	}
	return nil
}

// ValidateUserID requires a non-empty user identifier (an email in practice).
func ValidateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return &errors.ValidationError{Field: "userId", Reason: "User id is required"}
	}
	return nil
}

// ValidateIDPresent requires a non-empty identifier for the named field.
func ValidateIDPresent(id, field string) error {
	if strings.TrimSpace(id) == "" {
		return &errors.ValidationError{Field: field, Reason: field + " is required"}
	}
	return nil
}

// Capitalize uppercases the first letter of s, matching the remote API's
// convention for platform, content type and tone values.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
