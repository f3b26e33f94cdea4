// Package questions ships the signup questionnaire as an embedded asset so
// the CLI works without a round trip to the backend.
package questions

import (
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
)

//go:embed signup/questions.json
var signupFS embed.FS

// Option is one choice of a select or multiSelect question.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Validation constrains free-text answers.
type Validation struct {
	Pattern string `json:"pattern"`
	Message string `json:"message"`
}

// Question is one signup questionnaire entry. Type is one of "text",
// "email", "select", "multiSelect" or "password".
type Question struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	Question    string      `json:"question"`
	Description string      `json:"description,omitempty"`
	Placeholder string      `json:"placeholder,omitempty"`
	Options     []Option    `json:"options,omitempty"`
	Required    bool        `json:"required"`
	Validation  *Validation `json:"validation,omitempty"`
}

// Load returns the embedded signup questionnaire.
func Load() ([]Question, error) {
	raw, err := signupFS.ReadFile("signup/questions.json")
	if err != nil {
		return nil, fmt.Errorf("questions: read embedded questionnaire: %w", err)
	}
	var qs []Question
	if err := json.Unmarshal(raw, &qs); err != nil {
		return nil, fmt.Errorf("questions: decode questionnaire: %w", err)
	}
	return qs, nil
}

// ValidateAnswer checks answer against q's requirements. It returns nil for
// an acceptable answer.
func ValidateAnswer(q Question, answer string) error {
	if answer == "" {
		if q.Required {
			return fmt.Errorf("answer to %q is required", q.ID)
		}
		return nil
	}
	if q.Validation != nil && q.Validation.Pattern != "" {
		re, err := regexp.Compile(q.Validation.Pattern)
		if err != nil {
			return fmt.Errorf("questions: bad pattern for %q: %w", q.ID, err)
		}
		if !re.MatchString(answer) {
			return fmt.Errorf("%s", q.Validation.Message)
		}
	}
	return nil
}
