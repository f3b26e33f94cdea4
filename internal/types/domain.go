package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Status is the client-local workflow state of a content item. It is not
// round-tripped to the remote API; edits flip it to StatusEdited locally.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusScheduled Status = "scheduled"
	StatusEdited    Status = "edited"
)

// Feedback is the optional per-item rating. Set at most once per polarity;
// switching polarity overwrites, it never toggles off.
type Feedback string

const (
	FeedbackPositive Feedback = "positive"
	FeedbackNegative Feedback = "negative"
)

// Platforms lists the supported target platforms, stored lowercase.
var Platforms = []string{"twitter", "facebook", "instagram", "linkedin", "tiktok", "youtube"}

// Tones lists the supported generation tones.
var Tones = []string{"professional", "casual", "humorous", "inspirational", "educational", "persuasive"}

// ContentItem is one generated or stored piece of content.
//
// Items produced by a single generation request with count > 1 share a
// PostID; all members of such a group carry the same CoreMessage, Platform
// and ContentType.
type ContentItem struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	Platform    string    `json:"platform"`
	ContentType string    `json:"contentType"`
	CreatedAt   time.Time `json:"createdAt"`
	Status      Status    `json:"status"`
	Persona     string    `json:"persona,omitempty"`
	Feedback    Feedback  `json:"feedback,omitempty"`
	CoreMessage string    `json:"coreMessage,omitempty"`
	PostID      string    `json:"postId,omitempty"`
}

// QuestionAnswer is one questionnaire response pair as stored on a persona.
type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Persona is a loaded personalization profile. It is created externally by
// the signup flow and never mutated in place by this SDK.
type Persona struct {
	ID               string           `json:"id"`
	UserID           string           `json:"user_id"`
	PersonaSummary   string           `json:"persona_summary"`
	CreatedAt        string           `json:"created_at"`
	RawQuestionaries []QuestionAnswer `json:"raw_questionaries"`
	TargetAudience   *string          `json:"target_audience"`
	KeyTopics        []string         `json:"key_topics"`
	Goals            []string         `json:"goals"`
	Values           []string         `json:"values"`
	PreferredFormats []string         `json:"preferred_formats"`
	ToneOfVoice      []string         `json:"tone_of_voice"`
}
