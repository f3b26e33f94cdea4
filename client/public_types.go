package client

import "github.com/incubyte/segmint/internal/types"

// Public type aliases so SDK consumers can import only the client package.

// Domain entities
type (
	ContentItem    = types.ContentItem
	Persona        = types.Persona
	QuestionAnswer = types.QuestionAnswer
	Status         = types.Status
	Feedback       = types.Feedback
)

// Requests
type (
	GenerationSettings   = types.GenerationSettings
	CreatePersonaRequest = types.CreatePersonaRequest
	SignupAnswer         = types.SignupAnswer
)

// Responses
type (
	CreatePersonaResponse = types.CreatePersonaResponse
	Trait                 = types.Trait
)

const (
	StatusDraft     = types.StatusDraft
	StatusPublished = types.StatusPublished
	StatusScheduled = types.StatusScheduled
	StatusEdited    = types.StatusEdited

	FeedbackPositive = types.FeedbackPositive
	FeedbackNegative = types.FeedbackNegative

	// DefaultPersonaID is used when the session store holds no persona.
	DefaultPersonaID = types.DefaultPersonaID
)
