package types

// ------------------------------
// Request Types
// ------------------------------

// DefaultPersonaID is attached to generation requests when no persona id is
// present in the session store.
const DefaultPersonaID = "default"

// GenerationSettings describes one content generation request.
type GenerationSettings struct {
	Platform    string `json:"platform"`
	ContentType string `json:"contentType"`
	Tone        string `json:"tone"`
	Count       int    `json:"count"`
	Persona     string `json:"persona,omitempty"`
	CoreMessage string `json:"coreMessage,omitempty"`
}

// SignupAnswer is one questionnaire response submitted during signup.
type SignupAnswer struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
	Question   string `json:"question"`
}

// CreatePersonaRequest is the signup submission that derives a persona.
type CreatePersonaRequest struct {
	UserEmail   string         `json:"user_email"`
	InitialData []SignupAnswer `json:"initial_data"`
}
