package types

// ------------------------------
// Response Types
// ------------------------------

// Trait is one scored personality trait returned by persona creation.
type Trait struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Value       int    `json:"value"`
}

// CreatePersonaResponse mirrors the persona creation endpoint response.
type CreatePersonaResponse struct {
	UserID  string   `json:"user_id"`
	Persona []string `json:"persona"`
	Traits  []Trait  `json:"traits"`
}
