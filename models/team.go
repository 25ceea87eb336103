package models

// Team is one tournament entrant. The ID is assigned at schedule generation
// and never reused; Name is unique case-insensitively within a tournament.
type Team struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	LogoKey *string `json:"-"`
	LogoURL *string `json:"logo_url,omitempty"`
}
