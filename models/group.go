package models

// Group is a fixed set of teams playing a round robin among themselves.
// Membership never changes after generation; TeamIDs keeps the input order,
// which also serves as the final tie-break in standings.
type Group struct {
	ID      string   `json:"id"`
	TeamIDs []string `json:"team_ids"`
}
