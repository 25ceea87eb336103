package models

// StandingsRow is one line of a group table, recomputed on demand from the
// group's completed matches and never persisted.
type StandingsRow struct {
	Team         Team `json:"team"`
	Played       int  `json:"played"`
	Wins         int  `json:"wins"`
	Draws        int  `json:"draws"`
	Losses       int  `json:"losses"`
	Points       int  `json:"points"`
	GoalsFor     int  `json:"goals_for"`
	GoalsAgainst int  `json:"goals_against"`
	GoalDiff     int  `json:"goal_diff"`
}
