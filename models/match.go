package models

// Stage identifies the round a match belongs to. Group matches additionally
// carry a GroupID; knockout matches never do.
type Stage string

const (
	StageGroup      Stage = "GROUP"
	StageRoundOf16  Stage = "R1"
	StageQuarter    Stage = "QF"
	StageSemi       Stage = "SF"
	StageThirdPlace Stage = "T3"
	StageFinal      Stage = "F"
)

// IsKnockout reports whether the stage is part of the elimination bracket.
func (s Stage) IsKnockout() bool {
	return s != StageGroup
}

// Match is a single fixture. Team slots stay nil ("TBD") until the
// advancement router or a knockout generation step fills them. Scores and
// penalties are nil until a result is recorded.
type Match struct {
	ID          string  `json:"id"`
	Stage       Stage   `json:"stage"`
	MatchNumber int     `json:"match_number"`
	GroupID     *string `json:"group_id,omitempty"`
	TeamAID     *string `json:"team_a_id,omitempty"`
	TeamBID     *string `json:"team_b_id,omitempty"`
	ScoreA      *int    `json:"score_a,omitempty"`
	ScoreB      *int    `json:"score_b,omitempty"`
	PenaltyA    *int    `json:"penalty_a,omitempty"`
	PenaltyB    *int    `json:"penalty_b,omitempty"`
	WinnerID    *string `json:"winner_id,omitempty"`
	LoserID     *string `json:"loser_id,omitempty"`
}

// Ready reports whether both team slots are populated, i.e. the match can be
// scored.
func (m *Match) Ready() bool {
	return m.TeamAID != nil && m.TeamBID != nil
}

// Completed reports whether a result has been recorded. A drawn group match
// is completed without a winner, so completion is defined by the scores, not
// by WinnerID.
func (m *Match) Completed() bool {
	return m.ScoreA != nil && m.ScoreB != nil
}

// HasTeam reports whether the given team occupies one of the match slots.
func (m *Match) HasTeam(teamID string) bool {
	return (m.TeamAID != nil && *m.TeamAID == teamID) ||
		(m.TeamBID != nil && *m.TeamBID == teamID)
}
