package models

// Phase is the tournament lifecycle position. It is always derived from the
// state itself, never stored independently where it could desynchronize.
type Phase string

const (
	PhaseSetup     Phase = "SETUP"
	PhaseScheduled Phase = "SCHEDULED"
	PhaseKnockout  Phase = "KNOCKOUT"
	PhaseComplete  Phase = "COMPLETE"
)

// Format selects the bracket shape a tournament runs under.
type Format string

const (
	FormatStraightKnockout   Format = "STRAIGHT_KNOCKOUT"
	FormatGroupsThenKnockout Format = "GROUPS_THEN_KNOCKOUT"
)

// TournamentState is the single value the engine exchanges with its
// boundary: the full tournament as one JSON-compatible document.
type TournamentState struct {
	Format  Format           `json:"format,omitempty"`
	Teams   []Team           `json:"teams"`
	Groups  map[string]Group `json:"groups"`
	Matches []Match          `json:"matches"`
	Phase   Phase            `json:"phase"`
}

// NewTournamentState returns the empty SETUP-phase state.
func NewTournamentState() *TournamentState {
	return &TournamentState{
		Teams:   []Team{},
		Groups:  map[string]Group{},
		Matches: []Match{},
		Phase:   PhaseSetup,
	}
}

// Clone returns a deep copy. Engine operations mutate a clone and hand it
// back only on success, so a failed operation never leaves the input state
// partially written.
func (s *TournamentState) Clone() *TournamentState {
	out := &TournamentState{
		Format:  s.Format,
		Teams:   make([]Team, len(s.Teams)),
		Groups:  make(map[string]Group, len(s.Groups)),
		Matches: make([]Match, len(s.Matches)),
		Phase:   s.Phase,
	}
	for i, t := range s.Teams {
		out.Teams[i] = Team{
			ID:      t.ID,
			Name:    t.Name,
			LogoKey: cloneStringPtr(t.LogoKey),
			LogoURL: cloneStringPtr(t.LogoURL),
		}
	}
	for id, g := range s.Groups {
		teamIDs := make([]string, len(g.TeamIDs))
		copy(teamIDs, g.TeamIDs)
		out.Groups[id] = Group{ID: g.ID, TeamIDs: teamIDs}
	}
	for i, m := range s.Matches {
		out.Matches[i] = Match{
			ID:          m.ID,
			Stage:       m.Stage,
			MatchNumber: m.MatchNumber,
			GroupID:     cloneStringPtr(m.GroupID),
			TeamAID:     cloneStringPtr(m.TeamAID),
			TeamBID:     cloneStringPtr(m.TeamBID),
			ScoreA:      cloneIntPtr(m.ScoreA),
			ScoreB:      cloneIntPtr(m.ScoreB),
			PenaltyA:    cloneIntPtr(m.PenaltyA),
			PenaltyB:    cloneIntPtr(m.PenaltyB),
			WinnerID:    cloneStringPtr(m.WinnerID),
			LoserID:     cloneStringPtr(m.LoserID),
		}
	}
	return out
}

// MatchByID returns the match with the given id, or nil.
func (s *TournamentState) MatchByID(id string) *Match {
	for i := range s.Matches {
		if s.Matches[i].ID == id {
			return &s.Matches[i]
		}
	}
	return nil
}

// FindMatch returns the match at (stage, matchNumber), or nil. Group matches
// are not addressable this way; use GroupMatches instead.
func (s *TournamentState) FindMatch(stage Stage, matchNumber int) *Match {
	for i := range s.Matches {
		if s.Matches[i].Stage == stage && s.Matches[i].MatchNumber == matchNumber {
			return &s.Matches[i]
		}
	}
	return nil
}

// StageMatches returns all matches of the given stage in schedule order.
func (s *TournamentState) StageMatches(stage Stage) []*Match {
	var out []*Match
	for i := range s.Matches {
		if s.Matches[i].Stage == stage {
			out = append(out, &s.Matches[i])
		}
	}
	return out
}

// GroupMatches returns all matches belonging to the given group.
func (s *TournamentState) GroupMatches(groupID string) []*Match {
	var out []*Match
	for i := range s.Matches {
		m := &s.Matches[i]
		if m.GroupID != nil && *m.GroupID == groupID {
			out = append(out, m)
		}
	}
	return out
}

// TeamByID returns the team with the given id, or nil.
func (s *TournamentState) TeamByID(id string) *Team {
	for i := range s.Teams {
		if s.Teams[i].ID == id {
			return &s.Teams[i]
		}
	}
	return nil
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
