package brackets

import "github.com/fixtureapp/fixture-backend/models"

// Group ids are fixed: the team list is split in input order into A and B.
const (
	GroupA = "A"
	GroupB = "B"
)

// GroupStageGenerator splits 6 or 8 teams into two equal groups and creates
// the full intra-group round robin (each team plays every other member of
// its group exactly once, no cross-group matches). Knockout matches are not
// created here; they are generated later from standings once group play is
// done.
type GroupStageGenerator struct{}

func NewGroupStageGenerator() Generator {
	return &GroupStageGenerator{}
}

func (g *GroupStageGenerator) GetName() string {
	return "GroupsThenKnockout"
}

func (g *GroupStageGenerator) Generate(teams []models.Team) ([]models.Match, map[string]models.Group, error) {
	if len(teams) != 6 && len(teams) != 8 {
		return nil, nil, ErrTeamCount
	}

	half := len(teams) / 2
	groups := map[string]models.Group{
		GroupA: {ID: GroupA, TeamIDs: teamIDs(teams[:half])},
		GroupB: {ID: GroupB, TeamIDs: teamIDs(teams[half:])},
	}

	var matches []models.Match
	for _, groupID := range []string{GroupA, GroupB} {
		ids := groups[groupID].TeamIDs
		matchNumber := 0
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				matchNumber++
				m := newMatch(models.StageGroup, matchNumber)
				gid := groupID
				a := ids[i]
				b := ids[j]
				m.GroupID = &gid
				m.TeamAID = &a
				m.TeamBID = &b
				matches = append(matches, m)
			}
		}
	}

	return matches, groups, nil
}

func teamIDs(teams []models.Team) []string {
	ids := make([]string, len(teams))
	for i, t := range teams {
		ids[i] = t.ID
	}
	return ids
}
