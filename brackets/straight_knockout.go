package brackets

import "github.com/fixtureapp/fixture-backend/models"

const straightKnockoutTeamCount = 16

// StraightKnockoutGenerator builds the fixed 16-team single elimination
// bracket: 8 first-round matches seeded by adjacent pairs in input order,
// plus empty placeholder matches for every later round. Placeholders fill up
// as the advancement router routes winners (and semifinal losers) forward.
type StraightKnockoutGenerator struct{}

func NewStraightKnockoutGenerator() Generator {
	return &StraightKnockoutGenerator{}
}

func (g *StraightKnockoutGenerator) GetName() string {
	return "StraightKnockout"
}

func (g *StraightKnockoutGenerator) Generate(teams []models.Team) ([]models.Match, map[string]models.Group, error) {
	if len(teams) != straightKnockoutTeamCount {
		return nil, nil, ErrTeamCount
	}

	matches := make([]models.Match, 0, 16)

	// Round of 16: team 1 vs 2, 3 vs 4, and so on.
	for i := 0; i < 8; i++ {
		m := newMatch(models.StageRoundOf16, i+1)
		a := teams[i*2].ID
		b := teams[i*2+1].ID
		m.TeamAID = &a
		m.TeamBID = &b
		matches = append(matches, m)
	}

	for i := 0; i < 4; i++ {
		matches = append(matches, newMatch(models.StageQuarter, i+1))
	}
	for i := 0; i < 2; i++ {
		matches = append(matches, newMatch(models.StageSemi, i+1))
	}
	matches = append(matches, newMatch(models.StageThirdPlace, 1))
	matches = append(matches, newMatch(models.StageFinal, 1))

	return matches, map[string]models.Group{}, nil
}
