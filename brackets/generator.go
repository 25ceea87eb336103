package brackets

import (
	"strings"

	"github.com/google/uuid"

	"github.com/fixtureapp/fixture-backend/models"
)

// Generator builds the initial match set for one tournament format. The
// bracket shape is fixed per generator; alternate sizes are alternate
// generators, not branches inside one.
type Generator interface {
	GetName() string
	Generate(teams []models.Team) ([]models.Match, map[string]models.Group, error)
}

// GenerateSchedule validates the team list, assigns fresh ids and builds the
// initial schedule for the requested format. It is only legal while the
// tournament is still in SETUP.
func GenerateSchedule(state *models.TournamentState, format models.Format, teamNames []string) (*models.TournamentState, error) {
	if DerivePhase(state) != models.PhaseSetup {
		return nil, ErrWrongPhase
	}

	gen, err := generatorFor(format)
	if err != nil {
		return nil, err
	}

	teams, err := buildTeams(teamNames)
	if err != nil {
		return nil, err
	}

	matches, groups, err := gen.Generate(teams)
	if err != nil {
		return nil, err
	}

	next := models.NewTournamentState()
	next.Format = format
	next.Teams = teams
	next.Groups = groups
	next.Matches = matches
	next.Phase = DerivePhase(next)
	return next, nil
}

func generatorFor(format models.Format) (Generator, error) {
	switch format {
	case models.FormatStraightKnockout:
		return NewStraightKnockoutGenerator(), nil
	case models.FormatGroupsThenKnockout:
		return NewGroupStageGenerator(), nil
	default:
		return nil, ErrUnknownFormat
	}
}

// buildTeams trims the submitted names, rejects empties and case-insensitive
// duplicates, and assigns each team a fresh id.
func buildTeams(names []string) ([]models.Team, error) {
	teams := make([]models.Team, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, ErrEmptyTeamName
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return nil, ErrDuplicateTeamName
		}
		seen[key] = struct{}{}
		teams = append(teams, models.Team{ID: uuid.NewString(), Name: name})
	}
	return teams, nil
}

func newMatch(stage models.Stage, matchNumber int) models.Match {
	return models.Match{
		ID:          uuid.NewString(),
		Stage:       stage,
		MatchNumber: matchNumber,
	}
}
