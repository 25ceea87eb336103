package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState() *TournamentState {
	teamA := "team-a"
	teamB := "team-b"
	score := 2
	group := "A"
	return &TournamentState{
		Format: FormatGroupsThenKnockout,
		Teams: []Team{
			{ID: teamA, Name: "Alpha"},
			{ID: teamB, Name: "Beta"},
		},
		Groups: map[string]Group{
			group: {ID: group, TeamIDs: []string{teamA, teamB}},
		},
		Matches: []Match{
			{
				ID:          "m1",
				Stage:       StageGroup,
				MatchNumber: 1,
				GroupID:     &group,
				TeamAID:     &teamA,
				TeamBID:     &teamB,
				ScoreA:      &score,
			},
		},
		Phase: PhaseScheduled,
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := sampleState()
	clone := original.Clone()

	require.Equal(t, original, clone)

	// Mutating the clone must not leak into the original.
	clone.Teams[0].Name = "Changed"
	*clone.Matches[0].ScoreA = 99
	*clone.Matches[0].TeamAID = "other"
	group := clone.Groups["A"]
	group.TeamIDs[0] = "other"
	clone.Groups["A"] = group

	assert.Equal(t, "Alpha", original.Teams[0].Name)
	assert.Equal(t, 2, *original.Matches[0].ScoreA)
	assert.Equal(t, "team-a", *original.Matches[0].TeamAID)
	assert.Equal(t, "team-a", original.Groups["A"].TeamIDs[0])
}

func TestMatchStateHelpers(t *testing.T) {
	teamA := "a"
	teamB := "b"
	zero := 0

	m := Match{Stage: StageQuarter, MatchNumber: 1}
	assert.False(t, m.Ready())
	assert.False(t, m.Completed())

	m.TeamAID = &teamA
	assert.False(t, m.Ready(), "one slot is not enough")

	m.TeamBID = &teamB
	assert.True(t, m.Ready())
	assert.True(t, m.HasTeam("a"))
	assert.True(t, m.HasTeam("b"))
	assert.False(t, m.HasTeam("c"))

	// A 0-0 group draw is a completed match.
	m.ScoreA = &zero
	m.ScoreB = &zero
	assert.True(t, m.Completed())
}

func TestStateLookups(t *testing.T) {
	s := sampleState()

	require.NotNil(t, s.MatchByID("m1"))
	assert.Nil(t, s.MatchByID("missing"))

	require.NotNil(t, s.TeamByID("team-a"))
	assert.Nil(t, s.TeamByID("missing"))

	assert.Len(t, s.GroupMatches("A"), 1)
	assert.Empty(t, s.GroupMatches("B"))

	assert.Nil(t, s.FindMatch(StageFinal, 1))
}

func TestStageIsKnockout(t *testing.T) {
	assert.False(t, StageGroup.IsKnockout())
	for _, stage := range []Stage{StageRoundOf16, StageQuarter, StageSemi, StageThirdPlace, StageFinal} {
		assert.True(t, stage.IsKnockout(), "stage %s", stage)
	}
}
