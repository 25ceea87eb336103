package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixtureapp/fixture-backend/models"
)

// scoreGroupMatch records a result on the group fixture between the teams at
// the given membership indexes and returns the updated state.
func scoreGroupMatch(t *testing.T, state *models.TournamentState, groupID string, idxA, idxB, scoreA, scoreB int) *models.TournamentState {
	t.Helper()
	group := state.Groups[groupID]
	teamA, teamB := group.TeamIDs[idxA], group.TeamIDs[idxB]

	for _, m := range state.GroupMatches(groupID) {
		sameOrder := *m.TeamAID == teamA && *m.TeamBID == teamB
		swapped := *m.TeamAID == teamB && *m.TeamBID == teamA
		if !sameOrder && !swapped {
			continue
		}
		input := ResultInput{MatchID: m.ID, ScoreA: scoreA, ScoreB: scoreB}
		if swapped {
			input.ScoreA, input.ScoreB = scoreB, scoreA
		}
		next, err := ApplyResult(state, input)
		require.NoError(t, err)
		return next
	}
	t.Fatalf("no group match between indexes %d and %d", idxA, idxB)
	return nil
}

func TestStandingsUnknownGroup(t *testing.T) {
	state := mustGenerate(t, models.FormatGroupsThenKnockout, 8)

	_, err := ComputeStandings(state, "C")
	require.ErrorIs(t, err, ErrGroupNotFound)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestStandingsEmptyGroupAllZero(t *testing.T) {
	state := mustGenerate(t, models.FormatGroupsThenKnockout, 8)

	rows, err := ComputeStandings(state, GroupA)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// No matches played: all-zero rows in membership order.
	for i, row := range rows {
		assert.Equal(t, state.Groups[GroupA].TeamIDs[i], row.Team.ID)
		assert.Zero(t, row.Played)
		assert.Zero(t, row.Points)
		assert.Zero(t, row.GoalDiff)
	}
}

func TestStandingsPointsAndTieBreaks(t *testing.T) {
	state := mustGenerate(t, models.FormatGroupsThenKnockout, 8)
	ids := state.Groups[GroupA].TeamIDs

	// 0 beats 1 (3-0), 1 beats 2 (2-1), 0 draws 3 (1-1).
	state = scoreGroupMatch(t, state, GroupA, 0, 1, 3, 0)
	state = scoreGroupMatch(t, state, GroupA, 1, 2, 2, 1)
	state = scoreGroupMatch(t, state, GroupA, 0, 3, 1, 1)

	rows, err := ComputeStandings(state, GroupA)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// Team 0: win + draw = 3 points. Team 1: one win, one loss = 2 points.
	// Team 3: one draw = 1 point. Team 2: one loss = 0 points.
	assert.Equal(t, ids[0], rows[0].Team.ID)
	assert.Equal(t, 3, rows[0].Points)
	assert.Equal(t, ids[1], rows[1].Team.ID)
	assert.Equal(t, 2, rows[1].Points)
	assert.Equal(t, ids[3], rows[2].Team.ID)
	assert.Equal(t, 1, rows[2].Points)
	assert.Equal(t, ids[2], rows[3].Team.ID)
	assert.Equal(t, 0, rows[3].Points)

	assert.Equal(t, 4, rows[0].GoalsFor)
	assert.Equal(t, 1, rows[0].GoalsAgainst)
	assert.Equal(t, 3, rows[0].GoalDiff)
	assert.Equal(t, 2, rows[0].Played)
	assert.Equal(t, 1, rows[0].Wins)
	assert.Equal(t, 1, rows[0].Draws)
}

func TestStandingsGoalDifferenceBeforeGoalsFor(t *testing.T) {
	state := mustGenerate(t, models.FormatGroupsThenKnockout, 8)
	ids := state.Groups[GroupB].TeamIDs

	// Teams 0 and 1 both win once: 0 wins 1-0 over 2 (+1), 1 wins 4-2 over
	// 3 (+2). Equal points, so goal difference decides.
	state = scoreGroupMatch(t, state, GroupB, 0, 2, 1, 0)
	state = scoreGroupMatch(t, state, GroupB, 1, 3, 4, 2)

	rows, err := ComputeStandings(state, GroupB)
	require.NoError(t, err)
	assert.Equal(t, ids[1], rows[0].Team.ID, "bigger goal difference ranks first on equal points")
	assert.Equal(t, ids[0], rows[1].Team.ID)
}

func TestStandingsDeterministic(t *testing.T) {
	state := mustGenerate(t, models.FormatGroupsThenKnockout, 6)
	state = scoreGroupMatch(t, state, GroupA, 0, 1, 2, 2)
	state = scoreGroupMatch(t, state, GroupA, 0, 2, 1, 1)
	state = scoreGroupMatch(t, state, GroupA, 1, 2, 0, 0)

	// Everyone on 2 points, all zero goal difference: membership order, and
	// identical on every rerun.
	first, err := ComputeStandings(state, GroupA)
	require.NoError(t, err)
	for i, id := range state.Groups[GroupA].TeamIDs {
		assert.Equal(t, id, first[i].Team.ID)
	}
	for i := 0; i < 10; i++ {
		again, err := ComputeStandings(state, GroupA)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
