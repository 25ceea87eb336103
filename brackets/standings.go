package brackets

import (
	"sort"

	"github.com/fixtureapp/fixture-backend/models"
)

// Group stage point scheme. The 2/1/0 split is deliberate configuration, not
// an accident of one code path; change it here if a tournament runs 3/1/0.
const (
	pointsWin  = 2
	pointsDraw = 1
	pointsLoss = 0
)

// ComputeStandings derives the ranked table for one group from whatever
// subset of its matches has been scored so far. The ordering is a
// deterministic total order: points, then goal difference, then goals for,
// descending; teams still tied keep the group's membership order.
func ComputeStandings(state *models.TournamentState, groupID string) ([]models.StandingsRow, error) {
	group, ok := state.Groups[groupID]
	if !ok {
		return nil, ErrGroupNotFound
	}

	rows := make([]models.StandingsRow, 0, len(group.TeamIDs))
	index := make(map[string]int, len(group.TeamIDs))
	for _, teamID := range group.TeamIDs {
		team := state.TeamByID(teamID)
		if team == nil {
			continue
		}
		index[teamID] = len(rows)
		rows = append(rows, models.StandingsRow{Team: *team})
	}

	for _, m := range state.GroupMatches(groupID) {
		if !m.Completed() {
			continue
		}
		a, okA := index[*m.TeamAID]
		b, okB := index[*m.TeamBID]
		if !okA || !okB {
			continue
		}
		scoreA, scoreB := *m.ScoreA, *m.ScoreB

		rows[a].Played++
		rows[b].Played++
		rows[a].GoalsFor += scoreA
		rows[a].GoalsAgainst += scoreB
		rows[b].GoalsFor += scoreB
		rows[b].GoalsAgainst += scoreA

		switch {
		case scoreA > scoreB:
			rows[a].Wins++
			rows[b].Losses++
			rows[a].Points += pointsWin
			rows[b].Points += pointsLoss
		case scoreB > scoreA:
			rows[b].Wins++
			rows[a].Losses++
			rows[b].Points += pointsWin
			rows[a].Points += pointsLoss
		default:
			rows[a].Draws++
			rows[b].Draws++
			rows[a].Points += pointsDraw
			rows[b].Points += pointsDraw
		}
	}

	for i := range rows {
		rows[i].GoalDiff = rows[i].GoalsFor - rows[i].GoalsAgainst
	}

	// Stable, so full ties keep membership order.
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].GoalDiff != rows[j].GoalDiff {
			return rows[i].GoalDiff > rows[j].GoalDiff
		}
		return rows[i].GoalsFor > rows[j].GoalsFor
	})

	return rows, nil
}
