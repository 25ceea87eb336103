package brackets

import "github.com/fixtureapp/fixture-backend/models"

// GenerateNextKnockoutStage creates whichever knockout stage is due next in a
// GROUPS_THEN_KNOCKOUT tournament: semifinals once every group match has a
// recorded score, then the final and third-place matches once both
// semifinals are decided. Unlike the static bracket routing, both steps have
// to read the current results, so the created matches come out already
// populated.
//
// A straight-knockout tournament has its whole bracket from setup, so the
// operation is never legal there.
func GenerateNextKnockoutStage(state *models.TournamentState) (*models.TournamentState, error) {
	phase := DerivePhase(state)
	if phase == models.PhaseSetup || phase == models.PhaseComplete {
		return nil, ErrWrongPhase
	}
	if state.Format != models.FormatGroupsThenKnockout {
		return nil, ErrNoStageToGenerate
	}

	if len(state.StageMatches(models.StageSemi)) == 0 {
		return generateSemifinals(state)
	}
	if state.FindMatch(models.StageFinal, 1) == nil {
		return generateFinal(state)
	}
	return nil, ErrStageAlreadyExists
}

// generateSemifinals pairs the group winners with the opposite runners-up:
// A1 vs B2 and B1 vs A2.
func generateSemifinals(state *models.TournamentState) (*models.TournamentState, error) {
	for _, m := range state.StageMatches(models.StageGroup) {
		if !m.Completed() {
			return nil, ErrGroupStageUnfinished
		}
	}

	tableA, err := ComputeStandings(state, GroupA)
	if err != nil {
		return nil, err
	}
	tableB, err := ComputeStandings(state, GroupB)
	if err != nil {
		return nil, err
	}
	if len(tableA) < 2 || len(tableB) < 2 {
		return nil, ErrGroupStageUnfinished
	}

	next := state.Clone()
	next.Matches = append(next.Matches,
		populatedMatch(models.StageSemi, 1, tableA[0].Team.ID, tableB[1].Team.ID),
		populatedMatch(models.StageSemi, 2, tableB[0].Team.ID, tableA[1].Team.ID),
	)
	next.Phase = DerivePhase(next)
	return next, nil
}

// generateFinal builds the final from the semifinal winners and the
// third-place match from the losers, keeping semifinal order for the slots.
func generateFinal(state *models.TournamentState) (*models.TournamentState, error) {
	semi1 := state.FindMatch(models.StageSemi, 1)
	semi2 := state.FindMatch(models.StageSemi, 2)
	if semi1 == nil || semi2 == nil || !semi1.Completed() || !semi2.Completed() {
		return nil, ErrSemifinalsUnfinished
	}

	next := state.Clone()
	next.Matches = append(next.Matches,
		populatedMatch(models.StageThirdPlace, 1, *semi1.LoserID, *semi2.LoserID),
		populatedMatch(models.StageFinal, 1, *semi1.WinnerID, *semi2.WinnerID),
	)
	next.Phase = DerivePhase(next)
	return next, nil
}

func populatedMatch(stage models.Stage, matchNumber int, teamA, teamB string) models.Match {
	m := newMatch(stage, matchNumber)
	m.TeamAID = &teamA
	m.TeamBID = &teamB
	return m
}
