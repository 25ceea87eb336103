package brackets

import "github.com/fixtureapp/fixture-backend/models"

// DerivePhase computes the lifecycle phase from the state itself. Keeping it
// a derived read means the phase can never disagree with the matches; COMPLETE
// in particular happens the instant the final is decided, with no flag to
// update.
func DerivePhase(state *models.TournamentState) models.Phase {
	if len(state.Teams) == 0 {
		return models.PhaseSetup
	}

	if final := state.FindMatch(models.StageFinal, 1); final != nil && final.Completed() {
		return models.PhaseComplete
	}

	// The knockout phase starts once a semifinal or later match can actually
	// be played. A straight-knockout bracket carries empty semifinal
	// placeholders from setup; those alone keep the tournament SCHEDULED.
	for _, stage := range []models.Stage{models.StageSemi, models.StageThirdPlace, models.StageFinal} {
		for _, m := range state.StageMatches(stage) {
			if m.Ready() {
				return models.PhaseKnockout
			}
		}
	}

	return models.PhaseScheduled
}

// Reset discards everything and returns the empty SETUP state. It is legal
// from any phase.
func Reset() *models.TournamentState {
	return models.NewTournamentState()
}
