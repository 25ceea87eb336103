package brackets

import "github.com/fixtureapp/fixture-backend/models"

// ResultInput is one submitted match result. Penalties are only meaningful
// for a drawn knockout match.
type ResultInput struct {
	MatchID  string `json:"match_id"`
	ScoreA   int    `json:"score_a"`
	ScoreB   int    `json:"score_b"`
	PenaltyA *int   `json:"penalty_a,omitempty"`
	PenaltyB *int   `json:"penalty_b,omitempty"`
}

// ApplyResult validates and records one match result, resolves the winner
// and loser, and routes advancement — all on a copy of the state, so the
// caller either gets the fully updated tournament or an error with the input
// untouched.
func ApplyResult(state *models.TournamentState, input ResultInput) (*models.TournamentState, error) {
	phase := DerivePhase(state)
	if phase != models.PhaseScheduled && phase != models.PhaseKnockout {
		return nil, ErrWrongPhase
	}

	next := state.Clone()

	match := next.MatchByID(input.MatchID)
	if match == nil {
		return nil, ErrMatchNotFound
	}
	if match.Completed() {
		return nil, ErrMatchAlreadyCompleted
	}
	if !match.Ready() {
		return nil, ErrMatchNotReady
	}
	if input.ScoreA < 0 || input.ScoreB < 0 {
		return nil, ErrNegativeScore
	}

	winner, loser, err := resolveOutcome(match, input)
	if err != nil {
		return nil, err
	}

	scoreA, scoreB := input.ScoreA, input.ScoreB
	match.ScoreA = &scoreA
	match.ScoreB = &scoreB
	if usesPenalties(match, input) {
		match.PenaltyA = cloneInt(input.PenaltyA)
		match.PenaltyB = cloneInt(input.PenaltyB)
	}
	match.WinnerID = winner
	match.LoserID = loser

	// Advancement is part of the same atomic transform: a completed match is
	// never observable without its routing applied.
	if match.WinnerID != nil {
		if err := routeAdvancement(next, match); err != nil {
			return nil, err
		}
	}

	next.Phase = DerivePhase(next)
	return next, nil
}

// resolveOutcome decides winner and loser ids, enforcing the draw rules: a
// group draw stands as-is with no winner, a knockout draw must be settled by
// an unequal penalty shootout.
func resolveOutcome(match *models.Match, input ResultInput) (winner, loser *string, err error) {
	knockout := match.Stage.IsKnockout()

	if !knockout {
		if input.PenaltyA != nil || input.PenaltyB != nil {
			return nil, nil, ErrPenaltiesInvalid
		}
		switch {
		case input.ScoreA > input.ScoreB:
			return match.TeamAID, match.TeamBID, nil
		case input.ScoreB > input.ScoreA:
			return match.TeamBID, match.TeamAID, nil
		default:
			return nil, nil, nil
		}
	}

	if input.ScoreA != input.ScoreB {
		if input.PenaltyA != nil || input.PenaltyB != nil {
			return nil, nil, ErrPenaltiesInvalid
		}
		if input.ScoreA > input.ScoreB {
			return match.TeamAID, match.TeamBID, nil
		}
		return match.TeamBID, match.TeamAID, nil
	}

	if input.PenaltyA == nil || input.PenaltyB == nil {
		return nil, nil, ErrPenaltiesRequired
	}
	if *input.PenaltyA < 0 || *input.PenaltyB < 0 {
		return nil, nil, ErrNegativeScore
	}
	if *input.PenaltyA == *input.PenaltyB {
		return nil, nil, ErrPenaltiesRequired
	}
	if *input.PenaltyA > *input.PenaltyB {
		return match.TeamAID, match.TeamBID, nil
	}
	return match.TeamBID, match.TeamAID, nil
}

func usesPenalties(match *models.Match, input ResultInput) bool {
	return match.Stage.IsKnockout() && input.ScoreA == input.ScoreB
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
