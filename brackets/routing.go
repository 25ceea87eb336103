package brackets

import "github.com/fixtureapp/fixture-backend/models"

// Slot is one of the two team positions of a match.
type Slot int

const (
	SlotA Slot = iota + 1
	SlotB
)

type routeKey struct {
	Stage       models.Stage
	MatchNumber int
}

type routeTarget struct {
	Stage       models.Stage
	MatchNumber int
}

// winnerRoutes is the whole bracket flow as data, keyed by format. The slot
// a winner lands in is decided by source match parity (odd feeds A, even
// feeds B) so winners from sibling matches interleave instead of colliding.
//
// GROUPS_THEN_KNOCKOUT has no entries: its group-to-knockout boundary depends
// on standings that are only known at generation time, and its final and
// third-place matches are created already populated.
var winnerRoutes = map[models.Format]map[routeKey]routeTarget{
	models.FormatStraightKnockout: {
		{models.StageRoundOf16, 1}: {models.StageQuarter, 1},
		{models.StageRoundOf16, 2}: {models.StageQuarter, 1},
		{models.StageRoundOf16, 3}: {models.StageQuarter, 2},
		{models.StageRoundOf16, 4}: {models.StageQuarter, 2},
		{models.StageRoundOf16, 5}: {models.StageQuarter, 3},
		{models.StageRoundOf16, 6}: {models.StageQuarter, 3},
		{models.StageRoundOf16, 7}: {models.StageQuarter, 4},
		{models.StageRoundOf16, 8}: {models.StageQuarter, 4},
		{models.StageQuarter, 1}:   {models.StageSemi, 1},
		{models.StageQuarter, 2}:   {models.StageSemi, 1},
		{models.StageQuarter, 3}:   {models.StageSemi, 2},
		{models.StageQuarter, 4}:   {models.StageSemi, 2},
		{models.StageSemi, 1}:      {models.StageFinal, 1},
		{models.StageSemi, 2}:      {models.StageFinal, 1},
	},
	models.FormatGroupsThenKnockout: {},
}

func slotForSource(matchNumber int) Slot {
	if matchNumber%2 != 0 {
		return SlotA
	}
	return SlotB
}

// routeAdvancement writes the winner of a just-completed match into its
// downstream slot, and for semifinals also writes the loser into the
// third-place match. Writing into an occupied slot fails with a state error
// so a re-processed result can never double-advance a team.
func routeAdvancement(state *models.TournamentState, completed *models.Match) error {
	table := winnerRoutes[state.Format]

	if target, ok := table[routeKey{completed.Stage, completed.MatchNumber}]; ok {
		next := state.FindMatch(target.Stage, target.MatchNumber)
		if next == nil {
			return ErrMatchNotFound
		}
		if err := fillSlot(next, slotForSource(completed.MatchNumber), *completed.WinnerID); err != nil {
			return err
		}
	}

	// Loser routing exists for semifinals only. In the groups format the
	// third-place match is created later, already populated, so there is
	// nothing to route into here.
	if completed.Stage == models.StageSemi && completed.LoserID != nil {
		if third := state.FindMatch(models.StageThirdPlace, 1); third != nil {
			if err := fillSlot(third, slotForSource(completed.MatchNumber), *completed.LoserID); err != nil {
				return err
			}
		}
	}

	return nil
}

func fillSlot(m *models.Match, slot Slot, teamID string) error {
	switch slot {
	case SlotA:
		if m.TeamAID != nil {
			return ErrSlotOccupied
		}
		m.TeamAID = &teamID
	case SlotB:
		if m.TeamBID != nil {
			return ErrSlotOccupied
		}
		m.TeamBID = &teamID
	}
	return nil
}
