package brackets

import (
	"errors"
	"fmt"
)

// Root errors of the engine's taxonomy. Specific errors wrap one of the two
// so the HTTP layer can map whole families without enumerating every case.
var (
	// ErrValidation covers malformed input reachable by caller mistake.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidState covers operations that are not legal against the
	// current tournament data or phase.
	ErrInvalidState = errors.New("operation not allowed in current tournament state")
)

var (
	ErrUnknownFormat     = fmt.Errorf("%w: unknown tournament format", ErrValidation)
	ErrTeamCount         = fmt.Errorf("%w: team count does not match format", ErrValidation)
	ErrDuplicateTeamName = fmt.Errorf("%w: duplicate team name", ErrValidation)
	ErrEmptyTeamName     = fmt.Errorf("%w: team name must not be empty", ErrValidation)
	ErrNegativeScore     = fmt.Errorf("%w: scores must be non-negative", ErrValidation)
	ErrPenaltiesRequired = fmt.Errorf("%w: a drawn knockout match requires an unequal penalty shootout result", ErrValidation)
	ErrPenaltiesInvalid  = fmt.Errorf("%w: penalties are only valid for a drawn knockout match", ErrValidation)

	ErrWrongPhase            = fmt.Errorf("%w: operation not allowed in current phase", ErrInvalidState)
	ErrMatchNotFound         = fmt.Errorf("%w: match not found", ErrInvalidState)
	ErrGroupNotFound         = fmt.Errorf("%w: group not found", ErrInvalidState)
	ErrMatchAlreadyCompleted = fmt.Errorf("%w: match already has a result", ErrInvalidState)
	ErrMatchNotReady         = fmt.Errorf("%w: match is missing a team and cannot be scored", ErrInvalidState)
	ErrSlotOccupied          = fmt.Errorf("%w: downstream slot is already occupied", ErrInvalidState)
	ErrStageAlreadyExists    = fmt.Errorf("%w: stage has already been generated", ErrInvalidState)
	ErrGroupStageUnfinished  = fmt.Errorf("%w: all group matches must be scored first", ErrInvalidState)
	ErrSemifinalsUnfinished  = fmt.Errorf("%w: both semifinals must be completed first", ErrInvalidState)
	ErrNoStageToGenerate     = fmt.Errorf("%w: no knockout stage left to generate", ErrInvalidState)
)
