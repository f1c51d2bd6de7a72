// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Placement errors
	CodePlacementCircuitLocked  Code = "PLACEMENT_CIRCUIT_LOCKED"
	CodePlacementPositionTaken  Code = "PLACEMENT_POSITION_OCCUPIED"
	CodePlacementQuotaExhausted Code = "PLACEMENT_QUOTA_EXHAUSTED"
	CodePositionOutOfRange      Code = "POSITION_OUT_OF_RANGE"

	// Movement errors
	CodeMovementNotAdjacent         Code = "MOVEMENT_NOT_ADJACENT"
	CodeMovementDestinationOccupied Code = "MOVEMENT_DESTINATION_OCCUPIED"
	CodeMovementNotOwnPiece         Code = "MOVEMENT_NOT_OWN_PIECE"

	// Phase errors
	CodeWrongPhase Code = "WRONG_PHASE"

	// Match lifecycle errors
	CodeMatchEnded         Code = "MATCH_ENDED"
	CodeMatchPaused        Code = "MATCH_PAUSED"
	CodeClockAlreadyPaused Code = "CLOCK_ALREADY_PAUSED"
	CodeClockNotPaused     Code = "CLOCK_NOT_PAUSED"
)

// Category groups codes into the rejection taxonomy shown to players.
type Category string

const (
	// CategoryInvalidPlacement covers locked circuits, taken positions and spent quotas.
	CategoryInvalidPlacement Category = "invalid_placement"
	// CategoryInvalidMovement covers illegal destinations and foreign pieces.
	CategoryInvalidMovement Category = "invalid_movement"
	// CategoryWrongPhase covers actions that belong to the other phase.
	CategoryWrongPhase Category = "wrong_phase_action"
	// CategoryMatchState covers actions the match lifecycle does not allow right now.
	CategoryMatchState Category = "match_state"
	// CategoryInternal covers anything unrecognized.
	CategoryInternal Category = "internal"
)

// Category maps a code to its rejection category.
func (c Code) Category() Category {
	switch c {
	case CodePlacementCircuitLocked,
		CodePlacementPositionTaken,
		CodePlacementQuotaExhausted,
		CodePositionOutOfRange:
		return CategoryInvalidPlacement

	case CodeMovementNotAdjacent,
		CodeMovementDestinationOccupied,
		CodeMovementNotOwnPiece:
		return CategoryInvalidMovement

	case CodeWrongPhase:
		return CategoryWrongPhase

	case CodeMatchEnded,
		CodeMatchPaused,
		CodeClockAlreadyPaused,
		CodeClockNotPaused:
		return CategoryMatchState

	default:
		return CategoryInternal
	}
}
