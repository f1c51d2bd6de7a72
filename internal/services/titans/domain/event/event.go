package event

import "time"

// Type identifies an event type string.
type Type string

// ActorType identifies who caused an event.
type ActorType string

const (
	// ActorTypeSystem marks events raised by the clock or the engine itself.
	ActorTypeSystem ActorType = "system"
	// ActorTypePlayer marks events raised by a player's action.
	ActorTypePlayer ActorType = "player"
)

// Match events.
const (
	// TypeMatchReset restores the initial board and clocks.
	TypeMatchReset Type = "match.reset"
	// TypePiecePlaced records a titan entering the board.
	TypePiecePlaced Type = "match.piece_placed"
	// TypeCircuitUnlocked records a circuit opening for placement.
	TypeCircuitUnlocked Type = "match.circuit_unlocked"
	// TypePhaseChanged records the move from placement to movement.
	TypePhaseChanged Type = "match.phase_changed"
	// TypePieceSelected records a piece picked up for movement.
	TypePieceSelected Type = "match.piece_selected"
	// TypeSelectionCleared records a dropped selection.
	TypeSelectionCleared Type = "match.selection_cleared"
	// TypePieceMoved records a titan moving one step.
	TypePieceMoved Type = "match.piece_moved"
	// TypePieceCaptured records a surrounded titan leaving the board.
	TypePieceCaptured Type = "match.piece_captured"
	// TypeScoresUpdated records recomputed scores.
	TypeScoresUpdated Type = "match.scores_updated"
	// TypeTurnSwitched records the active player changing.
	TypeTurnSwitched Type = "match.turn_switched"
	// TypeMatchEnded records the final outcome.
	TypeMatchEnded Type = "match.ended"
)

// Clock events.
const (
	// TypeClockTicked records one unit of time elapsing for the active player.
	TypeClockTicked Type = "clock.ticked"
	// TypeClockPaused records decrementing being halted.
	TypeClockPaused Type = "clock.paused"
	// TypeClockResumed records decrementing restarting from paused values.
	TypeClockResumed Type = "clock.resumed"
)

// Event captures the canonical event envelope.
type Event struct {
	// MatchID is the match this event belongs to.
	MatchID string
	// Seq is the position in the match journal. Assigned on append.
	Seq uint64
	// Type is the event type.
	Type Type
	// Timestamp is when the decider emitted the event.
	Timestamp time.Time
	// ActorType and ActorID identify who caused the event.
	ActorType ActorType
	ActorID   string
	// EntityType and EntityID address the thing that changed.
	EntityType string
	EntityID   string
	// PayloadJSON is the type-specific payload.
	PayloadJSON []byte
}
