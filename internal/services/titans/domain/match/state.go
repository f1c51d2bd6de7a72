package match

import (
	"slices"

	"github.com/louisbranch/titans/internal/services/titans/domain/board"
)

// MaxTitans is the number of pieces each player places.
const MaxTitans = 4

// Phase is the stage of the match.
type Phase string

const (
	// PhasePlacement lasts until both players have placed every titan.
	PhasePlacement Phase = "placement"
	// PhaseMovement follows placement and lasts until the match ends.
	PhaseMovement Phase = "movement"
)

// EndReason tags why a match ended.
type EndReason string

const (
	// ReasonInnerCircuitFilled ends the match when positions 1-6 are all occupied.
	ReasonInnerCircuitFilled EndReason = "inner_circuit_filled"
	// ReasonTimeout ends the match when a player's main clock runs out.
	ReasonTimeout EndReason = "timeout"
)

// Outcome is the end-of-game notification.
type Outcome struct {
	Reason EndReason
	// Winner is NoPlayer on a tie.
	Winner    board.Player
	TimedOut  board.Player
	RedScore  int
	BlueScore int
}

// Tie reports whether neither player won.
func (o Outcome) Tie() bool {
	return o.Winner == board.NoPlayer
}

// Side is one player's pieces and score.
type Side struct {
	Pieces []board.Position
	Score  int
}

// State captures the replayed state of a match.
type State struct {
	Phase     Phase
	Current   board.Player
	Occupancy board.Occupancy
	Red       Side
	Blue      Side
	// Unlocked only grows during a match.
	Unlocked board.CircuitSet
	// Selected is the piece picked up for movement, or 0.
	Selected board.Position
	Ended    bool
	Outcome  Outcome
}

// NewState returns the state of a fresh match: empty board, red to play,
// only the outer circuit open.
func NewState() State {
	return State{
		Phase:    PhasePlacement,
		Current:  board.Red,
		Unlocked: board.NewCircuitSet(board.OuterCircuit),
	}
}

// Side returns a copy of the given player's side.
func (s State) Side(p board.Player) Side {
	var side Side
	switch p {
	case board.Red:
		side = s.Red
	case board.Blue:
		side = s.Blue
	}
	side.Pieces = slices.Clone(side.Pieces)
	return side
}

// PieceCount returns how many titans p has on the board.
func (s State) PieceCount(p board.Player) int {
	switch p {
	case board.Red:
		return len(s.Red.Pieces)
	case board.Blue:
		return len(s.Blue.Pieces)
	default:
		return 0
	}
}

// Score returns p's last recomputed score.
func (s State) Score(p board.Player) int {
	switch p {
	case board.Red:
		return s.Red.Score
	case board.Blue:
		return s.Blue.Score
	default:
		return 0
	}
}

func (s State) withPieces(p board.Player, pieces []board.Position) State {
	switch p {
	case board.Red:
		s.Red.Pieces = pieces
	case board.Blue:
		s.Blue.Pieces = pieces
	}
	return s
}

func (s State) piecesOf(p board.Player) []board.Position {
	switch p {
	case board.Red:
		return s.Red.Pieces
	case board.Blue:
		return s.Blue.Pieces
	default:
		return nil
	}
}
