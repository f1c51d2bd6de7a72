package match

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/louisbranch/titans/internal/services/titans/domain/board"
	"github.com/louisbranch/titans/internal/services/titans/domain/event"
)

// FoldHandledTypes returns the event types handled by the match fold function.
func FoldHandledTypes() []event.Type {
	return []event.Type{
		event.TypeMatchReset,
		event.TypePiecePlaced,
		event.TypeCircuitUnlocked,
		event.TypePhaseChanged,
		event.TypePieceSelected,
		event.TypeSelectionCleared,
		event.TypePieceMoved,
		event.TypePieceCaptured,
		event.TypeScoresUpdated,
		event.TypeTurnSwitched,
		event.TypeMatchEnded,
	}
}

// Fold applies an event to match state. It returns an error if a recognized
// event carries a payload that cannot be unmarshalled.
func Fold(state State, evt event.Event) (State, error) {
	switch evt.Type {
	case event.TypeMatchReset:
		return NewState(), nil
	case event.TypePiecePlaced:
		var payload event.PiecePlacedPayload
		if err := unmarshal(evt, &payload); err != nil {
			return state, err
		}
		return applyPlaced(state, board.Player(payload.Player), board.Position(payload.Position)), nil
	case event.TypeCircuitUnlocked:
		var payload event.CircuitUnlockedPayload
		if err := unmarshal(evt, &payload); err != nil {
			return state, err
		}
		state.Unlocked = state.Unlocked.Add(board.Circuit(payload.Circuit))
	case event.TypePhaseChanged:
		var payload event.PhaseChangedPayload
		if err := unmarshal(evt, &payload); err != nil {
			return state, err
		}
		state.Phase = Phase(payload.To)
	case event.TypePieceSelected:
		var payload event.PieceSelectedPayload
		if err := unmarshal(evt, &payload); err != nil {
			return state, err
		}
		state.Selected = board.Position(payload.Position)
	case event.TypeSelectionCleared:
		state.Selected = 0
	case event.TypePieceMoved:
		var payload event.PieceMovedPayload
		if err := unmarshal(evt, &payload); err != nil {
			return state, err
		}
		return applyMoved(state, board.Player(payload.Player), board.Position(payload.From), board.Position(payload.To)), nil
	case event.TypePieceCaptured:
		var payload event.PieceCapturedPayload
		if err := unmarshal(evt, &payload); err != nil {
			return state, err
		}
		return applyCaptured(state, board.Player(payload.Player), board.Position(payload.Position)), nil
	case event.TypeScoresUpdated:
		var payload event.ScoresUpdatedPayload
		if err := unmarshal(evt, &payload); err != nil {
			return state, err
		}
		state.Red.Score = payload.Red
		state.Blue.Score = payload.Blue
	case event.TypeTurnSwitched:
		var payload event.TurnSwitchedPayload
		if err := unmarshal(evt, &payload); err != nil {
			return state, err
		}
		state.Current = board.Player(payload.To)
		state.Selected = 0
	case event.TypeMatchEnded:
		var payload event.MatchEndedPayload
		if err := unmarshal(evt, &payload); err != nil {
			return state, err
		}
		state.Ended = true
		state.Selected = 0
		state.Outcome = Outcome{
			Reason:    EndReason(payload.Reason),
			Winner:    winnerFromPayload(payload.Winner),
			TimedOut:  board.Player(payload.TimedOut),
			RedScore:  payload.RedScore,
			BlueScore: payload.BlueScore,
		}
		state.Red.Score = payload.RedScore
		state.Blue.Score = payload.BlueScore
	}
	return state, nil
}

func unmarshal(evt event.Event, target any) error {
	if err := json.Unmarshal(evt.PayloadJSON, target); err != nil {
		return fmt.Errorf("match fold %s: %w", evt.Type, err)
	}
	return nil
}

func applyPlaced(state State, player board.Player, pos board.Position) State {
	state.Occupancy = state.Occupancy.With(pos, player)
	pieces := append(slices.Clone(state.piecesOf(player)), pos)
	return state.withPieces(player, pieces)
}

func applyMoved(state State, player board.Player, from, to board.Position) State {
	state.Occupancy = state.Occupancy.With(from, board.NoPlayer).With(to, player)
	pieces := slices.Clone(state.piecesOf(player))
	if i := slices.Index(pieces, from); i >= 0 {
		pieces[i] = to
	}
	state.Selected = 0
	return state.withPieces(player, pieces)
}

func applyCaptured(state State, player board.Player, pos board.Position) State {
	state.Occupancy = state.Occupancy.With(pos, board.NoPlayer)
	pieces := slices.DeleteFunc(slices.Clone(state.piecesOf(player)), func(p board.Position) bool {
		return p == pos
	})
	if state.Selected == pos {
		state.Selected = 0
	}
	return state.withPieces(player, pieces)
}

const tieWinner = "tie"

func winnerFromPayload(value string) board.Player {
	if value == tieWinner {
		return board.NoPlayer
	}
	return board.Player(value)
}

func winnerToPayload(p board.Player) string {
	if p == board.NoPlayer {
		return tieWinner
	}
	return string(p)
}
