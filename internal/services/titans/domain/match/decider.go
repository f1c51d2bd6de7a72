package match

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/louisbranch/titans/internal/platform/errors"
	"github.com/louisbranch/titans/internal/services/titans/domain/board"
	"github.com/louisbranch/titans/internal/services/titans/domain/command"
	"github.com/louisbranch/titans/internal/services/titans/domain/event"
)

// Decide returns the decision for a player command against current state.
//
// Placement runs: place, unlock the next circuit, enter movement, rescore,
// end or switch. Movement runs: move, capture, rescore, end or switch.
func Decide(state State, cmd command.Command, now func() time.Time) command.Decision {
	switch cmd.Type {
	case command.TypePlace:
		var payload command.PositionPayload
		_ = json.Unmarshal(cmd.PayloadJSON, &payload)
		return decidePlace(state, cmd, board.Position(payload.Position), now)
	case command.TypeSelect:
		var payload command.PositionPayload
		_ = json.Unmarshal(cmd.PayloadJSON, &payload)
		return decideSelect(state, cmd, board.Position(payload.Position), now)
	case command.TypeClearSelection:
		return decideClearSelection(state, cmd, now)
	case command.TypeMove:
		var payload command.MovePayload
		_ = json.Unmarshal(cmd.PayloadJSON, &payload)
		return decideMove(state, cmd, board.Position(payload.From), board.Position(payload.To), now)
	default:
		return command.Decision{}
	}
}

// Timeout ends the match because loser's main clock ran out.
func Timeout(state State, loser board.Player, cmd command.Command, now func() time.Time) command.Decision {
	if state.Ended || !loser.Valid() {
		return command.Decision{}
	}
	b := newBuilder(state, cmd, now)
	b.rescore()
	b.end(ReasonTimeout, loser)
	return b.decision(nil)
}

// ForceSwitch hands the turn to the other player when the turn countdown runs out.
func ForceSwitch(state State, cmd command.Command, now func() time.Time) command.Decision {
	if state.Ended {
		return command.Decision{}
	}
	b := newBuilder(state, cmd, now)
	b.switchTurn(true)
	return b.decision(nil)
}

func decidePlace(state State, cmd command.Command, pos board.Position, now func() time.Time) command.Decision {
	if rejection, ok := checkActive(state, PhasePlacement); !ok {
		return command.Reject(rejection)
	}
	if !pos.Valid() {
		return command.Reject(outOfRange(pos))
	}
	circuit := pos.Circuit()
	if !state.Unlocked.Has(circuit) {
		return command.Reject(command.Rejection{
			Code:     string(apperrors.CodePlacementCircuitLocked),
			Message:  "circuit is locked",
			Metadata: map[string]string{"Circuit": strconv.Itoa(int(circuit)), "Position": strconv.Itoa(int(pos))},
		})
	}
	if state.Occupancy.Occupied(pos) {
		return command.Reject(command.Rejection{
			Code:     string(apperrors.CodePlacementPositionTaken),
			Message:  "position is occupied",
			Metadata: map[string]string{"Position": strconv.Itoa(int(pos))},
		})
	}
	if state.PieceCount(state.Current) >= MaxTitans {
		return command.Reject(command.Rejection{
			Code:    string(apperrors.CodePlacementQuotaExhausted),
			Message: "all titans already placed",
			Metadata: map[string]string{
				"Player": strings.ToUpper(string(state.Current)),
				"Max":    strconv.Itoa(MaxTitans),
			},
		})
	}

	b := newBuilder(state, cmd, now)
	player := state.Current
	b.emit(event.TypePiecePlaced, "position", strconv.Itoa(int(pos)), event.PiecePlacedPayload{
		Player:   string(player),
		Position: int(pos),
	})
	if b.state.Occupancy.CircuitFull(circuit) {
		if inward, ok := circuit.Inward(); ok && !b.state.Unlocked.Has(inward) {
			b.emit(event.TypeCircuitUnlocked, "circuit", strconv.Itoa(int(inward)), event.CircuitUnlockedPayload{
				Circuit: int(inward),
			})
		}
	}
	if b.state.PieceCount(board.Red) == MaxTitans && b.state.PieceCount(board.Blue) == MaxTitans {
		b.emit(event.TypePhaseChanged, "match", cmd.MatchID, event.PhaseChangedPayload{
			From: string(PhasePlacement),
			To:   string(PhaseMovement),
		})
	}
	b.settle()
	return b.decision(nil)
}

func decideSelect(state State, cmd command.Command, pos board.Position, now func() time.Time) command.Decision {
	if rejection, ok := checkActive(state, PhaseMovement); !ok {
		return command.Reject(rejection)
	}
	if !pos.Valid() {
		return command.Reject(outOfRange(pos))
	}
	if state.Occupancy.At(pos) != state.Current {
		return command.Reject(notOwnPiece(pos))
	}
	b := newBuilder(state, cmd, now)
	b.emit(event.TypePieceSelected, "position", strconv.Itoa(int(pos)), event.PieceSelectedPayload{
		Player:   string(state.Current),
		Position: int(pos),
	})
	return b.decision(nil)
}

func decideClearSelection(state State, cmd command.Command, now func() time.Time) command.Decision {
	if rejection, ok := checkActive(state, PhaseMovement); !ok {
		return command.Reject(rejection)
	}
	if state.Selected == 0 {
		return command.Decision{}
	}
	b := newBuilder(state, cmd, now)
	b.emit(event.TypeSelectionCleared, "match", cmd.MatchID, struct{}{})
	return b.decision(nil)
}

func decideMove(state State, cmd command.Command, from, to board.Position, now func() time.Time) command.Decision {
	if rejection, ok := checkActive(state, PhaseMovement); !ok {
		return command.Reject(rejection)
	}

	b := newBuilder(state, cmd, now)
	mover := state.Current
	var rejection *command.Rejection
	switch {
	case !from.Valid():
		r := outOfRange(from)
		rejection = &r
	case !to.Valid():
		r := outOfRange(to)
		rejection = &r
	case state.Occupancy.At(from) != mover:
		r := notOwnPiece(from)
		rejection = &r
	case state.Occupancy.Occupied(to):
		rejection = &command.Rejection{
			Code:     string(apperrors.CodeMovementDestinationOccupied),
			Message:  "destination is occupied",
			Metadata: map[string]string{"Position": strconv.Itoa(int(to))},
		}
	case !board.Adjacent(from, to):
		rejection = &command.Rejection{
			Code:     string(apperrors.CodeMovementNotAdjacent),
			Message:  "destination is not adjacent",
			Metadata: map[string]string{"From": strconv.Itoa(int(from)), "To": strconv.Itoa(int(to))},
		}
	}
	if rejection != nil {
		// A failed move still drops the selection.
		if state.Selected != 0 {
			b.emit(event.TypeSelectionCleared, "match", cmd.MatchID, struct{}{})
		}
		return b.decision(rejection)
	}

	b.emit(event.TypePieceMoved, "position", strconv.Itoa(int(to)), event.PieceMovedPayload{
		Player: string(mover),
		From:   int(from),
		To:     int(to),
	})
	b.capture(mover)
	b.settle()
	return b.decision(nil)
}

func checkActive(state State, want Phase) (command.Rejection, bool) {
	if state.Ended {
		return command.Rejection{
			Code:    string(apperrors.CodeMatchEnded),
			Message: "match has ended",
		}, false
	}
	if state.Phase != want {
		return command.Rejection{
			Code:     string(apperrors.CodeWrongPhase),
			Message:  "action belongs to the " + string(want) + " phase",
			Metadata: map[string]string{"Phase": string(state.Phase)},
		}, false
	}
	return command.Rejection{}, true
}

func outOfRange(pos board.Position) command.Rejection {
	return command.Rejection{
		Code:     string(apperrors.CodePositionOutOfRange),
		Message:  "position out of range",
		Metadata: map[string]string{"Position": strconv.Itoa(int(pos))},
	}
}

func notOwnPiece(pos board.Position) command.Rejection {
	return command.Rejection{
		Code:     string(apperrors.CodeMovementNotOwnPiece),
		Message:  "position does not hold a piece of the active player",
		Metadata: map[string]string{"Position": strconv.Itoa(int(pos))},
	}
}
