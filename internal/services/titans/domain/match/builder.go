package match

import (
	"encoding/json"
	"strconv"
	"time"

	apperrors "github.com/louisbranch/titans/internal/platform/errors"
	"github.com/louisbranch/titans/internal/services/titans/domain/board"
	"github.com/louisbranch/titans/internal/services/titans/domain/command"
	"github.com/louisbranch/titans/internal/services/titans/domain/event"
)

// builder accumulates events for one action, folding each into a working
// copy of the state as it goes.
type builder struct {
	state  State
	cmd    command.Command
	now    time.Time
	events []event.Event
	err    error
}

func newBuilder(state State, cmd command.Command, now func() time.Time) *builder {
	if now == nil {
		now = time.Now
	}
	return &builder{state: state, cmd: cmd, now: now().UTC()}
}

func (b *builder) emit(t event.Type, entityType, entityID string, payload any) {
	if b.err != nil {
		return
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		b.err = err
		return
	}
	evt := event.Event{
		MatchID:     b.cmd.MatchID,
		Type:        t,
		Timestamp:   b.now,
		ActorType:   event.ActorType(b.cmd.ActorType),
		ActorID:     b.cmd.ActorID,
		EntityType:  entityType,
		EntityID:    entityID,
		PayloadJSON: payloadJSON,
	}
	next, err := Fold(b.state, evt)
	if err != nil {
		b.err = err
		return
	}
	b.state = next
	b.events = append(b.events, evt)
}

// capture removes every opposing piece whose neighbours are all held by
// mover. Surrounded pieces are found before any is removed.
func (b *builder) capture(mover board.Player) {
	opponent := mover.Opponent()
	var captured []board.Position
	for _, pos := range b.state.piecesOf(opponent) {
		if b.state.Occupancy.Surrounded(pos, mover) {
			captured = append(captured, pos)
		}
	}
	for _, pos := range captured {
		b.emit(event.TypePieceCaptured, "position", strconv.Itoa(int(pos)), event.PieceCapturedPayload{
			Player:     string(opponent),
			Position:   int(pos),
			CapturedBy: string(mover),
		})
	}
}

func (b *builder) rescore() {
	red := b.state.Occupancy.Score(board.Red)
	blue := b.state.Occupancy.Score(board.Blue)
	if red == b.state.Red.Score && blue == b.state.Blue.Score {
		return
	}
	b.emit(event.TypeScoresUpdated, "match", b.cmd.MatchID, event.ScoresUpdatedPayload{Red: red, Blue: blue})
}

// settle rescores, then ends the match if the inner circuit is full or
// passes the turn otherwise.
func (b *builder) settle() {
	b.rescore()
	if b.state.Occupancy.CircuitFull(board.InnerCircuit) {
		b.end(ReasonInnerCircuitFilled, board.NoPlayer)
		return
	}
	b.switchTurn(false)
}

func (b *builder) end(reason EndReason, timedOut board.Player) {
	red, blue := b.state.Red.Score, b.state.Blue.Score
	winner := board.NoPlayer
	switch {
	case timedOut.Valid():
		winner = timedOut.Opponent()
	case red > blue:
		winner = board.Red
	case blue > red:
		winner = board.Blue
	}
	b.emit(event.TypeMatchEnded, "match", b.cmd.MatchID, event.MatchEndedPayload{
		Reason:    string(reason),
		Winner:    winnerToPayload(winner),
		TimedOut:  string(timedOut),
		RedScore:  red,
		BlueScore: blue,
	})
}

func (b *builder) switchTurn(forced bool) {
	from := b.state.Current
	b.emit(event.TypeTurnSwitched, "match", b.cmd.MatchID, event.TurnSwitchedPayload{
		From:   string(from),
		To:     string(from.Opponent()),
		Forced: forced,
	})
}

func (b *builder) decision(rejection *command.Rejection) command.Decision {
	if b.err != nil {
		return command.Reject(command.Rejection{
			Code:    string(apperrors.CodeUnknown),
			Message: b.err.Error(),
		})
	}
	decision := command.Accept(b.events...)
	if rejection != nil {
		decision.Rejections = []command.Rejection{*rejection}
	}
	return decision
}
