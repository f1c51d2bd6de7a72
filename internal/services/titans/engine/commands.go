package engine

import (
	"context"

	"github.com/louisbranch/titans/internal/services/titans/domain/aggregate"
	"github.com/louisbranch/titans/internal/services/titans/domain/board"
	"github.com/louisbranch/titans/internal/services/titans/domain/command"
	"github.com/louisbranch/titans/internal/services/titans/domain/match"
)

// ClickPosition routes a click on a board position the way the board does:
// during placement it places a titan; during movement the first click selects
// a piece and the next one moves it, or clears the selection when the
// clicked position is occupied.
func (e *Engine) ClickPosition(ctx context.Context, pos int) (Result, error) {
	return e.execute(ctx, command.ActorTypePlayer, func(state aggregate.State) (command.Type, any) {
		return routeClick(state.Match, board.Position(pos))
	})
}

func routeClick(state match.State, pos board.Position) (command.Type, any) {
	switch {
	case state.Phase == match.PhasePlacement:
		return command.TypePlace, command.PositionPayload{Position: int(pos)}
	case state.Selected == 0:
		return command.TypeSelect, command.PositionPayload{Position: int(pos)}
	case state.Occupancy.Occupied(pos):
		return command.TypeClearSelection, nil
	default:
		return command.TypeMove, command.MovePayload{From: int(state.Selected), To: int(pos)}
	}
}

// PlacePiece places a titan for the active player.
func (e *Engine) PlacePiece(ctx context.Context, pos int) (Result, error) {
	return e.execute(ctx, command.ActorTypePlayer, fixed(command.TypePlace, command.PositionPayload{Position: pos}))
}

// Select picks up one of the active player's pieces.
func (e *Engine) Select(ctx context.Context, pos int) (Result, error) {
	return e.execute(ctx, command.ActorTypePlayer, fixed(command.TypeSelect, command.PositionPayload{Position: pos}))
}

// MoveTo moves the active player's piece one step.
func (e *Engine) MoveTo(ctx context.Context, from, to int) (Result, error) {
	return e.execute(ctx, command.ActorTypePlayer, fixed(command.TypeMove, command.MovePayload{From: from, To: to}))
}

// Pause halts every clock without resetting it.
func (e *Engine) Pause(ctx context.Context) (Result, error) {
	return e.execute(ctx, command.ActorTypePlayer, fixed(command.TypePause, nil))
}

// Resume restarts the clocks from their paused values.
func (e *Engine) Resume(ctx context.Context) (Result, error) {
	return e.execute(ctx, command.ActorTypePlayer, fixed(command.TypeResume, nil))
}

// Reset starts the match over with full clocks.
func (e *Engine) Reset(ctx context.Context) (Result, error) {
	return e.execute(ctx, command.ActorTypePlayer, fixed(command.TypeReset, nil))
}

// Tick advances the clocks by one unit.
func (e *Engine) Tick(ctx context.Context) (Result, error) {
	return e.execute(ctx, command.ActorTypeSystem, fixed(command.TypeTick, nil))
}
