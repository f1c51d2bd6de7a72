package clock

import (
	"encoding/json"
	"fmt"

	"github.com/louisbranch/titans/internal/services/titans/domain/board"
	"github.com/louisbranch/titans/internal/services/titans/domain/event"
)

// FoldHandledTypes returns the event types handled by the clock fold function.
// Turn switches, match end and reset are shared with the match fold.
func FoldHandledTypes() []event.Type {
	return []event.Type{
		event.TypeClockTicked,
		event.TypeClockPaused,
		event.TypeClockResumed,
		event.TypeTurnSwitched,
		event.TypeMatchEnded,
		event.TypeMatchReset,
	}
}

// Fold applies an event to clock state.
func Fold(state State, evt event.Event) (State, error) {
	switch evt.Type {
	case event.TypeClockTicked:
		var payload event.ClockTickedPayload
		if err := unmarshal(evt, &payload); err != nil {
			return state, err
		}
		state = state.withRemaining(board.Player(payload.Player), payload.MainRemaining)
		state.Turn = payload.TurnRemaining
	case event.TypeClockPaused:
		state.Paused = true
	case event.TypeClockResumed:
		state.Paused = false
	case event.TypeTurnSwitched:
		var payload event.TurnSwitchedPayload
		if err := unmarshal(evt, &payload); err != nil {
			return state, err
		}
		state.Active = board.Player(payload.To)
		state.Turn = state.TurnBudget
	case event.TypeMatchEnded:
		state.Stopped = true
	case event.TypeMatchReset:
		var payload event.ResetPayload
		if err := unmarshal(evt, &payload); err != nil {
			return state, err
		}
		return New(payload.MainBudget, payload.TurnBudget), nil
	}
	return state, nil
}

func unmarshal(evt event.Event, target any) error {
	if err := json.Unmarshal(evt.PayloadJSON, target); err != nil {
		return fmt.Errorf("clock fold %s: %w", evt.Type, err)
	}
	return nil
}
