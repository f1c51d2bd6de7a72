package clock

import (
	"encoding/json"
	"time"

	apperrors "github.com/louisbranch/titans/internal/platform/errors"
	"github.com/louisbranch/titans/internal/services/titans/domain/command"
	"github.com/louisbranch/titans/internal/services/titans/domain/event"
)

// Decide returns the decision for a clock command.
//
// A tick while paused or stopped is a no-op and yields an empty decision.
func Decide(state State, cmd command.Command, now func() time.Time) command.Decision {
	if now == nil {
		now = time.Now
	}
	switch cmd.Type {
	case command.TypeTick:
		if !state.Running() {
			return command.Decision{}
		}
		active := state.Active
		return accept(cmd, now, event.TypeClockTicked, event.ClockTickedPayload{
			Player:        string(active),
			MainRemaining: max(state.Remaining(active)-1, 0),
			TurnRemaining: max(state.Turn-1, 0),
		})
	case command.TypePause:
		if state.Stopped {
			return command.Reject(command.Rejection{
				Code:    string(apperrors.CodeMatchEnded),
				Message: "match has ended",
			})
		}
		if state.Paused {
			return command.Reject(command.Rejection{
				Code:    string(apperrors.CodeClockAlreadyPaused),
				Message: "clock is already paused",
			})
		}
		return accept(cmd, now, event.TypeClockPaused, struct{}{})
	case command.TypeResume:
		if !state.Paused {
			return command.Reject(command.Rejection{
				Code:    string(apperrors.CodeClockNotPaused),
				Message: "clock is not paused",
			})
		}
		return accept(cmd, now, event.TypeClockResumed, struct{}{})
	default:
		return command.Decision{}
	}
}

func accept(cmd command.Command, now func() time.Time, t event.Type, payload any) command.Decision {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return command.Reject(command.Rejection{
			Code:    string(apperrors.CodeUnknown),
			Message: err.Error(),
		})
	}
	return command.Accept(event.Event{
		MatchID:     cmd.MatchID,
		Type:        t,
		Timestamp:   now().UTC(),
		ActorType:   event.ActorType(cmd.ActorType),
		ActorID:     cmd.ActorID,
		EntityType:  "clock",
		EntityID:    cmd.MatchID,
		PayloadJSON: payloadJSON,
	})
}
