package aggregate

import (
	"encoding/json"
	"time"

	apperrors "github.com/louisbranch/titans/internal/platform/errors"
	"github.com/louisbranch/titans/internal/services/titans/domain/clock"
	"github.com/louisbranch/titans/internal/services/titans/domain/command"
	"github.com/louisbranch/titans/internal/services/titans/domain/event"
	"github.com/louisbranch/titans/internal/services/titans/domain/match"
)

// Decider routes commands to the match and clock deciders.
type Decider struct {
	Folder *Folder
}

// NewDecider returns a decider with its own fold index.
func NewDecider() *Decider {
	return &Decider{Folder: &Folder{}}
}

// Decide returns the decision for cmd against state.
func (d *Decider) Decide(state State, cmd command.Command, now func() time.Time) command.Decision {
	if now == nil {
		now = time.Now
	}
	switch cmd.Type {
	case command.TypePlace, command.TypeSelect, command.TypeClearSelection, command.TypeMove:
		if state.Clock.Paused && !state.Match.Ended {
			return command.Reject(command.Rejection{
				Code:    string(apperrors.CodeMatchPaused),
				Message: "match is paused",
			})
		}
		return match.Decide(state.Match, cmd, now)
	case command.TypePause, command.TypeResume:
		return clock.Decide(state.Clock, cmd, now)
	case command.TypeTick:
		return d.decideTick(state, cmd, now)
	case command.TypeReset:
		return decideReset(state, cmd, now)
	default:
		return command.Reject(command.Rejection{
			Code:    string(apperrors.CodeUnknown),
			Message: "unsupported command type " + string(cmd.Type),
		})
	}
}

func (d *Decider) decideTick(state State, cmd command.Command, now func() time.Time) command.Decision {
	ticked := clock.Decide(state.Clock, cmd, now)
	if ticked.Rejected() || len(ticked.Events) == 0 {
		return ticked
	}
	next, err := d.Folder.FoldAll(state, ticked.Events)
	if err != nil {
		return command.Reject(command.Rejection{
			Code:    string(apperrors.CodeUnknown),
			Message: err.Error(),
		})
	}

	var followup command.Decision
	if loser, expired := next.Clock.MainExpired(); expired {
		followup = match.Timeout(next.Match, loser, cmd, now)
	} else if next.Clock.TurnExpired() {
		followup = match.ForceSwitch(next.Match, cmd, now)
	}
	if followup.Rejected() {
		return followup
	}
	return command.Accept(append(ticked.Events, followup.Events...)...)
}

func decideReset(state State, cmd command.Command, now func() time.Time) command.Decision {
	payloadJSON, err := json.Marshal(event.ResetPayload{
		MainBudget: state.Clock.MainBudget,
		TurnBudget: state.Clock.TurnBudget,
	})
	if err != nil {
		return command.Reject(command.Rejection{
			Code:    string(apperrors.CodeUnknown),
			Message: err.Error(),
		})
	}
	return command.Accept(event.Event{
		MatchID:     cmd.MatchID,
		Type:        event.TypeMatchReset,
		Timestamp:   now().UTC(),
		ActorType:   event.ActorType(cmd.ActorType),
		ActorID:     cmd.ActorID,
		EntityType:  "match",
		EntityID:    cmd.MatchID,
		PayloadJSON: payloadJSON,
	})
}
