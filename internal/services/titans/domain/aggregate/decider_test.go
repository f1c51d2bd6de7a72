package aggregate

import (
	"slices"
	"testing"
	"time"

	apperrors "github.com/louisbranch/titans/internal/platform/errors"
	"github.com/louisbranch/titans/internal/services/titans/domain/board"
	"github.com/louisbranch/titans/internal/services/titans/domain/clock"
	"github.com/louisbranch/titans/internal/services/titans/domain/command"
	"github.com/louisbranch/titans/internal/services/titans/domain/event"
	"github.com/louisbranch/titans/internal/services/titans/domain/match"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func mustCommand(t *testing.T, typ command.Type, payload any) command.Command {
	t.Helper()
	cmd, err := command.New("match-1", typ, command.ActorTypeSystem, "", payload)
	if err != nil {
		t.Fatalf("new command: %v", err)
	}
	return cmd
}

func execute(t *testing.T, d *Decider, state State, typ command.Type, payload any) (State, command.Decision) {
	t.Helper()
	decision := d.Decide(state, mustCommand(t, typ, payload), fixedNow)
	next, err := d.Folder.FoldAll(state, decision.Events)
	if err != nil {
		t.Fatalf("fold %s: %v", typ, err)
	}
	return next, decision
}

func eventTypes(decision command.Decision) []event.Type {
	types := make([]event.Type, 0, len(decision.Events))
	for _, evt := range decision.Events {
		types = append(types, evt.Type)
	}
	return types
}

func TestTickTimeoutEndsMatch(t *testing.T) {
	d := NewDecider()
	state := NewState(1, 30)

	state, decision := execute(t, d, state, command.TypeTick, nil)
	want := []event.Type{event.TypeClockTicked, event.TypeMatchEnded}
	if got := eventTypes(decision); !slices.Equal(got, want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	if !state.Match.Ended || state.Match.Outcome.Reason != match.ReasonTimeout {
		t.Fatalf("outcome = %+v, want timeout", state.Match.Outcome)
	}
	if state.Match.Outcome.TimedOut != board.Red || state.Match.Outcome.Winner != board.Blue {
		t.Fatalf("outcome = %+v, want red timed out", state.Match.Outcome)
	}
	if !state.Clock.Stopped {
		t.Fatal("expected clock to stop")
	}

	_, after := execute(t, d, state, command.TypeTick, nil)
	if len(after.Events) != 0 {
		t.Fatalf("tick after end emitted %v", eventTypes(after))
	}
}

func TestTickForcedSwitch(t *testing.T) {
	d := NewDecider()
	state := NewState(120, 1)
	before := state.Match.Occupancy

	state, decision := execute(t, d, state, command.TypeTick, nil)
	want := []event.Type{event.TypeClockTicked, event.TypeTurnSwitched}
	if got := eventTypes(decision); !slices.Equal(got, want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	if state.Match.Current != board.Blue || state.Clock.Active != board.Blue {
		t.Fatalf("active = %s/%s, want blue", state.Match.Current, state.Clock.Active)
	}
	if state.Clock.Turn != 1 {
		t.Fatalf("turn countdown = %d, want restarted to 1", state.Clock.Turn)
	}
	if state.Match.Ended || state.Match.Occupancy != before {
		t.Fatal("forced switch ended the match or changed the board")
	}
}

func TestTickForcedSwitchRestartsFullCountdown(t *testing.T) {
	d := NewDecider()
	state := NewState(120, 30)
	state.Clock.Turn = 1

	state, _ = execute(t, d, state, command.TypeTick, nil)
	if state.Clock.Turn != 30 || state.Clock.Active != board.Blue {
		t.Fatalf("clock = %+v, want blue with 30", state.Clock)
	}
	if state.Clock.Red != 119 {
		t.Fatalf("red main = %d, want 119", state.Clock.Red)
	}
}

func TestTickTimeoutWinsOverForcedSwitch(t *testing.T) {
	d := NewDecider()
	state := NewState(1, 1)

	state, decision := execute(t, d, state, command.TypeTick, nil)
	if slices.Contains(eventTypes(decision), event.TypeTurnSwitched) {
		t.Fatal("expected no forced switch on timeout")
	}
	if state.Match.Outcome.Reason != match.ReasonTimeout {
		t.Fatalf("reason = %s, want timeout", state.Match.Outcome.Reason)
	}
}

func TestPausedRejectsPlayerCommands(t *testing.T) {
	d := NewDecider()
	state, _ := execute(t, d, NewState(120, 30), command.TypePause, nil)

	_, decision := execute(t, d, state, command.TypePlace, command.PositionPayload{Position: 13})
	if len(decision.Rejections) != 1 || decision.Rejections[0].Code != string(apperrors.CodeMatchPaused) {
		t.Fatalf("rejections = %+v, want MATCH_PAUSED", decision.Rejections)
	}

	state, _ = execute(t, d, state, command.TypeResume, nil)
	_, decision = execute(t, d, state, command.TypePlace, command.PositionPayload{Position: 13})
	if decision.Rejected() {
		t.Fatalf("place after resume rejected: %+v", decision.Rejections)
	}
}

func TestPlacementRestartsTurnCountdown(t *testing.T) {
	d := NewDecider()
	state := NewState(120, 30)
	for range 5 {
		state, _ = execute(t, d, state, command.TypeTick, nil)
	}
	state, _ = execute(t, d, state, command.TypePlace, command.PositionPayload{Position: 13})
	if state.Clock.Turn != 30 || state.Clock.Active != board.Blue {
		t.Fatalf("clock = %+v, want blue with full countdown", state.Clock)
	}
	if state.Clock.Red != 115 || state.Clock.Blue != 120 {
		t.Fatalf("main clocks = %d/%d, want 115/120", state.Clock.Red, state.Clock.Blue)
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	d := NewDecider()
	state := NewState(120, 30)
	for _, pos := range []int{13, 14, 15, 16, 17, 18, 7} {
		state, _ = execute(t, d, state, command.TypePlace, command.PositionPayload{Position: pos})
		state, _ = execute(t, d, state, command.TypeTick, nil)
	}
	state, _ = execute(t, d, state, command.TypePause, nil)

	state, decision := execute(t, d, state, command.TypeReset, nil)
	if got := eventTypes(decision); !slices.Equal(got, []event.Type{event.TypeMatchReset}) {
		t.Fatalf("events = %v, want reset", got)
	}
	fresh := NewState(120, 30)
	if state.Clock != fresh.Clock {
		t.Fatalf("clock = %+v, want %+v", state.Clock, fresh.Clock)
	}
	m := state.Match
	if m.Occupancy != (board.Occupancy{}) || m.Phase != match.PhasePlacement || m.Current != board.Red {
		t.Fatalf("match = %+v, want fresh", m)
	}
	if m.Red.Score != 0 || m.Blue.Score != 0 || m.PieceCount(board.Red) != 0 || m.PieceCount(board.Blue) != 0 {
		t.Fatal("expected zero scores and pieces")
	}
	if got := m.Unlocked.List(); !slices.Equal(got, []board.Circuit{board.OuterCircuit}) {
		t.Fatalf("unlocked = %v, want outer only", got)
	}
}

func TestResetKeepsConfiguredBudgets(t *testing.T) {
	d := NewDecider()
	state, _ := execute(t, d, NewState(60, 10), command.TypeReset, nil)
	if state.Clock != clock.New(60, 10) {
		t.Fatalf("clock = %+v, want 60/10 budgets", state.Clock)
	}
}

func TestUnknownCommandRejected(t *testing.T) {
	d := NewDecider()
	decision := d.Decide(NewState(120, 30), command.Command{MatchID: "match-1", Type: "match.teleport"}, fixedNow)
	if len(decision.Rejections) != 1 || decision.Rejections[0].Code != string(apperrors.CodeUnknown) {
		t.Fatalf("rejections = %+v, want UNKNOWN", decision.Rejections)
	}
}
