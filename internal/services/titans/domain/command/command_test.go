package command

import (
	"encoding/json"
	"errors"
	"testing"

	apperrors "github.com/louisbranch/titans/internal/platform/errors"
	"github.com/louisbranch/titans/internal/services/titans/domain/event"
)

func TestNewEncodesPayload(t *testing.T) {
	cmd, err := New(" m-1 ", TypeMove, ActorTypePlayer, "red", MovePayload{From: 1, To: 2})
	if err != nil {
		t.Fatalf("new command: %v", err)
	}
	if cmd.MatchID != "m-1" {
		t.Fatalf("match id = %q, want m-1", cmd.MatchID)
	}
	var payload MovePayload
	if err := json.Unmarshal(cmd.PayloadJSON, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.From != 1 || payload.To != 2 {
		t.Fatalf("payload = %+v, want from 1 to 2", payload)
	}
}

func TestNewDefaultsEmptyPayload(t *testing.T) {
	cmd, err := New("m-1", TypeTick, "", "", nil)
	if err != nil {
		t.Fatalf("new command: %v", err)
	}
	if string(cmd.PayloadJSON) != "{}" {
		t.Fatalf("payload = %s, want {}", cmd.PayloadJSON)
	}
	if cmd.ActorType != ActorTypeSystem {
		t.Fatalf("actor type = %s, want system", cmd.ActorType)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want error
	}{
		{name: "match id", cmd: Command{Type: TypeTick}, want: ErrMatchIDRequired},
		{name: "type", cmd: Command{MatchID: "m"}, want: ErrTypeRequired},
		{name: "actor", cmd: Command{MatchID: "m", Type: TypeTick, ActorType: "gm"}, want: ErrActorTypeInvalid},
		{name: "payload", cmd: Command{MatchID: "m", Type: TypeTick, PayloadJSON: []byte("nope")}, want: ErrPayloadInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Validate(tt.cmd); !errors.Is(err, tt.want) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAcceptAndReject(t *testing.T) {
	events := []event.Event{{Type: event.TypeClockTicked}}
	accepted := Accept(events...)
	events[0].Type = event.TypeClockPaused
	if accepted.Events[0].Type != event.TypeClockTicked {
		t.Fatal("expected Accept to copy events")
	}
	if accepted.Rejected() {
		t.Fatal("expected accepted decision not to be rejected")
	}

	rejected := Reject(Rejection{Code: string(apperrors.CodeWrongPhase), Message: "wrong phase"})
	if !rejected.Rejected() {
		t.Fatal("expected rejected decision")
	}
	if len(rejected.Events) != 0 {
		t.Fatalf("expected no events, got %d", len(rejected.Events))
	}
}

func TestRejectionErr(t *testing.T) {
	r := Rejection{
		Code:     string(apperrors.CodeMovementNotAdjacent),
		Message:  "destination is not adjacent",
		Metadata: map[string]string{"From": "1", "To": "4"},
	}
	err := r.Err()
	if !errors.Is(err, apperrors.New(apperrors.CodeMovementNotAdjacent, "")) {
		t.Fatal("expected rejection error to match its code")
	}
	var domainErr *apperrors.Error
	if !errors.As(err, &domainErr) {
		t.Fatal("expected *errors.Error")
	}
	if domainErr.Category() != apperrors.CategoryInvalidMovement {
		t.Fatalf("category = %s, want %s", domainErr.Category(), apperrors.CategoryInvalidMovement)
	}
	if domainErr.Metadata["To"] != "4" {
		t.Fatalf("metadata = %v", domainErr.Metadata)
	}
}
