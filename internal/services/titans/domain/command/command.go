package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMatchIDRequired indicates a missing match id.
	ErrMatchIDRequired = errors.New("match id is required")
	// ErrTypeRequired indicates a missing command type.
	ErrTypeRequired = errors.New("command type is required")
	// ErrActorTypeInvalid indicates an unknown actor type.
	ErrActorTypeInvalid = errors.New("actor type is invalid")
	// ErrPayloadInvalid indicates malformed payload JSON.
	ErrPayloadInvalid = errors.New("payload json must be valid")
)

// Type identifies the command type string.
type Type string

// ActorType identifies who issued the command.
type ActorType string

const (
	// ActorTypeSystem marks commands issued by the clock or the engine.
	ActorTypeSystem ActorType = "system"
	// ActorTypePlayer marks commands issued on behalf of the active player.
	ActorTypePlayer ActorType = "player"
)

// Match commands.
const (
	TypePlace          Type = "match.place"
	TypeSelect         Type = "match.select"
	TypeClearSelection Type = "match.clear_selection"
	TypeMove           Type = "match.move"
	TypeReset          Type = "match.reset"
)

// Clock commands.
const (
	TypeTick   Type = "clock.tick"
	TypePause  Type = "clock.pause"
	TypeResume Type = "clock.resume"
)

// Command captures the canonical command envelope.
type Command struct {
	MatchID     string
	Type        Type
	ActorType   ActorType
	ActorID     string
	PayloadJSON []byte
}

// PositionPayload addresses a single board position.
type PositionPayload struct {
	Position int `json:"position"`
}

// MovePayload addresses a source and destination position.
type MovePayload struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// New builds a command with a JSON-encoded payload. A nil payload encodes as {}.
func New(matchID string, t Type, actor ActorType, actorID string, payload any) (Command, error) {
	payloadJSON := []byte("{}")
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return Command{}, fmt.Errorf("encode %s payload: %w", t, err)
		}
		payloadJSON = encoded
	}
	return Validate(Command{
		MatchID:     matchID,
		Type:        t,
		ActorType:   actor,
		ActorID:     actorID,
		PayloadJSON: payloadJSON,
	})
}

// Validate checks the envelope and returns a normalized copy.
func Validate(cmd Command) (Command, error) {
	cmd.MatchID = strings.TrimSpace(cmd.MatchID)
	if cmd.MatchID == "" {
		return Command{}, ErrMatchIDRequired
	}
	if strings.TrimSpace(string(cmd.Type)) == "" {
		return Command{}, ErrTypeRequired
	}
	switch cmd.ActorType {
	case ActorTypeSystem, ActorTypePlayer:
	case "":
		cmd.ActorType = ActorTypeSystem
	default:
		return Command{}, fmt.Errorf("%w: %s", ErrActorTypeInvalid, cmd.ActorType)
	}
	if len(cmd.PayloadJSON) == 0 {
		cmd.PayloadJSON = []byte("{}")
	}
	if !json.Valid(cmd.PayloadJSON) {
		return Command{}, ErrPayloadInvalid
	}
	return cmd, nil
}
