package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrMatchIDRequired indicates a missing match id.
	ErrMatchIDRequired = errors.New("match id is required")
	// ErrTypeRequired indicates a missing event type.
	ErrTypeRequired = errors.New("event type is required")
	// ErrTypeUnknown indicates an unregistered event type.
	ErrTypeUnknown = errors.New("event type is not registered")
	// ErrActorTypeInvalid indicates an unknown actor type.
	ErrActorTypeInvalid = errors.New("actor type is invalid")
	// ErrPayloadInvalid indicates malformed payload JSON.
	ErrPayloadInvalid = errors.New("payload json must be valid")
)

// Definition describes one registered event type.
type Definition struct {
	Type Type
	// EntityType is the entity kind events of this type address.
	EntityType string
}

// Registry holds the event types the engine accepts.
type Registry struct {
	definitions map[Type]Definition
}

// NewRegistry returns a registry preloaded with every titans event type.
func NewRegistry() *Registry {
	r := &Registry{definitions: map[Type]Definition{}}
	for _, def := range coreDefinitions() {
		// Core definitions are unique by construction.
		_ = r.Register(def)
	}
	return r
}

func coreDefinitions() []Definition {
	return []Definition{
		{Type: TypeMatchReset, EntityType: "match"},
		{Type: TypePiecePlaced, EntityType: "position"},
		{Type: TypeCircuitUnlocked, EntityType: "circuit"},
		{Type: TypePhaseChanged, EntityType: "match"},
		{Type: TypePieceSelected, EntityType: "position"},
		{Type: TypeSelectionCleared, EntityType: "match"},
		{Type: TypePieceMoved, EntityType: "position"},
		{Type: TypePieceCaptured, EntityType: "position"},
		{Type: TypeScoresUpdated, EntityType: "match"},
		{Type: TypeTurnSwitched, EntityType: "match"},
		{Type: TypeMatchEnded, EntityType: "match"},
		{Type: TypeClockTicked, EntityType: "clock"},
		{Type: TypeClockPaused, EntityType: "clock"},
		{Type: TypeClockResumed, EntityType: "clock"},
	}
}

// Register adds a definition. Registering the same type twice is an error.
func (r *Registry) Register(def Definition) error {
	if r == nil {
		return errors.New("registry is required")
	}
	if strings.TrimSpace(string(def.Type)) == "" {
		return ErrTypeRequired
	}
	if r.definitions == nil {
		r.definitions = map[Type]Definition{}
	}
	if _, exists := r.definitions[def.Type]; exists {
		return fmt.Errorf("event type %s already registered", def.Type)
	}
	r.definitions[def.Type] = def
	return nil
}

// Definition returns the definition registered for t.
func (r *Registry) Definition(t Type) (Definition, bool) {
	if r == nil {
		return Definition{}, false
	}
	def, ok := r.definitions[t]
	return def, ok
}

// Types lists every registered type in lexical order.
func (r *Registry) Types() []Type {
	if r == nil {
		return nil
	}
	out := make([]Type, 0, len(r.definitions))
	for t := range r.definitions {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ValidateForAppend checks the envelope and returns a normalized copy.
func (r *Registry) ValidateForAppend(evt Event) (Event, error) {
	evt.MatchID = strings.TrimSpace(evt.MatchID)
	if evt.MatchID == "" {
		return Event{}, ErrMatchIDRequired
	}
	if strings.TrimSpace(string(evt.Type)) == "" {
		return Event{}, ErrTypeRequired
	}
	def, ok := r.Definition(evt.Type)
	if !ok {
		return Event{}, fmt.Errorf("%w: %s", ErrTypeUnknown, evt.Type)
	}
	switch evt.ActorType {
	case ActorTypeSystem, ActorTypePlayer:
	case "":
		evt.ActorType = ActorTypeSystem
	default:
		return Event{}, fmt.Errorf("%w: %s", ErrActorTypeInvalid, evt.ActorType)
	}
	if evt.EntityType == "" {
		evt.EntityType = def.EntityType
	}
	if len(evt.PayloadJSON) == 0 {
		evt.PayloadJSON = []byte("{}")
	}
	if !json.Valid(evt.PayloadJSON) {
		return Event{}, ErrPayloadInvalid
	}
	return evt, nil
}
