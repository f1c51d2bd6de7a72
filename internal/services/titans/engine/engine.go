package engine

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/titans/internal/platform/id"
	"github.com/louisbranch/titans/internal/services/titans/domain/aggregate"
	"github.com/louisbranch/titans/internal/services/titans/domain/clock"
	"github.com/louisbranch/titans/internal/services/titans/domain/command"
	"github.com/louisbranch/titans/internal/services/titans/domain/event"
	"github.com/louisbranch/titans/internal/services/titans/domain/match"
)

const tracerName = "github.com/louisbranch/titans/internal/services/titans/engine"

var (
	// ErrInvalidBudget indicates a non-positive clock budget.
	ErrInvalidBudget = errors.New("clock budgets must be positive")
)

// Result captures the outcome of one engine operation.
type Result struct {
	Decision command.Decision
	View     View
	// Outcome is set when this operation ended the match.
	Outcome *match.Outcome
}

// Rejected reports whether the operation was declined.
func (r Result) Rejected() bool {
	return r.Decision.Rejected()
}

// Has reports whether the operation emitted an event of type t.
func (r Result) Has(t event.Type) bool {
	return slices.ContainsFunc(r.Decision.Events, func(evt event.Event) bool {
		return evt.Type == t
	})
}

// Option configures an Engine.
type Option func(*Engine)

// WithJournal replaces the in-memory journal.
func WithJournal(j Journal) Option {
	return func(e *Engine) {
		if j != nil {
			e.journal = j
		}
	}
}

// WithNow overrides the clock used to timestamp events.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithClockBudgets sets the main and per-turn clock budgets, in ticks.
func WithClockBudgets(mainBudget, turnBudget int) Option {
	return func(e *Engine) {
		e.mainBudget = mainBudget
		e.turnBudget = turnBudget
	}
}

// WithMatchID fixes the match id instead of generating one.
func WithMatchID(matchID string) Option {
	return func(e *Engine) {
		e.matchID = matchID
	}
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(e *Engine) {
		if tp != nil {
			e.tracer = tp.Tracer(tracerName)
		}
	}
}

// Engine runs a single match.
type Engine struct {
	mu         sync.Mutex
	matchID    string
	state      aggregate.State
	seq        uint64
	decider    *aggregate.Decider
	events     *event.Registry
	journal    Journal
	now        func() time.Time
	tracer     trace.Tracer
	mainBudget int
	turnBudget int

	subMu   sync.Mutex
	subs    map[int]func(Result)
	nextSub int
}

// New returns an engine holding a fresh match.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		journal:    &memoryJournal{},
		now:        time.Now,
		tracer:     otel.Tracer(tracerName),
		mainBudget: clock.DefaultMainBudget,
		turnBudget: clock.DefaultTurnBudget,
		subs:       make(map[int]func(Result)),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.mainBudget <= 0 || e.turnBudget <= 0 {
		return nil, fmt.Errorf("%w: main %d, turn %d", ErrInvalidBudget, e.mainBudget, e.turnBudget)
	}
	if e.matchID == "" {
		matchID, err := id.NewID()
		if err != nil {
			return nil, fmt.Errorf("match id: %w", err)
		}
		e.matchID = matchID
	}
	e.events = event.NewRegistry()
	e.decider = &aggregate.Decider{Folder: &aggregate.Folder{Events: e.events}}
	e.state = aggregate.NewState(e.mainBudget, e.turnBudget)
	return e, nil
}

// MatchID returns the id events are journaled under.
func (e *Engine) MatchID() string {
	return e.matchID
}

// Snapshot returns the current view of the match.
func (e *Engine) Snapshot() View {
	e.mu.Lock()
	defer e.mu.Unlock()
	return newView(e.matchID, e.seq, e.state)
}

// Subscribe registers fn to receive every accepted or rejected Result. The
// returned function removes the subscription.
func (e *Engine) Subscribe(fn func(Result)) func() {
	if fn == nil {
		return func() {}
	}
	e.subMu.Lock()
	key := e.nextSub
	e.nextSub++
	e.subs[key] = fn
	e.subMu.Unlock()
	return func() {
		e.subMu.Lock()
		delete(e.subs, key)
		e.subMu.Unlock()
	}
}

// route picks the command to run against the current state.
type route func(aggregate.State) (command.Type, any)

func fixed(t command.Type, payload any) route {
	return func(aggregate.State) (command.Type, any) { return t, payload }
}

func (e *Engine) execute(ctx context.Context, actor command.ActorType, pick route) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	result, typ, err := e.executeLocked(ctx, actor, pick)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", typ, err)
	}
	e.notify(result)
	return result, nil
}

func (e *Engine) executeLocked(ctx context.Context, actor command.ActorType, pick route) (Result, command.Type, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	typ, payload := pick(e.state)
	ctx, span := e.tracer.Start(ctx, "titans.engine/"+string(typ), trace.WithAttributes(
		attribute.String("titans.match_id", e.matchID),
		attribute.String("titans.command", string(typ)),
		attribute.String("titans.player", string(e.state.Match.Current)),
	))
	defer span.End()

	result, err := e.apply(ctx, actor, typ, payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, typ, err
	}
	span.SetAttributes(attribute.Int("titans.events", len(result.Decision.Events)))
	if result.Rejected() {
		span.SetAttributes(attribute.String("titans.rejection", result.Decision.Rejections[0].Code))
	}
	return result, typ, nil
}

func (e *Engine) apply(ctx context.Context, actor command.ActorType, typ command.Type, payload any) (Result, error) {
	actorID := ""
	if actor == command.ActorTypePlayer {
		actorID = string(e.state.Match.Current)
	}
	cmd, err := command.New(e.matchID, typ, actor, actorID, payload)
	if err != nil {
		return Result{}, err
	}

	decision := e.decider.Decide(e.state, cmd, e.now)
	next := e.state
	for i, evt := range decision.Events {
		vetted, err := e.events.ValidateForAppend(evt)
		if err != nil {
			return Result{}, err
		}
		next, err = e.decider.Folder.Fold(next, vetted)
		if err != nil {
			return Result{}, err
		}
		decision.Events[i] = vetted
	}

	seq := e.seq
	for i, evt := range decision.Events {
		stored, err := e.journal.Append(ctx, evt)
		if err != nil {
			return Result{}, fmt.Errorf("journal append: %w", err)
		}
		decision.Events[i] = stored
		seq = stored.Seq
	}
	e.state = next
	e.seq = seq

	result := Result{Decision: decision, View: newView(e.matchID, e.seq, e.state)}
	if result.Has(event.TypeMatchEnded) {
		result.Outcome = result.View.Outcome
	}
	return result, nil
}

func (e *Engine) notify(result Result) {
	e.subMu.Lock()
	keys := make([]int, 0, len(e.subs))
	for key := range e.subs {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	subs := make([]func(Result), 0, len(keys))
	for _, key := range keys {
		subs = append(subs, e.subs[key])
	}
	e.subMu.Unlock()

	for _, fn := range subs {
		fn(result)
	}
}
