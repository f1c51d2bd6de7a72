package aggregate

import (
	"fmt"
	"sync"

	"github.com/louisbranch/titans/internal/services/titans/domain/event"
)

// Folder folds events into aggregate state.
//
// Dispatch is declarative: coreFoldEntries defines which fold functions see
// which event types.
type Folder struct {
	// Events, when set, rejects event types the registry does not know.
	Events *event.Registry

	foldOnce  sync.Once
	foldIndex map[event.Type][]func(*State, event.Event) error
}

func (f *Folder) initFoldIndex() {
	f.foldOnce.Do(func() {
		f.foldIndex = make(map[event.Type][]func(*State, event.Event) error)
		for _, entry := range coreFoldEntries() {
			fn := entry.fold
			for _, t := range entry.types() {
				f.foldIndex[t] = append(f.foldIndex[t], fn)
			}
		}
	})
}

// FoldDispatchedTypes returns every event type that reaches a fold function.
func (f *Folder) FoldDispatchedTypes() []event.Type {
	f.initFoldIndex()
	types := make([]event.Type, 0, len(f.foldIndex))
	for t := range f.foldIndex {
		types = append(types, t)
	}
	return types
}

// Fold applies a single event to aggregate state.
func (f *Folder) Fold(state State, evt event.Event) (State, error) {
	if f.Events != nil {
		if _, ok := f.Events.Definition(evt.Type); !ok {
			return state, fmt.Errorf("%w: %s", event.ErrTypeUnknown, evt.Type)
		}
	}
	f.initFoldIndex()
	for _, fn := range f.foldIndex[evt.Type] {
		if err := fn(&state, evt); err != nil {
			return state, err
		}
	}
	return state, nil
}

// FoldAll applies events in order.
func (f *Folder) FoldAll(state State, events []event.Event) (State, error) {
	for _, evt := range events {
		next, err := f.Fold(state, evt)
		if err != nil {
			return state, err
		}
		state = next
	}
	return state, nil
}
