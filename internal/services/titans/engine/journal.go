package engine

import (
	"context"
	"sync"

	"github.com/louisbranch/titans/internal/services/titans/domain/event"
)

// Journal appends events and assigns their sequence numbers.
type Journal interface {
	Append(ctx context.Context, evt event.Event) (event.Event, error)
}

// memoryJournal keeps events for the lifetime of the process.
type memoryJournal struct {
	mu     sync.Mutex
	events []event.Event
}

func (j *memoryJournal) Append(_ context.Context, evt event.Event) (event.Event, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	evt.Seq = uint64(len(j.events)) + 1
	j.events = append(j.events, evt)
	return evt, nil
}
