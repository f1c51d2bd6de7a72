package aggregate

import (
	"github.com/louisbranch/titans/internal/services/titans/domain/clock"
	"github.com/louisbranch/titans/internal/services/titans/domain/event"
	"github.com/louisbranch/titans/internal/services/titans/domain/match"
)

// foldEntry maps a set of event types to the fold function that updates one
// slice of aggregate state.
type foldEntry struct {
	types func() []event.Type
	fold  func(state *State, evt event.Event) error
}

// coreFoldEntries returns the fold dispatch table. Turn switches, match end
// and reset appear in both entries and update both slices.
func coreFoldEntries() []foldEntry {
	return []foldEntry{
		{
			types: match.FoldHandledTypes,
			fold: func(state *State, evt event.Event) error {
				updated, err := match.Fold(state.Match, evt)
				if err != nil {
					return err
				}
				state.Match = updated
				return nil
			},
		},
		{
			types: clock.FoldHandledTypes,
			fold: func(state *State, evt event.Event) error {
				updated, err := clock.Fold(state.Clock, evt)
				if err != nil {
					return err
				}
				state.Clock = updated
				return nil
			},
		},
	}
}
