package aggregate

import (
	"github.com/louisbranch/titans/internal/services/titans/domain/clock"
	"github.com/louisbranch/titans/internal/services/titans/domain/match"
)

// State captures the replayed state of one match and its clock.
type State struct {
	Match match.State
	Clock clock.State
}

// NewState returns the state of a fresh match with the given clock budgets.
func NewState(mainBudget, turnBudget int) State {
	return State{
		Match: match.NewState(),
		Clock: clock.New(mainBudget, turnBudget),
	}
}
