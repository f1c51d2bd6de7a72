package clock

import "github.com/louisbranch/titans/internal/services/titans/domain/board"

const (
	// DefaultMainBudget is each player's starting main clock, in ticks.
	DefaultMainBudget = 120
	// DefaultTurnBudget is the shared per-turn countdown, in ticks.
	DefaultTurnBudget = 30
)

// State captures the replayed clock values.
type State struct {
	MainBudget int
	TurnBudget int
	Red        int
	Blue       int
	// Turn is the shared countdown for the active player.
	Turn   int
	Active board.Player
	Paused bool
	// Stopped is set once the match ends; ticks are ignored afterwards.
	Stopped bool
}

// New returns a running clock with both budgets full and red to play.
// Non-positive budgets fall back to the defaults.
func New(mainBudget, turnBudget int) State {
	if mainBudget <= 0 {
		mainBudget = DefaultMainBudget
	}
	if turnBudget <= 0 {
		turnBudget = DefaultTurnBudget
	}
	return State{
		MainBudget: mainBudget,
		TurnBudget: turnBudget,
		Red:        mainBudget,
		Blue:       mainBudget,
		Turn:       turnBudget,
		Active:     board.Red,
	}
}

// Remaining returns p's main clock.
func (s State) Remaining(p board.Player) int {
	switch p {
	case board.Red:
		return s.Red
	case board.Blue:
		return s.Blue
	default:
		return 0
	}
}

// Running reports whether a tick would decrement anything.
func (s State) Running() bool {
	return !s.Paused && !s.Stopped
}

// MainExpired reports whether the active player's main clock has run out.
func (s State) MainExpired() (board.Player, bool) {
	if s.Stopped || !s.Active.Valid() {
		return board.NoPlayer, false
	}
	return s.Active, s.Remaining(s.Active) <= 0
}

// TurnExpired reports whether the shared countdown has run out.
func (s State) TurnExpired() bool {
	return !s.Stopped && s.Turn <= 0
}

func (s State) withRemaining(p board.Player, value int) State {
	switch p {
	case board.Red:
		s.Red = value
	case board.Blue:
		s.Blue = value
	}
	return s
}
