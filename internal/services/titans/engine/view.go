package engine

import (
	"github.com/louisbranch/titans/internal/services/titans/domain/aggregate"
	"github.com/louisbranch/titans/internal/services/titans/domain/board"
	"github.com/louisbranch/titans/internal/services/titans/domain/match"
)

// PlayerView is one player's side of a snapshot.
type PlayerView struct {
	Player    board.Player
	Score     int
	Placed    int
	MainClock int
}

// View is a read-only snapshot of the match for presentation.
type View struct {
	MatchID   string
	Seq       uint64
	Occupancy board.Occupancy
	Phase     match.Phase
	Current   board.Player
	Selected  board.Position
	Unlocked  []board.Circuit
	Red       PlayerView
	Blue      PlayerView
	TurnClock int
	Paused    bool
	Ended     bool
	// Outcome is set once the match has ended.
	Outcome *match.Outcome
}

// Player returns the view of p's side.
func (v View) Player(p board.Player) PlayerView {
	if p == board.Blue {
		return v.Blue
	}
	return v.Red
}

func newView(matchID string, seq uint64, state aggregate.State) View {
	m, c := state.Match, state.Clock
	view := View{
		MatchID:   matchID,
		Seq:       seq,
		Occupancy: m.Occupancy,
		Phase:     m.Phase,
		Current:   m.Current,
		Selected:  m.Selected,
		Unlocked:  m.Unlocked.List(),
		Red: PlayerView{
			Player:    board.Red,
			Score:     m.Score(board.Red),
			Placed:    m.PieceCount(board.Red),
			MainClock: c.Remaining(board.Red),
		},
		Blue: PlayerView{
			Player:    board.Blue,
			Score:     m.Score(board.Blue),
			Placed:    m.PieceCount(board.Blue),
			MainClock: c.Remaining(board.Blue),
		},
		TurnClock: c.Turn,
		Paused:    c.Paused,
		Ended:     m.Ended,
	}
	if m.Ended {
		outcome := m.Outcome
		view.Outcome = &outcome
	}
	return view
}
