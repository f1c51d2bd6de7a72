package terminal

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/message"

	errcatalog "github.com/louisbranch/titans/internal/platform/errors/i18n"
	"github.com/louisbranch/titans/internal/services/titans/domain/board"
	"github.com/louisbranch/titans/internal/services/titans/domain/event"
	"github.com/louisbranch/titans/internal/services/titans/domain/match"
	"github.com/louisbranch/titans/internal/services/titans/engine"
)

const (
	boardWidth  = 48
	boardHeight = 21
	cellWidth   = 4
	// horizontal and vertical distance between rings
	ringDX = 7.0
	ringDY = 3.0
)

type cell struct {
	x, y int
	pos  board.Position
}

// layout places every position on a pointy-top hexagon per circuit, clockwise
// from the top, so positions sharing a radial edge line up.
var layout = func() []cell {
	cells := make([]cell, 0, board.PositionCount)
	cx, cy := float64(boardWidth-cellWidth)/2, float64(boardHeight-1)/2
	for _, pos := range board.Positions() {
		ring := float64(pos.Circuit())
		index := (int(pos) - 1) % board.CircuitSize
		angle := (-90 + 60*float64(index)) * math.Pi / 180
		cells = append(cells, cell{
			x:   int(math.Round(cx + ring*ringDX*math.Cos(angle))),
			y:   int(math.Round(cy + ring*ringDY*math.Sin(angle))),
			pos: pos,
		})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].y != cells[j].y {
			return cells[i].y < cells[j].y
		}
		return cells[i].x < cells[j].x
	})
	return cells
}()

// BoardText renders the board with tview color tags.
func BoardText(view engine.View) string {
	var b strings.Builder
	next := 0
	for y := range boardHeight {
		col := 0
		for next < len(layout) && layout[next].y == y {
			c := layout[next]
			if c.x > col {
				b.WriteString(strings.Repeat(" ", c.x-col))
				col = c.x
			}
			b.WriteString(cellText(view, c.pos))
			col += cellWidth
			next++
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cellText(view engine.View, pos board.Position) string {
	switch owner := view.Occupancy.At(pos); {
	case pos == view.Selected:
		return fmt.Sprintf("[yellow::b]<%2d>[-:-:-]", pos)
	case owner == board.Red:
		return fmt.Sprintf("[red::b](%2d)[-:-:-]", pos)
	case owner == board.Blue:
		return fmt.Sprintf("[blue::b](%2d)[-:-:-]", pos)
	case circuitOpen(view, pos.Circuit()):
		return fmt.Sprintf("[white] %2d [-:-:-]", pos)
	default:
		return fmt.Sprintf("[gray] %2d [-:-:-]", pos)
	}
}

func circuitOpen(view engine.View, c board.Circuit) bool {
	for _, open := range view.Unlocked {
		if open == c {
			return true
		}
	}
	return false
}

func playerName(p *message.Printer, player board.Player) string {
	return p.Sprintf("game.player." + string(player))
}

func playerColor(player board.Player) string {
	if player == board.Blue {
		return "blue"
	}
	return "red"
}

// StatusText renders phase, turn, scores and clocks.
func StatusText(view engine.View, p *message.Printer) string {
	lines := []string{
		"[::b]" + p.Sprintf("game.title") + "[::-]",
		p.Sprintf("game.phase.label", p.Sprintf("game.phase."+string(view.Phase))),
	}
	switch {
	case view.Ended:
		lines = append(lines, p.Sprintf("game.over"))
	case view.Paused:
		lines = append(lines, "[yellow]"+p.Sprintf("game.paused")+"[-]")
	default:
		lines = append(lines, fmt.Sprintf("[%s]%s[-]", playerColor(view.Current), p.Sprintf("game.turn", playerName(p, view.Current))))
	}
	lines = append(lines, "")
	for _, side := range []engine.PlayerView{view.Red, view.Blue} {
		name := playerName(p, side.Player)
		lines = append(lines,
			fmt.Sprintf("[%s]%s[-]", playerColor(side.Player), p.Sprintf("game.score", name, side.Score)),
			"  "+p.Sprintf("game.titans", side.Placed, match.MaxTitans),
			"  "+p.Sprintf("game.clock", name, side.MainClock),
		)
	}
	circuits := make([]string, 0, len(view.Unlocked))
	for _, c := range view.Unlocked {
		circuits = append(circuits, strconv.Itoa(int(c)))
	}
	lines = append(lines,
		"",
		p.Sprintf("game.countdown", view.TurnClock),
		p.Sprintf("game.circuits", strings.Join(circuits, ", ")),
	)
	if view.Selected != 0 {
		lines = append(lines, p.Sprintf("game.selected", int(view.Selected)))
	}
	return strings.Join(lines, "\n")
}

// EndMessage renders the end-of-game notification.
func EndMessage(outcome match.Outcome, p *message.Printer) string {
	lines := []string{p.Sprintf("game.over")}
	switch outcome.Reason {
	case match.ReasonTimeout:
		lines = append(lines, p.Sprintf("game.reason.timeout", strings.ToUpper(playerName(p, outcome.TimedOut))))
	default:
		lines = append(lines, p.Sprintf("game.reason.inner_circuit_filled"))
	}
	if outcome.Tie() {
		lines = append(lines, p.Sprintf("game.tie", outcome.RedScore))
	} else {
		score := outcome.RedScore
		if outcome.Winner == board.Blue {
			score = outcome.BlueScore
		}
		lines = append(lines, p.Sprintf("game.winner", strings.ToUpper(playerName(p, outcome.Winner)), score))
	}
	lines = append(lines, p.Sprintf("game.final_scores", outcome.RedScore, outcome.BlueScore))
	return strings.Join(lines, "\n")
}

// Notices returns the lines a result adds to the notice log.
func Notices(result engine.Result, p *message.Printer, errs *errcatalog.Catalog) []string {
	var lines []string
	for _, rejection := range result.Decision.Rejections {
		lines = append(lines, "[orange]"+errs.Message(rejection.Err())+"[-]")
	}
	for _, evt := range result.Decision.Events {
		switch evt.Type {
		case event.TypePhaseChanged:
			lines = append(lines, p.Sprintf("game.phase_complete"))
		case event.TypeTurnSwitched:
			var payload event.TurnSwitchedPayload
			if err := json.Unmarshal(evt.PayloadJSON, &payload); err == nil && payload.Forced {
				lines = append(lines, p.Sprintf("game.forced_switch", playerName(p, board.Player(payload.From))))
			}
		}
	}
	if result.Outcome != nil {
		lines = append(lines, strings.Split(EndMessage(*result.Outcome, p), "\n")...)
	}
	return lines
}
