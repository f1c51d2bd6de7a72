package board

// Player identifies one of the two sides.
type Player string

const (
	// NoPlayer marks an empty position or an undecided outcome.
	NoPlayer Player = ""
	// Red moves first.
	Red Player = "red"
	// Blue moves second.
	Blue Player = "blue"
)

// Valid reports whether p is red or blue.
func (p Player) Valid() bool {
	return p == Red || p == Blue
}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	switch p {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return NoPlayer
	}
}

// Occupancy records the owner of every position. Index 0 is unused.
type Occupancy [PositionCount + 1]Player

// At returns the owner of p, or NoPlayer when p is empty or invalid.
func (o Occupancy) At(p Position) Player {
	if !p.Valid() {
		return NoPlayer
	}
	return o[p]
}

// Occupied reports whether any piece stands on p.
func (o Occupancy) Occupied(p Position) bool {
	return o.At(p) != NoPlayer
}

// With returns a copy of o with p set to owner.
func (o Occupancy) With(p Position, owner Player) Occupancy {
	if p.Valid() {
		o[p] = owner
	}
	return o
}

// CircuitFull reports whether every position of c holds a piece of either side.
func (o Occupancy) CircuitFull(c Circuit) bool {
	positions := c.Positions()
	if len(positions) == 0 {
		return false
	}
	for _, p := range positions {
		if !o.Occupied(p) {
			return false
		}
	}
	return true
}

// Surrounded reports whether every neighbour of p is held by by.
func (o Occupancy) Surrounded(p Position, by Player) bool {
	neighbors := adjacency[p]
	if len(neighbors) == 0 {
		return false
	}
	for _, n := range neighbors {
		if o.At(n) != by {
			return false
		}
	}
	return true
}

// Score sums the weights of edges whose two ends are both held by player.
func (o Occupancy) Score(player Player) int {
	if !player.Valid() {
		return 0
	}
	total := 0
	for _, e := range edges {
		if o.At(e.A) == player && o.At(e.B) == player {
			total += e.Weight
		}
	}
	return total
}
