package board

import "slices"

// Position identifies one node on the board, 1 through 18.
type Position int

// Circuit identifies one of the three concentric hexagons.
type Circuit int

const (
	// InnerCircuit holds positions 1-6.
	InnerCircuit Circuit = 1
	// MiddleCircuit holds positions 7-12.
	MiddleCircuit Circuit = 2
	// OuterCircuit holds positions 13-18 and is the only circuit open at start.
	OuterCircuit Circuit = 3
)

const (
	// MinPosition is the lowest valid position id.
	MinPosition Position = 1
	// MaxPosition is the highest valid position id.
	MaxPosition Position = 18
	// PositionCount is the number of positions on the board.
	PositionCount = int(MaxPosition)
	// CircuitSize is the number of positions in every circuit.
	CircuitSize = 6
)

// Edge is an undirected weighted connection scored when both ends share an owner.
type Edge struct {
	A      Position
	B      Position
	Weight int
}

var edges = []Edge{
	// outer hexagon
	{13, 14, 2}, {14, 15, 2}, {15, 16, 2}, {16, 17, 2}, {17, 18, 2}, {18, 13, 2},
	// middle hexagon
	{7, 8, 4}, {8, 9, 4}, {9, 10, 4}, {10, 11, 4}, {11, 12, 4}, {12, 7, 4},
	// inner hexagon
	{1, 2, 8}, {2, 3, 8}, {3, 4, 9}, {4, 5, 8}, {5, 6, 8}, {6, 1, 9},
	// radial
	{1, 7, 1}, {5, 11, 1}, {7, 13, 1}, {8, 14, 1}, {10, 16, 1}, {12, 18, 1},
}

// adjacency is directional: a position's list is what it can move to and what
// must be filled to surround it. The lists are not guaranteed to be symmetric.
var adjacency = map[Position][]Position{
	1:  {2, 6, 7},
	2:  {1, 3},
	3:  {2, 4, 9},
	4:  {3, 5},
	5:  {4, 6, 11},
	6:  {1, 5},
	7:  {1, 8, 13},
	8:  {7, 9, 14},
	9:  {3, 8, 10},
	10: {9, 11, 16},
	11: {5, 10, 12},
	12: {11, 7, 18},
	13: {7, 14, 18},
	14: {8, 13, 15},
	15: {9, 14, 16},
	16: {10, 15, 17},
	17: {11, 16, 18},
	18: {12, 13, 17},
}

// Valid reports whether p names a position on the board.
func (p Position) Valid() bool {
	return p >= MinPosition && p <= MaxPosition
}

// Circuit returns the circuit p belongs to. Invalid positions return 0.
func (p Position) Circuit() Circuit {
	switch {
	case !p.Valid():
		return 0
	case p <= 6:
		return InnerCircuit
	case p <= 12:
		return MiddleCircuit
	default:
		return OuterCircuit
	}
}

// Valid reports whether c names one of the three circuits.
func (c Circuit) Valid() bool {
	return c >= InnerCircuit && c <= OuterCircuit
}

// Inward returns the next circuit toward the centre. The inner circuit has none.
func (c Circuit) Inward() (Circuit, bool) {
	if !c.Valid() || c == InnerCircuit {
		return 0, false
	}
	return c - 1, true
}

// Positions lists the positions of c in ascending order.
func (c Circuit) Positions() []Position {
	if !c.Valid() {
		return nil
	}
	first := Position(int(c-1)*CircuitSize) + MinPosition
	out := make([]Position, 0, CircuitSize)
	for p := first; p < first+CircuitSize; p++ {
		out = append(out, p)
	}
	return out
}

// Positions lists every position in ascending order.
func Positions() []Position {
	out := make([]Position, 0, PositionCount)
	for p := MinPosition; p <= MaxPosition; p++ {
		out = append(out, p)
	}
	return out
}

// Edges returns a copy of the weighted edge list.
func Edges() []Edge {
	return slices.Clone(edges)
}

// Neighbors returns a copy of the adjacency list for p.
func Neighbors(p Position) []Position {
	return slices.Clone(adjacency[p])
}

// Adjacent reports whether to is exactly one step from from.
func Adjacent(from, to Position) bool {
	return slices.Contains(adjacency[from], to)
}
