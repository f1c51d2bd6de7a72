package board

import (
	"slices"
	"testing"
)

func TestPositionCircuit(t *testing.T) {
	tests := []struct {
		pos  Position
		want Circuit
	}{
		{0, 0},
		{1, InnerCircuit},
		{6, InnerCircuit},
		{7, MiddleCircuit},
		{12, MiddleCircuit},
		{13, OuterCircuit},
		{18, OuterCircuit},
		{19, 0},
	}
	for _, tt := range tests {
		if got := tt.pos.Circuit(); got != tt.want {
			t.Fatalf("Position(%d).Circuit() = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestCircuitInward(t *testing.T) {
	if c, ok := OuterCircuit.Inward(); !ok || c != MiddleCircuit {
		t.Fatalf("outer inward = %d, %v; want middle", c, ok)
	}
	if c, ok := MiddleCircuit.Inward(); !ok || c != InnerCircuit {
		t.Fatalf("middle inward = %d, %v; want inner", c, ok)
	}
	if _, ok := InnerCircuit.Inward(); ok {
		t.Fatal("expected inner circuit to have no inward neighbour")
	}
}

func TestCircuitPositions(t *testing.T) {
	want := []Position{7, 8, 9, 10, 11, 12}
	if got := MiddleCircuit.Positions(); !slices.Equal(got, want) {
		t.Fatalf("middle positions = %v, want %v", got, want)
	}
	if got := Circuit(9).Positions(); got != nil {
		t.Fatalf("expected nil for invalid circuit, got %v", got)
	}
	seen := map[Position]bool{}
	for c := InnerCircuit; c <= OuterCircuit; c++ {
		for _, p := range c.Positions() {
			if seen[p] {
				t.Fatalf("position %d in more than one circuit", p)
			}
			seen[p] = true
		}
	}
	if len(seen) != PositionCount {
		t.Fatalf("circuits cover %d positions, want %d", len(seen), PositionCount)
	}
}

func TestAdjacentIsNotTransitive(t *testing.T) {
	if !Adjacent(13, 14) || !Adjacent(14, 15) {
		t.Fatal("expected outer ring neighbours to be adjacent")
	}
	if Adjacent(13, 15) {
		t.Fatal("expected two-step position to be non-adjacent")
	}
}

func TestAdjacencyKeepsOneWayLinks(t *testing.T) {
	if !Adjacent(15, 9) {
		t.Fatal("expected 15 to list 9")
	}
	if Adjacent(9, 15) {
		t.Fatal("expected 9 not to list 15")
	}
}

func TestNeighborsReturnsCopy(t *testing.T) {
	n := Neighbors(1)
	n[0] = 99
	if Neighbors(1)[0] == 99 {
		t.Fatal("expected Neighbors to return a copy")
	}
}

func TestEdgeWeightsTotal(t *testing.T) {
	total := 0
	for _, e := range Edges() {
		if !e.A.Valid() || !e.B.Valid() {
			t.Fatalf("edge %v has invalid endpoint", e)
		}
		total += e.Weight
	}
	// outer 6*2 + middle 6*4 + inner 8+8+9+8+8+9 + radial 6*1
	if total != 12+24+50+6 {
		t.Fatalf("edge weight total = %d, want %d", total, 92)
	}
}
