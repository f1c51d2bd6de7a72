package board

// CircuitSet is a bit set of circuits. The zero value is empty.
type CircuitSet uint8

// NewCircuitSet returns a set holding the given circuits.
func NewCircuitSet(circuits ...Circuit) CircuitSet {
	var s CircuitSet
	for _, c := range circuits {
		s = s.Add(c)
	}
	return s
}

// Has reports whether c is in the set.
func (s CircuitSet) Has(c Circuit) bool {
	if !c.Valid() {
		return false
	}
	return s&(1<<uint(c)) != 0
}

// Add returns the set with c included.
func (s CircuitSet) Add(c Circuit) CircuitSet {
	if !c.Valid() {
		return s
	}
	return s | 1<<uint(c)
}

// List returns the members from outermost to innermost.
func (s CircuitSet) List() []Circuit {
	var out []Circuit
	for c := OuterCircuit; c >= InnerCircuit; c-- {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}
