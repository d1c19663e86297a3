package automaton

// Transition is one labeled edge of an automaton.
type Transition struct {
	From State
	By   Symbol
	To   State
}

// NondeterministicTransitionFunction maps a (state, symbol) pair to a set of
// destination states. No entry ever maps to an empty set; a missing key
// means no transition.
type NondeterministicTransitionFunction struct {
	transitions    map[State]map[Symbol]map[State]struct{}
	numTransitions int
}

func NewNondeterministicTransitionFunction() *NondeterministicTransitionFunction {
	return &NondeterministicTransitionFunction{
		transitions: make(map[State]map[Symbol]map[State]struct{}),
	}
}

// AddTransition registers an edge. Adding the same edge twice changes
// nothing. Reports whether the edge was new.
func (tf *NondeterministicTransitionFunction) AddTransition(from State, by Symbol, to State) bool {
	bySymbol, ok := tf.transitions[from]
	if !ok {
		bySymbol = make(map[Symbol]map[State]struct{})
		tf.transitions[from] = bySymbol
	}
	dests, ok := bySymbol[by]
	if !ok {
		dests = make(map[State]struct{})
		bySymbol[by] = dests
	}
	if _, ok := dests[to]; ok {
		return false
	}
	dests[to] = struct{}{}
	tf.numTransitions++
	return true
}

// RemoveTransition removes an edge and reports whether it existed.
func (tf *NondeterministicTransitionFunction) RemoveTransition(from State, by Symbol, to State) bool {
	dests, ok := tf.transitions[from][by]
	if !ok {
		return false
	}
	if _, ok := dests[to]; !ok {
		return false
	}
	delete(dests, to)
	tf.numTransitions--
	if len(dests) == 0 {
		delete(tf.transitions[from], by)
		if len(tf.transitions[from]) == 0 {
			delete(tf.transitions, from)
		}
	}
	return true
}

// Step returns the set of destination states for (from, by). The returned
// map is owned by the caller.
func (tf *NondeterministicTransitionFunction) Step(from State, by Symbol) map[State]struct{} {
	dests := tf.transitions[from][by]
	if len(dests) == 0 {
		return nil
	}
	return copyStateSet(dests)
}

// Contains reports whether the exact edge is present.
func (tf *NondeterministicTransitionFunction) Contains(from State, by Symbol, to State) bool {
	_, ok := tf.transitions[from][by][to]
	return ok
}

// NumTransitions returns the number of registered edges.
func (tf *NondeterministicTransitionFunction) NumTransitions() int {
	return tf.numTransitions
}

// Deterministic reports whether every (state, symbol) pair maps to at most
// one destination. A function with epsilon-labeled edges is never
// deterministic.
func (tf *NondeterministicTransitionFunction) Deterministic() bool {
	for _, bySymbol := range tf.transitions {
		for by, dests := range bySymbol {
			if by.IsEpsilon() || len(dests) > 1 {
				return false
			}
		}
	}
	return true
}

// Edges returns every transition. Iteration order is unspecified.
func (tf *NondeterministicTransitionFunction) Edges() []Transition {
	edges := make([]Transition, 0, tf.numTransitions)
	for from, bySymbol := range tf.transitions {
		for by, dests := range bySymbol {
			for to := range dests {
				edges = append(edges, Transition{From: from, By: by, To: to})
			}
		}
	}
	return edges
}

// TransitionsFrom returns the transitions leaving the given state.
func (tf *NondeterministicTransitionFunction) TransitionsFrom(from State) []Transition {
	var edges []Transition
	for by, dests := range tf.transitions[from] {
		for to := range dests {
			edges = append(edges, Transition{From: from, By: by, To: to})
		}
	}
	return edges
}

// NextStatesFrom returns the set of states directly reachable from the given
// state, on any symbol including epsilon.
func (tf *NondeterministicTransitionFunction) NextStatesFrom(from State) map[State]struct{} {
	res := make(map[State]struct{})
	for _, dests := range tf.transitions[from] {
		for to := range dests {
			res[to] = struct{}{}
		}
	}
	return res
}

func (tf *NondeterministicTransitionFunction) copy() *NondeterministicTransitionFunction {
	res := NewNondeterministicTransitionFunction()
	for from, bySymbol := range tf.transitions {
		for by, dests := range bySymbol {
			for to := range dests {
				res.AddTransition(from, by, to)
			}
		}
	}
	return res
}
