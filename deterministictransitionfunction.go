package automaton

import (
	"errors"
	"fmt"
)

// ErrInvalidEpsilonTransition signals an attempt to register an epsilon
// transition on a component that forbids it. The component is left in its
// prior state.
var ErrInvalidEpsilonTransition = errors.New("epsilon transitions are not allowed here")

// DuplicateTransitionError signals an attempt to register a second, distinct
// destination for a (state, symbol) pair of a deterministic transition
// function. The existing edge is never overwritten.
type DuplicateTransitionError struct {
	From     State
	By       Symbol
	To       State
	Existing State
}

func (e *DuplicateTransitionError) Error() string {
	return fmt.Sprintf("transition from %s by %s goes to %s, not %s",
		e.From, e.By, e.Existing, e.To)
}

// DeterministicTransitionFunction maps a (state, symbol) pair to at most one
// destination state. The ≤1-destination invariant is enforced by the type
// itself: conflicting adds fail instead of overwriting, and epsilon edges
// are rejected outright.
type DeterministicTransitionFunction struct {
	transitions    map[State]map[Symbol]State
	numTransitions int
}

func NewDeterministicTransitionFunction() *DeterministicTransitionFunction {
	return &DeterministicTransitionFunction{
		transitions: make(map[State]map[Symbol]State),
	}
}

// AddTransition registers an edge. Re-adding an identical edge is a no-op.
// Registering a second destination for an existing (state, symbol) pair
// fails with *DuplicateTransitionError; an epsilon symbol fails with
// ErrInvalidEpsilonTransition.
func (tf *DeterministicTransitionFunction) AddTransition(from State, by Symbol, to State) error {
	if by.IsEpsilon() {
		return ErrInvalidEpsilonTransition
	}
	bySymbol, ok := tf.transitions[from]
	if !ok {
		bySymbol = make(map[Symbol]State)
		tf.transitions[from] = bySymbol
	}
	if existing, ok := bySymbol[by]; ok {
		if existing == to {
			return nil
		}
		return &DuplicateTransitionError{From: from, By: by, To: to, Existing: existing}
	}
	bySymbol[by] = to
	tf.numTransitions++
	return nil
}

// RemoveTransition removes an edge and reports whether it existed.
func (tf *DeterministicTransitionFunction) RemoveTransition(from State, by Symbol, to State) bool {
	existing, ok := tf.transitions[from][by]
	if !ok || existing != to {
		return false
	}
	delete(tf.transitions[from], by)
	if len(tf.transitions[from]) == 0 {
		delete(tf.transitions, from)
	}
	tf.numTransitions--
	return true
}

// Step returns the single destination for (from, by), if any.
func (tf *DeterministicTransitionFunction) Step(from State, by Symbol) (State, bool) {
	to, ok := tf.transitions[from][by]
	return to, ok
}

// NumTransitions returns the number of registered edges.
func (tf *DeterministicTransitionFunction) NumTransitions() int {
	return tf.numTransitions
}

// Edges returns every transition. Iteration order is unspecified.
func (tf *DeterministicTransitionFunction) Edges() []Transition {
	edges := make([]Transition, 0, tf.numTransitions)
	for from, bySymbol := range tf.transitions {
		for by, to := range bySymbol {
			edges = append(edges, Transition{From: from, By: by, To: to})
		}
	}
	return edges
}
