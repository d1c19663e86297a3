package automaton

import "errors"

// ErrEpsilonInAlphabet signals an attempt to register Epsilon as a member of
// an automaton's input alphabet. Epsilon may label transitions of an
// EpsilonNFA but is never an alphabet symbol.
var ErrEpsilonInAlphabet = errors.New("epsilon cannot be part of the input alphabet")

// EpsilonNFA is a nondeterministic finite automaton with epsilon
// transitions. It owns epsilon closure and word acceptance; determinization,
// minimization and the regex bridge consume it through ToDeterministic,
// Minimize and ToRegex.
//
// The declared alphabet never contains Epsilon, though transitions may be
// labeled with it. Conversions return new automata and never mutate their
// receiver.
type EpsilonNFA struct {
	states      map[State]struct{}
	symbols     map[Symbol]struct{}
	startStates map[State]struct{}
	finalStates map[State]struct{}
	delta       *NondeterministicTransitionFunction
}

func NewEpsilonNFA() *EpsilonNFA {
	return &EpsilonNFA{
		states:      make(map[State]struct{}),
		symbols:     make(map[Symbol]struct{}),
		startStates: make(map[State]struct{}),
		finalStates: make(map[State]struct{}),
		delta:       NewNondeterministicTransitionFunction(),
	}
}

// AddTransition registers an edge, auto-registering its states and, for
// non-epsilon edges, its symbol. Reports whether the edge was new.
func (e *EpsilonNFA) AddTransition(from State, by Symbol, to State) bool {
	e.states[from] = struct{}{}
	e.states[to] = struct{}{}
	if !by.IsEpsilon() {
		e.symbols[by] = struct{}{}
	}
	return e.delta.AddTransition(from, by, to)
}

// RemoveTransition removes an edge and reports whether it existed. States
// and symbols stay registered.
func (e *EpsilonNFA) RemoveTransition(from State, by Symbol, to State) bool {
	return e.delta.RemoveTransition(from, by, to)
}

// AddStartState marks a state as a start state, registering it if needed.
func (e *EpsilonNFA) AddStartState(state State) {
	e.startStates[state] = struct{}{}
	e.states[state] = struct{}{}
}

// RemoveStartState unmarks a start state and reports whether it was one.
func (e *EpsilonNFA) RemoveStartState(state State) bool {
	if _, ok := e.startStates[state]; !ok {
		return false
	}
	delete(e.startStates, state)
	return true
}

// AddFinalState marks a state as final, registering it if needed.
func (e *EpsilonNFA) AddFinalState(state State) {
	e.finalStates[state] = struct{}{}
	e.states[state] = struct{}{}
}

// RemoveFinalState unmarks a final state and reports whether it was one.
func (e *EpsilonNFA) RemoveFinalState(state State) bool {
	if _, ok := e.finalStates[state]; !ok {
		return false
	}
	delete(e.finalStates, state)
	return true
}

// AddSymbol registers an alphabet symbol. Epsilon fails with
// ErrEpsilonInAlphabet.
func (e *EpsilonNFA) AddSymbol(symbol Symbol) error {
	if symbol.IsEpsilon() {
		return ErrEpsilonInAlphabet
	}
	e.symbols[symbol] = struct{}{}
	return nil
}

// IsFinalState reports whether the state is final.
func (e *EpsilonNFA) IsFinalState(state State) bool {
	_, ok := e.finalStates[state]
	return ok
}

// States returns the states, sorted by value.
func (e *EpsilonNFA) States() []State {
	return sortedStates(e.states)
}

// StartStates returns the start states, sorted by value.
func (e *EpsilonNFA) StartStates() []State {
	return sortedStates(e.startStates)
}

// FinalStates returns the final states, sorted by value.
func (e *EpsilonNFA) FinalStates() []State {
	return sortedStates(e.finalStates)
}

// Symbols returns the input alphabet. Epsilon is never part of it.
func (e *EpsilonNFA) Symbols() []Symbol {
	return sortedSymbols(e.symbols)
}

// NumStates returns the number of states.
func (e *EpsilonNFA) NumStates() int {
	return len(e.states)
}

// NumTransitions returns the number of transitions, epsilon included.
func (e *EpsilonNFA) NumTransitions() int {
	return e.delta.NumTransitions()
}

// Step returns the destinations of (from, by).
func (e *EpsilonNFA) Step(from State, by Symbol) map[State]struct{} {
	return e.delta.Step(from, by)
}

// Transitions returns every edge of the automaton.
func (e *EpsilonNFA) Transitions() []Transition {
	return e.delta.Edges()
}

// Eclose returns the set of states reachable from state using only epsilon
// edges. The state itself is always included.
func (e *EpsilonNFA) Eclose(state State) map[State]struct{} {
	processed := map[State]struct{}{state: {}}
	toProcess := []State{state}
	for len(toProcess) > 0 {
		current := toProcess[len(toProcess)-1]
		toProcess = toProcess[:len(toProcess)-1]
		for connected := range e.delta.Step(current, Epsilon) {
			if _, ok := processed[connected]; !ok {
				processed[connected] = struct{}{}
				toProcess = append(toProcess, connected)
			}
		}
	}
	return processed
}

// EcloseSet returns the union of the epsilon closures of the given states.
func (e *EpsilonNFA) EcloseSet(states map[State]struct{}) map[State]struct{} {
	res := make(map[State]struct{})
	for state := range states {
		for closed := range e.Eclose(state) {
			res[closed] = struct{}{}
		}
	}
	return res
}

func (e *EpsilonNFA) nextStates(current map[State]struct{}, by Symbol) map[State]struct{} {
	next := make(map[State]struct{})
	for state := range current {
		for to := range e.delta.Step(state, by) {
			next[to] = struct{}{}
		}
	}
	return next
}

// Accepts reports whether the automaton accepts the given word. Epsilon
// symbols inside the word are skipped, not treated as transitions.
func (e *EpsilonNFA) Accepts(word []Symbol) bool {
	current := e.EcloseSet(e.startStates)
	for _, symbol := range word {
		if symbol.IsEpsilon() {
			continue
		}
		current = e.EcloseSet(e.nextStates(current, symbol))
	}
	for state := range current {
		if e.IsFinalState(state) {
			return true
		}
	}
	return false
}

// IsDeterministic reports whether the automaton is deterministic: at most
// one start state, at most one destination per (state, symbol), and no
// non-trivial epsilon closure.
func (e *EpsilonNFA) IsDeterministic() bool {
	if len(e.startStates) > 1 {
		return false
	}
	if !e.delta.Deterministic() {
		return false
	}
	for state := range e.states {
		if len(e.Eclose(state)) != 1 {
			return false
		}
	}
	return true
}

// Copy returns a deep copy. State and Symbol values are shared (they are
// immutable); the transition storage is independent.
func (e *EpsilonNFA) Copy() *EpsilonNFA {
	res := NewEpsilonNFA()
	res.states = copyStateSet(e.states)
	res.startStates = copyStateSet(e.startStates)
	res.finalStates = copyStateSet(e.finalStates)
	for symbol := range e.symbols {
		res.symbols[symbol] = struct{}{}
	}
	res.delta = e.delta.copy()
	return res
}
