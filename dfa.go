package automaton

// DFA is a deterministic finite automaton: a single start state and a
// deterministic transition function. The determinism invariant (at most one
// destination per state and symbol, no epsilon edges) is enforced by
// DeterministicTransitionFunction at construction time.
type DFA struct {
	states      map[State]struct{}
	symbols     map[Symbol]struct{}
	startState  State
	hasStart    bool
	finalStates map[State]struct{}
	delta       *DeterministicTransitionFunction
}

func NewDFA() *DFA {
	return &DFA{
		states:      make(map[State]struct{}),
		symbols:     make(map[Symbol]struct{}),
		finalStates: make(map[State]struct{}),
		delta:       NewDeterministicTransitionFunction(),
	}
}

// AddTransition registers an edge, auto-registering its states and symbol.
// Conflicting or epsilon-labeled edges fail and leave the automaton
// unchanged.
func (d *DFA) AddTransition(from State, by Symbol, to State) error {
	if err := d.delta.AddTransition(from, by, to); err != nil {
		return err
	}
	d.states[from] = struct{}{}
	d.states[to] = struct{}{}
	d.symbols[by] = struct{}{}
	return nil
}

// RemoveTransition removes an edge and reports whether it existed.
func (d *DFA) RemoveTransition(from State, by Symbol, to State) bool {
	return d.delta.RemoveTransition(from, by, to)
}

// SetStartState sets the single start state, replacing any previous one.
func (d *DFA) SetStartState(state State) {
	d.startState = state
	d.hasStart = true
	d.states[state] = struct{}{}
}

// StartState returns the start state, if set.
func (d *DFA) StartState() (State, bool) {
	return d.startState, d.hasStart
}

// AddFinalState marks a state as final, registering it if needed.
func (d *DFA) AddFinalState(state State) {
	d.finalStates[state] = struct{}{}
	d.states[state] = struct{}{}
}

// RemoveFinalState unmarks a final state and reports whether it was one.
func (d *DFA) RemoveFinalState(state State) bool {
	if _, ok := d.finalStates[state]; !ok {
		return false
	}
	delete(d.finalStates, state)
	return true
}

// IsFinalState reports whether the state is final.
func (d *DFA) IsFinalState(state State) bool {
	_, ok := d.finalStates[state]
	return ok
}

// States returns the states, sorted by value.
func (d *DFA) States() []State {
	return sortedStates(d.states)
}

// FinalStates returns the final states, sorted by value.
func (d *DFA) FinalStates() []State {
	return sortedStates(d.finalStates)
}

// Symbols returns the input alphabet.
func (d *DFA) Symbols() []Symbol {
	return sortedSymbols(d.symbols)
}

// NumStates returns the number of states.
func (d *DFA) NumStates() int {
	return len(d.states)
}

// NumTransitions returns the number of transitions.
func (d *DFA) NumTransitions() int {
	return d.delta.NumTransitions()
}

// Step returns the destination of (from, by), if any.
func (d *DFA) Step(from State, by Symbol) (State, bool) {
	return d.delta.Step(from, by)
}

// Transitions returns every edge of the automaton.
func (d *DFA) Transitions() []Transition {
	return d.delta.Edges()
}

// Accepts reports whether the automaton accepts the given word. Epsilon
// symbols inside the word are skipped. A missing transition rejects.
func (d *DFA) Accepts(word []Symbol) bool {
	if !d.hasStart {
		return false
	}
	current := d.startState
	for _, symbol := range word {
		if symbol.IsEpsilon() {
			continue
		}
		next, ok := d.delta.Step(current, symbol)
		if !ok {
			return false
		}
		current = next
	}
	return d.IsFinalState(current)
}

// IsDeterministic always reports true; determinism is enforced by the type.
func (d *DFA) IsDeterministic() bool {
	return true
}

// ToEpsilonNFA returns an equivalent EpsilonNFA, independent of the
// receiver.
func (d *DFA) ToEpsilonNFA() *EpsilonNFA {
	res := NewEpsilonNFA()
	for state := range d.states {
		res.states[state] = struct{}{}
	}
	for symbol := range d.symbols {
		res.symbols[symbol] = struct{}{}
	}
	if d.hasStart {
		res.AddStartState(d.startState)
	}
	for state := range d.finalStates {
		res.AddFinalState(state)
	}
	for _, t := range d.delta.Edges() {
		res.AddTransition(t.From, t.By, t.To)
	}
	return res
}

// Copy returns a deep copy of the DFA.
func (d *DFA) Copy() *DFA {
	res := NewDFA()
	res.states = copyStateSet(d.states)
	res.finalStates = copyStateSet(d.finalStates)
	for symbol := range d.symbols {
		res.symbols[symbol] = struct{}{}
	}
	res.startState = d.startState
	res.hasStart = d.hasStart
	for _, t := range d.delta.Edges() {
		res.delta.AddTransition(t.From, t.By, t.To)
	}
	return res
}

// reachableStates returns the states reachable from the start state.
func (d *DFA) reachableStates() map[State]struct{} {
	reachable := make(map[State]struct{})
	if !d.hasStart {
		return reachable
	}
	reachable[d.startState] = struct{}{}
	toProcess := []State{d.startState}
	for len(toProcess) > 0 {
		current := toProcess[len(toProcess)-1]
		toProcess = toProcess[:len(toProcess)-1]
		for by := range d.symbols {
			next, ok := d.delta.Step(current, by)
			if !ok {
				continue
			}
			if _, seen := reachable[next]; !seen {
				reachable[next] = struct{}{}
				toProcess = append(toProcess, next)
			}
		}
	}
	return reachable
}
