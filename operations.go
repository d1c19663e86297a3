package automaton

// Rational and boolean operations over automata. Every operation returns a
// fresh automaton; receivers are never mutated. States of the operands are
// renamed where the construction merges two automata, so equal state values
// on both sides cannot collide.

// freshState returns a state whose value does not occur in the automaton,
// derived from the given prefix.
func (e *EpsilonNFA) freshState(prefix string) State {
	values := make(map[string]struct{}, len(e.states))
	for state := range e.states {
		values[state.value] = struct{}{}
	}
	for {
		if _, ok := values[prefix]; !ok {
			return NewState(prefix)
		}
		prefix += "`"
	}
}

func prefixState(prefix string, state State) State {
	return State{value: prefix + ":" + state.value}
}

// copyRenamed copies e into dst with every state renamed through prefix.
func (e *EpsilonNFA) copyRenamed(dst *EpsilonNFA, prefix string) {
	for state := range e.states {
		dst.states[prefixState(prefix, state)] = struct{}{}
	}
	for symbol := range e.symbols {
		dst.symbols[symbol] = struct{}{}
	}
	for _, t := range e.Transitions() {
		dst.AddTransition(prefixState(prefix, t.From), t.By, prefixState(prefix, t.To))
	}
}

// GetUnion returns an automaton accepting the union of both languages.
func (e *EpsilonNFA) GetUnion(other *EpsilonNFA) *EpsilonNFA {
	res := NewEpsilonNFA()
	e.copyRenamed(res, "u0")
	other.copyRenamed(res, "u1")
	for start := range e.startStates {
		res.AddStartState(prefixState("u0", start))
	}
	for final := range e.finalStates {
		res.AddFinalState(prefixState("u0", final))
	}
	for start := range other.startStates {
		res.AddStartState(prefixState("u1", start))
	}
	for final := range other.finalStates {
		res.AddFinalState(prefixState("u1", final))
	}
	return res
}

// Concatenate returns an automaton accepting the concatenation of both
// languages: epsilon edges link the left finals to the right starts.
func (e *EpsilonNFA) Concatenate(other *EpsilonNFA) *EpsilonNFA {
	res := NewEpsilonNFA()
	e.copyRenamed(res, "c0")
	other.copyRenamed(res, "c1")
	for start := range e.startStates {
		res.AddStartState(prefixState("c0", start))
	}
	for final := range other.finalStates {
		res.AddFinalState(prefixState("c1", final))
	}
	for final := range e.finalStates {
		for start := range other.startStates {
			res.AddTransition(prefixState("c0", final), Epsilon, prefixState("c1", start))
		}
	}
	return res
}

// KleeneStar returns an automaton accepting zero or more repetitions of the
// language. The fresh start is also final so the empty word is accepted.
func (e *EpsilonNFA) KleeneStar() *EpsilonNFA {
	res := e.Copy()
	start := e.freshState("Start")
	for old := range e.startStates {
		res.AddTransition(start, Epsilon, old)
		res.RemoveStartState(old)
	}
	res.AddStartState(start)
	res.AddFinalState(start)
	for final := range e.finalStates {
		res.AddTransition(final, Epsilon, start)
	}
	return res
}

// Reverse returns an automaton accepting the mirror image of every word:
// all edges flipped, starts and finals exchanged.
func (e *EpsilonNFA) Reverse() *EpsilonNFA {
	res := NewEpsilonNFA()
	for state := range e.states {
		res.states[state] = struct{}{}
	}
	for symbol := range e.symbols {
		res.symbols[symbol] = struct{}{}
	}
	for _, t := range e.Transitions() {
		res.AddTransition(t.To, t.By, t.From)
	}
	for start := range e.startStates {
		res.AddFinalState(start)
	}
	for final := range e.finalStates {
		res.AddStartState(final)
	}
	return res
}

// GetComplement returns an automaton accepting exactly the words over the
// same alphabet that this automaton rejects. The automaton is determinized
// first and completed with a sink, then the final flags are flipped.
func (e *EpsilonNFA) GetComplement() *EpsilonNFA {
	res := e.ToDeterministic().ToEpsilonNFA()
	for symbol := range e.symbols {
		res.symbols[symbol] = struct{}{}
	}
	sink := res.freshState("Trash")
	for _, state := range res.States() {
		for symbol := range res.symbols {
			if len(res.delta.Step(state, symbol)) == 0 {
				res.AddTransition(state, symbol, sink)
			}
		}
	}
	for symbol := range res.symbols {
		res.AddTransition(sink, symbol, sink)
	}
	for _, state := range res.States() {
		if res.IsFinalState(state) {
			res.RemoveFinalState(state)
		} else {
			res.AddFinalState(state)
		}
	}
	return res
}

// GetIntersection returns an automaton accepting the words both automata
// accept: the product construction over epsilon closures, restricted to the
// shared alphabet.
func (e *EpsilonNFA) GetIntersection(other *EpsilonNFA) *EpsilonNFA {
	res := NewEpsilonNFA()
	var symbols []Symbol
	for symbol := range e.symbols {
		if _, ok := other.symbols[symbol]; ok {
			symbols = append(symbols, symbol)
		}
	}

	type statePair struct{ left, right State }
	combine := func(p statePair) State {
		return State{value: p.left.value + "; " + p.right.value}
	}

	var toProcess []statePair
	processed := make(map[statePair]struct{})
	for left := range e.EcloseSet(e.startStates) {
		for right := range other.EcloseSet(other.startStates) {
			pair := statePair{left, right}
			res.AddStartState(combine(pair))
			toProcess = append(toProcess, pair)
			processed[pair] = struct{}{}
		}
	}
	for left := range e.finalStates {
		for right := range other.finalStates {
			res.AddFinalState(combine(statePair{left, right}))
		}
	}
	for len(toProcess) > 0 {
		pair := toProcess[len(toProcess)-1]
		toProcess = toProcess[:len(toProcess)-1]
		current := combine(pair)
		for _, symbol := range symbols {
			for left := range e.EcloseSet(e.delta.Step(pair.left, symbol)) {
				for right := range other.EcloseSet(other.delta.Step(pair.right, symbol)) {
					next := statePair{left, right}
					res.AddTransition(current, symbol, combine(next))
					if _, ok := processed[next]; !ok {
						processed[next] = struct{}{}
						toProcess = append(toProcess, next)
					}
				}
			}
		}
	}
	return res
}

// GetDifference returns an automaton accepting the words this automaton
// accepts and the other rejects. The other automaton is widened to this
// automaton's alphabet before complementing.
func (e *EpsilonNFA) GetDifference(other *EpsilonNFA) *EpsilonNFA {
	widened := other.Copy()
	for symbol := range e.symbols {
		widened.symbols[symbol] = struct{}{}
	}
	return e.GetIntersection(widened.GetComplement())
}

// IsEmpty reports whether the language is empty: no final state reachable
// from any start state.
func (e *EpsilonNFA) IsEmpty() bool {
	var toProcess []State
	processed := make(map[State]struct{})
	for start := range e.startStates {
		toProcess = append(toProcess, start)
		processed[start] = struct{}{}
	}
	for len(toProcess) > 0 {
		current := toProcess[len(toProcess)-1]
		toProcess = toProcess[:len(toProcess)-1]
		if e.IsFinalState(current) {
			return false
		}
		for next := range e.delta.NextStatesFrom(current) {
			if _, ok := processed[next]; !ok {
				processed[next] = struct{}{}
				toProcess = append(toProcess, next)
			}
		}
	}
	return true
}

// IsAcyclic reports whether no cycle is reachable from the start states,
// epsilon edges included.
func (e *EpsilonNFA) IsAcyclic() bool {
	const (
		white = iota
		gray
		black
	)
	color := make(map[State]int, len(e.states))
	var visit func(State) bool
	visit = func(state State) bool {
		color[state] = gray
		for next := range e.delta.NextStatesFrom(state) {
			switch color[next] {
			case gray:
				return false
			case white:
				if !visit(next) {
					return false
				}
			}
		}
		color[state] = black
		return true
	}
	for start := range e.startStates {
		if color[start] == white && !visit(start) {
			return false
		}
	}
	return true
}

// GetAcceptedWords enumerates accepted words of length at most maxLength, in
// breadth-first order. The bound is the caller's responsibility: cyclic
// languages are infinite and only the bound makes enumeration terminate.
func (e *EpsilonNFA) GetAcceptedWords(maxLength int) [][]Symbol {
	if maxLength < 0 {
		return nil
	}
	type visit struct {
		state State
		word  []Symbol
	}
	var words [][]Symbol
	seen := make(map[State]map[string]struct{})
	yielded := make(map[string]struct{})
	var queue []visit
	for _, start := range e.StartStates() {
		queue = append(queue, visit{state: start})
	}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		key := wordKey(current.word)
		byState, ok := seen[current.state]
		if !ok {
			byState = make(map[string]struct{})
			seen[current.state] = byState
		}
		if _, ok := byState[key]; ok {
			continue
		}
		byState[key] = struct{}{}
		if e.IsFinalState(current.state) {
			if _, ok := yielded[key]; !ok {
				yielded[key] = struct{}{}
				words = append(words, current.word)
			}
		}
		for _, t := range e.delta.TransitionsFrom(current.state) {
			next := current.word
			if !t.By.IsEpsilon() {
				if len(current.word) == maxLength {
					continue
				}
				next = append(append([]Symbol{}, current.word...), t.By)
			}
			queue = append(queue, visit{state: t.To, word: next})
		}
	}
	return words
}

func wordKey(word []Symbol) string {
	key := ""
	for _, symbol := range word {
		key += symbol.Value() + "\x00"
	}
	return key
}

// IsEquivalentTo reports whether both automata accept the same language, by
// minimal-DFA isomorphism.
func (e *EpsilonNFA) IsEquivalentTo(other *EpsilonNFA) bool {
	return e.Minimize().isIsomorphicTo(other.Minimize())
}

// IsEquivalentTo reports whether both automata accept the same language.
func (d *DFA) IsEquivalentTo(other *DFA) bool {
	return d.Minimize().isIsomorphicTo(other.Minimize())
}

// isIsomorphicTo checks structural equality up to state renaming. Both
// automata must be minimal (reachable states only, one state per
// Myhill-Nerode class) for this to decide language equality.
func (d *DFA) isIsomorphicTo(other *DFA) bool {
	if d.NumStates() != other.NumStates() ||
		len(d.finalStates) != len(other.finalStates) ||
		d.hasStart != other.hasStart {
		return false
	}
	if !d.hasStart {
		return true
	}
	symbols := make(map[Symbol]struct{}, len(d.symbols)+len(other.symbols))
	for symbol := range d.symbols {
		symbols[symbol] = struct{}{}
	}
	for symbol := range other.symbols {
		symbols[symbol] = struct{}{}
	}

	pairing := map[State]State{d.startState: other.startState}
	toProcess := []State{d.startState}
	for len(toProcess) > 0 {
		left := toProcess[len(toProcess)-1]
		toProcess = toProcess[:len(toProcess)-1]
		right := pairing[left]
		if d.IsFinalState(left) != other.IsFinalState(right) {
			return false
		}
		for symbol := range symbols {
			leftNext, leftOk := d.Step(left, symbol)
			rightNext, rightOk := other.Step(right, symbol)
			if leftOk != rightOk {
				return false
			}
			if !leftOk {
				continue
			}
			if mapped, ok := pairing[leftNext]; ok {
				if mapped != rightNext {
					return false
				}
				continue
			}
			pairing[leftNext] = rightNext
			toProcess = append(toProcess, leftNext)
		}
	}
	return true
}
