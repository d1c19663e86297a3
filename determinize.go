package automaton

// ToDeterministic builds an equivalent DFA by subset construction. Each DFA
// state is the merged state of a reachable subset of NFA states; merged
// naming is a deterministic function of the subset contents, which is what
// lets the processed set recognize subsets already enqueued and guarantees
// termination.
func (e *EpsilonNFA) ToDeterministic() *DFA {
	dfa := NewDFA()
	for symbol := range e.symbols {
		dfa.symbols[symbol] = struct{}{}
	}

	start := e.EcloseSet(e.startStates)
	startState := mergeStates(start)
	dfa.SetStartState(startState)

	toProcess := []map[State]struct{}{start}
	processed := map[State]struct{}{startState: {}}

	for len(toProcess) > 0 {
		current := toProcess[len(toProcess)-1]
		toProcess = toProcess[:len(toProcess)-1]
		currentState := mergeStates(current)

		if e.intersectsFinal(current) {
			dfa.AddFinalState(currentState)
		}
		for symbol := range e.symbols {
			next := e.EcloseSet(e.nextStates(current, symbol))
			if len(next) == 0 {
				continue
			}
			nextState := mergeStates(next)
			// Cannot conflict: one destination per (subset, symbol).
			_ = dfa.AddTransition(currentState, symbol, nextState)
			if _, seen := processed[nextState]; !seen {
				processed[nextState] = struct{}{}
				toProcess = append(toProcess, next)
			}
		}
	}
	return dfa
}

// ToDeterministic builds an equivalent DFA by subset construction. Epsilon
// closures are trivial here, so this is plain powerset construction.
func (n *NFA) ToDeterministic() *DFA {
	return n.EpsilonNFA.ToDeterministic()
}

func (e *EpsilonNFA) intersectsFinal(states map[State]struct{}) bool {
	for state := range states {
		if e.IsFinalState(state) {
			return true
		}
	}
	return false
}
