package automaton

// trashState is the implicit dead sink standing in for missing transitions
// during minimization. It never appears in the minimized automaton.
var trashState = State{value: "\x00trash"}

// previousTransitions indexes the inverse of a DFA's transition function,
// with the trash sink completing every missing (state, symbol) edge.
type previousTransitions struct {
	inverse map[State]map[Symbol][]State
}

func newPreviousTransitions(d *DFA, reachable map[State]struct{}, symbols []Symbol) *previousTransitions {
	prev := &previousTransitions{inverse: make(map[State]map[Symbol][]State)}
	for state := range reachable {
		for _, symbol := range symbols {
			if next, ok := d.Step(state, symbol); ok {
				prev.add(next, symbol, state)
			} else {
				prev.add(trashState, symbol, state)
			}
		}
	}
	for _, symbol := range symbols {
		prev.add(trashState, symbol, trashState)
	}
	return prev
}

func (p *previousTransitions) add(next State, by Symbol, from State) {
	bySymbol, ok := p.inverse[next]
	if !ok {
		bySymbol = make(map[Symbol][]State)
		p.inverse[next] = bySymbol
	}
	bySymbol[by] = append(bySymbol[by], from)
}

func (p *previousTransitions) get(next State, by Symbol) []State {
	return p.inverse[next][by]
}

// Minimize builds the unique minimal DFA for the same language using
// Hopcroft partition refinement. Unreachable states are discarded first,
// and dead states (no path to a final state) end up merged with the
// implicit sink and are dropped from the result; an automaton recognizing
// the empty language collapses to the canonical single-state automaton with
// no final state. Minimize never mutates the receiver and is idempotent up
// to state naming.
func (d *DFA) Minimize() *DFA {
	reachable := d.reachableStates()
	finals := make([]State, 0, len(d.finalStates))
	nonFinals := []State{trashState}
	for state := range reachable {
		if d.IsFinalState(state) {
			finals = append(finals, state)
		} else {
			nonFinals = append(nonFinals, state)
		}
	}
	if len(finals) == 0 {
		// Empty language: one non-final state, no transitions.
		res := NewDFA()
		for symbol := range d.symbols {
			res.symbols[symbol] = struct{}{}
		}
		res.SetStartState(mergeStates(reachable))
		return res
	}

	symbols := d.Symbols()
	prev := newPreviousTransitions(d, reachable, symbols)

	part := newPartition()
	finalClass := part.addClass(finals)
	nonFinalClass := part.addClass(nonFinals)

	// Seed the worklist with the smaller of the two initial classes for
	// every symbol; processing either side of a split refines the same
	// boundary.
	seed := finalClass
	if part.classSize(nonFinalClass) < part.classSize(finalClass) {
		seed = nonFinalClass
	}
	pending := newHopcroftProcessingList(part.numClasses(), symbols)
	for _, symbol := range symbols {
		pending.insert(seed, symbol)
	}

	for !pending.isEmpty() {
		class, symbol := pending.pop()
		var inverse []State
		for _, member := range part.members(class) {
			inverse = append(inverse, prev.get(member, symbol)...)
		}
		if len(inverse) == 0 {
			continue
		}
		inverseSet := make(map[State]struct{}, len(inverse))
		for _, state := range inverse {
			inverseSet[state] = struct{}{}
		}
		for _, toSplit := range part.validSets(inverse) {
			newClass := part.split(toSplit, inverseSet)
			for _, other := range symbols {
				if !pending.contains(newClass, other) {
					pending.insert(newClass, other)
				}
			}
		}
	}

	return d.fromPartition(part, symbols)
}

// fromPartition rebuilds the minimal DFA, one state per class. Classes
// containing the trash sink are dropped entirely: any real state merged with
// the sink is dead and accepts nothing, and the partial-transition
// convention already reads a missing edge as rejection. Dropping them keeps
// the result canonical, one state per Myhill-Nerode class with a
// nonempty future. The start state is never in a dropped class: when a
// final state is reachable at all, the start can reach it and so is
// distinguishable from the sink.
func (d *DFA) fromPartition(part *partition, symbols []Symbol) *DFA {
	res := NewDFA()
	for symbol := range d.symbols {
		res.symbols[symbol] = struct{}{}
	}

	classState := make(map[int]State)
	classReal := make(map[int][]State)
	for index, group := range part.groups() {
		dead := false
		for _, member := range group {
			if member == trashState {
				dead = true
				break
			}
		}
		if dead {
			continue
		}
		set := make(map[State]struct{}, len(group))
		for _, member := range group {
			set[member] = struct{}{}
		}
		classState[index] = mergeStates(set)
		classReal[index] = group
	}

	if d.hasStart {
		res.SetStartState(classState[part.classOf(d.startState)])
	}
	for index, real := range classReal {
		state := classState[index]
		for _, member := range real {
			if d.IsFinalState(member) {
				res.AddFinalState(state)
				break
			}
		}
		// All members of a class agree on the destination class for
		// every symbol, so any representative serves.
		rep := real[0]
		for _, symbol := range symbols {
			next, ok := d.Step(rep, symbol)
			if !ok {
				continue
			}
			if dest, ok := classState[part.classOf(next)]; ok {
				// Cannot conflict: one destination per class and symbol.
				_ = res.AddTransition(state, symbol, dest)
			}
		}
	}
	return res
}

// Minimize determinizes the automaton and returns the unique minimal DFA
// for its language.
func (e *EpsilonNFA) Minimize() *DFA {
	return e.ToDeterministic().Minimize()
}
