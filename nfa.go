package automaton

// NFA is a nondeterministic finite automaton without epsilon transitions.
// It is an EpsilonNFA whose transition adds reject the epsilon label.
type NFA struct {
	*EpsilonNFA
}

func NewNFA() *NFA {
	return &NFA{EpsilonNFA: NewEpsilonNFA()}
}

// AddTransition registers an edge. Epsilon-labeled edges fail with
// ErrInvalidEpsilonTransition and leave the automaton unchanged.
func (n *NFA) AddTransition(from State, by Symbol, to State) error {
	if by.IsEpsilon() {
		return ErrInvalidEpsilonTransition
	}
	n.EpsilonNFA.AddTransition(from, by, to)
	return nil
}

// IsDeterministic reports whether the automaton is deterministic: at most
// one start state and at most one destination per (state, symbol). There are
// no epsilon edges to consider.
func (n *NFA) IsDeterministic() bool {
	return len(n.startStates) <= 1 && n.delta.Deterministic()
}

// ToEpsilonNFA returns an equivalent EpsilonNFA, independent of the
// receiver.
func (n *NFA) ToEpsilonNFA() *EpsilonNFA {
	return n.EpsilonNFA.Copy()
}

// Copy returns a deep copy of the NFA.
func (n *NFA) Copy() *NFA {
	return &NFA{EpsilonNFA: n.EpsilonNFA.Copy()}
}
