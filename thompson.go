package automaton

import "strconv"

// enfaBuilder is the build context of the Thompson construction: the target
// automaton plus the fresh-state counter. It is owned by a single
// ToEpsilonNFA call and threaded through the recursion, so recursive calls
// sharing one automaton can never collide on state names.
type enfaBuilder struct {
	enfa    *EpsilonNFA
	counter int
}

func (b *enfaBuilder) freshState() State {
	state := NewState(strconv.Itoa(b.counter))
	b.counter++
	return state
}

func (b *enfaBuilder) epsilon(from, to State) {
	b.enfa.AddTransition(from, Epsilon, to)
}

// ToEpsilonNFA builds an equivalent automaton by Thompson construction: each
// subtree is wired between a dedicated (start, end) state pair using epsilon
// edges.
func (r *Regex) ToEpsilonNFA() *EpsilonNFA {
	b := &enfaBuilder{enfa: NewEpsilonNFA()}
	start := b.freshState()
	b.enfa.AddStartState(start)
	end := b.freshState()
	b.enfa.AddFinalState(end)
	r.build(b, start, end)
	return b.enfa
}

func (r *Regex) build(b *enfaBuilder, from, to State) {
	switch r.op {
	case opEmpty:
		// No path contributed.
	case opEpsilon:
		b.epsilon(from, to)
	case opSymbol:
		b.enfa.AddTransition(from, r.symbol, to)
	case opConcat:
		mid0 := b.freshState()
		mid1 := b.freshState()
		b.epsilon(mid0, mid1)
		r.left.build(b, from, mid0)
		r.right.build(b, mid1, to)
	case opUnion:
		r.left.buildUnionBranch(b, from, to)
		r.right.buildUnionBranch(b, from, to)
	case opStar:
		inner0 := b.freshState()
		inner1 := b.freshState()
		b.epsilon(inner1, inner0) // repetition
		b.epsilon(from, to)       // zero occurrences
		b.epsilon(from, inner0)
		b.epsilon(inner1, to)
		r.left.build(b, inner0, inner1)
	}
}

func (r *Regex) buildUnionBranch(b *enfaBuilder, from, to State) {
	branchStart := b.freshState()
	branchEnd := b.freshState()
	b.epsilon(from, branchStart)
	b.epsilon(branchEnd, to)
	r.build(b, branchStart, branchEnd)
}
