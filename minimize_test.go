package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildParallelAStarB builds a deliberately non-minimal DFA for a*b: two
// interleaved branches that both end in their own final state.
func buildParallelAStarB() *DFA {
	stA, stB, stC := NewState("A"), NewState("B"), NewState("C")
	stF, stF2 := NewState("F"), NewState("F2")
	a, b := NewSymbol("a"), NewSymbol("b")

	dfa := NewDFA()
	dfa.SetStartState(stA)
	dfa.AddFinalState(stF)
	dfa.AddFinalState(stF2)
	for _, edge := range []Transition{
		{stA, a, stB},
		{stA, b, stF},
		{stB, a, stC},
		{stB, b, stF2},
		{stC, a, stB},
		{stC, b, stF},
	} {
		if err := dfa.AddTransition(edge.From, edge.By, edge.To); err != nil {
			panic(err)
		}
	}
	return dfa
}

func TestMinimizeCollapsesEquivalentStates(t *testing.T) {
	dfa := buildParallelAStarB()
	assert.Equal(t, 5, dfa.NumStates())

	minimal := dfa.Minimize()
	assert.Equal(t, 2, minimal.NumStates())

	assert.True(t, minimal.Accepts(Word("a", "b")))
	assert.True(t, minimal.Accepts(Word("a", "a", "b")))
	assert.True(t, minimal.Accepts(Word("b")))
	assert.False(t, minimal.Accepts(Word("b", "a")))
	assert.False(t, minimal.Accepts(Word()))

	t.Run("LanguagePreserved", func(t *testing.T) {
		for _, word := range wordsUpTo(4, "a", "b") {
			assert.Equal(t, dfa.Accepts(word), minimal.Accepts(word), "word %v", word)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		again := minimal.Minimize()
		assert.Equal(t, minimal.NumStates(), again.NumStates())
	})

	t.Run("OriginalUntouched", func(t *testing.T) {
		assert.Equal(t, 5, dfa.NumStates())
		assert.True(t, dfa.Accepts(Word("a", "b")))
	})
}

func TestMinimizeDistinguishesByFuture(t *testing.T) {
	// even vs odd number of a's: already minimal, nothing may collapse
	even, odd := NewState("even"), NewState("odd")
	a := NewSymbol("a")
	dfa := NewDFA()
	dfa.SetStartState(even)
	dfa.AddFinalState(even)
	assert.NoError(t, dfa.AddTransition(even, a, odd))
	assert.NoError(t, dfa.AddTransition(odd, a, even))

	minimal := dfa.Minimize()
	assert.Equal(t, 2, minimal.NumStates())
	assert.True(t, minimal.Accepts(Word()))
	assert.False(t, minimal.Accepts(Word("a")))
	assert.True(t, minimal.Accepts(Word("a", "a")))
}

func TestMinimizeDropsReachableDeadStates(t *testing.T) {
	s0, s1, s2 := NewState("0"), NewState("1"), NewState("2")
	a, b := NewSymbol("a"), NewSymbol("b")

	// exactly {a}, transitions left partial
	plain := NewDFA()
	plain.SetStartState(s0)
	plain.AddFinalState(s1)
	assert.NoError(t, plain.AddTransition(s0, a, s1))

	// the same language, complete, with every stray edge funneled into the
	// dead state 2
	withDead := NewDFA()
	withDead.SetStartState(s0)
	withDead.AddFinalState(s1)
	for _, edge := range []Transition{
		{s0, a, s1},
		{s0, b, s2},
		{s1, a, s2},
		{s1, b, s2},
		{s2, a, s2},
		{s2, b, s2},
	} {
		assert.NoError(t, withDead.AddTransition(edge.From, edge.By, edge.To))
	}

	minimal := withDead.Minimize()
	assert.Equal(t, 2, minimal.NumStates())
	assert.Equal(t, plain.Minimize().NumStates(), minimal.NumStates())
	assert.True(t, minimal.Accepts(Word("a")))
	assert.False(t, minimal.Accepts(Word("b")))
	assert.False(t, minimal.Accepts(Word("a", "a")))

	t.Run("EquivalenceUnaffectedByDeadStates", func(t *testing.T) {
		assert.True(t, plain.IsEquivalentTo(withDead))
		assert.True(t, withDead.IsEquivalentTo(plain))
	})
}

func TestMinimizeDropsUnreachableStates(t *testing.T) {
	dfa := buildParallelAStarB()
	orphan := NewState("orphan")
	dfa.AddFinalState(orphan)
	assert.NoError(t, dfa.AddTransition(orphan, NewSymbol("a"), orphan))

	minimal := dfa.Minimize()
	assert.Equal(t, 2, minimal.NumStates())
	assert.True(t, minimal.Accepts(Word("b")))
}

func TestMinimizeEmptyLanguage(t *testing.T) {
	s0, s1 := NewState("0"), NewState("1")
	a := NewSymbol("a")
	dfa := NewDFA()
	dfa.SetStartState(s0)
	assert.NoError(t, dfa.AddTransition(s0, a, s1))

	minimal := dfa.Minimize()
	assert.Equal(t, 1, minimal.NumStates())
	assert.Empty(t, minimal.FinalStates())
	assert.False(t, minimal.Accepts(Word()))
	assert.False(t, minimal.Accepts(Word("a")))
	assert.Equal(t, dfa.Symbols(), minimal.Symbols())
}

func TestEpsilonNFAMinimize(t *testing.T) {
	minimal := buildAStarB().Minimize()

	assert.Equal(t, 2, minimal.NumStates())
	assert.True(t, minimal.IsDeterministic())
	assert.True(t, minimal.Accepts(Word("a", "a", "b")))
	assert.True(t, minimal.Accepts(Word("b")))
	assert.False(t, minimal.Accepts(Word("a")))
	assert.False(t, minimal.Accepts(Word("b", "b")))
}
