package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEpsilonNFAToRegex(t *testing.T) {
	t.Run("AStarB", func(t *testing.T) {
		r, err := buildAStarB().ToRegex()
		assert.NoError(t, err)
		assert.True(t, r.Accepts(Word("b")))
		assert.True(t, r.Accepts(Word("a", "a", "b")))
		assert.False(t, r.Accepts(Word("a")))
		assert.False(t, r.Accepts(Word()))
	})

	t.Run("NoFinalStates", func(t *testing.T) {
		enfa := NewEpsilonNFA()
		enfa.AddStartState(NewState("0"))
		enfa.AddTransition(NewState("0"), NewSymbol("a"), NewState("1"))

		r, err := enfa.ToRegex()
		assert.NoError(t, err)
		assert.Equal(t, "", r.String())
		assert.False(t, r.Accepts(Word("a")))
	})

	t.Run("StartIsFinal", func(t *testing.T) {
		enfa := NewEpsilonNFA()
		enfa.AddStartState(NewState("0"))
		enfa.AddFinalState(NewState("0"))
		enfa.AddTransition(NewState("0"), NewSymbol("a"), NewState("0"))

		r, err := enfa.ToRegex()
		assert.NoError(t, err)
		assert.True(t, r.Accepts(Word()))
		assert.True(t, r.Accepts(Word("a")))
		assert.True(t, r.Accepts(Word("a", "a", "a")))
		assert.False(t, r.Accepts(Word("b")))
	})

	t.Run("MultipleFinalStates", func(t *testing.T) {
		s0, s1, s2 := NewState("0"), NewState("1"), NewState("2")
		enfa := NewEpsilonNFA()
		enfa.AddStartState(s0)
		enfa.AddFinalState(s1)
		enfa.AddFinalState(s2)
		enfa.AddTransition(s0, NewSymbol("a"), s1)
		enfa.AddTransition(s0, NewSymbol("b"), s2)

		r, err := enfa.ToRegex()
		assert.NoError(t, err)
		assert.True(t, r.Accepts(Word("a")))
		assert.True(t, r.Accepts(Word("b")))
		assert.False(t, r.Accepts(Word("a", "b")))
	})

	t.Run("MultipleStartStates", func(t *testing.T) {
		s0, s1, s2 := NewState("0"), NewState("1"), NewState("2")
		enfa := NewEpsilonNFA()
		enfa.AddStartState(s0)
		enfa.AddStartState(s1)
		enfa.AddFinalState(s2)
		enfa.AddTransition(s0, NewSymbol("a"), s2)
		enfa.AddTransition(s1, NewSymbol("b"), s2)

		r, err := enfa.ToRegex()
		assert.NoError(t, err)
		assert.True(t, r.Accepts(Word("a")))
		assert.True(t, r.Accepts(Word("b")))
		assert.False(t, r.Accepts(Word()))
	})

	t.Run("ReceiverUntouched", func(t *testing.T) {
		enfa := buildAStarB()
		_, err := enfa.ToRegex()
		assert.NoError(t, err)
		assert.Equal(t, 3, enfa.NumStates())
		assert.Equal(t, 3, enfa.NumTransitions())
		assert.True(t, enfa.Accepts(Word("b")))
	})
}

func TestDFAToRegex(t *testing.T) {
	dfa := buildParallelAStarB()
	r, err := dfa.ToRegex()
	assert.NoError(t, err)
	for _, word := range wordsUpTo(4, "a", "b") {
		assert.Equal(t, dfa.Accepts(word), r.Accepts(word), "word %v", word)
	}
}

func TestToRegexSingleFinalShape(t *testing.T) {
	s0, s1, s2 := NewState("0"), NewState("1"), NewState("2")
	enfa := NewEpsilonNFA()
	enfa.AddStartState(s0)
	enfa.AddFinalState(s1)
	enfa.AddFinalState(s2)

	_, err := enfa.toRegexSingleFinal()
	assert.ErrorIs(t, err, errReductionShape)
}

func TestRegexRoundTrip(t *testing.T) {
	t.Run("Scenario", func(t *testing.T) {
		r := mustParse(t, "a*.(b|c)")
		back, err := r.ToEpsilonNFA().ToRegex()
		assert.NoError(t, err)

		enfa := back.ToEpsilonNFA()
		assert.True(t, enfa.Accepts(Word("a", "a", "b")))
		assert.True(t, enfa.Accepts(Word("b")))
		assert.True(t, enfa.Accepts(Word("c")))
		assert.False(t, enfa.Accepts(Word("a", "a", "d")))
	})

	t.Run("AcceptancePreserved", func(t *testing.T) {
		for _, text := range []string{"a", "a|b", "a*", "a.b*", "(a|b)*.c", "$", "a.$.b"} {
			r := mustParse(t, text)
			back, err := r.ToEpsilonNFA().ToRegex()
			assert.NoError(t, err, "regex %q", text)
			for _, word := range wordsUpTo(3, "a", "b", "c") {
				assert.Equal(t, r.Accepts(word), back.Accepts(word),
					"regex %q word %v", text, word)
			}
		}
	})
}
