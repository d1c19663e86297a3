package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDeterministic(t *testing.T) {
	enfa := buildAStarB()
	dfa := enfa.ToDeterministic()

	t.Run("SubsetNaming", func(t *testing.T) {
		start, ok := dfa.StartState()
		assert.True(t, ok)
		assert.Equal(t, NewState("0;1"), start)
		assert.LessOrEqual(t, dfa.NumStates(), 3)
		assert.GreaterOrEqual(t, dfa.NumStates(), 2)
	})

	t.Run("AcceptsSameWords", func(t *testing.T) {
		assert.True(t, dfa.Accepts(Word("a", "a", "b")))
		assert.True(t, dfa.Accepts(Word("b")))
		assert.False(t, dfa.Accepts(Word("a")))
		assert.False(t, dfa.Accepts(Word()))
	})

	t.Run("LanguagePreserved", func(t *testing.T) {
		for _, word := range wordsUpTo(3, "a", "b") {
			assert.Equal(t, enfa.Accepts(word), dfa.Accepts(word), "word %v", word)
		}
	})

	t.Run("AlphabetCarriedOver", func(t *testing.T) {
		assert.Equal(t, enfa.Symbols(), dfa.Symbols())
	})

	t.Run("ResultRoundTrips", func(t *testing.T) {
		back := dfa.ToEpsilonNFA()
		assert.True(t, back.IsDeterministic())
		assert.True(t, back.Accepts(Word("b")))
		assert.False(t, back.Accepts(Word("a")))
	})
}

func TestToDeterministicMergesBranches(t *testing.T) {
	// two nondeterministic a-branches that only later disagree
	s0, s1, s2, s3 := NewState("0"), NewState("1"), NewState("2"), NewState("3")
	a, b := NewSymbol("a"), NewSymbol("b")
	enfa := NewEpsilonNFA()
	enfa.AddStartState(s0)
	enfa.AddFinalState(s3)
	enfa.AddTransition(s0, a, s1)
	enfa.AddTransition(s0, a, s2)
	enfa.AddTransition(s1, b, s3)
	enfa.AddTransition(s2, a, s3)

	dfa := enfa.ToDeterministic()
	assert.True(t, dfa.Accepts(Word("a", "b")))
	assert.True(t, dfa.Accepts(Word("a", "a")))
	assert.False(t, dfa.Accepts(Word("a")))
	assert.False(t, dfa.Accepts(Word("b")))

	next, ok := dfa.Step(NewState("0"), a)
	assert.True(t, ok)
	assert.Equal(t, NewState("1;2"), next)
}

func TestToDeterministicNoStartStates(t *testing.T) {
	enfa := NewEpsilonNFA()
	enfa.AddFinalState(NewState("f"))
	enfa.AddTransition(NewState("s"), NewSymbol("a"), NewState("f"))

	dfa := enfa.ToDeterministic()
	assert.False(t, dfa.Accepts(Word()))
	assert.False(t, dfa.Accepts(Word("a")))
}

func TestNFAToDeterministic(t *testing.T) {
	s0, s1 := NewState("0"), NewState("1")
	a := NewSymbol("a")
	nfa := NewNFA()
	nfa.AddStartState(s0)
	nfa.AddFinalState(s1)
	assert.NoError(t, nfa.AddTransition(s0, a, s0))
	assert.NoError(t, nfa.AddTransition(s0, a, s1))

	dfa := nfa.ToDeterministic()
	assert.True(t, dfa.Accepts(Word("a")))
	assert.True(t, dfa.Accepts(Word("a", "a", "a")))
	assert.False(t, dfa.Accepts(Word()))
}

// wordsUpTo enumerates every word over the given values with length at most
// maxLength, the empty word included.
func wordsUpTo(maxLength int, values ...string) [][]Symbol {
	words := [][]Symbol{{}}
	previous := [][]Symbol{{}}
	for length := 1; length <= maxLength; length++ {
		var next [][]Symbol
		for _, word := range previous {
			for _, value := range values {
				extended := append(append([]Symbol{}, word...), NewSymbol(value))
				next = append(next, extended)
			}
		}
		words = append(words, next...)
		previous = next
	}
	return words
}
