package automaton

import "sort"

// Symbol is an immutable input symbol of a finite automaton. Symbols compare
// by value and are usable as map keys. The zero Symbol is not meaningful;
// build symbols with NewSymbol or use Epsilon.
//
// Epsilon is carried as a marker inside the value rather than as a special
// constructed value, so "is this an epsilon edge" is a field check and the
// marker can never collide with a user symbol named "epsilon".
type Symbol struct {
	value   string
	epsilon bool
}

// Epsilon is the distinguished empty-word symbol. It compares equal only to
// itself, may label transitions of an EpsilonNFA, and is never part of an
// automaton's declared input alphabet.
var Epsilon = Symbol{epsilon: true}

// NewSymbol creates a regular (non-epsilon) symbol with the given value.
func NewSymbol(value string) Symbol {
	return Symbol{value: value}
}

// Value returns the symbol's value. For Epsilon it is the empty string.
func (s Symbol) Value() string {
	return s.value
}

// IsEpsilon reports whether this symbol is the epsilon marker.
func (s Symbol) IsEpsilon() bool {
	return s.epsilon
}

func (s Symbol) String() string {
	if s.epsilon {
		return "epsilon"
	}
	return s.value
}

func sortedSymbols(symbols map[Symbol]struct{}) []Symbol {
	res := make([]Symbol, 0, len(symbols))
	for symbol := range symbols {
		res = append(res, symbol)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].value < res[j].value })
	return res
}

// Word builds a word from symbol values. Sugar for tests and callers that
// hold plain strings.
func Word(values ...string) []Symbol {
	word := make([]Symbol, len(values))
	for i, v := range values {
		word[i] = NewSymbol(v)
	}
	return word
}
