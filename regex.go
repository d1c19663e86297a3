package automaton

import "strings"

type regexOp int

const (
	opEmpty regexOp = iota
	opEpsilon
	opSymbol
	opConcat
	opUnion
	opStar
)

// Regex is the tree form of a regular expression: Symbol, Epsilon and Empty
// leaves combined by Concatenation, Union and KleeneStar. Regexes are
// immutable; combinators build new trees sharing subtrees.
type Regex struct {
	op     regexOp
	symbol Symbol
	left   *Regex
	right  *Regex
}

// EmptyRegex returns the regex of the empty language.
func EmptyRegex() *Regex {
	return &Regex{op: opEmpty}
}

// EpsilonRegex returns the regex accepting exactly the empty word.
func EpsilonRegex() *Regex {
	return &Regex{op: opEpsilon}
}

// SymbolRegex returns the regex accepting exactly the given symbol. The
// Epsilon symbol yields the epsilon regex.
func SymbolRegex(symbol Symbol) *Regex {
	if symbol.IsEpsilon() {
		return EpsilonRegex()
	}
	return &Regex{op: opSymbol, symbol: symbol}
}

// Union returns the regex accepting the union of both languages.
func (r *Regex) Union(other *Regex) *Regex {
	return &Regex{op: opUnion, left: r, right: other}
}

// Concatenate returns the regex accepting the concatenation of both
// languages.
func (r *Regex) Concatenate(other *Regex) *Regex {
	return &Regex{op: opConcat, left: r, right: other}
}

// KleeneStar returns the regex accepting zero or more repetitions.
func (r *Regex) KleeneStar() *Regex {
	return &Regex{op: opStar, left: r}
}

// Accepts reports whether the word belongs to the regex's language. Thin
// wrapper over the Thompson-built automaton.
func (r *Regex) Accepts(word []Symbol) bool {
	return r.ToEpsilonNFA().Accepts(word)
}

// String returns a textual form readable back by ParseRegex. The syntax has
// no empty-language literal beyond the empty string, so Empty subtrees are
// folded away first: Empty absorbs concatenation, is the identity of union,
// and its star is epsilon. Special characters inside symbol values are
// escaped.
func (r *Regex) String() string {
	switch r.op {
	case opEmpty:
		return ""
	case opEpsilon:
		return "$"
	case opSymbol:
		return escapeSymbolValue(r.symbol.Value())
	case opConcat:
		if r.isEmptyLanguage() {
			return ""
		}
		return "(" + r.left.String() + "." + r.right.String() + ")"
	case opUnion:
		switch {
		case r.left.isEmptyLanguage():
			return r.right.String()
		case r.right.isEmptyLanguage():
			return r.left.String()
		}
		return "(" + r.left.String() + "|" + r.right.String() + ")"
	case opStar:
		if r.left.isEmptyLanguage() {
			return "$"
		}
		return "(" + r.left.String() + ")*"
	default:
		return ""
	}
}

// isEmptyLanguage reports whether the tree denotes the empty language,
// without building an automaton: an Empty leaf, a concatenation with an
// empty factor, or a union of two empty sides.
func (r *Regex) isEmptyLanguage() bool {
	switch r.op {
	case opEmpty:
		return true
	case opConcat:
		return r.left.isEmptyLanguage() || r.right.isEmptyLanguage()
	case opUnion:
		return r.left.isEmptyLanguage() && r.right.isEmptyLanguage()
	default:
		return false
	}
}

func escapeSymbolValue(value string) string {
	var b strings.Builder
	for _, c := range value {
		if strings.ContainsRune(`()|+*.$\`, c) {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}
