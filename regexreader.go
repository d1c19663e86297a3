package automaton

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Textual regex syntax: `|` and `+` for union, `.` or adjacency for
// concatenation, postfix `*`, parentheses, `$` or the bare word `epsilon`
// for the empty word, backslash to escape special characters. Multi-rune
// runs form a single symbol ("abc" is one symbol, not three).

var regexLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Union", Pattern: `[|+]`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Eps", Pattern: `\$`},
	{Name: "Symbol", Pattern: `(\\.|[^\\()|+*.$\s])+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type regexExpr struct {
	First *regexConcat   `parser:"@@"`
	Rest  []*regexConcat `parser:"( Union @@ )*"`
}

type regexConcat struct {
	First *regexFactor   `parser:"@@"`
	Rest  []*regexFactor `parser:"( Dot? @@ )*"`
}

type regexFactor struct {
	Base  *regexAtom `parser:"@@"`
	Stars []string   `parser:"@Star*"`
}

type regexAtom struct {
	Epsilon bool       `parser:"@Eps"`
	Symbol  *string    `parser:"| @Symbol"`
	Group   *regexExpr `parser:"| LParen @@ RParen"`
}

var regexParser = participle.MustBuild[regexExpr](
	participle.Lexer(regexLexer),
	participle.Elide("Whitespace"),
)

// ParseRegex reads a textual regular expression into a Regex tree. The empty
// string is the Empty regex (no words accepted); use "$" for the empty-word
// regex.
func ParseRegex(text string) (*Regex, error) {
	if strings.TrimSpace(text) == "" {
		return EmptyRegex(), nil
	}
	parsed, err := regexParser.ParseString("", text)
	if err != nil {
		return nil, fmt.Errorf("misformed regex %q: %w", text, err)
	}
	return parsed.toRegex(), nil
}

func (e *regexExpr) toRegex() *Regex {
	res := e.First.toRegex()
	for _, term := range e.Rest {
		res = res.Union(term.toRegex())
	}
	return res
}

func (c *regexConcat) toRegex() *Regex {
	res := c.First.toRegex()
	for _, factor := range c.Rest {
		res = res.Concatenate(factor.toRegex())
	}
	return res
}

func (f *regexFactor) toRegex() *Regex {
	res := f.Base.toRegex()
	for range f.Stars {
		res = res.KleeneStar()
	}
	return res
}

func (a *regexAtom) toRegex() *Regex {
	switch {
	case a.Epsilon:
		return EpsilonRegex()
	case a.Symbol != nil:
		value := unescapeSymbolValue(*a.Symbol)
		if *a.Symbol == "epsilon" {
			return EpsilonRegex()
		}
		return SymbolRegex(NewSymbol(value))
	default:
		return a.Group.toRegex()
	}
}

func unescapeSymbolValue(value string) string {
	var b strings.Builder
	escaped := false
	for _, c := range value {
		if escaped {
			b.WriteRune(c)
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}
