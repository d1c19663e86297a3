package automaton

import "errors"

// errReductionShape signals a reduction step called on an automaton that is
// not in single-start, single-final shape.
var errReductionShape = errors.New("state elimination needs exactly one start and one final state")

// ToRegex extracts a regular expression for the automaton's language by
// state elimination. The receiver is never mutated: every elimination runs
// on a private copy. Multiple final states are solved one at a time and the
// results joined by union; multiple start states are first funneled through
// a fresh epsilon start.
func (e *EpsilonNFA) ToRegex() (*Regex, error) {
	if len(e.startStates) == 0 || len(e.finalStates) == 0 {
		return EmptyRegex(), nil
	}
	work := e.Copy()
	if len(work.startStates) > 1 {
		start := work.freshState("Start")
		for old := range e.startStates {
			work.AddTransition(start, Epsilon, old)
			work.RemoveStartState(old)
		}
		work.AddStartState(start)
	}

	var res *Regex
	for _, final := range work.FinalStates() {
		sub := work.Copy()
		for other := range work.finalStates {
			if other != final {
				sub.RemoveFinalState(other)
			}
		}
		part, err := sub.toRegexSingleFinal()
		if err != nil {
			return nil, err
		}
		res = unionOpt(res, part)
	}
	if res == nil {
		res = EmptyRegex()
	}
	return res, nil
}

// ToRegex extracts a regular expression for the automaton's language.
func (d *DFA) ToRegex() (*Regex, error) {
	return d.ToEpsilonNFA().ToRegex()
}

// toRegexSingleFinal reduces an automaton with exactly one start and one
// final state: interior states are eliminated one by one, folding their
// incoming/outgoing paths (and starred self-loop) into direct edges, until
// only start and final remain; the surviving edges are then combined with
// the closed form
//
//	L = (s2s | s2e.e2e*.e2s)* . s2e . e2e*
//
// where an absent edge is nil, distinct from the epsilon identity.
func (e *EpsilonNFA) toRegexSingleFinal() (*Regex, error) {
	if len(e.startStates) != 1 || len(e.finalStates) != 1 {
		return nil, errReductionShape
	}
	start := e.StartStates()[0]
	final := e.FinalStates()[0]

	edges := newRegexEdges(e)
	for _, state := range e.States() {
		if state == start || state == final {
			continue
		}
		edges.eliminate(state)
	}

	if start == final {
		if loop := edges.label(start, start); loop != nil {
			return loop.KleeneStar(), nil
		}
		return EpsilonRegex(), nil
	}

	s2s := edges.label(start, start)
	s2e := edges.label(start, final)
	e2s := edges.label(final, start)
	e2e := edges.label(final, final)
	if s2e == nil {
		// The final state is unreachable once everything else is
		// folded away.
		return EmptyRegex(), nil
	}
	var cross *Regex
	if e2s != nil {
		cross = concatOpt(s2e, starOpt(e2e), e2s)
	}
	var loopPart *Regex
	if body := unionOpt(s2s, cross); body != nil {
		loopPart = body.KleeneStar()
	}
	return concatOpt(loopPart, s2e, starOpt(e2e)), nil
}

// regexEdges is the working graph of state elimination: at most one
// regex-labeled edge per ordered state pair, parallel edges pre-merged by
// union.
type regexEdges struct {
	labels map[State]map[State]*Regex
}

func newRegexEdges(e *EpsilonNFA) *regexEdges {
	g := &regexEdges{labels: make(map[State]map[State]*Regex)}
	for _, t := range e.Transitions() {
		g.merge(t.From, t.To, SymbolRegex(t.By))
	}
	return g
}

func (g *regexEdges) label(from, to State) *Regex {
	return g.labels[from][to]
}

func (g *regexEdges) merge(from, to State, label *Regex) {
	row, ok := g.labels[from]
	if !ok {
		row = make(map[State]*Regex)
		g.labels[from] = row
	}
	row[to] = unionOpt(row[to], label)
}

// eliminate removes one interior state, replacing every path through it with
// a direct edge labeled in.(self)*.out.
func (g *regexEdges) eliminate(state State) {
	self := g.label(state, state)
	mid := starOpt(self)
	outgoing := g.labels[state]
	for from, row := range g.labels {
		if from == state {
			continue
		}
		incoming := row[state]
		if incoming == nil {
			continue
		}
		for to, out := range outgoing {
			if to == state {
				continue
			}
			g.merge(from, to, concatOpt(incoming, mid, out))
		}
	}
	delete(g.labels, state)
	for _, row := range g.labels {
		delete(row, state)
	}
}

// unionOpt joins optional regexes, where nil means "no edge".
func unionOpt(a, b *Regex) *Regex {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return a.Union(b)
}

// concatOpt concatenates, skipping nil identity factors. All-nil yields the
// epsilon identity.
func concatOpt(factors ...*Regex) *Regex {
	var res *Regex
	for _, f := range factors {
		if f == nil {
			continue
		}
		if res == nil {
			res = f
		} else {
			res = res.Concatenate(f)
		}
	}
	if res == nil {
		return EpsilonRegex()
	}
	return res
}

// starOpt stars an optional regex; the star of an absent loop is the
// identity, kept absent.
func starOpt(r *Regex) *Regex {
	if r == nil {
		return nil
	}
	return r.KleeneStar()
}
