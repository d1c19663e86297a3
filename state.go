package automaton

import (
	"sort"
	"strings"
)

// State is an immutable state of a finite automaton. States compare by value
// and are usable as map keys. New automata built by conversions mint
// composite states with mergeStates so that equal sets of source states
// always produce the identical merged state.
type State struct {
	value string
}

// NewState creates a state with the given value.
func NewState(value string) State {
	return State{value: value}
}

// Value returns the state's value.
func (s State) Value() string {
	return s.value
}

func (s State) String() string {
	return s.value
}

// mergeStates builds the composite state for a set of states. Values are
// sorted and deduplicated before joining, so the result is a deterministic
// function of the set contents; the determinization worklist relies on this
// to recognize already-processed subsets.
func mergeStates(states map[State]struct{}) State {
	values := make([]string, 0, len(states))
	for state := range states {
		values = append(values, state.value)
	}
	sort.Strings(values)
	return State{value: strings.Join(values, ";")}
}

func copyStateSet(states map[State]struct{}) map[State]struct{} {
	res := make(map[State]struct{}, len(states))
	for state := range states {
		res[state] = struct{}{}
	}
	return res
}

func sortedStates(states map[State]struct{}) []State {
	res := make([]State, 0, len(states))
	for state := range states {
		res = append(res, state)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].value < res[j].value })
	return res
}
