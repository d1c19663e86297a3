package automaton

import "github.com/bits-and-blooms/bitset"

// hopcroftProcessingList is the pending-splitter worklist of Hopcroft's
// algorithm: (class, symbol) pairs, deduplicated through a class x symbol
// membership matrix so insert, contains and pop are all O(1) and no pair is
// queued twice simultaneously.
type hopcroftProcessingList struct {
	symbolIndex map[Symbol]int
	numSymbols  int
	inclusion   *bitset.BitSet
	elements    []classSymbolPair
}

type classSymbolPair struct {
	class  int
	symbol Symbol
}

func newHopcroftProcessingList(numClasses int, symbols []Symbol) *hopcroftProcessingList {
	symbolIndex := make(map[Symbol]int, len(symbols))
	for i, symbol := range symbols {
		symbolIndex[symbol] = i
	}
	return &hopcroftProcessingList{
		symbolIndex: symbolIndex,
		numSymbols:  len(symbols),
		inclusion:   bitset.New(uint(numClasses * len(symbols))),
	}
}

func (l *hopcroftProcessingList) bit(class int, symbol Symbol) uint {
	return uint(class*l.numSymbols + l.symbolIndex[symbol])
}

func (l *hopcroftProcessingList) isEmpty() bool {
	return len(l.elements) == 0
}

func (l *hopcroftProcessingList) contains(class int, symbol Symbol) bool {
	return l.inclusion.Test(l.bit(class, symbol))
}

func (l *hopcroftProcessingList) insert(class int, symbol Symbol) {
	l.inclusion.Set(l.bit(class, symbol))
	l.elements = append(l.elements, classSymbolPair{class: class, symbol: symbol})
}

func (l *hopcroftProcessingList) pop() (int, Symbol) {
	last := l.elements[len(l.elements)-1]
	l.elements = l.elements[:len(l.elements)-1]
	l.inclusion.Clear(l.bit(last.class, last.symbol))
	return last.class, last.symbol
}
