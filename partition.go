package automaton

import "container/list"

// partition tracks the equivalence classes refined by Hopcroft's algorithm.
// Classes are numbered; each is a doubly-linked list of states so a state
// can be moved to another class in O(1). Every state belongs to exactly one
// class at all times, and splitting always mints a fresh class index.
type partition struct {
	classIndex map[State]int           // state -> class number
	place      map[State]*list.Element // state -> its node, for O(1) removal
	classes    []*list.List
}

func newPartition() *partition {
	return &partition{
		classIndex: make(map[State]int),
		place:      make(map[State]*list.Element),
	}
}

func (p *partition) numClasses() int {
	return len(p.classes)
}

func (p *partition) classSize(index int) int {
	return p.classes[index].Len()
}

// addClass creates a new class from the given states and returns its index.
func (p *partition) addClass(members []State) int {
	index := len(p.classes)
	class := list.New()
	p.classes = append(p.classes, class)
	for _, member := range members {
		p.classIndex[member] = index
		p.place[member] = class.PushBack(member)
	}
	return index
}

// moveToNewClass removes the given states from their current classes and
// gathers them in a freshly numbered class.
func (p *partition) moveToNewClass(members []State) int {
	for _, member := range members {
		p.classes[p.classIndex[member]].Remove(p.place[member])
	}
	return p.addClass(members)
}

// classOf returns the class number the state currently belongs to.
func (p *partition) classOf(state State) int {
	return p.classIndex[state]
}

// members returns the states of a class in list order.
func (p *partition) members(index int) []State {
	res := make([]State, 0, p.classes[index].Len())
	for e := p.classes[index].Front(); e != nil; e = e.Next() {
		res = append(res, e.Value.(State))
	}
	return res
}

// validSets returns the classes that the given set properly splits: classes
// with at least one member inside the set and at least one outside.
func (p *partition) validSets(inverse []State) []int {
	counts := make([]int, len(p.classes))
	for _, state := range inverse {
		counts[p.classIndex[state]]++
	}
	var res []int
	for index, count := range counts {
		if count != 0 && count != p.classes[index].Len() {
			res = append(res, index)
		}
	}
	return res
}

// split divides class toSplit against the splitter set: members inside the
// splitter keep their class number, members outside move to a fresh class
// whose index is returned. The caller guarantees a proper split.
func (p *partition) split(toSplit int, splitter map[State]struct{}) int {
	var kicked []State
	for _, member := range p.members(toSplit) {
		if _, ok := splitter[member]; !ok {
			kicked = append(kicked, member)
		}
	}
	return p.moveToNewClass(kicked)
}

// groups returns the members of every class.
func (p *partition) groups() [][]State {
	res := make([][]State, len(p.classes))
	for i := range p.classes {
		res[i] = p.members(i)
	}
	return res
}
