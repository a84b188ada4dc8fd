package dllist

import (
	"github.com/Invicton-Labs/go-circularlist/collections"
)

// Difference returns a new list with every distinct value that is in l but
// not in rhs. Values keep the order in which they first appear in l. Neither
// l nor rhs is modified; a nil rhs is treated as an empty list.
func (l *CircularList) Difference(rhs *CircularList) *CircularList {
	return l.filterDistinct(func(v int) bool { return !rhs.Contains(v) })
}

// Intersection returns a new list with every distinct value that is in both l
// and rhs. Values keep the order in which they first appear in l. Neither l
// nor rhs is modified; a nil rhs is treated as an empty list.
func (l *CircularList) Intersection(rhs *CircularList) *CircularList {
	return l.filterDistinct(rhs.Contains)
}

// filterDistinct copies the first occurrence of every value that satisfies
// keep into a new list.
func (l *CircularList) filterDistinct(keep func(v int) bool) *CircularList {
	if l.length == 0 {
		return l.derive(0)
	}
	seen := collections.NewHashMapPreallocated[int](l.length)
	kept := make([]int, 0, l.length)
	for idx := l.nodes[sentinel].next; idx != sentinel; idx = l.nodes[idx].next {
		v := l.nodes[idx].value
		if keep(v) && seen.StoreIfAbsent(v) {
			kept = append(kept, v)
		}
	}
	out := l.derive(len(kept))
	for _, v := range kept {
		out.pushBack(v)
	}
	return out
}
