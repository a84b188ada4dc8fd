// Package dllist implements a circular doubly linked list of integers.
//
// The list is a ring closed by a sentinel element that never holds a value:
// the sentinel's next element is the front of the list and its previous element
// is the back. Elements are stored in an arena and linked by index, so removing
// an element only returns its slot to a free list.
//
// To iterate over a list (where l is a *CircularList):
//
//	for _, v := range l.Values() {
//		// do something with v
//	}
package dllist

import (
	"github.com/Invicton-Labs/go-circularlist/log"
	"github.com/Invicton-Labs/go-circularlist/numbers"
	"github.com/google/uuid"
)

// sentinel is the arena index of the ring's sentinel element.
const sentinel = 0

// node is a single element of the ring. The links are arena indices.
type node struct {
	value int
	next  int
	prev  int
}

// CircularList represents a circular doubly linked list of integers.
// The zero value for CircularList is an empty list ready to use.
// A CircularList is not safe for concurrent use.
type CircularList struct {
	// nodes is the arena. nodes[sentinel] is the sentinel, only its next and prev are used.
	nodes []node
	// free holds arena indices of released elements, reused before the arena grows.
	free []int
	// length is the number of elements, excluding the sentinel.
	length int

	capacity   int
	id         string
	baseLogger log.Logger
	logger     log.Logger
}

// Option configures a list created by New.
type Option func(l *CircularList)

// WithLogger sets the logger the list reports to. If not provided, the
// default logger is used.
func WithLogger(logger log.Logger) Option {
	return func(l *CircularList) {
		l.baseLogger = logger
	}
}

// WithCapacity preallocates room for the given number of elements.
func WithCapacity(capacity int) Option {
	return func(l *CircularList) {
		l.capacity = numbers.Max(capacity, 0)
	}
}

// New returns an initialized, empty list.
func New(opts ...Option) *CircularList {
	l := &CircularList{
		id: uuid.New().String(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l.init()
}

// FromValues returns a new list holding the given values in the same order.
func FromValues(values []int, opts ...Option) *CircularList {
	l := New(append([]Option{WithCapacity(len(values))}, opts...)...)
	for i := len(values) - 1; i >= 0; i-- {
		l.InsertFront(values[i])
	}
	return l
}

func (l *CircularList) init() *CircularList {
	l.nodes = make([]node, 1, 1+l.capacity)
	l.nodes[sentinel] = node{next: sentinel, prev: sentinel}
	l.free = nil
	l.length = 0
	return l
}

// lazyInit lazily initializes a zero CircularList value.
func (l *CircularList) lazyInit() {
	if l.nodes == nil {
		l.init()
	}
}

// derive creates a new, empty list that reports to the same logger as l.
func (l *CircularList) derive(capacity int) *CircularList {
	return New(WithLogger(l.baseLogger), WithCapacity(capacity))
}

// ID returns the identifier attached to every log entry of this list.
func (l *CircularList) ID() string {
	if l.id == "" {
		l.id = uuid.New().String()
	}
	return l.id
}

func (l *CircularList) log() log.Logger {
	if l.logger == nil {
		base := l.baseLogger
		if base == nil {
			base = log.Default()
		}
		l.logger = base.With("list_id", l.ID())
	}
	return l.logger
}

// Len returns the number of elements of list l.
// The complexity is O(1).
func (l *CircularList) Len() int { return l.length }

// IsEmpty returns whether the list holds no elements.
func (l *CircularList) IsEmpty() bool { return l.length == 0 }

// alloc takes a slot from the free list, or grows the arena if there is none.
// The returned element is not linked.
func (l *CircularList) alloc(value int) int {
	if n := len(l.free); n > 0 {
		idx := l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[idx] = node{value: value}
		return idx
	}
	l.nodes = append(l.nodes, node{value: value})
	return len(l.nodes) - 1
}

// release returns an unlinked slot to the free list. Once the list is empty
// the whole arena is reclaimed instead.
func (l *CircularList) release(idx int) {
	l.nodes[idx] = node{}
	if l.length == 0 {
		l.nodes = l.nodes[:1]
		l.free = l.free[:0]
		return
	}
	l.free = append(l.free, idx)
}

// insertAfter inserts a new element with value v after at and increments l.length.
func (l *CircularList) insertAfter(v int, at int) int {
	idx := l.alloc(v)
	next := l.nodes[at].next
	l.nodes[idx].prev = at
	l.nodes[idx].next = next
	l.nodes[at].next = idx
	l.nodes[next].prev = idx
	l.length++
	return idx
}

// remove unlinks the element at idx, decrements l.length and releases the slot.
// It returns the element's next index, which is still valid after the removal.
func (l *CircularList) remove(idx int) (next int) {
	prev := l.nodes[idx].prev
	next = l.nodes[idx].next
	l.nodes[prev].next = next
	l.nodes[next].prev = prev
	l.length--
	l.release(idx)
	return next
}

// pushBack appends v after the last element.
func (l *CircularList) pushBack(v int) {
	l.lazyInit()
	l.insertAfter(v, l.nodes[sentinel].prev)
}

// indexAt returns the arena index of the element at position pos, walking
// from whichever end is closer. pos must be within [0, l.length).
func (l *CircularList) indexAt(pos int) int {
	if pos < l.length/2 {
		idx := l.nodes[sentinel].next
		for i := 0; i < pos; i++ {
			idx = l.nodes[idx].next
		}
		return idx
	}
	idx := l.nodes[sentinel].prev
	for i := l.length - 1; i > pos; i-- {
		idx = l.nodes[idx].prev
	}
	return idx
}

// InsertFront inserts a new element with value v at the front of the list.
func (l *CircularList) InsertFront(v int) {
	l.lazyInit()
	l.insertAfter(v, sentinel)
}

// RemoveLast removes the last element of the list and returns its value.
// If the list is empty, found is false.
func (l *CircularList) RemoveLast() (value int, found bool) {
	if l.length == 0 {
		l.log().Debugw("Nothing to remove from empty list")
		return 0, false
	}
	last := l.nodes[sentinel].prev
	value = l.nodes[last].value
	l.remove(last)
	return value, true
}

// Front returns the value of the first element, or false if the list is empty.
func (l *CircularList) Front() (int, bool) {
	if l.length == 0 {
		return 0, false
	}
	return l.nodes[l.nodes[sentinel].next].value, true
}

// Back returns the value of the last element, or false if the list is empty.
func (l *CircularList) Back() (int, bool) {
	if l.length == 0 {
		return 0, false
	}
	return l.nodes[l.nodes[sentinel].prev].value, true
}

// Contains reports whether any element of the list holds v. A nil list
// contains nothing.
func (l *CircularList) Contains(v int) bool {
	if l == nil || l.length == 0 {
		return false
	}
	for idx := l.nodes[sentinel].next; idx != sentinel; idx = l.nodes[idx].next {
		if l.nodes[idx].value == v {
			return true
		}
	}
	return false
}

// Values returns the values of the list from front to back.
func (l *CircularList) Values() []int {
	values := make([]int, 0, l.length)
	if l.length == 0 {
		return values
	}
	for idx := l.nodes[sentinel].next; idx != sentinel; idx = l.nodes[idx].next {
		values = append(values, l.nodes[idx].value)
	}
	return values
}

// ValuesReverse returns the values of the list from back to front, following
// the prev links.
func (l *CircularList) ValuesReverse() []int {
	values := make([]int, 0, l.length)
	if l.length == 0 {
		return values
	}
	for idx := l.nodes[sentinel].prev; idx != sentinel; idx = l.nodes[idx].prev {
		values = append(values, l.nodes[idx].value)
	}
	return values
}

// Clone returns an independent copy of the list.
func (l *CircularList) Clone() *CircularList {
	out := l.derive(l.length)
	if l.length == 0 {
		return out
	}
	for idx := l.nodes[sentinel].next; idx != sentinel; idx = l.nodes[idx].next {
		out.pushBack(l.nodes[idx].value)
	}
	return out
}

// Destroy releases every element and the sentinel. The list can still be
// used afterwards, as an empty list.
func (l *CircularList) Destroy() {
	released := l.length
	l.nodes = nil
	l.free = nil
	l.length = 0
	l.log().Debugw("Destroyed list", "released", released)
}
