// Package forwardlist provides a generic singly-linked list with forward
// iterators and position-anchored mutation in the insert-after style.
//
// The list keeps a sentinel head node that never holds a value, so inserting
// or erasing at the front goes through the same path as anywhere else: every
// structural change is "insert/erase the node after position P", and the
// position before the first element is BeforeBegin.
//
// The zero value of List is an empty list ready to use. A List must not be
// copied by value after first use; use Clone.
//
// Lists are not safe for concurrent use. Callers mutating a list from
// multiple goroutines, or mutating while traversing, must synchronize
// externally.
package forwardlist

import "iter"

type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly-linked list of values of type T.
type List[T any] struct {
	head node[T] // sentinel, value never set
	size int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of returns a list holding values in the given order.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	l.pushFrontReversed(values)
	return l
}

// Collect drains seq into a new list, preserving sequence order.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	var buf []T
	for v := range seq {
		buf = append(buf, v)
	}
	l := New[T]()
	l.pushFrontReversed(buf)
	return l
}

// pushFrontReversed prepends buf back to front, so the list ends up in buf
// order. Buffering first means any forward-only source can feed a list.
func (l *List[T]) pushFrontReversed(buf []T) {
	for i := len(buf) - 1; i >= 0; i-- {
		l.PushFront(buf[i])
	}
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// PushFront inserts value as the new first element.
func (l *List[T]) PushFront(value T) {
	l.head.next = &node[T]{value: value, next: l.head.next}
	l.size++
}

// PopFront removes the first element. Panics if the list is empty.
// Iterators to the removed element are invalidated.
func (l *List[T]) PopFront() {
	first := l.head.next
	if first == nil {
		panic("forwardlist: PopFront on empty list")
	}
	l.head.next = first.next
	first.next = nil
	l.size--
}

// InsertAfter splices a new node holding value immediately after pos and
// returns the position of the new node. pos must reference the sentinel or a
// live element of this list; inserting after End panics. O(1), existing
// nodes are not moved.
func (l *List[T]) InsertAfter(pos Iterator[T], value T) Iterator[T] {
	if pos.n == nil {
		panic("forwardlist: InsertAfter at end position")
	}
	n := &node[T]{value: value, next: pos.n.next}
	pos.n.next = n
	l.size++
	return Iterator[T]{ConstIterator[T]{n: n}}
}

// EraseAfter removes the node immediately following pos and returns the
// position now following pos (End if none). The node after pos must exist.
// Iterators to the removed node are invalidated. O(1).
func (l *List[T]) EraseAfter(pos Iterator[T]) Iterator[T] {
	if pos.n == nil {
		panic("forwardlist: EraseAfter at end position")
	}
	doomed := pos.n.next
	if doomed == nil {
		panic("forwardlist: EraseAfter with no element to erase")
	}
	pos.n.next = doomed.next
	doomed.next = nil
	l.size--
	return Iterator[T]{ConstIterator[T]{n: pos.n.next}}
}

// Clear removes all elements. Links between removed nodes are severed so
// they do not keep each other reachable. All iterators into the list are
// invalidated except BeforeBegin.
func (l *List[T]) Clear() {
	n := l.head.next
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
	l.head.next = nil
	l.size = 0
}

// Clone returns an independent copy: equal elements in equal order, no
// shared nodes.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	tail := &c.head
	for n := l.head.next; n != nil; n = n.next {
		tail.next = &node[T]{value: n.value}
		tail = tail.next
	}
	c.size = l.size
	return c
}

// Assign replaces l's contents with a copy of other, via copy-and-swap: a
// full clone is built first, then exchanged with l's state in one step.
// Assigning a list to itself leaves it unchanged.
func (l *List[T]) Assign(other *List[T]) {
	if l == other {
		return
	}
	l.Swap(other.Clone())
}

// Swap exchanges the contents of l and other in O(1). No node is copied or
// moved; iterators keep referencing their nodes, which now belong to the
// other list. BeforeBegin positions stay with their original list.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// BeforeBegin returns the position before the first element. It references
// the sentinel and must not be dereferenced; it is the anchor for
// InsertAfter/EraseAfter at the front.
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{ConstIterator[T]{n: &l.head}}
}

// Begin returns the position of the first element, or End if empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{ConstIterator[T]{n: l.head.next}}
}

// End returns the past-the-end position. It must not be advanced or
// dereferenced.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// CBeforeBegin is the read-only flavor of BeforeBegin.
func (l *List[T]) CBeforeBegin() ConstIterator[T] {
	return ConstIterator[T]{n: &l.head}
}

// CBegin is the read-only flavor of Begin.
func (l *List[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{n: l.head.next}
}

// CEnd is the read-only flavor of End.
func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// All returns a forward traversal of the elements for use with range. The
// sequence can be ranged over any number of times; it reads the live list,
// so the list must not be mutated during a pass.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the elements as a slice, front to back.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for n := l.head.next; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}
