package forwardlist

// ConstIterator is a read-only position in a list: a non-owning reference to
// the sentinel, a real node, or nothing (the end position). The zero value
// is the end position. Iterators of the same flavor compare with ==; two
// iterators are equal when they reference the same node.
//
// A position stays valid while its node remains in the chain. Erasing a
// node, Clear, and list garbage collection invalidate positions referencing
// the removed nodes.
type ConstIterator[T any] struct {
	n *node[T]
}

// Next returns the position one step forward. Advancing the end position
// panics; advancing BeforeBegin yields Begin.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{n: it.n.next}
}

// Value returns the element at the position. Panics at the end position;
// the value at BeforeBegin is meaningless and must not be read.
func (it ConstIterator[T]) Value() T {
	return it.n.value
}

// IsEnd reports whether the position is past the last element.
func (it ConstIterator[T]) IsEnd() bool {
	return it.n == nil
}

// Iterator is the read-write flavor of ConstIterator: the same position
// representation plus value mutation. It is the anchor type for InsertAfter
// and EraseAfter.
type Iterator[T any] struct {
	ConstIterator[T]
}

// Next returns the position one step forward.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{it.ConstIterator.Next()}
}

// Ref returns a pointer to the element at the position, through which the
// element may be mutated in place.
func (it Iterator[T]) Ref() *T {
	return &it.n.value
}

// Set replaces the element at the position.
func (it Iterator[T]) Set(value T) {
	it.n.value = value
}

// Const returns the read-only view of the position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return it.ConstIterator
}
