package forwardlist

import "cmp"

// EqFunc reports whether two elements are equal.
type EqFunc[T any] func(a, b T) bool

// CmpFunc orders two elements: negative when a sorts before b, zero when
// equal, positive when a sorts after b.
type CmpFunc[T any] func(a, b T) int

// Swap exchanges the contents of a and b in O(1).
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}

// Equal reports whether a and b hold the same elements in the same order.
// It stops at the first mismatch or on a length difference.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with the element equality supplied by eq.
func EqualFunc[T any](a, b *List[T], eq EqFunc[T]) bool {
	if a.size != b.size {
		return false
	}
	na, nb := a.head.next, b.head.next
	for na != nil {
		if !eq(na.value, nb.value) {
			return false
		}
		na, nb = na.next, nb.next
	}
	return true
}

// Compare orders a and b lexicographically: the first unequal element pair
// decides, and if one list is a prefix of the other the shorter one is less.
// The result is -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with the element ordering supplied by compare.
func CompareFunc[T any](a, b *List[T], compare CmpFunc[T]) int {
	na, nb := a.head.next, b.head.next
	for na != nil && nb != nil {
		if c := compare(na.value, nb.value); c != 0 {
			return c
		}
		na, nb = na.next, nb.next
	}
	switch {
	case nb != nil:
		return -1
	case na != nil:
		return +1
	default:
		return 0
	}
}

// Less reports whether a orders strictly before b.
func Less[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual reports whether a orders before b or equals it.
func LessOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return !Less(b, a)
}

// Greater reports whether a orders strictly after b.
func Greater[T cmp.Ordered](a, b *List[T]) bool {
	return Less(b, a)
}

// GreaterOrEqual reports whether a orders after b or equals it.
func GreaterOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return !Less(a, b)
}
