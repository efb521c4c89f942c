package ctxiter

// Iterator is a pull-based sequence of elements.
// Next returns the next element from the front of the sequence,
// or false once the sequence is exhausted.
type Iterator[T any] interface {
	Next() (T, bool)
}

// ReverseIterator is an iterator that can also produce elements from the back
// of the sequence. Front and back pulls consume from the same remaining
// elements: once they meet, the iterator is exhausted in both directions.
type ReverseIterator[T any] interface {
	Iterator[T]
	NextBack() (T, bool)
}

// SizeHinter is implemented by iterators that can bound the number of
// remaining elements. lower is always a valid lower bound. upper is a valid
// upper bound only if bounded is true; otherwise the iterator may produce
// any number of further elements.
//
// An iterator whose lower and upper bounds are equal (and bounded) reports an
// exact remaining count; see Len.
type SizeHinter interface {
	SizeHint() (lower, upper int, bounded bool)
}

// SizeHint probes it for size information.
// Iterators that do not implement SizeHinter report no bounds at all.
func SizeHint[T any](it Iterator[T]) (lower, upper int, bounded bool) {
	if h, ok := it.(SizeHinter); ok {
		return h.SizeHint()
	}

	return 0, 0, false
}

// Len returns the exact number of remaining elements, if the iterator knows
// it precisely. The iterator is not consumed.
func Len[T any](it Iterator[T]) (int, bool) {
	lower, upper, bounded := SizeHint(it)
	if bounded && lower == upper {
		return lower, true
	}

	return 0, false
}

// IsFused reports whether it guarantees to keep reporting exhaustion once
// Next has returned false. Iterators advertise the guarantee through a
// Fused() bool method.
func IsFused[T any](it Iterator[T]) bool {
	f, ok := it.(interface{ Fused() bool })
	return ok && f.Fused()
}

// IsReversible reports whether it supports pulling elements from the back.
// For adaptor chains built by this package, the answer is true only if every
// layer down to the base sequence supports it.
func IsReversible[T any](it Iterator[T]) bool {
	if p, ok := it.(interface{ reversible() bool }); ok {
		return p.reversible()
	}

	_, ok := it.(ReverseIterator[T])

	return ok
}

// nextBack pulls from the back of it.
// The adaptors defer the reversibility check to the first back pull: calling
// NextBack on a chain whose base is not a ReverseIterator panics.
func nextBack[T any](it Iterator[T]) (T, bool) {
	rev, ok := it.(ReverseIterator[T])
	if !ok {
		panic("ctxiter: iterator does not support reverse iteration")
	}

	return rev.NextBack()
}
