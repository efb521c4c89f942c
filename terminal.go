package ctxiter

import "iter"

// AccumulatorFunc folds element elem into the accumulator acc, returning
// acc, or a new accumulator.
type AccumulatorFunc[T, A any] func(acc A, elem T) A

// Count consumes it and returns the number of remaining elements.
//
// Iterators that can count faster than pulling every element through the
// chain, such as Filtered and FilterMapped, are counted through their own
// fast path. Counting always pulls from the front.
func Count[T any](it Iterator[T]) int {
	if c, ok := it.(interface{ Count() int }); ok {
		return c.Count()
	}

	count := 0

	for _, ok := it.Next(); ok; _, ok = it.Next() {
		count++
	}

	return count
}

// Each calls each for every element produced by it, in order, consuming it.
func Each[T any](it Iterator[T], each func(elem T)) {
	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		each(elem)
	}
}

// Reduce calls reduce for each element produced by it, folding it into
// accumulator acc, returning the final accumulator.
func Reduce[T, A any](it Iterator[T], acc A, reduce AccumulatorFunc[T, A]) A {
	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		acc = reduce(acc, elem)
	}

	return acc
}

// AnyMatch returns true as soon as pred returns true for an element produced
// by it. It stops pulling at the first match, leaving the remaining elements
// in the iterator.
func AnyMatch[T any](it Iterator[T], pred func(elem T) bool) bool {
	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		if pred(elem) {
			return true
		}
	}

	return false
}

// AllMatch returns true if pred returns true for all elements produced by
// it. It stops pulling at the first mismatch, leaving the remaining elements
// in the iterator.
func AllMatch[T any](it Iterator[T], pred func(elem T) bool) bool {
	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		if !pred(elem) {
			return false
		}
	}

	return true
}

// Values returns a push sequence producing the remaining elements of it, for
// use with range-over-func and the stdlib iter ecosystem. The sequence is
// single-use: it drains the iterator.
func Values[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for elem, ok := it.Next(); ok; elem, ok = it.Next() {
			if !yield(elem) {
				return
			}
		}
	}
}
