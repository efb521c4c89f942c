package ctxiter

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Range returns an iterator producing the integers in the half-open interval
// [start, end), in increasing order. An empty range (start >= end) is
// exhausted immediately.
//
// The result is reversible, fused, and knows its exact remaining count.
func Range[T constraints.Integer](start, end T) *RangeIter[T] {
	if start > end {
		start = end
	}

	return &RangeIter[T]{
		start: start,
		end:   end,
	}
}

// RangeIter is the iterator produced by Range.
type RangeIter[T constraints.Integer] struct {
	start T
	end   T
}

// Next implements Iterator.
func (it *RangeIter[T]) Next() (T, bool) {
	if it.start >= it.end {
		var zero T
		return zero, false
	}

	elem := it.start
	it.start++

	return elem, true
}

// NextBack implements ReverseIterator.
func (it *RangeIter[T]) NextBack() (T, bool) {
	if it.start >= it.end {
		var zero T
		return zero, false
	}

	it.end--

	return it.end, true
}

// SizeHint reports the exact remaining count.
func (it *RangeIter[T]) SizeHint() (lower, upper int, bounded bool) {
	n := int(it.end - it.start)
	return n, n, true
}

// Fused implements the fused guarantee: an exhausted range stays exhausted.
func (it *RangeIter[T]) Fused() bool {
	return true
}

// Count consumes the iterator and returns the remaining count.
func (it *RangeIter[T]) Count() int {
	n := int(it.end - it.start)
	it.start = it.end

	return n
}

// FromSlice returns an iterator producing the elements of elems, in order.
// The slice is not copied; it must not be mutated while the iterator is in
// use.
//
// The result is reversible, fused, and knows its exact remaining count.
func FromSlice[T any](elems []T) *SliceIter[T] {
	return &SliceIter[T]{
		elems: elems,
		back:  len(elems),
	}
}

// SliceIter is the iterator produced by FromSlice.
type SliceIter[T any] struct {
	elems []T
	front int
	back  int
}

// Next implements Iterator.
func (it *SliceIter[T]) Next() (T, bool) {
	if it.front >= it.back {
		var zero T
		return zero, false
	}

	elem := it.elems[it.front]
	it.front++

	return elem, true
}

// NextBack implements ReverseIterator.
func (it *SliceIter[T]) NextBack() (T, bool) {
	if it.front >= it.back {
		var zero T
		return zero, false
	}

	it.back--

	return it.elems[it.back], true
}

// SizeHint reports the exact remaining count.
func (it *SliceIter[T]) SizeHint() (lower, upper int, bounded bool) {
	n := it.back - it.front
	return n, n, true
}

// Fused implements the fused guarantee.
func (it *SliceIter[T]) Fused() bool {
	return true
}

// Count consumes the iterator and returns the remaining count.
func (it *SliceIter[T]) Count() int {
	n := it.back - it.front
	it.front = it.back

	return n
}

// FromSeq returns an iterator producing the elements of the push sequence
// seq, in order, converting it to the pull model via iter.Pull.
//
// The result is fused but not reversible, and reports no size bounds. If the
// iterator is abandoned before exhaustion, call Stop to release the
// underlying coroutine.
func FromSeq[T any](seq iter.Seq[T]) *SeqIter[T] {
	next, stop := iter.Pull(seq)

	return &SeqIter[T]{
		next: next,
		stop: stop,
	}
}

// SeqIter is the iterator produced by FromSeq.
type SeqIter[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

// Next implements Iterator.
func (it *SeqIter[T]) Next() (T, bool) {
	if it.done {
		var zero T
		return zero, false
	}

	elem, ok := it.next()
	if !ok {
		it.Stop()
		return elem, false
	}

	return elem, true
}

// Stop releases the underlying sequence. Subsequent pulls report exhaustion.
func (it *SeqIter[T]) Stop() {
	if it.done {
		return
	}

	it.done = true
	it.stop()
}

// Fused implements the fused guarantee: exhaustion is latched.
func (it *SeqIter[T]) Fused() bool {
	return true
}

// Generate returns an unbounded iterator that produces fn() on every pull.
func Generate[T any](fn func() T) *GeneratorIter[T] {
	return &GeneratorIter[T]{fn: fn}
}

// GeneratorIter is the iterator produced by Generate.
// It never reports exhaustion and advertises no size bounds.
type GeneratorIter[T any] struct {
	fn func() T
}

// Next implements Iterator.
func (it *GeneratorIter[T]) Next() (T, bool) {
	return it.fn(), true
}
