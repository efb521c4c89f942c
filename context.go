package ctxiter

// ContextIterator is an iterator carrying a read-only context value.
// Context returns a pointer to the current context view. The pointer is
// stable for the lifetime of an attachment, and the pointee must not be
// mutated: every adaptor in a chain observes the same value.
type ContextIterator[T, C any] interface {
	Iterator[T]
	Context() *C
}

// MapFunc maps element elem to type U.
// ctx is the chain's context; the function must not retain or mutate it.
type MapFunc[T, C, U any] func(elem T, ctx *C) U

// PredicateFunc returns true if elem matches a predicate, given the chain's
// context ctx.
type PredicateFunc[T, C any] func(elem T, ctx *C) bool

// FilterMapFunc maps element elem to type U, or discards it by returning
// false.
type FilterMapFunc[T, C, U any] func(elem T, ctx *C) (U, bool)

// ProjectFunc derives a view of type D from the chain's context.
// It must be pure: the returned pointer is recomputed on every context query
// and must not outlive the context it was derived from.
type ProjectFunc[C, D any] func(ctx *C) *D

// Attach pairs iter with a read-only context value, producing an iterator
// that yields the same elements and additionally exposes the context to
// downstream adaptors. The context is moved in; it is not copied per element.
func Attach[T, C any](iter Iterator[T], context C) *Attached[T, C] {
	return &Attached[T, C]{
		iter:    iter,
		context: context,
	}
}

// Attached is an iterator paired with a context value.
// It is created by Attach.
type Attached[T, C any] struct {
	iter    Iterator[T]
	context C
}

// Next implements Iterator.
func (it *Attached[T, C]) Next() (T, bool) {
	return it.iter.Next()
}

// NextBack pulls from the back of the wrapped iterator.
// It panics if the wrapped iterator is not a ReverseIterator.
func (it *Attached[T, C]) NextBack() (T, bool) {
	return nextBack[T](it.iter)
}

// Context returns the attached context. The pointer is stable across calls.
func (it *Attached[T, C]) Context() *C {
	return &it.context
}

// SizeHint forwards the wrapped iterator's bounds unchanged.
func (it *Attached[T, C]) SizeHint() (lower, upper int, bounded bool) {
	return SizeHint[T](it.iter)
}

// Fused forwards the wrapped iterator's fused guarantee.
func (it *Attached[T, C]) Fused() bool {
	return IsFused[T](it.iter)
}

// Count consumes the iterator and returns the number of remaining elements,
// delegating to the wrapped iterator's fast path if it has one.
func (it *Attached[T, C]) Count() int {
	return Count[T](it.iter)
}

func (it *Attached[T, C]) reversible() bool {
	return IsReversible[T](it.iter)
}
