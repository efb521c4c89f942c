package ctxiter

// Map returns an iterator that calls mapp for each element produced by iter,
// mapping it to type U. The chain's context is passed to every call and
// exposed unchanged on the result.
//
// Size bounds, reversibility, and the fused guarantee of iter are preserved.
func Map[T, C, U any](iter ContextIterator[T, C], mapp MapFunc[T, C, U]) *Mapped[T, C, U] {
	return &Mapped[T, C, U]{
		iter: iter,
		mapp: mapp,
	}
}

// Mapped is the iterator produced by Map.
type Mapped[T, C, U any] struct {
	iter ContextIterator[T, C]
	mapp MapFunc[T, C, U]
}

// Next implements Iterator.
func (it *Mapped[T, C, U]) Next() (U, bool) {
	elem, ok := it.iter.Next()
	if !ok {
		var zero U
		return zero, false
	}

	return it.mapp(elem, it.iter.Context()), true
}

// NextBack pulls from the back of the wrapped iterator and maps the element.
// It panics if the wrapped chain is not reversible.
func (it *Mapped[T, C, U]) NextBack() (U, bool) {
	elem, ok := nextBack[T](it.iter)
	if !ok {
		var zero U
		return zero, false
	}

	return it.mapp(elem, it.iter.Context()), true
}

// Context returns the wrapped iterator's context.
func (it *Mapped[T, C, U]) Context() *C {
	return it.iter.Context()
}

// SizeHint forwards the wrapped iterator's bounds unchanged: mapping is
// one-to-one.
func (it *Mapped[T, C, U]) SizeHint() (lower, upper int, bounded bool) {
	return SizeHint[T](it.iter)
}

// Fused forwards the wrapped iterator's fused guarantee.
func (it *Mapped[T, C, U]) Fused() bool {
	return IsFused[T](it.iter)
}

func (it *Mapped[T, C, U]) reversible() bool {
	return IsReversible[T](it.iter)
}

// Filter returns an iterator that calls pred for each element produced by
// iter, and only produces elements for which pred returns true. The chain's
// context is passed to every call and exposed unchanged on the result.
//
// The result never knows its exact remaining count: rejected elements are
// consumed and discarded, so only the wrapped iterator's upper bound
// survives. Reversibility and the fused guarantee are preserved.
func Filter[T, C any](iter ContextIterator[T, C], pred PredicateFunc[T, C]) *Filtered[T, C] {
	return &Filtered[T, C]{
		iter: iter,
		pred: pred,
	}
}

// Filtered is the iterator produced by Filter.
type Filtered[T, C any] struct {
	iter ContextIterator[T, C]
	pred PredicateFunc[T, C]
}

// Next implements Iterator. It pulls from the wrapped iterator until an
// element matches pred, or the wrapped iterator is exhausted.
func (it *Filtered[T, C]) Next() (T, bool) {
	for {
		elem, ok := it.iter.Next()
		if !ok {
			var zero T
			return zero, false
		}

		if it.pred(elem, it.iter.Context()) {
			return elem, true
		}
	}
}

// NextBack mirrors Next from the back of the wrapped iterator.
// It panics if the wrapped chain is not reversible.
func (it *Filtered[T, C]) NextBack() (T, bool) {
	for {
		elem, ok := nextBack[T](it.iter)
		if !ok {
			var zero T
			return zero, false
		}

		if it.pred(elem, it.iter.Context()) {
			return elem, true
		}
	}
}

// Context returns the wrapped iterator's context.
func (it *Filtered[T, C]) Context() *C {
	return it.iter.Context()
}

// SizeHint reports a zero lower bound and the wrapped iterator's upper
// bound: any number of elements may be rejected.
func (it *Filtered[T, C]) SizeHint() (lower, upper int, bounded bool) {
	_, upper, bounded = SizeHint[T](it.iter)
	return 0, upper, bounded
}

// Fused forwards the wrapped iterator's fused guarantee.
func (it *Filtered[T, C]) Fused() bool {
	return IsFused[T](it.iter)
}

// Count consumes the iterator and returns the number of elements matching
// pred, without handing the rejected elements through the generic pull
// machinery one at a time.
func (it *Filtered[T, C]) Count() int {
	count := 0

	for {
		elem, ok := it.iter.Next()
		if !ok {
			return count
		}

		if it.pred(elem, it.iter.Context()) {
			count++
		}
	}
}

func (it *Filtered[T, C]) reversible() bool {
	return IsReversible[T](it.iter)
}

// FilterMap returns an iterator that calls mapp for each element produced by
// iter, producing the mapped values for which mapp reports true, in the
// wrapped iterator's order. The chain's context is passed to every call and
// exposed unchanged on the result.
//
// Structural guarantees are those of Filter: the exact remaining count is
// lost, reversibility and the fused guarantee survive.
func FilterMap[T, C, U any](iter ContextIterator[T, C], mapp FilterMapFunc[T, C, U]) *FilterMapped[T, C, U] {
	return &FilterMapped[T, C, U]{
		iter: iter,
		mapp: mapp,
	}
}

// FilterMapped is the iterator produced by FilterMap.
type FilterMapped[T, C, U any] struct {
	iter ContextIterator[T, C]
	mapp FilterMapFunc[T, C, U]
}

// Next implements Iterator. It pulls from the wrapped iterator until mapp
// produces a value, or the wrapped iterator is exhausted.
func (it *FilterMapped[T, C, U]) Next() (U, bool) {
	for {
		elem, ok := it.iter.Next()
		if !ok {
			var zero U
			return zero, false
		}

		if mapped, ok := it.mapp(elem, it.iter.Context()); ok {
			return mapped, true
		}
	}
}

// NextBack mirrors Next from the back of the wrapped iterator.
// It panics if the wrapped chain is not reversible.
func (it *FilterMapped[T, C, U]) NextBack() (U, bool) {
	for {
		elem, ok := nextBack[T](it.iter)
		if !ok {
			var zero U
			return zero, false
		}

		if mapped, ok := it.mapp(elem, it.iter.Context()); ok {
			return mapped, true
		}
	}
}

// Context returns the wrapped iterator's context.
func (it *FilterMapped[T, C, U]) Context() *C {
	return it.iter.Context()
}

// SizeHint reports a zero lower bound and the wrapped iterator's upper
// bound.
func (it *FilterMapped[T, C, U]) SizeHint() (lower, upper int, bounded bool) {
	_, upper, bounded = SizeHint[T](it.iter)
	return 0, upper, bounded
}

// Fused forwards the wrapped iterator's fused guarantee.
func (it *FilterMapped[T, C, U]) Fused() bool {
	return IsFused[T](it.iter)
}

// Count consumes the iterator and returns the number of elements mapp
// accepts, without materializing the mapped values.
func (it *FilterMapped[T, C, U]) Count() int {
	count := 0

	for {
		elem, ok := it.iter.Next()
		if !ok {
			return count
		}

		if _, ok := it.mapp(elem, it.iter.Context()); ok {
			count++
		}
	}
}

func (it *FilterMapped[T, C, U]) reversible() bool {
	return IsReversible[T](it.iter)
}

// MapContext returns an iterator producing the same elements as iter, whose
// context is the view derived by project from the wrapped context. The
// projection runs on every Context call, so the view always reflects the
// wrapped iterator's current context; it is never cached.
//
// Size bounds, reversibility, the fused guarantee, and the bulk-count fast
// path of iter are preserved: the element stream is untouched.
func MapContext[T, C, D any](iter ContextIterator[T, C], project ProjectFunc[C, D]) *ContextMapped[T, C, D] {
	return &ContextMapped[T, C, D]{
		iter:    iter,
		project: project,
	}
}

// ContextMapped is the iterator produced by MapContext.
type ContextMapped[T, C, D any] struct {
	iter    ContextIterator[T, C]
	project ProjectFunc[C, D]
}

// Next implements Iterator.
func (it *ContextMapped[T, C, D]) Next() (T, bool) {
	return it.iter.Next()
}

// NextBack pulls from the back of the wrapped iterator.
// It panics if the wrapped chain is not reversible.
func (it *ContextMapped[T, C, D]) NextBack() (T, bool) {
	return nextBack[T](it.iter)
}

// Context derives the projected view of the wrapped iterator's context.
func (it *ContextMapped[T, C, D]) Context() *D {
	return it.project(it.iter.Context())
}

// SizeHint forwards the wrapped iterator's bounds unchanged.
func (it *ContextMapped[T, C, D]) SizeHint() (lower, upper int, bounded bool) {
	return SizeHint[T](it.iter)
}

// Fused forwards the wrapped iterator's fused guarantee.
func (it *ContextMapped[T, C, D]) Fused() bool {
	return IsFused[T](it.iter)
}

// Count consumes the iterator, delegating to the wrapped iterator's count.
func (it *ContextMapped[T, C, D]) Count() int {
	return Count[T](it.iter)
}

func (it *ContextMapped[T, C, D]) reversible() bool {
	return IsReversible[T](it.iter)
}

// AttachMap attaches context to iter and maps mapp over it in one step.
// It names the common attach-then-transform pattern.
func AttachMap[T, C, U any](iter Iterator[T], context C, mapp MapFunc[T, C, U]) *Mapped[T, C, U] {
	return Map(Attach(iter, context), mapp)
}

// AttachFilter attaches context to iter and filters it with pred in one step.
func AttachFilter[T, C any](iter Iterator[T], context C, pred PredicateFunc[T, C]) *Filtered[T, C] {
	return Filter(Attach(iter, context), pred)
}

// AttachFilterMap attaches context to iter and filter-maps it with mapp in
// one step.
func AttachFilterMap[T, C, U any](iter Iterator[T], context C, mapp FilterMapFunc[T, C, U]) *FilterMapped[T, C, U] {
	return FilterMap(Attach(iter, context), mapp)
}
