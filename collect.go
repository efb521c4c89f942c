package ctxiter

// Collect consumes it and returns its remaining elements as a slice, in
// front-to-back order. The slice is preallocated from the iterator's lower
// size bound.
func Collect[T any](it Iterator[T]) []T {
	lower, _, _ := SizeHint(it)

	elems := make([]T, 0, lower)

	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		elems = append(elems, elem)
	}

	return elems
}

// CollectBack consumes it from the back and returns its remaining elements
// in back-to-front order. It panics if it is not reversible.
func CollectBack[T any](it Iterator[T]) []T {
	lower, _, _ := SizeHint(it)

	elems := make([]T, 0, lower)

	for elem, ok := nextBack(it); ok; elem, ok = nextBack(it) {
		elems = append(elems, elem)
	}

	return elems
}

// CollectMap consumes it and collects its elements into a map.
// Elements are mapped to entries using key and value, respectively.
// If a key occurs more than once, the later entry wins.
func CollectMap[T any, K comparable, V any](it Iterator[T], key func(elem T) K, value func(elem T) V) map[K]V {
	lower, _, _ := SizeHint(it)

	acc := make(map[K]V, lower)

	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		acc[key(elem)] = value(elem)
	}

	return acc
}

// CollectGroup consumes it and collects its elements into a group map.
// Elements are grouped into slices according to key, in front-to-back order
// within each group.
func CollectGroup[T any, K comparable, V any](it Iterator[T], key func(elem T) K, value func(elem T) V) map[K][]V {
	acc := map[K][]V{}

	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		k := key(elem)
		acc[k] = append(acc[k], value(elem))
	}

	return acc
}
