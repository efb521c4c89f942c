package ctxiter

import (
	"testing"

	"github.com/matryer/is"
)

func TestCount(t *testing.T) {
	is := is.New(t)

	is.Equal(Count[int](Range(0, 5)), 5)
	is.Equal(Count[string](FromSlice([]string{"a", "b"})), 2)
}

func TestCount_DrainsWithoutFastPath(t *testing.T) {
	is := is.New(t)

	calls := 0
	ints := AttachMap(Range(0, 5), 0, func(elem int, _ *int) int {
		calls++
		return elem
	})

	is.Equal(Count[int](ints), 5)
	is.Equal(calls, 5)

	is.Equal(Count[int](ints), 0)
}

func TestCount_FilterFastPath(t *testing.T) {
	is := is.New(t)

	chain := func() *Filtered[int, int] {
		return AttachFilter(Range(0, 100), 0, func(elem int, _ *int) bool {
			return elem%7 == 0
		})
	}

	is.Equal(Count[int](chain()), len(Collect[int](chain())))
}

func TestEach(t *testing.T) {
	is := is.New(t)

	seen := []int{}
	Each[int](Range(0, 4), func(elem int) {
		seen = append(seen, elem)
	})

	is.Equal(seen, []int{0, 1, 2, 3})
}

func TestReduce(t *testing.T) {
	is := is.New(t)

	sum := Reduce[int](Range(1, 6), 0, func(acc, elem int) int {
		return acc + elem
	})

	is.Equal(sum, 15)
}

func TestReduce_OverContextChain(t *testing.T) {
	is := is.New(t)

	ints := AttachMap(Range(0, 10), 42, func(elem int, ctx *int) int { return elem + *ctx })

	sum := Reduce[int](ints, 0, func(acc, elem int) int { return acc + elem })

	is.Equal(sum, 465)
}

func TestAnyMatch(t *testing.T) {
	is := is.New(t)

	ints := Range(0, 10)

	is.True(AnyMatch[int](ints, func(elem int) bool { return elem == 3 }))

	// matching stops pulling, the remainder is still available
	is.Equal(Collect[int](ints), []int{4, 5, 6, 7, 8, 9})
}

func TestAnyMatch_NoMatch(t *testing.T) {
	is := is.New(t)

	is.True(!AnyMatch[int](Range(0, 10), func(elem int) bool { return elem > 100 }))
}

func TestAllMatch(t *testing.T) {
	is := is.New(t)

	is.True(AllMatch[int](Range(0, 10), func(elem int) bool { return elem < 10 }))
}

func TestAllMatch_Mismatch(t *testing.T) {
	is := is.New(t)

	ints := Range(0, 10)

	is.True(!AllMatch[int](ints, func(elem int) bool { return elem < 3 }))

	is.Equal(Collect[int](ints), []int{4, 5, 6, 7, 8, 9})
}

func TestValues(t *testing.T) {
	is := is.New(t)

	ints := AttachMap(Range(0, 5), 10, func(elem int, ctx *int) int { return elem * *ctx })

	collected := []int{}
	for elem := range Values[int](ints) {
		collected = append(collected, elem)
	}

	is.Equal(collected, []int{0, 10, 20, 30, 40})
}

func TestValues_EarlyBreak(t *testing.T) {
	is := is.New(t)

	ints := Range(0, 10)

	for elem := range Values[int](ints) {
		if elem == 2 {
			break
		}
	}

	is.Equal(Collect[int](ints), []int{3, 4, 5, 6, 7, 8, 9})
}
