package ctxiter

import (
	"testing"

	"github.com/matryer/is"
)

func TestAttach(t *testing.T) {
	is := is.New(t)

	ints := Attach(Range(0, 5), 42)

	is.Equal(*ints.Context(), 42)
	is.Equal(Collect[int](ints), []int{0, 1, 2, 3, 4})
}

func TestAttach_ContextPointerStable(t *testing.T) {
	is := is.New(t)

	ints := Attach(Range(0, 5), "shared")

	first := ints.Context()

	_, _ = ints.Next()
	_, _ = ints.Next()

	is.True(ints.Context() == first)
	is.Equal(*first, "shared")
}

func TestAttach_ForwardsCapabilities(t *testing.T) {
	is := is.New(t)

	ints := Attach(Range(0, 5), 42)

	n, exact := Len[int](ints)
	is.True(exact)
	is.Equal(n, 5)

	is.True(ints.Fused())
	is.True(IsReversible[int](ints))

	is.Equal(CollectBack[int](ints), []int{4, 3, 2, 1, 0})
}

func TestAttach_NoCapabilitiesToForward(t *testing.T) {
	is := is.New(t)

	ints := Attach(Generate(func() int { return 7 }), 42)

	_, _, bounded := ints.SizeHint()
	is.True(!bounded)

	is.True(!ints.Fused())
	is.True(!IsReversible[int](ints))
}

func TestAttach_CountDelegates(t *testing.T) {
	is := is.New(t)

	ints := Attach(Range(0, 100), 42)

	is.Equal(ints.Count(), 100)
}

func TestContextPreservation(t *testing.T) {
	is := is.New(t)

	attached := Attach(Range(0, 10), 42)
	context := attached.Context()

	mapped := Map(attached, func(elem int, ctx *int) int { return elem * 2 })
	is.True(mapped.Context() == context)

	filtered := Filter(mapped, func(elem int, ctx *int) bool { return elem%4 == 0 })
	is.True(filtered.Context() == context)

	filterMapped := FilterMap(filtered, func(elem int, ctx *int) (int, bool) { return elem, true })
	is.True(filterMapped.Context() == context)

	// pulling items does not disturb the context
	_, _ = filterMapped.Next()
	_, _ = filterMapped.Next()

	is.True(filterMapped.Context() == context)
	is.Equal(*filterMapped.Context(), 42)
}

func TestAttach_NextBackPanicsWhenNotReversible(t *testing.T) {
	is := is.New(t)

	ints := Attach(Generate(func() int { return 7 }), 42)

	defer func() {
		is.True(recover() != nil)
	}()

	_, _ = ints.NextBack()
}
