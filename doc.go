// Package ctxiter provides pull-based iterator adaptors with an associated
// read-only context value.
//
// A chain starts from a source iterator ([Range], [FromSlice], [FromSeq], or
// any value with a Next method), gains a context via [Attach], and is then
// transformed by any number of adaptors: [Map], [Filter], and [FilterMap]
// rework the element stream while forwarding the context, and [MapContext]
// reworks the context view while forwarding the element stream. Every
// adaptor receives the context as a pointer, so the context is shared across
// the whole chain instead of being captured or copied into each
// transformation function.
//
// Chains are lazy and caller-driven: pulling an element from the outermost
// adaptor synchronously pulls from the wrapped iterator, consults the
// context, and applies the adaptor's function. Nothing is buffered, nothing
// runs concurrently, and no operation can fail. The context is immutable for
// the lifetime of the chain.
//
// # Structural capabilities
//
// Sources may optionally support pulling from the back (ReverseIterator),
// bounding their remaining length (SizeHinter), and guaranteeing fused
// termination. Adaptors forward whichever capabilities their wrapped
// iterator has: Map, Attach, and MapContext forward all of them unchanged
// (the element correspondence is one-to-one), while Filter and FilterMap
// keep only the upper size bound, since rejected elements are consumed
// without being produced. Capabilities are discovered dynamically with
// [SizeHint], [Len], [IsFused], and [IsReversible].
//
// Filtering adaptors provide a bulk [Count] fast path that drains the
// wrapped iterator directly instead of pulling rejected elements through the
// generic machinery one at a time.
//
// # Nameable types
//
// Every adaptor returns a small concrete generic type ([Attached], [Mapped],
// [Filtered], [FilterMapped], [ContextMapped]) parameterized only over the
// element and context types, never over a function or closure type. The
// result of a chain can therefore be written down, stored in a struct field,
// or used to satisfy an interface's concrete type without resorting to
// interface boxing:
//
//	type Doubled = ctxiter.Mapped[int, int, int]
//
// The one-step constructors [AttachMap], [AttachFilter], and
// [AttachFilterMap] name the common attach-then-transform pattern.
package ctxiter
