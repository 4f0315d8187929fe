/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package ast

import (
	"sync/atomic"

	"github.com/google/uuid"
)

/*
Location records where a semantic node was built from, for diagnostics that
need to point back at source ("conflicting extension in file X"). It is
deliberately excluded from Shared[T] equality/hashing: two schemas built
from the same text in different files should still be recognized as the
same shape where that matters (e.g. deduplicating identical built-in scalar
redefinitions).
*/
type Location struct {
	File   uint32 // source.FileId, kept untyped here to avoid an import cycle
	Offset int
	End    int
}

/*
Shared[T] is a copy-on-write cell: many readers can hold the same *Shared[T]
cheaply, and Unwrap only clones the payload the moment a caller actually
wants to mutate it through a shared reference, mirroring spec.md §3.5's
"make mutable" requirement without a borrow checker to enforce it — Go has
none, so the refcount is tracked by hand with atomics instead.
*/
type Shared[T any] struct {
	v    T
	loc  *Location
	refs *int32
}

// NewShared wraps v as a freshly owned (refcount 1) shared cell.
func NewShared[T any](v T, loc *Location) *Shared[T] {
	r := int32(1)
	return &Shared[T]{v: v, loc: loc, refs: &r}
}

// Value returns the wrapped value for read-only use.
func (s *Shared[T]) Value() T { return s.v }

// Location returns the originating source location, or nil if synthesized.
func (s *Shared[T]) Location() *Location { return s.loc }

/*
Share returns a new handle to the same underlying value, bumping the shared
refcount so a subsequent Unwrap by either handle clones rather than
mutating the other handle's view.
*/
func (s *Shared[T]) Share() *Shared[T] {
	atomic.AddInt32(s.refs, 1)
	return &Shared[T]{v: s.v, loc: s.loc, refs: s.refs}
}

/*
Unwrap returns a pointer to a value only this handle can see: if no other
handle shares the cell (refcount == 1) it hands back a pointer into the
existing value directly, otherwise it clones first and becomes a
single-owner handle over the clone.
*/
func (s *Shared[T]) Unwrap() *T {
	if atomic.LoadInt32(s.refs) == 1 {
		return &s.v
	}
	atomic.AddInt32(s.refs, -1)
	cp := s.v
	r := int32(1)
	s.refs = &r
	s.v = cp
	return &s.v
}

/*
ExtensionId tags one `extend` block so diagnostics and merge logic can refer
to it individually even though several extensions of the same type, from
different files, accumulate against one ExtendedType.
*/
type ExtensionId = uuid.UUID

// NewExtensionId mints a fresh, globally unique extension tag.
func NewExtensionId() ExtensionId { return uuid.New() }
