package arena

// Allocator binds one element type to an Arena and exposes the capability
// set generic containers expect from an allocator: typed allocation, (no-op)
// deallocation, identity comparison and rebinding. It holds a non-owning
// reference; every Allocator must be dropped before its arena is.
type Allocator[T any] struct {
	arena *Arena
}

// NewAllocator returns an Allocator over a.
func NewAllocator[T any](a *Arena) Allocator[T] {
	return Allocator[T]{arena: a}
}

// Allocate returns uninitialized storage for n elements of T, carved from
// the arena.
func (al Allocator[T]) Allocate(n int) []T {
	return AllocSlice[T](al.arena, n)
}

// Deallocate is a no-op. The arena reclaims in bulk through Reset or
// Release, never per allocation; containers that rely on per-element
// freeing are incompatible with this allocator.
func (al Allocator[T]) Deallocate([]T) {}

// Equal reports whether both allocators draw from the same Arena instance.
// Container storage is interchangeable (for merge, swap and the like)
// exactly when Equal returns true.
func (al Allocator[T]) Equal(other Allocator[T]) bool {
	return al.arena == other.arena
}

// Arena returns the referenced arena.
func (al Allocator[T]) Arena() *Arena {
	return al.arena
}

// Rebind produces an allocator over element type U drawing from the same
// arena, for containers that internally allocate bookkeeping types distinct
// from their element type.
func Rebind[U, T any](al Allocator[T]) Allocator[U] {
	return Allocator[U]{arena: al.arena}
}

// Append appends vals to s, growing s inside the allocator's arena when
// capacity runs out. Displaced storage is not freed; it stays behind in the
// arena until bulk reclamation.
func Append[T any](al Allocator[T], s []T, vals ...T) []T {
	if len(s)+len(vals) > cap(s) {
		newCap := 2 * cap(s)
		if newCap < len(s)+len(vals) {
			newCap = len(s) + len(vals)
		}
		grown := al.Allocate(newCap)[:len(s)]
		copy(grown, s)
		s = grown
	}
	return append(s, vals...)
}
