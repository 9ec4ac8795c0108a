// Package arena implements a linear (bump) allocator over a chain of
// fixed-size blocks.
//
// # Overview
//
// The arena serves allocation requests sequentially out of a block by
// advancing a cursor, growing an append-only block sequence when the current
// block runs out. There is no per-allocation freeing: memory is reclaimed in
// bulk, either by rewinding every block for reuse (Reset) or by dropping the
// blocks entirely (Release). The trade buys O(1) allocation and O(blocks)
// reclamation at the cost of individual deallocation, compaction and
// free-list reuse, none of which exist here.
//
// # Basic usage
//
//	a := arena.NewArena(0) // default block size
//	defer a.Release()
//
//	buf := a.AllocBytes(1024)           // raw bytes
//	p := arena.New(a, Point{X: 1})      // typed, constructed
//	xs := arena.AllocSlice[int](a, 64)  // typed, uninitialized slots
//
//	a.Reset() // reclaim everything, keep the blocks
//
// Alloc is the low-level entry point and the only operation that validates:
// a non-power-of-two alignment yields ErrBadAlignment, and a zero-size
// request returns no allocation.
//
// # Container adapter
//
// Allocator[T] is a thin non-owning view that gives generic containers an
// allocator-shaped collaborator: Allocate delegates to the arena,
// Deallocate is a no-op, equality is arena identity and Rebind switches the
// element type without switching arenas.
//
// # Caveats
//
//   - Nothing here is goroutine-safe. Serialize externally or use one arena
//     per worker.
//   - Block storage is untyped bytes, so the garbage collector does not scan
//     values placed in the arena. A stored value must not hold the only
//     reference to a GC-managed object.
//   - Pointers and slices returned by the arena are invalidated by Reset and
//     Release.
package arena
