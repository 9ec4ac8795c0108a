package arena

import (
	"math"
	"unsafe"
)

// New allocates storage sized and aligned for T inside the arena, stores v
// there and returns the typed pointer. The arena never runs cleanup for
// stored values; if v holds resources that need releasing, that is the
// caller's job.
func New[T any](a *Arena, v T) *T {
	p := Alloc[T](a)
	*p = v
	return p
}

// Alloc returns a zeroed *T located in the arena. The pointer is valid until
// Reset or Release.
func Alloc[T any](a *Arena) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return new(T)
	}
	p, _ := a.Alloc(size, int(unsafe.Alignof(zero)))
	clear(unsafe.Slice((*byte)(p), size))
	return (*T)(p)
}

// AllocSlice allocates storage for n contiguous elements of T inside the
// arena. The elements are not initialized: fresh blocks happen to be zeroed
// by the runtime, but blocks recycled by Reset carry stale bytes. Returns
// nil if n <= 0 or if n elements would overflow the byte count.
func AllocSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return make([]T, n)
	}
	if n > math.MaxInt/size {
		return nil
	}
	p, _ := a.Alloc(size*n, int(unsafe.Alignof(zero)))
	return unsafe.Slice((*T)(p), n)
}

// AllocSliceZeroed is AllocSlice with every element cleared.
func AllocSliceZeroed[T any](a *Arena, n int) []T {
	s := AllocSlice[T](a, n)
	clear(s)
	return s
}
