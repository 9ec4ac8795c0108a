package arena

// Address arithmetic used by the allocator. align must be a power of two;
// Alloc validates before calling in here.

// AlignUp returns the smallest multiple of align that is >= addr.
func AlignUp(addr, align uintptr) uintptr {
	return (addr + align - 1) &^ (align - 1)
}

// Adjustment returns the number of padding bytes needed to bring addr up to
// the next multiple of align. Zero when addr is already aligned.
func Adjustment(addr, align uintptr) uintptr {
	return AlignUp(addr, align) - addr
}

// IsAligned reports whether addr is a multiple of align.
func IsAligned(addr, align uintptr) bool {
	return addr&(align-1) == 0
}

// powerOfTwo reports whether n is a positive power of two.
func powerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
