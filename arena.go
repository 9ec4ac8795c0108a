package arena

import "unsafe"

// DefaultBlockSize is the block size used when none is configured (8 KiB).
const DefaultBlockSize = 8192

// DefaultAlignment is the alignment applied when the caller does not request
// one. No Go type has a stricter alignment than the machine word.
const DefaultAlignment = int(unsafe.Sizeof(uintptr(0)))

// block is one fixed-capacity buffer plus its bump offset. Blocks are only
// ever appended; none is resized or freed individually.
type block struct {
	buf  []byte
	used int
}

func (b *block) base() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b.buf)))
}

func (b *block) available() int {
	return len(b.buf) - b.used
}

// Arena is a bump allocator over an append-only sequence of blocks.
// Allocations are served by advancing a cursor within the current block;
// reclamation happens in bulk through Reset or Release, never per
// allocation.
//
// An Arena must be used through a single pointer: copying the value would
// alias the block storage. It is not goroutine-safe; callers that allocate
// concurrently must serialize externally or give each worker its own arena.
type Arena struct {
	blocks         []block
	cur            int // index of the block being written
	blockSize      int
	totalAllocated int
	totalUsed      int
}

// NewArena creates an empty Arena. blockSize is the granularity new blocks
// are created at; larger values mean fewer system allocations at the cost of
// more unused tail capacity per block. If blockSize <= 0, DefaultBlockSize
// is used. No block is allocated until the first request.
func NewArena(blockSize int) *Arena {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &Arena{blockSize: blockSize}
}

// Alloc returns a pointer to size bytes aligned to align, carved out of the
// arena's current block. The bytes remain valid until Reset or Release.
//
// Alloc returns (nil, nil) when size <= 0, whatever align is, and
// (nil, ErrBadAlignment) when align is not a power of two; in both cases no
// state changes.
func (a *Arena) Alloc(size, align int) (unsafe.Pointer, error) {
	if size <= 0 {
		return nil, nil
	}
	if !powerOfTwo(align) {
		return nil, ErrBadAlignment
	}

	if len(a.blocks) == 0 {
		a.appendBlock(max(align, a.blockSize), 0, align)
	}
	b := &a.blocks[a.cur]
	pad := int(Adjustment(b.base()+uintptr(b.used), uintptr(align)))
	if pad+size > b.available() {
		b, pad = a.nextBlock(size, align)
	}

	p := unsafe.Add(unsafe.Pointer(unsafe.SliceData(b.buf)), b.used+pad)
	b.used += pad + size
	a.totalUsed += pad + size
	return p, nil
}

// AllocBytes returns a []byte of length n aligned to DefaultAlignment,
// backed by the arena. Returns nil if n <= 0. The slice aliases arena
// storage: it must not be used after Reset or Release.
func (a *Arena) AllocBytes(n int) []byte {
	p, _ := a.Alloc(n, DefaultAlignment)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

// Reserve positions the arena so that a following allocation of n bytes at
// DefaultAlignment is served without growing mid-call.
func (a *Arena) Reserve(n int) {
	if n <= 0 {
		return
	}
	if len(a.blocks) == 0 {
		a.appendBlock(max(n, a.blockSize), n, DefaultAlignment)
		return
	}
	b := &a.blocks[a.cur]
	pad := int(Adjustment(b.base()+uintptr(b.used), uintptr(DefaultAlignment)))
	if pad+n > b.available() {
		a.nextBlock(n, DefaultAlignment)
	}
}

// Reset rewinds every block's cursor and moves the arena back to its head
// block. Capacity and block count are unchanged; the blocks are retained and
// refilled by subsequent allocations. Previously returned memory becomes
// invalid. O(block count).
func (a *Arena) Reset() {
	for i := range a.blocks {
		a.blocks[i].used = 0
	}
	a.cur = 0
	a.totalUsed = 0
}

// Release drops every block and returns the arena to its just-constructed
// state: all counters are zero and the next allocation creates a fresh
// block. Previously returned memory becomes invalid.
func (a *Arena) Release() {
	a.blocks = nil
	a.cur = 0
	a.totalAllocated = 0
	a.totalUsed = 0
}

// nextBlock finds room for an aligned request the current block cannot
// serve: first by advancing through blocks retained by Reset, then by
// appending one sized max(size, blockSize). Returns the chosen block and the
// padding in front of the request.
func (a *Arena) nextBlock(size, align int) (*block, int) {
	for a.cur+1 < len(a.blocks) {
		a.cur++
		b := &a.blocks[a.cur]
		pad := int(Adjustment(b.base()+uintptr(b.used), uintptr(align)))
		if pad+size <= b.available() {
			return b, pad
		}
	}
	b := a.appendBlock(max(size, a.blockSize), size, align)
	return b, int(Adjustment(b.base(), uintptr(align)))
}

// appendBlock links a fresh block of at least capacity bytes and makes it
// current. The buffer is fully constructed, and reallocated once if its base
// address cannot fit size bytes at align within capacity, before it is
// linked in; a failed system allocation never leaves a half-linked block.
func (a *Arena) appendBlock(capacity, size, align int) *block {
	buf := make([]byte, capacity)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	if pad := int(Adjustment(base, uintptr(align))); pad+size > capacity {
		buf = make([]byte, size+align)
	}
	a.blocks = append(a.blocks, block{buf: buf})
	a.cur = len(a.blocks) - 1
	a.totalAllocated += len(buf)
	return &a.blocks[a.cur]
}
