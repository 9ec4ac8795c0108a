package arena

// TotalAllocated returns the summed capacity of every block owned by the
// arena.
func (a *Arena) TotalAllocated() int {
	return a.totalAllocated
}

// TotalUsed returns the bytes consumed across all blocks, alignment padding
// included.
func (a *Arena) TotalUsed() int {
	return a.totalUsed
}

// BlockCount returns the number of blocks the arena currently owns.
func (a *Arena) BlockCount() int {
	return len(a.blocks)
}

// BlockSize returns the configured growth granularity.
func (a *Arena) BlockSize() int {
	return a.blockSize
}

// Utilization returns the ratio of used bytes to total capacity (0.0-1.0),
// or 0.0 for an arena with no blocks.
func (a *Arena) Utilization() float64 {
	if a.totalAllocated == 0 {
		return 0
	}
	return float64(a.totalUsed) / float64(a.totalAllocated)
}

// Stats is a point-in-time snapshot of arena statistics.
type Stats struct {
	TotalAllocated int     // summed capacity of all blocks
	TotalUsed      int     // bytes consumed, padding included
	BlockCount     int     // number of blocks
	BlockSize      int     // configured growth granularity
	Utilization    float64 // TotalUsed / TotalAllocated
}

// Stats returns a snapshot of the arena's counters.
func (a *Arena) Stats() Stats {
	return Stats{
		TotalAllocated: a.TotalAllocated(),
		TotalUsed:      a.TotalUsed(),
		BlockCount:     a.BlockCount(),
		BlockSize:      a.BlockSize(),
		Utilization:    a.Utilization(),
	}
}
