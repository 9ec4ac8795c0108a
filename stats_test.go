package arena

import "testing"

func TestStatsSnapshot(t *testing.T) {
	a := NewArena(128)
	defer a.Release()

	a.Alloc(40, 8)
	a.Alloc(100, 8)

	s := a.Stats()
	if s.TotalAllocated != a.TotalAllocated() {
		t.Errorf("Stats.TotalAllocated = %d, accessor = %d", s.TotalAllocated, a.TotalAllocated())
	}
	if s.TotalUsed != a.TotalUsed() {
		t.Errorf("Stats.TotalUsed = %d, accessor = %d", s.TotalUsed, a.TotalUsed())
	}
	if s.BlockCount != a.BlockCount() {
		t.Errorf("Stats.BlockCount = %d, accessor = %d", s.BlockCount, a.BlockCount())
	}
	if s.BlockSize != 128 {
		t.Errorf("Stats.BlockSize = %d, want 128", s.BlockSize)
	}
	if s.Utilization != a.Utilization() {
		t.Errorf("Stats.Utilization = %v, accessor = %v", s.Utilization, a.Utilization())
	}
	if s.TotalUsed > s.TotalAllocated {
		t.Errorf("used %d exceeds allocated %d", s.TotalUsed, s.TotalAllocated)
	}
}

func TestUtilization(t *testing.T) {
	a := NewArena(128)
	defer a.Release()

	if got := a.Utilization(); got != 0 {
		t.Errorf("empty arena utilization = %v, want 0", got)
	}

	a.Alloc(64, 8)
	if got := a.Utilization(); got != 0.5 {
		t.Errorf("utilization = %v, want 0.5", got)
	}

	a.Reset()
	if got := a.Utilization(); got != 0 {
		t.Errorf("utilization after Reset = %v, want 0", got)
	}

	a.Release()
	if got := a.Utilization(); got != 0 {
		t.Errorf("utilization after Release = %v, want 0", got)
	}
}
