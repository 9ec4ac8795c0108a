package arena

import "testing"

func TestAlignUp(t *testing.T) {
	tests := []struct {
		addr, align, want uintptr
	}{
		{0, 8, 0},
		{1, 8, 8},
		{7, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{13, 1, 13},
		{100, 64, 128},
		{128, 64, 128},
	}
	for _, tt := range tests {
		if got := AlignUp(tt.addr, tt.align); got != tt.want {
			t.Errorf("AlignUp(%d, %d) = %d, want %d", tt.addr, tt.align, got, tt.want)
		}
	}
}

func TestAdjustment(t *testing.T) {
	tests := []struct {
		addr, align, want uintptr
	}{
		{0, 8, 0},
		{1, 8, 7},
		{8, 8, 0},
		{9, 16, 7},
		{33, 32, 31},
	}
	for _, tt := range tests {
		if got := Adjustment(tt.addr, tt.align); got != tt.want {
			t.Errorf("Adjustment(%d, %d) = %d, want %d", tt.addr, tt.align, got, tt.want)
		}
	}
}

func TestIsAligned(t *testing.T) {
	tests := []struct {
		addr, align uintptr
		want        bool
	}{
		{0, 8, true},
		{8, 8, true},
		{12, 8, false},
		{16, 16, true},
		{24, 16, false},
		{5, 1, true},
	}
	for _, tt := range tests {
		if got := IsAligned(tt.addr, tt.align); got != tt.want {
			t.Errorf("IsAligned(%d, %d) = %v, want %v", tt.addr, tt.align, got, tt.want)
		}
	}
}

func TestPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 1 << 20} {
		if !powerOfTwo(n) {
			t.Errorf("powerOfTwo(%d) = false, want true", n)
		}
	}
	for _, n := range []int{0, -1, -8, 3, 6, 12, 1<<20 + 1} {
		if powerOfTwo(n) {
			t.Errorf("powerOfTwo(%d) = true, want false", n)
		}
	}
}
