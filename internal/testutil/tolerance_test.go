package testutil

import (
	"testing"
)

func TestMinMax(t *testing.T) {
	lo, hi := MinMax([]float64{3, -1, 4, 1, 5, -9, 2.5})
	if lo != -9 {
		t.Fatalf("lo = %v, want -9", lo)
	}
	if hi != 5 {
		t.Fatalf("hi = %v, want 5", hi)
	}
}

func TestMinMaxSingle(t *testing.T) {
	lo, hi := MinMax([]float64{2})
	if lo != 2 || hi != 2 {
		t.Fatalf("got (%v, %v), want (2, 2)", lo, hi)
	}
}

func TestMinMaxEmpty(t *testing.T) {
	lo, hi := MinMax(nil)
	if lo != 0 || hi != 0 {
		t.Fatalf("got (%v, %v), want (0, 0)", lo, hi)
	}
}
