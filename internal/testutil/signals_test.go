package testutil

import (
	"testing"
)

func TestConstant(t *testing.T) {
	c := Constant(0.5, 4)
	if len(c) != 4 {
		t.Fatalf("len = %d, want 4", len(c))
	}
	for i, v := range c {
		if v != 0.5 {
			t.Fatalf("c[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestComb(t *testing.T) {
	c := Comb(5, 1, 5)
	want := []float64{5, 1, 5, 1, 5}
	for i := range want {
		if c[i] != want[i] {
			t.Fatalf("c[%d] = %v, want %v", i, c[i], want[i])
		}
	}
}

func TestRamp(t *testing.T) {
	r := Ramp(0, 3, 4)
	want := []float64{0, 1, 2, 3}
	for i := range want {
		if r[i] != want[i] {
			t.Fatalf("r[%d] = %v, want %v", i, r[i], want[i])
		}
	}
}

func TestRampDegenerate(t *testing.T) {
	if got := Ramp(2, 7, 0); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
	one := Ramp(2, 7, 1)
	if len(one) != 1 || one[0] != 2 {
		t.Fatalf("got %v, want [2]", one)
	}
}

func TestPeaksOnDrift(t *testing.T) {
	s := PeaksOnDrift(100, []int{50}, 3, 10)
	if len(s) != 100 {
		t.Fatalf("len = %d, want 100", len(s))
	}
	// The peak center must rise well above the drift.
	if s[50] < 10 {
		t.Fatalf("s[50] = %v, want >= 10", s[50])
	}
	// Far from the peak the signal stays near the drift range [1, 2].
	if s[0] > 2.1 || s[99] > 2.1 {
		t.Fatalf("edges %v, %v strayed from drift", s[0], s[99])
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}
