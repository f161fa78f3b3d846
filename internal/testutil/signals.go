package testutil

import (
	"math"
	"math/rand"
)

// Constant generates a constant-valued signal.
func Constant(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Comb generates an alternating high/low pattern starting on high.
func Comb(high, low float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		if i%2 == 0 {
			out[i] = high
		} else {
			out[i] = low
		}
	}
	return out
}

// Ramp generates a linear ramp from start to end inclusive.
func Ramp(start, end float64, length int) []float64 {
	out := make([]float64, length)
	if length == 0 {
		return out
	}
	if length == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(length-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// PeaksOnDrift generates a slow linear drift from 1 to 2 with Gaussian peaks
// added at the given center indices. The drift is the true background, the
// peaks are the foreground a baseline estimator should roll under.
func PeaksOnDrift(length int, centers []int, width, height float64) []float64 {
	out := Ramp(1, 2, length)
	for _, c := range centers {
		for i := range out {
			d := float64(i - c)
			out[i] += height * math.Exp(-d*d/(2*width*width))
		}
	}
	return out
}

// DeterministicNoise generates seeded uniform noise in [-amplitude, amplitude].
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}
