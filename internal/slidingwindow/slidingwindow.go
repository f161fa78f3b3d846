// Package slidingwindow provides centered, boundary-clipped window reductions
// over float64 slices.
//
// All reductions share one window geometry: the window of radius r centered on
// index i covers [max(0, i-r), min(i+r+1, n)). Windows shrink at the slice
// edges; they are never padded or wrapped. A radius of 0 yields a width-1
// window, making the reduction a copy.
//
// Behavior on NaN or infinite inputs is undefined.
package slidingwindow

import "github.com/cwbudde/algo-vecmath"

// Bounds returns the clipped window [lo, hi) of the given radius centered on i.
func Bounds(i, n, radius int) (lo, hi int) {
	lo = i - radius
	if lo < 0 {
		lo = 0
	}

	hi = i + radius + 1
	if hi > n {
		hi = n
	}

	return lo, hi
}

// Width returns the number of samples in the clipped window centered on i.
func Width(i, n, radius int) int {
	lo, hi := Bounds(i, n, radius)
	return hi - lo
}

// MinInto writes the windowed minimum of src into dst.
//
// A monotonically increasing index deque keeps the total cost at O(n)
// regardless of radius. dst and src must have the same length and must not
// alias.
func MinInto(dst, src []float64, radius int) {
	n := len(src)
	if n == 0 {
		return
	}

	// Each source index is admitted exactly once, so capacity n never grows.
	dq := make([]int, 0, n)
	head := 0
	next := 0

	for i := 0; i < n; i++ {
		lo, hi := Bounds(i, n, radius)

		for ; next < hi; next++ {
			for len(dq) > head && src[dq[len(dq)-1]] > src[next] {
				dq = dq[:len(dq)-1]
			}

			dq = append(dq, next)
		}

		for dq[head] < lo {
			head++
		}

		dst[i] = src[dq[head]]
	}
}

// MaxInto writes the windowed maximum of src into dst.
//
// Mirrors [MinInto] with a monotonically decreasing deque. dst and src must
// have the same length and must not alias.
func MaxInto(dst, src []float64, radius int) {
	n := len(src)
	if n == 0 {
		return
	}

	dq := make([]int, 0, n)
	head := 0
	next := 0

	for i := 0; i < n; i++ {
		lo, hi := Bounds(i, n, radius)

		for ; next < hi; next++ {
			for len(dq) > head && src[dq[len(dq)-1]] < src[next] {
				dq = dq[:len(dq)-1]
			}

			dq = append(dq, next)
		}

		for dq[head] < lo {
			head++
		}

		dst[i] = src[dq[head]]
	}
}

// MeanInto writes the windowed arithmetic mean of src into dst.
//
// The window sums are accumulated as 2*radius+1 shifted block additions so the
// inner loops run through vecmath's SIMD kernels; each output is then divided
// by its clipped window width. dst and src must have the same length and must
// not alias.
func MeanInto(dst, src []float64, radius int) {
	n := len(src)
	if n == 0 {
		return
	}

	// Any radius >= n covers the full slice at every index.
	if radius >= n {
		radius = n - 1
	}

	for i := range dst {
		dst[i] = 0
	}

	for d := -radius; d <= radius; d++ {
		lo := 0
		if d < 0 {
			lo = -d
		}

		hi := n
		if d > 0 {
			hi = n - d
		}

		vecmath.AddBlockInPlace(dst[lo:hi], src[lo+d:hi+d])
	}

	for i := range dst {
		dst[i] /= float64(Width(i, n, radius))
	}
}
