// Package baseline estimates the smooth background curve underlying a
// one-dimensional signal with the rolling-ball algorithm.
//
// The estimate is the trace a ball of given radius would follow if rolled
// beneath the signal: it stays below sharp peaks while tracking slow
// background drift. Three sequential passes produce it:
//
//  1. Windowed minimum of the signal (radius MinMaxRadius)
//  2. Windowed maximum of those minima (same radius)
//  3. Windowed mean of those maxima (radius SmoothRadius)
//
// Every window is centered and clipped at the signal boundaries, so points
// near either edge are evaluated over a smaller, asymmetric window rather
// than a padded one. The input is never modified, and only the baseline is
// returned; subtracting it from the signal is up to the caller.
//
// # Usage
//
// One-shot estimation with default radii derived from the signal length:
//
//	floor, err := baseline.Compute(signal)
//
// Explicit radii:
//
//	floor, err := baseline.Compute(signal,
//	    baseline.WithMinMaxRadius(40),
//	    baseline.WithSmoothRadius(80),
//	)
//
// For repeated estimation over equal-length signals, a [Roller] reuses its
// intermediate buffers across calls:
//
//	r, err := baseline.NewRoller(len(signal))
//	floor, err := r.Compute(signal)
package baseline
