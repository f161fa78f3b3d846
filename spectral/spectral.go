// Package spectral estimates spectral noise floors by running the
// rolling-ball baseline over magnitude spectra.
//
// This is the canonical host-side use of the baseline package: a magnitude
// spectrum is a slowly drifting noise floor with narrow peaks (carriers,
// spurs, spectral lines) on top, and the rolling ball recovers the floor
// without tracking the peaks. Subtracting the floor, detecting the peaks, or
// plotting is up to the caller.
package spectral

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-dsp/dsp/spectrum"
	"github.com/cwbudde/algo-dsp/dsp/window"

	"github.com/cwbudde/algo-baseline/baseline"
)

// Zero-magnitude bins clamp to this value in dB output.
const minDB = -160.0

// NoiseFloor windows the block with a Hann window, zero-pads to a power of
// two, computes the magnitude spectrum of the non-negative-frequency bins,
// and returns the rolling-ball baseline of that spectrum.
//
// The result has nextPow2(len(signal))/2 + 1 bins, not len(signal) samples.
// Default radii derive from the bin count; pass baseline options to override.
func NoiseFloor(signal []float64, opts ...baseline.Option) ([]float64, error) {
	mag, err := magnitudeSpectrum(signal)
	if err != nil {
		return nil, err
	}

	return baseline.Compute(mag, opts...)
}

// NoiseFloorDB is [NoiseFloor] over the spectrum in dB (20*log10 convention).
// Zero-magnitude bins enter the baseline as minDB rather than -Inf.
func NoiseFloorDB(signal []float64, opts ...baseline.Option) ([]float64, error) {
	mag, err := magnitudeSpectrum(signal)
	if err != nil {
		return nil, err
	}

	for i, m := range mag {
		// LinearToDB yields -Inf for silent bins; the clamp catches it.
		db := core.LinearToDB(m)
		if db < minDB {
			db = minDB
		}

		mag[i] = db
	}

	return baseline.Compute(mag, opts...)
}

func magnitudeSpectrum(signal []float64) ([]float64, error) {
	if signal == nil {
		return nil, baseline.ErrInvalidInput
	}

	if len(signal) == 0 {
		return nil, baseline.ErrEmptyInput
	}

	fftSize := nextPowerOf2(len(signal))
	coeffs := window.Generate(window.TypeHann, len(signal))

	in := make([]complex128, fftSize)
	for i, x := range signal {
		in[i] = complex(x*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectral: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectral: forward fft: %w", err)
	}

	return spectrum.Magnitude(out[:fftSize/2+1]), nil
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size *= 2
	}

	return size
}
