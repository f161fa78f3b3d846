package baseline

import "github.com/cwbudde/algo-baseline/internal/slidingwindow"

// Compute estimates the rolling-ball baseline of signal and returns it as a
// new slice of the same length.
//
// Returns ErrInvalidInput for a nil signal and ErrEmptyInput for a zero-length
// one. Behavior on NaN or infinite samples is undefined.
func Compute(signal []float64, opts ...Option) ([]float64, error) {
	if signal == nil {
		return nil, ErrInvalidInput
	}

	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}

	dst := make([]float64, len(signal))
	if err := ComputeInto(dst, signal, opts...); err != nil {
		return nil, err
	}

	return dst, nil
}

// ComputeInto estimates the rolling-ball baseline of signal, writing it to a
// pre-allocated destination of the same length. dst may alias signal: the
// smoothing pass reads only the maxima buffer.
//
// The two intermediate buffers are still allocated per call; use a [Roller]
// to amortize them across repeated invocations.
func ComputeInto(dst, signal []float64, opts ...Option) error {
	if signal == nil {
		return ErrInvalidInput
	}

	if len(signal) == 0 {
		return ErrEmptyInput
	}

	if len(dst) != len(signal) {
		return ErrLengthMismatch
	}

	cfg := ApplyOptions(len(signal), opts...)
	if err := cfg.Validate(); err != nil {
		return err
	}

	minima := make([]float64, len(signal))
	maxima := make([]float64, len(signal))

	roll(dst, minima, maxima, signal, cfg)

	return nil
}

// roll runs the three passes. Data flows strictly forward: signal feeds the
// minima pass, minima feed the maxima pass, maxima feed the smoothing pass.
func roll(dst, minima, maxima, signal []float64, cfg Config) {
	slidingwindow.MinInto(minima, signal, cfg.MinMaxRadius)
	slidingwindow.MaxInto(maxima, minima, cfg.MinMaxRadius)
	slidingwindow.MeanInto(dst, maxima, cfg.SmoothRadius)
}

// Roller estimates rolling-ball baselines for signals of a fixed length,
// reusing its intermediate buffers across calls. It carries no state between
// invocations beyond that scratch capacity, so results are identical to
// [Compute] with the same configuration.
//
// A Roller is not safe for concurrent use.
type Roller struct {
	cfg    Config
	n      int
	minima []float64
	maxima []float64
}

// NewRoller creates a Roller for signals of length n. Options missing from
// opts default per [DefaultConfig].
func NewRoller(n int, opts ...Option) (*Roller, error) {
	if n <= 0 {
		return nil, ErrEmptyInput
	}

	cfg := ApplyOptions(n, opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Roller{
		cfg:    cfg,
		n:      n,
		minima: make([]float64, n),
		maxima: make([]float64, n),
	}, nil
}

// Len returns the signal length the Roller was created for.
func (r *Roller) Len() int {
	return r.n
}

// Config returns the resolved window configuration.
func (r *Roller) Config() Config {
	return r.cfg
}

// Compute estimates the baseline of signal into a new slice.
func (r *Roller) Compute(signal []float64) ([]float64, error) {
	dst := make([]float64, r.n)
	if err := r.ComputeInto(dst, signal); err != nil {
		return nil, err
	}

	return dst, nil
}

// ComputeInto estimates the baseline of signal into dst. Both slices must
// have the Roller's length.
func (r *Roller) ComputeInto(dst, signal []float64) error {
	if signal == nil {
		return ErrInvalidInput
	}

	if len(signal) != r.n || len(dst) != r.n {
		return ErrLengthMismatch
	}

	roll(dst, r.minima, r.maxima, signal, r.cfg)

	return nil
}
