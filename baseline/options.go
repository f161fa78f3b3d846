package baseline

import "math"

// Default radii as fractions of the signal length.
const (
	defaultMinMaxFraction = 0.04
	defaultSmoothFraction = 0.08
)

// Config holds the two window radii of the rolling-ball pipeline.
//
// MinMaxRadius is the half-width of the minimum and maximum passes and
// corresponds to the radius of the rolled ball. SmoothRadius is the half-width
// of the final averaging pass and is typically larger. Both radii define a
// centered window of width 2*radius+1, clipped at the signal boundaries. A
// radius of 0 makes the corresponding pass a copy.
type Config struct {
	MinMaxRadius int
	SmoothRadius int
}

// Option mutates a Config.
type Option func(*Config)

// Validate returns ErrNegativeRadius if either radius is negative.
// Configs built via [DefaultConfig] or [ApplyOptions] always pass.
func (c Config) Validate() error {
	if c.MinMaxRadius < 0 || c.SmoothRadius < 0 {
		return ErrNegativeRadius
	}

	return nil
}

// DefaultConfig returns the default radii for a signal of length n:
// round(n*0.04) for the min/max passes and round(n*0.08) for smoothing.
func DefaultConfig(n int) Config {
	if n < 0 {
		n = 0
	}

	return Config{
		MinMaxRadius: int(math.Round(float64(n) * defaultMinMaxFraction)),
		SmoothRadius: int(math.Round(float64(n) * defaultSmoothFraction)),
	}
}

// WithMinMaxRadius sets the radius of the minimum and maximum passes.
// Negative values are ignored.
func WithMinMaxRadius(radius int) Option {
	return func(cfg *Config) {
		if radius >= 0 {
			cfg.MinMaxRadius = radius
		}
	}
}

// WithSmoothRadius sets the radius of the smoothing pass.
// Negative values are ignored.
func WithSmoothRadius(radius int) Option {
	return func(cfg *Config) {
		if radius >= 0 {
			cfg.SmoothRadius = radius
		}
	}
}

// ApplyOptions applies zero or more options to the default config for a
// signal of length n.
func ApplyOptions(n int, opts ...Option) Config {
	cfg := DefaultConfig(n)

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
