// Package quality runs statistical sanity checks on generator output.
//
// The checks bin real-valued draws into equal-width buckets and compare the
// counts against a uniform distribution with a chi-square test, alongside
// the sample mean and variance. They catch gross defects such as a broken
// scaling constant or a stuck state, not subtle statistical weaknesses.
package quality

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nozzle/mt19937"
	"github.com/nozzle/mt19937/internal/parallel"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidConfig is returned when a Config cannot be used.
var ErrInvalidConfig = errors.New("quality: invalid config")

// Variant selects which real-valued output is sampled.
type Variant int

const (
	// HalfOpen samples Generator.Float64, in [0, 1).
	HalfOpen Variant = iota
	// Closed samples Generator.RealClosed, in [0, 1].
	Closed
	// Open samples Generator.RealOpen, in (0, 1).
	Open
	// Res53 samples Generator.Real53, in [0, 1) with 53-bit resolution.
	Res53
)

var variantNames = map[Variant]string{
	HalfOpen: "halfopen",
	Closed:   "closed",
	Open:     "open",
	Res53:    "res53",
}

func (v Variant) String() string {
	if s, ok := variantNames[v]; ok {
		return s
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant returns the Variant named s.
func ParseVariant(s string) (Variant, error) {
	for v, name := range variantNames {
		if strings.EqualFold(s, name) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, s)
}

// Config configures a quality check.
type Config struct {
	// Draws is the number of samples taken per generator.
	// Default: 100000
	Draws int

	// Bins is the number of equal-width buckets for the chi-square test.
	// Default: 64
	Bins int

	// Variant is the real-valued output to sample.
	// Default: HalfOpen
	Variant Variant

	// Significance is the p-value below which a check fails.
	// Default: 0.001
	Significance float64
}

// DefaultConfig returns the default quality check configuration.
func DefaultConfig() Config {
	return Config{
		Draws:        100000,
		Bins:         64,
		Variant:      HalfOpen,
		Significance: 0.001,
	}
}

// Validate reports whether c can be used.
func (c Config) Validate() error {
	switch {
	case c.Bins < 2:
		return fmt.Errorf("%w: bins must be at least 2, got %d", ErrInvalidConfig, c.Bins)
	case c.Draws < c.Bins:
		return fmt.Errorf("%w: draws (%d) must be at least bins (%d)", ErrInvalidConfig, c.Draws, c.Bins)
	case c.Significance <= 0 || c.Significance >= 1:
		return fmt.Errorf("%w: significance must be in (0, 1), got %v", ErrInvalidConfig, c.Significance)
	}
	if _, ok := variantNames[c.Variant]; !ok {
		return fmt.Errorf("%w: unknown variant %d", ErrInvalidConfig, int(c.Variant))
	}
	return nil
}

// Report summarizes a sample.
type Report struct {
	Seed      uint32
	N         int
	Mean      float64
	Variance  float64
	Min       float64
	Max       float64
	ChiSquare float64
	PValue    float64
	// InRange is false if any sample fell outside [0, 1].
	InRange bool
	Pass    bool
}

// Sample draws n values of variant v from g.
func Sample(g *mt19937.Generator, v Variant, n int) []float64 {
	draw := g.Float64
	switch v {
	case Closed:
		draw = g.RealClosed
	case Open:
		draw = g.RealOpen
	case Res53:
		draw = g.Real53
	}

	samples := make([]float64, n)
	for i := range samples {
		samples[i] = draw()
	}
	return samples
}

// Analyze computes a Report for samples expected to be uniform on [0, 1].
func Analyze(samples []float64, bins int, significance float64) Report {
	r := Report{N: len(samples)}
	if len(samples) == 0 || bins < 2 {
		return r
	}

	r.Mean, r.Variance = stat.MeanVariance(samples, nil)
	r.Min = floats.Min(samples)
	r.Max = floats.Max(samples)
	r.InRange = r.Min >= 0 && r.Max <= 1

	observed := make([]float64, bins)
	for _, x := range samples {
		b := int(x * float64(bins))
		// 1.0 can only come from the closed variant; count it in the top bin.
		if b >= bins {
			b = bins - 1
		}
		if b < 0 {
			b = 0
		}
		observed[b]++
	}
	expected := make([]float64, bins)
	floats.AddConst(float64(len(samples))/float64(bins), expected)

	r.ChiSquare = stat.ChiSquare(observed, expected)
	r.PValue = distuv.ChiSquared{K: float64(bins - 1)}.Survival(r.ChiSquare)
	r.Pass = r.InRange && r.PValue >= significance
	return r
}

// Check samples g according to cfg and analyzes the result.
func Check(g *mt19937.Generator, cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	return Analyze(Sample(g, cfg.Variant, cfg.Draws), cfg.Bins, cfg.Significance), nil
}

// Battery checks one freshly seeded generator per seed, spreading the seeds
// over workers goroutines. workers <= 0 uses one per CPU. Reports are
// returned in seed order.
func Battery(seeds []uint32, cfg Config, workers int) ([]Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reports := make([]Report, len(seeds))
	parallel.For(len(seeds), workers, func(i int) {
		g := mt19937.New(seeds[i])
		r := Analyze(Sample(g, cfg.Variant, cfg.Draws), cfg.Bins, cfg.Significance)
		r.Seed = seeds[i]
		reports[i] = r
	})
	return reports, nil
}

// UniformMoments returns the mean and variance of the uniform distribution
// on [0, 1], the targets for Report.Mean and Report.Variance.
func UniformMoments() (mean, variance float64) {
	u := distuv.Uniform{Min: 0, Max: 1}
	return u.Mean(), u.Variance()
}
