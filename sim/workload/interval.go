// Package workload provides the random duration samplers that drive the
// rink model: inter-arrival times and game durations.
package workload

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// MinInterval is the floor applied to every sampled duration, in minutes.
// It keeps durations strictly positive whatever the parameter skew.
const MinInterval = 0.1

// IntervalSampler generates durations in simulated minutes.
type IntervalSampler interface {
	// Sample returns a duration >= MinInterval.
	Sample(rng *rand.Rand) float64
}

// UniformSampler draws uniformly from [max(MinInterval, mean-spread), mean+spread].
type UniformSampler struct {
	lo, hi float64
}

// NewUniformSampler creates a sampler centred on mean. A range that
// collapses below the floor degenerates to the constant MinInterval.
func NewUniformSampler(mean, spread float64) *UniformSampler {
	lo := math.Max(MinInterval, mean-spread)
	hi := mean + spread
	if hi < lo {
		logrus.Debugf("uniform sampler: range [%v, %v] clamped to %v", mean-spread, hi, lo)
		hi = lo
	}
	return &UniformSampler{lo: lo, hi: hi}
}

// Sample draws one duration. A zero-width range consumes a draw anyway so
// the random stream stays aligned across parameter sets.
func (s *UniformSampler) Sample(rng *rand.Rand) float64 {
	return s.lo + (s.hi-s.lo)*rng.Float64()
}

// Bounds returns the closed range the sampler draws from.
func (s *UniformSampler) Bounds() (lo, hi float64) {
	return s.lo, s.hi
}
