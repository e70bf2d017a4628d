package sim

import "math/rand"

// SimulationKey uniquely identifies a reproducible simulation run.
// Two simulations with the same SimulationKey and identical parameters
// MUST produce bit-for-bit identical Statistics.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// NewSimulationRNG returns the single random stream of a run. Every sampler
// draws from it in event order, so the draw sequence is part of the
// determinism contract.
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
func NewSimulationRNG(key SimulationKey) *rand.Rand {
	return rand.New(rand.NewSource(int64(key)))
}
