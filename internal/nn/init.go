package nn

import (
	"math"
	"math/rand"
)

// Xavier (Glorot) initialization for a single weight.
//
// Draws from U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))),
// which keeps the variance of activations steady across layers.
func Xavier(fanIn, fanOut int, rng *rand.Rand) float64 {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return Uniform(-bound, bound, rng)
}

// Uniform draws from U(lo, hi).
func Uniform(lo, hi float64, rng *rand.Rand) float64 {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return lo + rng.Float64()*(hi-lo)
}
