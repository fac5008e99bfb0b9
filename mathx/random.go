// Package mathx provides the deterministic pseudo random number
// generator used by the rest of the framework. Every consumer owns an
// explicit *RandomGenerator handle instead of sharing process state, so
// simulations can be replayed exactly from a seed.
package mathx

import (
	"math"
	"time"
)

// RandomGenerator is a seedable xorshift64* generator. The zero value
// is not usable; construct one with NewRandomGenerator or
// NewRandomGeneratorSeed.
type RandomGenerator struct {
	state      uint64
	lastNormal float64
	hasNormal  bool
}

// NewRandomGenerator returns a generator seeded from the wall clock.
func NewRandomGenerator() *RandomGenerator {
	return NewRandomGeneratorSeed(uint64(time.Now().UnixNano()))
}

// NewRandomGeneratorSeed returns a generator with a fixed seed.
func NewRandomGeneratorSeed(seed uint64) *RandomGenerator {
	rng := &RandomGenerator{}
	rng.Seed(seed)
	return rng
}

// Seed resets the generator state. A zero seed is remapped because the
// xorshift state must never be zero.
func (rng *RandomGenerator) Seed(seed uint64) {
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15
	}
	rng.state = seed
	rng.hasNormal = false
}

// Rand returns a uniformly distributed integer in [0, 2^64).
func (rng *RandomGenerator) Rand() uint64 {
	rng.state ^= rng.state >> 12
	rng.state ^= rng.state << 25
	rng.state ^= rng.state >> 27
	return rng.state * 2685821657736338717
}

// Random returns a uniformly distributed number in [0, 1).
func (rng *RandomGenerator) Random() float64 {
	return float64(rng.Rand()>>11) / (1 << 53)
}

// RandomMax returns a uniformly distributed number in [0, max).
func (rng *RandomGenerator) RandomMax(max float64) float64 {
	return rng.Random() * max
}

// RandomRange returns a uniformly distributed number in [min, max).
func (rng *RandomGenerator) RandomRange(min, max float64) float64 {
	return rng.Random()*(max-min) + min
}

// Intn returns a uniformly distributed integer in [0, n). n must be
// positive.
func (rng *RandomGenerator) Intn(n int) int {
	return int(rng.Rand() % uint64(n))
}

// RandomNormal returns a normally distributed number with mean 0 and
// the given standard deviation. Box-Muller produces values in pairs;
// the second value is cached for the next call.
func (rng *RandomGenerator) RandomNormal(stddev float64) float64 {
	if rng.hasNormal {
		rng.hasNormal = false
		return rng.lastNormal * stddev
	}

	r := math.Sqrt(-2.0 * math.Log(1.0-rng.Random()))
	phi := 2.0 * math.Pi * (1.0 - rng.Random())

	rng.lastNormal = r * math.Cos(phi)
	rng.hasNormal = true

	return r * math.Sin(phi) * stddev
}
