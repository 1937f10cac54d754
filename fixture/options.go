// SPDX-License-Identifier: MIT
// Package: fixture
//
// options.go — functional options for the generators.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Generators themselves never panic.
//   • Determinism is explicit: randomness only via WithSeed or WithRand.

package fixture

import (
	"math"
	"math/rand"
)

// Option customizes a generator by mutating its fixtureConfig.
type Option func(*fixtureConfig)

// WithStart sets the first abscissa.
func WithStart(x float64) Option {
	if !finite(x) {
		panic("fixture: WithStart requires a finite value")
	}
	return func(c *fixtureConfig) { c.start = x }
}

// WithStep sets the nominal gap between consecutive abscissas.
// Panics unless step > 0 and finite.
func WithStep(step float64) Option {
	if !(step > 0) || math.IsInf(step, 0) {
		panic("fixture: WithStep requires a finite step > 0")
	}
	return func(c *fixtureConfig) { c.step = step }
}

// WithJitter randomizes each gap to step·(1 ± j·u), u uniform in [-1, 1),
// so gaps stay strictly positive. Requires an RNG at generation time.
// Panics unless 0 <= j < 1.
func WithJitter(j float64) Option {
	if !(j >= 0 && j < 1) {
		panic("fixture: WithJitter requires 0 <= j < 1")
	}
	return func(c *fixtureConfig) { c.jitter = j }
}

// WithAmplitude sets the wave amplitude. Panics unless a > 0 and finite.
func WithAmplitude(a float64) Option {
	if !(a > 0) || math.IsInf(a, 0) {
		panic("fixture: WithAmplitude requires a finite a > 0")
	}
	return func(c *fixtureConfig) { c.amplitude = a }
}

// WithFrequency sets the base frequency in cycles per unit x (chirp start).
// Panics unless f > 0 and finite.
func WithFrequency(f float64) Option {
	if !(f > 0) || math.IsInf(f, 0) {
		panic("fixture: WithFrequency requires a finite f > 0")
	}
	return func(c *fixtureConfig) { c.frequency = f }
}

// WithChirpEnd sets the final chirp frequency. Panics unless f > 0 and finite.
func WithChirpEnd(f float64) Option {
	if !(f > 0) || math.IsInf(f, 0) {
		panic("fixture: WithChirpEnd requires a finite f > 0")
	}
	return func(c *fixtureConfig) { c.freqEnd = f }
}

// WithTrend adds trend·(x − start) to every ordinate.
func WithTrend(k float64) Option {
	if !finite(k) {
		panic("fixture: WithTrend requires a finite value")
	}
	return func(c *fixtureConfig) { c.trend = k }
}

// WithNoise adds Gaussian noise with standard deviation sigma.
// Requires an RNG at generation time. Panics if sigma < 0 or non-finite.
func WithNoise(sigma float64) Option {
	if !(sigma >= 0) || math.IsInf(sigma, 0) {
		panic("fixture: WithNoise requires a finite sigma >= 0")
	}
	return func(c *fixtureConfig) { c.noise = sigma }
}

// WithSeed attaches a new deterministic RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *fixtureConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand attaches an explicit RNG, shared across calls. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("fixture: WithRand(nil)")
	}
	return func(c *fixtureConfig) { c.rng = r }
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
