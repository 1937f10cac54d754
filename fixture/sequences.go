// SPDX-License-Identifier: MIT
// Package: fixture
//
// sequences.go — the generators.
//
// Contract:
//   - Each generator returns exactly n points with strictly increasing X.
//   - O(n) time, O(n) memory. No panics. No global state.

package fixture

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvspline/spline"
)

// Generator names accepted by ByName.
const (
	KindSine   = "sine"
	KindChirp  = "chirp"
	KindPulse  = "pulse"
	KindRandom = "random"
)

// tau is 2π.
const tau = 2.0 * math.Pi

// pulseDuty is the fraction of each period spent at the high level.
const pulseDuty = 0.5

// Kinds lists the generator names in ascending order.
func Kinds() []string {
	kinds := []string{KindSine, KindChirp, KindPulse, KindRandom}
	sort.Strings(kinds)

	return kinds
}

// ByName dispatches to the generator named kind.
func ByName(kind string, n int, opts ...Option) ([]spline.Point, error) {
	switch kind {
	case KindSine:
		return Sine(n, opts...)
	case KindChirp:
		return Chirp(n, opts...)
	case KindPulse:
		return Pulse(n, opts...)
	case KindRandom:
		return Random(n, opts...)
	default:
		return nil, fixtureErrorf("ByName", ErrUnknownKind)
	}
}

// Sine returns y = A·sin(2π·f·(x−start)) + trend·(x−start) + noise.
func Sine(n int, opts ...Option) ([]spline.Point, error) {
	cfg := newConfig(opts...)
	pts, err := abscissas(KindSine, n, cfg)
	if err != nil {
		return nil, err
	}
	for i := range pts {
		u := pts[i].X - cfg.start
		pts[i].Y = cfg.amplitude * math.Sin(tau*cfg.frequency*u)
	}

	return finish(pts, cfg), nil
}

// Chirp returns a linear chirp whose frequency sweeps from the base
// frequency to the chirp end frequency across the n samples. The phase is
// integrated over the actual gaps so jittered abscissas stay phase-continuous.
func Chirp(n int, opts ...Option) ([]spline.Point, error) {
	cfg := newConfig(opts...)
	pts, err := abscissas(KindChirp, n, cfg)
	if err != nil {
		return nil, err
	}

	var theta, fi, t float64
	for i := range pts {
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		fi = cfg.frequency + (cfg.freqEnd-cfg.frequency)*t
		if i > 0 {
			theta += tau * fi * (pts[i].X - pts[i-1].X)
		}
		pts[i].Y = cfg.amplitude * math.Sin(theta)
	}

	return finish(pts, cfg), nil
}

// Pulse returns a rectangular wave: A for the first half of each period,
// 0 for the second.
func Pulse(n int, opts ...Option) ([]spline.Point, error) {
	cfg := newConfig(opts...)
	pts, err := abscissas(KindPulse, n, cfg)
	if err != nil {
		return nil, err
	}
	for i := range pts {
		_, frac := math.Modf((pts[i].X - cfg.start) * cfg.frequency)
		if frac < pulseDuty {
			pts[i].Y = cfg.amplitude
		}
	}

	return finish(pts, cfg), nil
}

// Random returns ordinates uniform in [−A, A]. Requires WithSeed or WithRand.
func Random(n int, opts ...Option) ([]spline.Point, error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fixtureErrorf(KindRandom, ErrNeedRandSource)
	}
	pts, err := abscissas(KindRandom, n, cfg)
	if err != nil {
		return nil, err
	}
	for i := range pts {
		pts[i].Y = cfg.amplitude * (2*cfg.rng.Float64() - 1)
	}

	return finish(pts, cfg), nil
}

// abscissas allocates n points and fills X with start, start+gap, ...
// Gaps are step·(1 + jitter·(2u−1)), u uniform in [0,1), hence > 0.
func abscissas(kind string, n int, cfg fixtureConfig) ([]spline.Point, error) {
	if n < 1 {
		return nil, fixtureErrorf(kind, ErrTooFewPoints)
	}
	if (cfg.jitter > 0 || cfg.noise > 0) && cfg.rng == nil {
		return nil, fixtureErrorf(kind, ErrNeedRandSource)
	}

	pts := make([]spline.Point, n)
	x := cfg.start
	for i := range pts {
		pts[i].X = x
		gap := cfg.step
		if cfg.jitter > 0 {
			gap *= 1 + cfg.jitter*(2*cfg.rng.Float64()-1)
		}
		x += gap
	}

	return pts, nil
}

// finish applies the linear trend and Gaussian noise.
func finish(pts []spline.Point, cfg fixtureConfig) []spline.Point {
	for i := range pts {
		pts[i].Y += cfg.trend * (pts[i].X - cfg.start)
		if cfg.noise > 0 {
			pts[i].Y += cfg.noise * cfg.rng.NormFloat64()
		}
	}

	return pts
}
