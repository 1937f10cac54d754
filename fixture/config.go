// SPDX-License-Identifier: MIT
// Package: fixture
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • fixtureConfig is the single source of truth for generator knobs.
//   • newConfig applies options in order (later overrides earlier).

package fixture

import "math/rand"

// fixtureConfig aggregates all knobs; passed by value to generators.
type fixtureConfig struct {
	start     float64    // first abscissa
	step      float64    // nominal gap between abscissas (>0)
	jitter    float64    // relative gap jitter in [0,1)
	amplitude float64    // >0
	frequency float64    // cycles per unit x (>0)
	freqEnd   float64    // chirp end frequency (>0)
	trend     float64    // linear trend per unit x
	noise     float64    // Gaussian noise sigma (>=0)
	rng       *rand.Rand // nil means no randomness
}

// Deterministic defaults.
const (
	defaultStart     = 0.0
	defaultStep      = 1.0
	defaultJitter    = 0.0
	defaultAmplitude = 1.0
	defaultFrequency = 0.125 // period of 8 steps at the default spacing
	defaultFreqEnd   = 0.4
	defaultTrend     = 0.0
	defaultNoise     = 0.0
)

// newConfig builds a config from defaults and opts.
func newConfig(opts ...Option) fixtureConfig {
	cfg := fixtureConfig{
		start:     defaultStart,
		step:      defaultStep,
		jitter:    defaultJitter,
		amplitude: defaultAmplitude,
		frequency: defaultFrequency,
		freqEnd:   defaultFreqEnd,
		trend:     defaultTrend,
		noise:     defaultNoise,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
