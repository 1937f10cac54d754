// SPDX-License-Identifier: MIT

// Package fixture generates deterministic control-point sets for tests,
// benchmarks, demos and editor session seeding.
//
// Every generator returns n points with strictly increasing abscissas, so the
// result is always a valid spline input:
//
//	Sine   — y = A·sin(2π·f·x) + trend·x (+ noise)
//	Chirp  — frequency sweeps linearly from f0 to f1 across the samples
//	Pulse  — rectangular wave of amplitude A and 50% duty (spline overshoot demo)
//	Random — y uniform in [−A, A]; requires a seeded RNG
//
// Determinism policy:
//   - Without WithSeed/WithRand no randomness is used; WithJitter, WithNoise
//     and Random then fail with ErrNeedRandSource.
//   - With a seed, the same (n, options) produce the same points.
//
// Option constructors panic on nonsensical values (programmer error);
// generators never panic.
package fixture
