// SPDX-License-Identifier: MIT
// Package: fixture
//
// errors.go — sentinel errors for the fixture package.
//
// Error policy:
//   - Only package-level sentinels are exposed; match with errors.Is.
//   - Context is attached with %w at the call site, never in the sentinel.

package fixture

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints indicates n < 1.
var ErrTooFewPoints = errors.New("fixture: need at least one point")

// ErrNeedRandSource indicates jitter, noise or Random was requested without
// WithSeed/WithRand.
var ErrNeedRandSource = errors.New("fixture: rng is required")

// ErrUnknownKind indicates ByName received an unsupported generator name.
var ErrUnknownKind = errors.New("fixture: unknown generator kind")

// fixtureErrorf prefixes err with the generator name.
func fixtureErrorf(kind string, err error) error {
	return fmt.Errorf("fixture.%s: %w", kind, err)
}
