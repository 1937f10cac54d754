// SPDX-License-Identifier: MIT
// Package tridiag: sentinel error set.
//
// Every failure returned by this package wraps ErrSingularSystem together with
// one of the detail sentinels below. Callers match with errors.Is; messages
// are prefixed with "tridiag:" for grepping.

package tridiag

import (
	"errors"
	"fmt"
)

var (
	// ErrSingularSystem classifies every condition under which the system
	// cannot be solved by the non-pivoting sweep.
	ErrSingularSystem = errors.New("tridiag: singular system")

	// ErrDimensionMismatch indicates the coefficient, right-hand side or
	// output sequences differ in length.
	ErrDimensionMismatch = errors.New("tridiag: dimension mismatch")

	// ErrZeroPivot indicates b[0] or a running denominator is exactly zero.
	ErrZeroPivot = errors.New("tridiag: zero pivot")

	// ErrNaNInf indicates a NaN or ±Inf coefficient, or an intermediate value
	// that overflowed.
	ErrNaNInf = errors.New("tridiag: NaN or Inf encountered")
)

// Canonical operation tags used as error prefixes.
const (
	opSolve     = "Solve"
	opSolveInto = "SolveInto"
	opResidual  = "Residual"
)

// solveErrorf tags err with the operation and attaches ErrSingularSystem.
func solveErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrSingularSystem, err)
}

// rowError attaches the offending row index to a detail sentinel.
func rowError(i int, err error) error {
	return fmt.Errorf("row %d: %w", i, err)
}
