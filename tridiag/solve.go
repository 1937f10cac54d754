// SPDX-License-Identifier: MIT
// Package: tridiag
//
// solve.go - Thomas algorithm (forward sweep + back substitution).
//
// Contract:
//   - Inputs are never mutated.
//   - No panics on user input; all failures wrap ErrSingularSystem.
//   - O(n) time; p and q are the only auxiliary allocations.

package tridiag

import (
	"fmt"
	"math"
)

// zeroPivot is the exact value that aborts the non-pivoting sweep.
const zeroPivot = 0.0

// Solve returns x such that a[i]·x[i-1] + b[i]·x[i] + c[i]·x[i+1] = d[i].
//
// a[0] and c[n-1] are ignored. An empty system yields an empty solution.
//
// Errors (each wrapped together with ErrSingularSystem):
//   - ErrDimensionMismatch if a, b, c and d differ in length.
//   - ErrZeroPivot if b[0] or any running denominator is exactly zero.
//   - ErrNaNInf if a coefficient is non-finite or the sweep overflows.
//
// Complexity: O(n) time, O(n) space.
func Solve(a, b, c, d []float64) ([]float64, error) {
	n, err := validateShape(a, b, c, d)
	if err != nil {
		return nil, solveErrorf(opSolve, err)
	}

	x := make([]float64, n)
	if err = sweep(a, b, c, d, x); err != nil {
		return nil, solveErrorf(opSolve, err)
	}

	return x, nil
}

// SolveInto is Solve writing the solution into x, which must have the same
// length as d. On error the contents of x are unspecified.
func SolveInto(a, b, c, d, x []float64) error {
	n, err := validateShape(a, b, c, d)
	if err != nil {
		return solveErrorf(opSolveInto, err)
	}
	if err = validateOut(x, n); err != nil {
		return solveErrorf(opSolveInto, err)
	}
	if err = sweep(a, b, c, d, x); err != nil {
		return solveErrorf(opSolveInto, err)
	}

	return nil
}

// Residual returns max_i |a[i]·x[i-1] + b[i]·x[i] + c[i]·x[i+1] − d[i]|,
// the infinity norm of the residual of x against the system.
// Time: O(n). Space: O(1).
func Residual(a, b, c, d, x []float64) (float64, error) {
	n, err := validateShape(a, b, c, d)
	if err != nil {
		return 0, solveErrorf(opResidual, err)
	}
	if err = validateOut(x, n); err != nil {
		return 0, solveErrorf(opResidual, err)
	}

	var worst, row float64
	for i := 0; i < n; i++ {
		row = b[i]*x[i] - d[i]
		if i > 0 {
			row += a[i] * x[i-1]
		}
		if i < n-1 {
			row += c[i] * x[i+1]
		}
		worst = math.Max(worst, math.Abs(row))
	}

	return worst, nil
}

// sweep runs the forward elimination and back substitution into x.
// Shapes are validated by the caller.
func sweep(a, b, c, d, x []float64) error {
	n := len(d)
	if n == 0 {
		return nil
	}
	if err := validateFinite(a, b, c, d); err != nil {
		return err
	}
	if b[0] == zeroPivot {
		return rowError(0, ErrZeroPivot)
	}

	p := make([]float64, n)
	q := make([]float64, n)

	// Seed row 0. p[n-1] stays 0 because c[n-1] is ignored.
	if n > 1 {
		p[0] = c[0] / b[0]
	}
	q[0] = d[0] / b[0]
	if !finite(p[0]) || !finite(q[0]) {
		return rowError(0, fmt.Errorf("forward sweep overflow: %w", ErrNaNInf))
	}

	var den float64
	for i := 1; i < n; i++ {
		den = b[i] - a[i]*p[i-1]
		if den == zeroPivot {
			return rowError(i, ErrZeroPivot)
		}
		if i < n-1 {
			p[i] = c[i] / den
		}
		q[i] = (d[i] - a[i]*q[i-1]) / den
		if !finite(den) || !finite(p[i]) || !finite(q[i]) {
			return rowError(i, fmt.Errorf("forward sweep overflow: %w", ErrNaNInf))
		}
	}

	x[n-1] = q[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = q[i] - p[i]*x[i+1]
		if !finite(x[i]) {
			return rowError(i, fmt.Errorf("back substitution overflow: %w", ErrNaNInf))
		}
	}

	return nil
}
