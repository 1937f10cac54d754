// SPDX-License-Identifier: MIT

// Package tridiag solves tridiagonal linear systems with the Thomas algorithm.
//
// A system of order n is described by four equal-length sequences:
//
//	a[i]·x[i-1] + b[i]·x[i] + c[i]·x[i+1] = d[i],   i = 0..n-1
//
// where a is the sub-diagonal (a[0] is ignored), b the main diagonal, c the
// super-diagonal (c[n-1] is ignored) and d the right-hand side.
//
//	| b0 c0             |   | x0   |   | d0   |
//	| a1 b1 c1          |   | x1   |   | d1   |
//	|    ..  ..  ..     | * | ..   | = | ..   |
//	|        an-1 bn-1  |   | xn-1 |   | dn-1 |
//
// Algorithm (no pivoting):
//  1. Forward sweep: p[0] = c[0]/b[0], q[0] = d[0]/b[0], then for i = 1..n-1
//     den = b[i] − a[i]·p[i−1], p[i] = c[i]/den, q[i] = (d[i] − a[i]·q[i−1])/den.
//  2. Back substitution: x[n−1] = q[n−1], x[i] = q[i] − p[i]·x[i+1].
//
// The sweep is stable for diagonally dominant systems (the natural cubic
// spline system is one). Because there is no pivoting, a zero denominator is
// reported as an error instead of being worked around; so is any NaN or ±Inf
// in the inputs or in an intermediate value. Every failure wraps
// ErrSingularSystem, so a single errors.Is check classifies them.
//
// Usage:
//
//	x, err := tridiag.Solve(a, b, c, d)
//	if errors.Is(err, tridiag.ErrSingularSystem) {
//	    // inspect ErrZeroPivot / ErrDimensionMismatch / ErrNaNInf for detail
//	}
//
// Complexity: O(n) time, O(n) auxiliary space.
package tridiag
