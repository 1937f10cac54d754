// SPDX-License-Identifier: MIT
// Package: tridiag
//
// Purpose:
//   - Keep shape and finiteness guards out of the sweep itself.
//   - Return plain detail sentinels; the caller tags them with the operation.

package tridiag

import (
	"fmt"
	"math"
)

// validateShape ensures a, b, c and d share one length and returns it.
func validateShape(a, b, c, d []float64) (int, error) {
	n := len(d)
	if len(a) != n || len(b) != n || len(c) != n {
		return 0, fmt.Errorf("len(a)=%d len(b)=%d len(c)=%d len(d)=%d: %w",
			len(a), len(b), len(c), n, ErrDimensionMismatch)
	}

	return n, nil
}

// validateOut ensures the caller-provided solution buffer has length n.
func validateOut(x []float64, n int) error {
	if len(x) != n {
		return fmt.Errorf("len(x)=%d, want %d: %w", len(x), n, ErrDimensionMismatch)
	}

	return nil
}

// validateFinite rejects NaN/±Inf in every coefficient the sweep reads.
// a[0] and c[n-1] are never read and are therefore not checked.
func validateFinite(a, b, c, d []float64) error {
	n := len(d)
	for i := 0; i < n; i++ {
		if i > 0 && !finite(a[i]) {
			return rowError(i, fmt.Errorf("a=%g: %w", a[i], ErrNaNInf))
		}
		if !finite(b[i]) {
			return rowError(i, fmt.Errorf("b=%g: %w", b[i], ErrNaNInf))
		}
		if i < n-1 && !finite(c[i]) {
			return rowError(i, fmt.Errorf("c=%g: %w", c[i], ErrNaNInf))
		}
		if !finite(d[i]) {
			return rowError(i, fmt.Errorf("d=%g: %w", d[i], ErrNaNInf))
		}
	}

	return nil
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
