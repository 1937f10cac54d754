// SPDX-License-Identifier: MIT

package spline

import (
	"errors"
	"fmt"
)

// Error taxonomy.
//
//   - ErrDegenerateInput — two control points share an abscissa (step h = 0).
//     Recoverable: reject the mutation that caused it or de-duplicate.
//   - ErrSingularSystem  — the tridiagonal solver failed. Unreachable for
//     validated input; treat as a defect. Wraps the tridiag cause.
//   - ErrOutOfDomain     — evaluation requested outside [x_min, x_max].
//   - ErrEmptyCurve      — evaluation requested on a curve with no segments.
//   - ErrNaNInf          — a control point has a NaN or ±Inf coordinate, or
//     a coefficient overflowed.
//   - ErrBadOrder        — negative derivative order.
var (
	// ErrDegenerateInput indicates two or more control points share an abscissa.
	ErrDegenerateInput = errors.New("spline: duplicate abscissa")

	// ErrSingularSystem indicates the second-derivative system could not be solved.
	ErrSingularSystem = errors.New("spline: singular system")

	// ErrOutOfDomain indicates an abscissa outside the curve's domain.
	ErrOutOfDomain = errors.New("spline: abscissa out of domain")

	// ErrEmptyCurve indicates evaluation of a curve built from fewer than two points.
	ErrEmptyCurve = errors.New("spline: curve has no segments")

	// ErrNaNInf indicates a non-finite coordinate or coefficient.
	ErrNaNInf = errors.New("spline: NaN or Inf encountered")

	// ErrBadOrder indicates a negative derivative order.
	ErrBadOrder = errors.New("spline: negative derivative order")
)

// Canonical operation tags.
const (
	opBuild   = "spline.Build"
	opEval    = "spline.Eval"
	opDiff    = "spline.Diff"
	opLocate  = "spline.Locate"
	opEvalAll = "spline.EvalAll"
)

// splineErrorf prefixes err with the operation tag.
func splineErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
