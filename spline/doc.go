// SPDX-License-Identifier: MIT

// Package spline fits a natural cubic spline through 2-D control points and
// evaluates it.
//
// 🚀 What is a natural cubic spline?
//
//	A piecewise-cubic curve S that passes through every control point,
//	has continuous value, slope and curvature at every interior node, and
//	has zero curvature (S'' = 0) at both ends. On each interval
//	[x[i], x[i+1]] it is one polynomial
//
//	  S(x) = A + B·t + C·t² + D·t³,   t = x − x[i]
//
// ✨ Key features:
//   - Build: sort, validate, solve the second-derivative tridiagonal system
//     (package tridiag), convert to per-segment coefficients.
//   - Closed forms for the small cases: fewer than two points is the empty
//     curve (nothing to draw, not an error); two points are one line.
//   - Duplicate abscissas are rejected with ErrDegenerateInput before any
//     division happens.
//   - Evaluate by binary search over the ordered segments, plus
//     derivatives up to order 3 and batch evaluation.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvspline/spline"
//
//	curve, err := spline.Build([]spline.Point{{0, 0}, {1, 1}, {2, 0}})
//	if err != nil {
//	  // errors.Is(err, spline.ErrDegenerateInput) etc.
//	}
//	y, err := curve.Eval(0.5)
//
// A Curve is immutable and is rebuilt from scratch whenever the point set
// changes; it is safe to share between goroutines once built.
//
// Performance:
//
//   - Build: O(n log n) for the sort, O(n) for the system.
//   - Eval:  O(log n).
//
// See example_test.go for walkthroughs.
package spline
