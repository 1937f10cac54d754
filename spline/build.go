// SPDX-License-Identifier: MIT

package spline

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvspline/tridiag"
)

// Build — natural cubic spline construction.
//
// Algorithm Outline (n ≥ 3 points, sorted by x):
//  1. Steps:  h[i] = x[i+1] − x[i], i = 0..n-2 (each must exceed minStep).
//  2. RHS:    d[i] = 6·((y[i+1]−y[i])/h[i] − (y[i]−y[i−1])/h[i−1]), i = 1..n-2;
//     d[0] = d[n-1] = 0.
//  3. Matrix: interior rows a[i]=h[i-1], b[i]=2·(h[i-1]+h[i]), c[i]=h[i];
//     boundary rows b[0]=b[n-1]=1, everything else 0 (natural condition).
//  4. Solve for the second derivatives m[0..n-1] (tridiag.Solve).
//  5. Segment i: A = y[i]
//     B = (y[i+1]−y[i])/h[i] − h[i]·(2·m[i]+m[i+1])/6
//     C = m[i]/2
//     D = (m[i+1]−m[i])/(6·h[i])
//
// Small inputs:
//   - n < 2  → empty curve, nil error.
//   - n == 2 → one linear segment A=y0, B=(y1−y0)/(x1−x0), C=D=0.
//
// Guarantees: the curve interpolates every point, is C² across interior
// nodes and has S'' = 0 at both ends. Build is deterministic: the same input
// yields bit-identical coefficients.
//
// Errors:
//   - ErrNaNInf          if any coordinate is NaN/±Inf or a coefficient overflows.
//   - ErrDegenerateInput if two points share an abscissa (checked before solving).
//   - ErrSingularSystem  if the solver fails (wraps the tridiag sentinel).
func Build(points []Point, opts ...Option) (*Curve, error) {
	cfg := newBuildConfig(opts...)

	knots := make([]Point, len(points))
	copy(knots, points)
	for i, p := range knots {
		if !finite(p.X) || !finite(p.Y) {
			return nil, splineErrorf(opBuild, fmt.Errorf("point %d (%g, %g): %w", i, p.X, p.Y, ErrNaNInf))
		}
	}
	if len(knots) < 2 {
		return &Curve{knots: knots}, nil
	}

	slices.SortStableFunc(knots, func(p, q Point) int { return cmp.Compare(p.X, q.X) })

	h, err := steps(knots, cfg.minStep)
	if err != nil {
		return nil, splineErrorf(opBuild, err)
	}

	var (
		moments []float64
		segs    []Segment
	)
	if len(knots) == 2 {
		moments, segs = linear(knots, h[0])
	} else {
		moments, err = secondDerivatives(knots, h)
		if err != nil {
			return nil, splineErrorf(opBuild, fmt.Errorf("%w: %w", ErrSingularSystem, err))
		}
		segs = cubicSegments(knots, h, moments)
	}

	for i, s := range segs {
		if !s.finite() {
			return nil, splineErrorf(opBuild, fmt.Errorf("segment %d coefficients overflow: %w", i, ErrNaNInf))
		}
	}

	return &Curve{knots: knots, moments: moments, segs: segs}, nil
}

// steps returns h[i] = x[i+1] − x[i] for sorted knots, rejecting any step
// not strictly greater than minStep.
func steps(knots []Point, minStep float64) ([]float64, error) {
	h := make([]float64, len(knots)-1)
	for i := range h {
		h[i] = knots[i+1].X - knots[i].X
		if !finite(h[i]) {
			return nil, fmt.Errorf("step %d overflows: %w", i, ErrNaNInf)
		}
		if h[i] <= minStep {
			return nil, fmt.Errorf("x[%d]=%g, x[%d]=%g: %w",
				i, knots[i].X, i+1, knots[i+1].X, ErrDegenerateInput)
		}
	}

	return h, nil
}

// linear is the closed form for exactly two knots. The second derivative is
// zero everywhere.
func linear(knots []Point, h float64) ([]float64, []Segment) {
	p, q := knots[0], knots[1]
	seg := Segment{
		X1: p.X,
		X2: q.X,
		A:  p.Y,
		B:  (q.Y - p.Y) / h,
	}

	return []float64{0, 0}, []Segment{seg}
}

// secondDerivatives assembles the natural-boundary tridiagonal system and
// solves it for m[0..n-1].
func secondDerivatives(knots []Point, h []float64) ([]float64, error) {
	n := len(knots)
	a := make([]float64, n)
	b := make([]float64, n)
	c := make([]float64, n)
	d := make([]float64, n)

	// Natural boundary: m[0] = m[n-1] = 0.
	b[0], b[n-1] = 1, 1

	for i := 1; i < n-1; i++ {
		a[i] = h[i-1]
		b[i] = 2 * (h[i-1] + h[i])
		c[i] = h[i]
		d[i] = 6 * ((knots[i+1].Y-knots[i].Y)/h[i] - (knots[i].Y-knots[i-1].Y)/h[i-1])
	}

	return tridiag.Solve(a, b, c, d)
}

// cubicSegments converts node second derivatives into per-segment coefficients.
func cubicSegments(knots []Point, h, m []float64) []Segment {
	segs := make([]Segment, len(h))
	for i := range segs {
		y0, y1 := knots[i].Y, knots[i+1].Y
		segs[i] = Segment{
			X1: knots[i].X,
			X2: knots[i+1].X,
			A:  y0,
			B:  (y1-y0)/h[i] - h[i]*(2*m[i]+m[i+1])/6,
			C:  m[i] / 2,
			D:  (m[i+1] - m[i]) / (6 * h[i]),
		}
	}

	return segs
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
