// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"math"
	"sort"
)

// Curve is an immutable ordered sequence of contiguous segments covering
// [x_min, x_max]: Segment(i).X2 == Segment(i+1).X1.
//
// A Curve built from fewer than two points is empty: it has no domain and
// every evaluation fails with ErrEmptyCurve. A nil *Curve behaves the same.
type Curve struct {
	knots   []Point   // sorted control points
	moments []float64 // second derivative at each knot (nil when empty)
	segs    []Segment // len(knots)-1 segments (nil when empty)
}

// Len returns the number of segments.
func (c *Curve) Len() int {
	if c == nil {
		return 0
	}

	return len(c.segs)
}

// Empty reports whether the curve has no segments.
func (c *Curve) Empty() bool { return c.Len() == 0 }

// Segment returns segment i. Panics if i is out of range, like a slice index.
func (c *Curve) Segment(i int) Segment { return c.segs[i] }

// Segments returns a copy of the segment list.
func (c *Curve) Segments() []Segment {
	if c == nil || len(c.segs) == 0 {
		return nil
	}
	out := make([]Segment, len(c.segs))
	copy(out, c.segs)

	return out
}

// Knots returns a copy of the control points in ascending x order.
func (c *Curve) Knots() []Point {
	if c == nil || len(c.knots) == 0 {
		return nil
	}
	out := make([]Point, len(c.knots))
	copy(out, c.knots)

	return out
}

// SecondDerivatives returns a copy of the solved second derivative at each
// knot. Both ends are 0 by the natural boundary condition.
func (c *Curve) SecondDerivatives() []float64 {
	if c == nil || len(c.moments) == 0 {
		return nil
	}
	out := make([]float64, len(c.moments))
	copy(out, c.moments)

	return out
}

// Domain returns [x_min, x_max]; ok is false for an empty curve.
func (c *Curve) Domain() (lo, hi float64, ok bool) {
	if c.Empty() {
		return 0, 0, false
	}

	return c.segs[0].X1, c.segs[len(c.segs)-1].X2, true
}

// Locate returns the index of the segment owning x.
//
// An interior knot belongs to the segment on its left; both neighbors agree
// there up to rounding. Segments are sorted, so the lookup is a binary search
// on the right edges.
//
// Errors: ErrEmptyCurve, ErrOutOfDomain (including NaN).
// Complexity: O(log n).
func (c *Curve) Locate(x float64) (int, error) {
	i, err := c.locate(x)
	if err != nil {
		return -1, splineErrorf(opLocate, err)
	}

	return i, nil
}

// Eval returns S(x).
//
// Errors: ErrEmptyCurve, ErrOutOfDomain.
// Complexity: O(log n).
func (c *Curve) Eval(x float64) (float64, error) {
	i, err := c.locate(x)
	if err != nil {
		return 0, splineErrorf(opEval, err)
	}

	return c.segs[i].Eval(x), nil
}

// Diff returns the derivative of the given order at x (0 is the value).
//
// Errors: ErrBadOrder, ErrEmptyCurve, ErrOutOfDomain.
func (c *Curve) Diff(x float64, order int) (float64, error) {
	if order < 0 {
		return 0, splineErrorf(opDiff, fmt.Errorf("order %d: %w", order, ErrBadOrder))
	}
	i, err := c.locate(x)
	if err != nil {
		return 0, splineErrorf(opDiff, err)
	}

	return c.segs[i].Diff(x, order), nil
}

// EvalAll evaluates the curve at every xs[i]. If out is long enough it is
// reused, otherwise a new slice is allocated. The first out-of-domain
// abscissa aborts the batch.
func (c *Curve) EvalAll(xs []float64, out []float64) ([]float64, error) {
	if len(out) < len(xs) {
		out = make([]float64, len(xs))
	}
	out = out[:len(xs)]

	for k, x := range xs {
		i, err := c.locate(x)
		if err != nil {
			return nil, splineErrorf(opEvalAll, fmt.Errorf("xs[%d]: %w", k, err))
		}
		out[k] = c.segs[i].Eval(x)
	}

	return out, nil
}

// Evaluate returns S(x) for curve c; it is the function form of c.Eval.
func Evaluate(c *Curve, x float64) (float64, error) {
	return c.Eval(x)
}

// locate is the untagged segment lookup shared by every evaluator.
func (c *Curve) locate(x float64) (int, error) {
	lo, hi, ok := c.Domain()
	if !ok {
		return -1, ErrEmptyCurve
	}
	if math.IsNaN(x) || x < lo || x > hi {
		return -1, fmt.Errorf("x=%g not in [%g, %g]: %w", x, lo, hi, ErrOutOfDomain)
	}

	return sort.Search(len(c.segs), func(i int) bool { return c.segs[i].X2 >= x }), nil
}
