// SPDX-License-Identifier: MIT

package render

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvspline/spline"
)

// Polyline samples c segment by segment.
//
// Output: the first knot, then Steps(x2−x1) samples per segment, the last of
// which is forced to x2 so consecutive segments join exactly. An empty curve
// yields nil. A nil opts means DefaultOptions().
//
// Errors: ErrBadOptions.
// Complexity: O(total samples).
func Polyline(c *spline.Curve, opts *Options) ([]spline.Point, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("render.Polyline: %+v: %w", o, err)
	}
	if c.Empty() {
		return nil, nil
	}

	total := 1
	for i := 0; i < c.Len(); i++ {
		s := c.Segment(i)
		total += o.Steps(s.X2 - s.X1)
	}

	out := make([]spline.Point, 0, total)
	first := c.Segment(0)
	out = append(out, spline.Point{X: first.X1, Y: first.A})

	for i := 0; i < c.Len(); i++ {
		s := c.Segment(i)
		steps := o.Steps(s.X2 - s.X1)
		dx := (s.X2 - s.X1) / float64(steps)
		for k := 1; k <= steps; k++ {
			x := s.X1 + float64(k)*dx
			if k == steps {
				x = s.X2
			}
			out = append(out, spline.Point{X: x, Y: s.Eval(x)})
		}
	}

	return out, nil
}

// Columns samples c at n evenly spaced abscissas covering its domain, both
// ends included.
//
// Errors: ErrBadColumns, spline.ErrEmptyCurve.
func Columns(c *spline.Curve, n int) ([]spline.Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("render.Columns: n=%d: %w", n, ErrBadColumns)
	}
	lo, hi, ok := c.Domain()
	if !ok {
		return nil, fmt.Errorf("render.Columns: %w", spline.ErrEmptyCurve)
	}

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	xs[n-1] = hi

	ys, err := c.EvalAll(xs, nil)
	if err != nil {
		return nil, fmt.Errorf("render.Columns: %w", err)
	}

	out := make([]spline.Point, n)
	for i := range out {
		out[i] = spline.Point{X: xs[i], Y: ys[i]}
	}

	return out, nil
}

// ControlPolygon returns a copy of nodes sorted by x (stable), the order in
// which the guide line connects them.
func ControlPolygon(nodes []spline.Point) []spline.Point {
	if len(nodes) == 0 {
		return nil
	}
	out := slices.Clone(nodes)
	slices.SortStableFunc(out, func(p, q spline.Point) int { return cmp.Compare(p.X, q.X) })

	return out
}
