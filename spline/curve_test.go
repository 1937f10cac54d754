// SPDX-License-Identifier: MIT

package spline_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvspline/spline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hump is the three-point worked example used across curve tests.
func hump(t *testing.T) *spline.Curve {
	t.Helper()
	curve, err := spline.Build([]spline.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}})
	require.NoError(t, err)

	return curve
}

// TestCurve_Domain reports the outer knots.
func TestCurve_Domain(t *testing.T) {
	lo, hi, ok := hump(t).Domain()
	assert.True(t, ok)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 2.0, hi)
}

// TestCurve_Locate checks segment ownership, including the knot-on-left rule.
func TestCurve_Locate(t *testing.T) {
	curve := hump(t)
	cases := []struct {
		x    float64
		want int
	}{
		{0, 0}, {0.5, 0}, {1, 0}, {1.0000001, 1}, {2, 1},
	}
	for _, tc := range cases {
		i, err := curve.Locate(tc.x)
		require.NoError(t, err)
		assert.Equal(t, tc.want, i, "x=%g", tc.x)
	}
}

// TestCurve_OutOfDomain rejects abscissas outside [lo, hi] and NaN.
func TestCurve_OutOfDomain(t *testing.T) {
	curve := hump(t)
	for _, x := range []float64{-1e-9, 2.0000001, math.NaN(), math.Inf(1)} {
		_, err := curve.Eval(x)
		assert.ErrorIs(t, err, spline.ErrOutOfDomain, "x=%g", x)

		_, err = spline.Evaluate(curve, x)
		assert.ErrorIs(t, err, spline.ErrOutOfDomain, "x=%g", x)
	}
}

// TestCurve_Empty rejects evaluation on empty and nil curves.
func TestCurve_Empty(t *testing.T) {
	empty, err := spline.Build(nil)
	require.NoError(t, err)

	var nilCurve *spline.Curve
	for _, c := range []*spline.Curve{empty, nilCurve} {
		_, err = c.Eval(0)
		assert.ErrorIs(t, err, spline.ErrEmptyCurve)
		_, err = c.Locate(0)
		assert.ErrorIs(t, err, spline.ErrEmptyCurve)
		assert.Equal(t, 0, c.Len())
		assert.Nil(t, c.Knots())
	}
}

// TestCurve_Diff checks derivatives of the worked example at known spots.
func TestCurve_Diff(t *testing.T) {
	curve := hump(t)

	// Symmetric hump: slope 0 at the peak, curvature m[1] = −3 there.
	d1, err := curve.Diff(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, d1, eps)

	d2, err := curve.Diff(1, 2)
	require.NoError(t, err)
	assert.InDelta(t, -3.0, d2, eps)

	d3, err := curve.Diff(0.5, 3)
	require.NoError(t, err)
	assert.InDelta(t, -3.0, d3, eps)

	d4, err := curve.Diff(0.5, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d4)

	d0, err := curve.Diff(0.5, 0)
	require.NoError(t, err)
	y, _ := curve.Eval(0.5)
	assert.Equal(t, y, d0)

	_, err = curve.Diff(0.5, -1)
	assert.ErrorIs(t, err, spline.ErrBadOrder)
}

// TestCurve_EvalAll covers buffer reuse and the abort-on-first-error rule.
func TestCurve_EvalAll(t *testing.T) {
	curve := hump(t)
	xs := []float64{0, 0.5, 1, 1.5, 2}

	buf := make([]float64, 8)
	out, err := curve.EvalAll(xs, buf)
	require.NoError(t, err)
	require.Len(t, out, len(xs))
	assert.Same(t, &buf[0], &out[0], "a long enough buffer is reused")
	assert.InDelta(t, 0.6875, out[1], eps)
	assert.InDelta(t, 1.0, out[2], eps)
	assert.InDelta(t, 0.6875, out[3], eps)

	out, err = curve.EvalAll(xs, nil)
	require.NoError(t, err)
	assert.Len(t, out, len(xs))

	_, err = curve.EvalAll([]float64{1, 3}, nil)
	assert.ErrorIs(t, err, spline.ErrOutOfDomain)
}

// TestCurve_AccessorsReturnCopies guards the immutability of a built curve.
func TestCurve_AccessorsReturnCopies(t *testing.T) {
	curve := hump(t)

	segs := curve.Segments()
	segs[0].A = 100
	knots := curve.Knots()
	knots[0].Y = 100
	m := curve.SecondDerivatives()
	m[1] = 100

	assert.Equal(t, 0.0, curve.Segment(0).A)
	assert.Equal(t, 0.0, curve.Knots()[0].Y)
	assert.InDelta(t, -3.0, curve.SecondDerivatives()[1], eps)
}

// TestSegment_Contains checks the closed interval.
func TestSegment_Contains(t *testing.T) {
	s := spline.Segment{X1: 1, X2: 2}
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(0.999))
	assert.False(t, s.Contains(math.NaN()))
}
