// SPDX-License-Identifier: MIT

package spline_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvspline/spline"
	"github.com/katalvlaran/lvspline/tridiag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eps is the tolerance for values of order one.
const eps = 1e-9

// TestBuild_TooFewPoints verifies that 0 and 1 points yield an empty curve.
func TestBuild_TooFewPoints(t *testing.T) {
	for _, pts := range [][]spline.Point{nil, {}, {{X: 3, Y: 4}}} {
		curve, err := spline.Build(pts)
		require.NoError(t, err, "fewer than two points is not an error")
		assert.True(t, curve.Empty())
		assert.Nil(t, curve.Segments())
		_, _, ok := curve.Domain()
		assert.False(t, ok)
	}
}

// TestBuild_TwoPointsLinear verifies the closed-form linear segment.
func TestBuild_TwoPointsLinear(t *testing.T) {
	curve, err := spline.Build([]spline.Point{{X: 4, Y: 7}, {X: 2, Y: 3}})
	require.NoError(t, err)
	require.Equal(t, 1, curve.Len())

	assert.Equal(t, spline.Segment{X1: 2, X2: 4, A: 3, B: 2, C: 0, D: 0}, curve.Segment(0))
	assert.Equal(t, []float64{0, 0}, curve.SecondDerivatives())
}

// TestBuild_ThreePointScenario pins the worked example (0,0),(1,1),(2,0):
// m[0]=m[2]=0, 4·m[1] = −12 ⇒ m[1] = −3.
func TestBuild_ThreePointScenario(t *testing.T) {
	curve, err := spline.Build([]spline.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}})
	require.NoError(t, err)
	require.Equal(t, 2, curve.Len())

	m := curve.SecondDerivatives()
	require.Len(t, m, 3)
	assert.Equal(t, 0.0, m[0])
	assert.InDelta(t, -3.0, m[1], eps)
	assert.Equal(t, 0.0, m[2])

	s0, s1 := curve.Segment(0), curve.Segment(1)
	assert.InDelta(t, 0.0, s0.Eval(0), eps)
	assert.InDelta(t, 1.0, s0.Eval(1), eps)
	assert.InDelta(t, 1.0, s1.Eval(1), eps)
	assert.InDelta(t, 0.0, s1.Eval(2), eps)

	// Coefficients from the closed forms.
	assert.InDelta(t, 1.5, s0.B, eps)
	assert.InDelta(t, 0.0, s0.C, eps)
	assert.InDelta(t, -0.5, s0.D, eps)
	assert.InDelta(t, 0.0, s1.B, eps)
	assert.InDelta(t, -1.5, s1.C, eps)
	assert.InDelta(t, 0.5, s1.D, eps)

	y, err := curve.Eval(1.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, y, eps)
}

// TestBuild_SortsInput verifies unsorted input is sorted and not mutated.
func TestBuild_SortsInput(t *testing.T) {
	in := []spline.Point{{X: 2, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 1}}
	curve, err := spline.Build(in)
	require.NoError(t, err)

	assert.Equal(t, []spline.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}, curve.Knots())
	assert.Equal(t, spline.Point{X: 2, Y: 0}, in[0], "caller slice must stay untouched")
}

// TestBuild_DuplicateAbscissa verifies duplicates fail with ErrDegenerateInput
// for both the spline and the linear case.
func TestBuild_DuplicateAbscissa(t *testing.T) {
	cases := map[string][]spline.Point{
		"three points":    {{X: 0, Y: 0}, {X: 5, Y: 1}, {X: 5, Y: 2}},
		"two points":      {{X: 5, Y: 1}, {X: 5, Y: 2}},
		"identical pairs": {{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 3, Y: 3}},
	}
	for name, pts := range cases {
		t.Run(name, func(t *testing.T) {
			curve, err := spline.Build(pts)
			assert.Nil(t, curve)
			assert.ErrorIs(t, err, spline.ErrDegenerateInput)
			assert.NotErrorIs(t, err, spline.ErrSingularSystem, "must be caught before the solver")
		})
	}
}

// TestBuild_MinStep verifies the near-duplicate threshold.
func TestBuild_MinStep(t *testing.T) {
	pts := []spline.Point{{X: 0, Y: 0}, {X: 1e-12, Y: 1}, {X: 1, Y: 0}}

	_, err := spline.Build(pts)
	require.NoError(t, err, "default only rejects exact duplicates")

	_, err = spline.Build(pts, spline.WithMinStep(1e-9))
	assert.ErrorIs(t, err, spline.ErrDegenerateInput)

	assert.Panics(t, func() { spline.WithMinStep(-1) })
	assert.Panics(t, func() { spline.WithMinStep(math.NaN()) })
}

// TestBuild_NonFinite verifies NaN/Inf coordinates are rejected.
func TestBuild_NonFinite(t *testing.T) {
	for _, p := range []spline.Point{{X: math.NaN(), Y: 0}, {X: 0.5, Y: math.Inf(1)}} {
		_, err := spline.Build([]spline.Point{{X: 0, Y: 0}, p, {X: 1, Y: 1}})
		assert.ErrorIs(t, err, spline.ErrNaNInf)
	}

	_, err := spline.Build([]spline.Point{{X: -math.MaxFloat64, Y: 0}, {X: math.MaxFloat64, Y: 1}})
	assert.ErrorIs(t, err, spline.ErrNaNInf, "overflowing step")
}

// TestBuild_SolverFailureIsWrapped checks the singular classification keeps
// the tridiag cause reachable. A huge ordinate jump overflows the RHS.
func TestBuild_SolverFailureIsWrapped(t *testing.T) {
	pts := []spline.Point{{X: 0, Y: 0}, {X: 1e-300, Y: math.MaxFloat64}, {X: 1, Y: 0}}
	_, err := spline.Build(pts)
	require.Error(t, err)
	assert.ErrorIs(t, err, spline.ErrSingularSystem)
	assert.ErrorIs(t, err, tridiag.ErrNaNInf)
}

// TestBuild_Idempotent verifies bit-identical coefficients across rebuilds.
func TestBuild_Idempotent(t *testing.T) {
	pts := []spline.Point{{X: 0, Y: 1}, {X: 0.7, Y: -2}, {X: 1.9, Y: 0.3}, {X: 3.1, Y: 4}, {X: 5, Y: 2}}

	c1, err := spline.Build(pts)
	require.NoError(t, err)
	c2, err := spline.Build(pts)
	require.NoError(t, err)

	s1, s2 := c1.Segments(), c2.Segments()
	require.Len(t, s2, len(s1))
	for i := range s1 {
		assert.Equal(t, math.Float64bits(s1[i].A), math.Float64bits(s2[i].A))
		assert.Equal(t, math.Float64bits(s1[i].B), math.Float64bits(s2[i].B))
		assert.Equal(t, math.Float64bits(s1[i].C), math.Float64bits(s2[i].C))
		assert.Equal(t, math.Float64bits(s1[i].D), math.Float64bits(s2[i].D))
	}
}

// TestBuild_CollinearPointsStayLinear verifies collinear input has zero curvature.
func TestBuild_CollinearPointsStayLinear(t *testing.T) {
	curve, err := spline.Build([]spline.Point{{X: 0, Y: 1}, {X: 1, Y: 3}, {X: 3, Y: 7}, {X: 4, Y: 9}})
	require.NoError(t, err)
	for _, m := range curve.SecondDerivatives() {
		assert.InDelta(t, 0.0, m, eps)
	}
	y, err := curve.Eval(2.5)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, y, eps)
}
