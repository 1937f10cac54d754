// SPDX-License-Identifier: MIT

// types.go defines the control point, segment and build options.

package spline

import "math"

// Point is one interpolation node.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Segment is one cubic piece S(t) = A + B·t + C·t² + D·t³ with t = x − X1,
// valid only for x in [X1, X2].
//
// Segments are derived values: Build creates them and nothing mutates them.
type Segment struct {
	X1 float64 `json:"x1"`
	X2 float64 `json:"x2"`
	A  float64 `json:"a"`
	B  float64 `json:"b"`
	C  float64 `json:"c"`
	D  float64 `json:"d"`
}

// Contains reports whether x lies in the closed interval [X1, X2].
func (s Segment) Contains(x float64) bool {
	return x >= s.X1 && x <= s.X2
}

// Eval returns S(x). The domain is not checked; use Curve.Eval for that.
func (s Segment) Eval(x float64) float64 {
	t := x - s.X1
	return s.A + s.B*t + s.C*t*t + s.D*t*t*t
}

// Diff returns the derivative of the given order at x:
//
//	0: A + B·t + C·t² + D·t³
//	1: B + 2C·t + 3D·t²
//	2: 2C + 6D·t
//	3: 6D
//
// Orders above 3 are 0 and negative orders are treated as 0.
func (s Segment) Diff(x float64, order int) float64 {
	t := x - s.X1
	switch {
	case order <= 0:
		return s.Eval(x)
	case order == 1:
		return s.B + 2*s.C*t + 3*s.D*t*t
	case order == 2:
		return 2*s.C + 6*s.D*t
	case order == 3:
		return 6 * s.D
	default:
		return 0
	}
}

// finite reports whether every coefficient and bound is finite.
func (s Segment) finite() bool {
	for _, v := range [...]float64{s.X1, s.X2, s.A, s.B, s.C, s.D} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Option configures Build.
type Option func(*buildConfig)

// buildConfig is resolved once per Build call.
type buildConfig struct {
	minStep float64 // adjacent steps h <= minStep are degenerate
}

// DefaultMinStep rejects only exact duplicates.
const DefaultMinStep = 0.0

// WithMinStep treats adjacent abscissas closer than or equal to eps as
// duplicates, so near-coincident nodes fail with ErrDegenerateInput instead
// of producing huge coefficients.
// Panics if eps is negative, NaN or Inf.
func WithMinStep(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("spline: WithMinStep requires a finite eps >= 0")
	}

	return func(c *buildConfig) { c.minStep = eps }
}

// newBuildConfig applies opts left to right over the defaults.
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{minStep: DefaultMinStep}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
