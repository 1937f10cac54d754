// SPDX-License-Identifier: MIT
// File: types.go
// Role: Point, Bounds, Set and the functional options.
//
// Policy:
//   - Option constructors validate and PANIC on meaningless input.
//   - Set operations never panic on user input; they return sentinels.

package pointset

import (
	"math"
	"sync"

	"github.com/katalvlaran/lvspline/spline"
)

// Point is a control point owned by a Set.
type Point struct {
	ID ID      `json:"id" yaml:"id"`
	X  float64 `json:"x" yaml:"x"`
	Y  float64 `json:"y" yaml:"y"`
}

// Node strips the identity, leaving the spline input value.
func (p Point) Node() spline.Point { return spline.Point{X: p.X, Y: p.Y} }

// Bounds is a closed axis-aligned rectangle.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Contains reports whether (x, y) lies inside b, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Set is an x-ordered collection of uniquely identified control points.
//
// The zero value is not usable; construct with New.
type Set struct {
	mu sync.RWMutex

	pts     []Point // strictly increasing X
	version uint64  // bumped by every successful mutation

	idFn      func() ID
	bounds    *Bounds
	maxPoints int // 0 means unlimited
}

// Option customizes a Set at construction.
type Option func(*Set)

// New returns an empty Set configured by opts.
func New(opts ...Option) *Set {
	s := &Set{idFn: NewID}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithBounds restricts coordinates to [minX, maxX] × [minY, maxY].
// Panics if a bound is non-finite or min > max.
func WithBounds(minX, maxX, minY, maxY float64) Option {
	for _, v := range [...]float64{minX, maxX, minY, maxY} {
		if !finite(v) {
			panic("pointset: WithBounds requires finite bounds")
		}
	}
	if minX > maxX || minY > maxY {
		panic("pointset: WithBounds requires min <= max")
	}
	b := Bounds{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}

	return func(s *Set) { s.bounds = &b }
}

// WithMaxPoints caps the set size; Insert beyond it fails with
// ErrTooManyPoints. Panics if n < 1.
func WithMaxPoints(n int) Option {
	if n < 1 {
		panic("pointset: WithMaxPoints requires n >= 1")
	}

	return func(s *Set) { s.maxPoints = n }
}

// WithCapacity preallocates room for n points. Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic("pointset: WithCapacity requires n >= 0")
	}

	return func(s *Set) { s.pts = make([]Point, 0, n) }
}

// WithIDFunc replaces the ID generator. Panics on nil.
func WithIDFunc(fn func() ID) Option {
	if fn == nil {
		panic("pointset: WithIDFunc(nil)")
	}

	return func(s *Set) { s.idFn = fn }
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
