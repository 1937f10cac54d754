// SPDX-License-Identifier: MIT
// File: queries.go
// Role: Read-only access, hit testing and curve snapshots.
//
// Concurrency:
//   - Read lock only. Returned slices are copies the caller owns.

package pointset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvspline/spline"
)

// Len returns the number of points.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.pts)
}

// Version returns a counter bumped by every successful mutation. Equal
// versions imply equal contents.
func (s *Set) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version
}

// Bounds returns the configured canvas, if any.
func (s *Set) Bounds() (Bounds, bool) {
	if s.bounds == nil {
		return Bounds{}, false
	}

	return *s.bounds, true
}

// MaxPoints returns the size cap; 0 means unlimited.
func (s *Set) MaxPoints() int { return s.maxPoints }

// Get returns point id and its position.
func (s *Set) Get(id ID) (Point, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return Point{}, -1, setErrorf(opGet, fmt.Errorf("id %s: %w", id, ErrPointNotFound))
	}

	return s.pts[i], i, nil
}

// IndexOf returns the position of point id.
func (s *Set) IndexOf(id ID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return -1, setErrorf(opIndexOf, fmt.Errorf("id %s: %w", id, ErrPointNotFound))
	}

	return i, nil
}

// At returns the point at position i.
func (s *Set) At(i int) (Point, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i < 0 || i >= len(s.pts) {
		return Point{}, setErrorf(opAt, fmt.Errorf("index %d of %d: %w", i, len(s.pts), ErrPointNotFound))
	}

	return s.pts[i], nil
}

// Points returns a copy of the points in ascending X order.
func (s *Set) Points() []Point {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Point, len(s.pts))
	copy(out, s.pts)

	return out
}

// Nodes returns the points as spline inputs, in ascending X order.
func (s *Set) Nodes() []spline.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Nodes(s.pts)
}

// FindNear returns the point closest to (x, y) within radius (inclusive),
// its position, and whether one was found. Ties go to the lower position.
// A negative or NaN radius never matches.
func (s *Set) FindNear(x, y, radius float64) (Point, int, bool) {
	if !(radius >= 0) || !finite(x) || !finite(y) {
		return Point{}, -1, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	best, bestDist := -1, math.Inf(1)
	for i, p := range s.pts {
		d := math.Hypot(p.X-x, p.Y-y)
		if d <= radius && d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Point{}, -1, false
	}

	return s.pts[best], best, true
}

// Curve builds the spline through the current points. The set is unlocked
// before the solve, so a slow rebuild never blocks writers.
//
// Errors: whatever spline.Build returns, tagged; duplicates cannot occur.
func (s *Set) Curve(opts ...spline.Option) (*spline.Curve, error) {
	pts, _ := s.Snapshot()
	c, err := spline.Build(Nodes(pts), opts...)
	if err != nil {
		return nil, setErrorf(opCurve, err)
	}

	return c, nil
}

// Snapshot returns a copy of the points together with the version they
// belong to, read atomically.
func (s *Set) Snapshot() ([]Point, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Point, len(s.pts))
	copy(out, s.pts)

	return out, s.version
}

// Nodes strips identities from pts, keeping order.
func Nodes(pts []Point) []spline.Point {
	out := make([]spline.Point, len(pts))
	for i, p := range pts {
		out[i] = p.Node()
	}

	return out
}
