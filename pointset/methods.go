// SPDX-License-Identifier: MIT
// File: methods.go
// Role: Mutations (Insert, Move, Remove, Clear).
//
// Determinism:
//   - Positions are ordinal indices into the x-sorted sequence.
//
// Concurrency:
//   - Every mutation holds the write lock for its whole duration, so the
//     validate-then-apply sequence is atomic.

package pointset

import (
	"fmt"
	"slices"
	"sort"
)

// Insert adds a point at (x, y) and returns its new ID and position.
//
// Implementation:
//   - Stage 1: Validate coordinates (finite, inside Bounds).
//   - Stage 2: Under the write lock, check capacity and binary-search the slot.
//   - Stage 3: Reject an equal abscissa, otherwise shift and insert.
//
// Errors:
//   - ErrNaNInf, ErrOutOfBounds, ErrTooManyPoints, ErrDuplicateX, ErrBadID
//     (the configured ID function returned a zero or in-use ID).
//
// Complexity:
//   - Time O(n), Space O(1) amortized.
func (s *Set) Insert(x, y float64) (ID, int, error) {
	if err := s.checkCoords(x, y); err != nil {
		return ID{}, -1, setErrorf(opInsert, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxPoints > 0 && len(s.pts) >= s.maxPoints {
		return ID{}, -1, setErrorf(opInsert, fmt.Errorf("limit %d: %w", s.maxPoints, ErrTooManyPoints))
	}

	pos := s.search(x)
	if pos < len(s.pts) && s.pts[pos].X == x {
		return ID{}, -1, setErrorf(opInsert, fmt.Errorf("x=%g: %w", x, ErrDuplicateX))
	}

	id := s.idFn()
	if id.IsZero() || s.indexOf(id) >= 0 {
		return ID{}, -1, setErrorf(opInsert, fmt.Errorf("id %s: %w", id, ErrBadID))
	}

	s.pts = slices.Insert(s.pts, pos, Point{ID: id, X: x, Y: y})
	s.version++

	return id, pos, nil
}

// Move relocates point id to (x, y), keeping its ID, and returns the new
// position. Moving onto the point's own abscissa is allowed.
//
// Errors:
//   - ErrPointNotFound, ErrNaNInf, ErrOutOfBounds, ErrDuplicateX.
func (s *Set) Move(id ID, x, y float64) (int, error) {
	if err := s.checkCoords(x, y); err != nil {
		return -1, setErrorf(opMove, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.indexOf(id)
	if from < 0 {
		return -1, setErrorf(opMove, fmt.Errorf("id %s: %w", id, ErrPointNotFound))
	}

	// Slot in the current slice; the point itself may sit there.
	slot := s.search(x)
	if slot < len(s.pts) && s.pts[slot].X == x && slot != from {
		return -1, setErrorf(opMove, fmt.Errorf("x=%g: %w", x, ErrDuplicateX))
	}

	to := slot
	if slot > from {
		to-- // the point leaves its old slot first
	}

	p := Point{ID: id, X: x, Y: y}
	if to == from {
		s.pts[from] = p
	} else {
		s.pts = slices.Delete(s.pts, from, from+1)
		s.pts = slices.Insert(s.pts, to, p)
	}
	s.version++

	return to, nil
}

// Remove deletes point id and returns the position it occupied.
//
// Errors:
//   - ErrPointNotFound.
func (s *Set) Remove(id ID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return -1, setErrorf(opRemove, fmt.Errorf("id %s: %w", id, ErrPointNotFound))
	}
	s.pts = slices.Delete(s.pts, i, i+1)
	s.version++

	return i, nil
}

// Clear removes every point. Configuration is kept.
func (s *Set) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pts) == 0 {
		return
	}
	s.pts = s.pts[:0]
	s.version++
}

// checkCoords validates a candidate coordinate pair; no lock needed since
// bounds are immutable after New.
func (s *Set) checkCoords(x, y float64) error {
	if !finite(x) || !finite(y) {
		return fmt.Errorf("(%g, %g): %w", x, y, ErrNaNInf)
	}
	if s.bounds != nil && !s.bounds.Contains(x, y) {
		return fmt.Errorf("(%g, %g): %w", x, y, ErrOutOfBounds)
	}

	return nil
}

// search returns the first index whose X >= x. Caller holds the lock.
func (s *Set) search(x float64) int {
	return sort.Search(len(s.pts), func(i int) bool { return s.pts[i].X >= x })
}

// indexOf returns the position of id or -1. Caller holds the lock.
func (s *Set) indexOf(id ID) int {
	return slices.IndexFunc(s.pts, func(p Point) bool { return p.ID == id })
}
