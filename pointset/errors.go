// SPDX-License-Identifier: MIT
// Package: pointset
//
// errors.go — sentinel errors and op tags.

package pointset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvspline/spline"
)

// Sentinel errors for point set mutations and lookups.
var (
	// ErrPointNotFound indicates an unknown ID or an out-of-range index.
	ErrPointNotFound = errors.New("pointset: point not found")

	// ErrDuplicateX indicates the mutation would place two points on the same
	// abscissa. It wraps spline.ErrDegenerateInput so one errors.Is check
	// covers both layers.
	ErrDuplicateX = fmt.Errorf("pointset: duplicate abscissa: %w", spline.ErrDegenerateInput)

	// ErrOutOfBounds indicates a coordinate outside the configured Bounds.
	ErrOutOfBounds = errors.New("pointset: point outside bounds")

	// ErrNaNInf indicates a NaN or ±Inf coordinate.
	ErrNaNInf = errors.New("pointset: NaN or Inf coordinate")

	// ErrTooManyPoints indicates Insert on a set already holding MaxPoints.
	ErrTooManyPoints = errors.New("pointset: too many points")

	// ErrBadID indicates an unparsable, zero or colliding point ID.
	ErrBadID = errors.New("pointset: bad point id")
)

// Canonical operation tags.
const (
	opInsert  = "pointset.Insert"
	opMove    = "pointset.Move"
	opRemove  = "pointset.Remove"
	opGet     = "pointset.Get"
	opIndexOf = "pointset.IndexOf"
	opAt      = "pointset.At"
	opCurve   = "pointset.Curve"
	opParseID = "pointset.ParseID"
)

// setErrorf prefixes err with the operation tag.
func setErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
