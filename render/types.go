// SPDX-License-Identifier: MIT
// Package: render
//
// types.go - sampling options and sentinel errors.

package render

import "errors"

// Options configures Polyline.
//
// Fields:
//   - MinSteps      — lower bound on sub-intervals per segment (>= 1).
//   - PixelsPerStep — target spacing in x units between samples (> 0).
//   - MaxSteps      — upper bound on sub-intervals per segment; 0 falls
//     back to StepsCeiling. Protects against huge domains.
type Options struct {
	MinSteps      int
	PixelsPerStep float64
	MaxSteps      int
}

// Defaults reproduce the classic editor behaviour.
const (
	DefaultMinSteps      = 30
	DefaultPixelsPerStep = 5.0
	DefaultMaxSteps      = 4096

	// StepsCeiling bounds every per-segment step count, whatever the options.
	StepsCeiling = 1 << 16
)

// DefaultOptions returns {30, 5, 4096}.
func DefaultOptions() Options {
	return Options{
		MinSteps:      DefaultMinSteps,
		PixelsPerStep: DefaultPixelsPerStep,
		MaxSteps:      DefaultMaxSteps,
	}
}

var (
	// ErrBadOptions indicates MinSteps outside [1, StepsCeiling], a
	// non-positive PixelsPerStep, or MaxSteps outside [MinSteps, StepsCeiling].
	ErrBadOptions = errors.New("render: invalid sampling options")

	// ErrBadColumns indicates fewer than two columns were requested.
	ErrBadColumns = errors.New("render: need at least two columns")
)

// validate checks o.
func (o Options) validate() error {
	if o.MinSteps < 1 || o.MinSteps > StepsCeiling || !(o.PixelsPerStep > 0) {
		return ErrBadOptions
	}
	if o.MaxSteps < 0 || o.MaxSteps > StepsCeiling {
		return ErrBadOptions
	}
	if o.MaxSteps > 0 && o.MaxSteps < o.MinSteps {
		return ErrBadOptions
	}

	return nil
}

// Steps returns the number of sub-intervals for a segment of width w.
// The result never exceeds MaxSteps, or StepsCeiling when MaxSteps is 0, so
// an unbounded w/PixelsPerStep ratio cannot overflow the conversion to int.
func (o Options) Steps(w float64) int {
	limit := o.MaxSteps
	if limit <= 0 || limit > StepsCeiling {
		limit = StepsCeiling
	}
	steps := min(o.MinSteps, limit)
	if k := w / o.PixelsPerStep; k > float64(steps) {
		if k >= float64(limit) {
			return limit
		}
		steps = int(k)
	}

	return steps
}
