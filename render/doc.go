// SPDX-License-Identifier: MIT

// Package render turns a spline.Curve into drawable geometry.
//
// It owns the sampling policy that used to live in the drawing loop of an
// interactive editor: each segment [x1, x2] is cut into
//
//	steps = max(MinSteps, floor((x2 − x1) / PixelsPerStep))
//
// equal sub-intervals, so short segments still look smooth and long ones get
// roughly one sample every PixelsPerStep device units. The polyline starts at
// the first knot and ends exactly on the last one.
//
// Columns is the alternative for raster targets: one sample per device
// column across the whole domain.
//
// ControlPolygon returns the x-sorted control points, which editors draw as
// a dashed guide line under the curve.
//
// Nothing here draws; callers feed the points to whatever backend they use.
package render
