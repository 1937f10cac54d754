// SPDX-License-Identifier: MIT

// Package lvspline is a small, dependency-light toolkit for fitting and
// editing natural cubic splines through 2-D control points.
//
// 🚀 What is lvspline?
//
//	A layered library plus two hosts:
//		• tridiag  — Thomas-algorithm solver for tridiagonal systems
//		• spline   — natural cubic spline builder and evaluator
//		• pointset — thread-safe, x-ordered control points with stable IDs
//		• render   — sampling policy: polylines and per-column samples
//		• fixture  — deterministic point generators for tests and demos
//
// ✨ Why choose lvspline?
//
//   - Exact contract: the curve hits every point, is C² at every interior
//     node and has zero curvature at both ends.
//   - Errors, not panics: duplicate abscissas, non-finite input and
//     out-of-domain queries each have a sentinel for errors.Is.
//   - Deterministic: the same points always yield bit-identical
//     coefficients.
//   - Stable identities: editors address points by ID, never by a
//     position that shifts under them.
//
// Under the hood:
//
//	tridiag/          — Solve, SolveInto, Residual
//	spline/           — Build, Curve.Eval/Diff/EvalAll/Locate, Segment
//	pointset/         — Set.Insert/Move/Remove/FindNear/Curve
//	render/           — Polyline, Columns, ControlPolygon
//	fixture/          — Sine, Chirp, Pulse, Random
//	internal/editor/  — HTTP + websocket session service
//	internal/pointio/ — table and YAML point files
//	internal/config/  — environment and INI configuration
//	cmd/splined/      — the editor server
//	cmd/splinecli/    — batch fit-and-sample tool
//
// Quick ASCII example:
//
//	      (1,1)
//	     .-'''-.
//	   .'       '.
//	(0,0)       (2,0)
//
//	three points, two cubic segments, S''(1) = −3.
//
//	go get github.com/katalvlaran/lvspline
package lvspline
