// SPDX-License-Identifier: MIT

// Package pointset provides a thread-safe, x-ordered set of control points
// with stable identities, the editing model behind a spline editor.
//
// A Set owns its points. Each point carries an opaque ID (a UUID) that never
// changes while the point lives, even when a Move re-sorts it. Every mutation
// reports the point's ordinal position directly, so callers never search for
// the point they just touched.
//
// Invariants maintained by every operation:
//
//   - Points are strictly increasing in X: no two points share an abscissa.
//     A mutation that would create a duplicate fails with ErrDuplicateX,
//     which also matches spline.ErrDegenerateInput.
//   - Coordinates are finite, and inside the configured Bounds if any.
//   - A rejected mutation leaves the set unchanged (same points, same Version).
//
// Configuration options (Option):
//
//	– WithBounds(minX, maxX, minY, maxY)  accept only points inside the canvas
//	– WithMaxPoints(n)                    cap the number of points
//	– WithCapacity(n)                     preallocate storage
//	– WithIDFunc(fn)                      deterministic IDs (tests, replays)
//
// Concurrency:
//
// A single sync.RWMutex guards the point slice; queries take the read lock,
// mutations the write lock. The spline itself is built from a snapshot via
// Curve and never touches the lock again.
//
// Complexity:
//
//	Insert, Move, Remove   O(n)      (binary search + slice shift)
//	Get, IndexOf           O(n)
//	At, Len, Version       O(1)
//	FindNear               O(n)
//	Curve                  O(n)      (copy + spline.Build)
package pointset
