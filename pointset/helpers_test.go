// SPDX-License-Identifier: MIT
// Package pointset_test contains shared fixtures for the pointset tests.

package pointset_test

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/katalvlaran/lvspline/pointset"
)

// seqIDs returns a deterministic ID generator: 00..01, 00..02, ...
func seqIDs() func() pointset.ID {
	var n atomic.Uint64

	return func() pointset.ID {
		var id pointset.ID
		binary.BigEndian.PutUint64(id[8:], n.Add(1))

		return id
	}
}

// xs returns the abscissas of pts in order.
func xs(pts []pointset.Point) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.X
	}

	return out
}

// mustInsert inserts (x, y) and panics on error; setup only.
func mustInsert(s *pointset.Set, x, y float64) pointset.ID {
	id, _, err := s.Insert(x, y)
	if err != nil {
		panic(err)
	}

	return id
}
