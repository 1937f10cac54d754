// SPDX-License-Identifier: MIT

package editor

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/lvspline/pointset"
	"github.com/katalvlaran/lvspline/spline"
)

// Command operations.
const (
	OpInsert = "insert"
	OpMove   = "move"
	OpRemove = "remove"
	OpClear  = "clear"
	OpView   = "view"
)

// ErrUnknownOp indicates a Command with an unsupported Op.
var ErrUnknownOp = errors.New("editor: unknown command op")

// Session is one editing canvas.
type Session struct {
	ID      string
	Set     *pointset.Set
	Created time.Time

	mu       sync.Mutex
	curve    *spline.Curve
	curveVer uint64
	cached   bool
}

func newSession(id string, set *pointset.Set) *Session {
	return &Session{ID: id, Set: set, Created: time.Now()}
}

// Domain is the x-range covered by a curve.
type Domain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// View is a consistent snapshot of a session: the points and the segments
// built from exactly those points.
type View struct {
	Session  string           `json:"session"`
	Version  uint64           `json:"version"`
	Points   []pointset.Point `json:"points"`
	Segments []spline.Segment `json:"segments"`
	Domain   *Domain          `json:"domain,omitempty"`
}

// Command is a single edit, shared by the REST and websocket surfaces.
type Command struct {
	Op string  `json:"op"`
	ID string  `json:"id,omitempty"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Result reports the outcome of Apply. Position is the ordinal slot the
// point now occupies (insert, move) or occupied (remove); -1 otherwise.
type Result struct {
	Op       string `json:"op"`
	ID       string `json:"id,omitempty"`
	Position int    `json:"position"`
	View     View   `json:"view"`
}

// Curve returns the spline for the current points, rebuilding only when
// the set changed since the last call.
func (s *Session) Curve() (*spline.Curve, []pointset.Point, uint64, error) {
	pts, ver := s.Set.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached && s.curveVer == ver {
		return s.curve, pts, ver, nil
	}
	c, err := spline.Build(pointset.Nodes(pts))
	if err != nil {
		return nil, nil, 0, err
	}
	s.curve, s.curveVer, s.cached = c, ver, true

	return c, pts, ver, nil
}

// Snapshot returns the current View.
func (s *Session) Snapshot() (View, error) {
	c, pts, ver, err := s.Curve()
	if err != nil {
		return View{}, err
	}
	v := View{Session: s.ID, Version: ver, Points: pts, Segments: c.Segments()}
	if lo, hi, ok := c.Domain(); ok {
		v.Domain = &Domain{Min: lo, Max: hi}
	}

	return v, nil
}

// Apply executes cmd and returns the resulting view. A rejected command
// leaves the session unchanged.
func (s *Session) Apply(cmd Command) (Result, error) {
	res := Result{Op: cmd.Op, Position: -1}

	switch cmd.Op {
	case OpInsert:
		id, pos, err := s.Set.Insert(cmd.X, cmd.Y)
		if err != nil {
			return res, err
		}
		res.ID, res.Position = id.String(), pos

	case OpMove:
		id, err := pointset.ParseID(cmd.ID)
		if err != nil {
			return res, err
		}
		pos, err := s.Set.Move(id, cmd.X, cmd.Y)
		if err != nil {
			return res, err
		}
		res.ID, res.Position = cmd.ID, pos

	case OpRemove:
		id, err := pointset.ParseID(cmd.ID)
		if err != nil {
			return res, err
		}
		pos, err := s.Set.Remove(id)
		if err != nil {
			return res, err
		}
		res.ID, res.Position = cmd.ID, pos

	case OpClear:
		s.Set.Clear()

	case OpView:

	default:
		return res, fmt.Errorf("%w: %q", ErrUnknownOp, cmd.Op)
	}

	v, err := s.Snapshot()
	if err != nil {
		return res, err
	}
	res.View = v

	return res, nil
}
