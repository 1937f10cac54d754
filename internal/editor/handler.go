// SPDX-License-Identifier: MIT
// Package: editor
//
// handler.go - HTTP routes over the session store.

package editor

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/spf13/cast"

	"github.com/katalvlaran/lvspline/fixture"
	"github.com/katalvlaran/lvspline/pointset"
	"github.com/katalvlaran/lvspline/render"
	"github.com/katalvlaran/lvspline/spline"
)

// ErrBadParam indicates a missing or malformed request parameter.
var ErrBadParam = errors.New("editor: bad parameter")

// Request limits applied when the matching Options field is zero.
const (
	DefaultMaxColumns = 4096
	DefaultHitRadius  = 12.0
)

// Options configures a Handler.
//
// MaxColumns caps ?n= on the columns endpoint. HitRadius is the default
// ?r= for hit testing, twice the drawn point radius.
type Options struct {
	CanvasWidth    float64
	CanvasHeight   float64
	MaxPoints      int
	MaxColumns     int
	HitRadius      float64
	OriginPatterns []string
	Render         render.Options
}

// DefaultOptions returns a 640x480 canvas with 256 points and the default
// sampling policy.
func DefaultOptions() Options {
	return Options{
		CanvasWidth:  640,
		CanvasHeight: 480,
		MaxPoints:    256,
		MaxColumns:   DefaultMaxColumns,
		HitRadius:    DefaultHitRadius,
		Render:       render.DefaultOptions(),
	}
}

// Handler serves the session API.
type Handler struct {
	store *Store
	opts  Options
	log   *slog.Logger
}

// NewHandler returns a Handler over store.
func NewHandler(store *Store, opts Options, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{store: store, opts: opts, log: logger}
}

// Routes registers every endpoint on r.
func (h *Handler) Routes(r *mux.Router) {
	r.HandleFunc("/health", h.Health).Methods("GET")

	r.HandleFunc("/sessions", h.CreateSession).Methods("POST")
	r.HandleFunc("/sessions/{sid}", h.GetSession).Methods("GET")
	r.HandleFunc("/sessions/{sid}", h.DeleteSession).Methods("DELETE")

	r.HandleFunc("/sessions/{sid}/points", h.InsertPoint).Methods("POST")
	r.HandleFunc("/sessions/{sid}/points/{pid}", h.MovePoint).Methods("PUT")
	r.HandleFunc("/sessions/{sid}/points/{pid}", h.RemovePoint).Methods("DELETE")

	r.HandleFunc("/sessions/{sid}/hit", h.Hit).Methods("GET")
	r.HandleFunc("/sessions/{sid}/eval", h.Eval).Methods("GET")
	r.HandleFunc("/sessions/{sid}/polyline", h.Polyline).Methods("GET")
	r.HandleFunc("/sessions/{sid}/columns", h.Columns).Methods("GET")

	r.HandleFunc("/sessions/{sid}/ws", h.Socket)
}

// Health reports liveness and the number of open sessions.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "sessions": h.store.Len()})
}

// CreateSession creates a session, optionally seeded with
// ?fixture=<kind>&n=<count>&seed=<seed>.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var seed []spline.Point
	if kind := q.Get("fixture"); kind != "" {
		n, err := queryInt(r, "n", 8)
		if err != nil {
			h.fail(w, err)
			return
		}
		s, err := queryInt(r, "seed", 1)
		if err != nil {
			h.fail(w, err)
			return
		}
		if seed, err = h.fixturePoints(kind, n, int64(s)); err != nil {
			h.fail(w, err)
			return
		}
	}

	sess := h.store.Create(h.setOptions()...)
	for _, p := range seed {
		if _, _, err := sess.Set.Insert(p.X, p.Y); err != nil {
			h.store.Delete(sess.ID)
			h.fail(w, err)
			return
		}
	}

	h.writeView(w, http.StatusCreated, sess)
}

// GetSession returns the current view of {sid}.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.writeView(w, http.StatusOK, sess)
}

// DeleteSession drops {sid}; 404 when it does not exist.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if !h.store.Delete(mux.Vars(r)["sid"]) {
		h.fail(w, ErrSessionNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type pointRequest struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// InsertPoint adds the point in the {"x","y"} body and returns its position.
func (h *Handler) InsertPoint(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, OpInsert, http.StatusCreated)
}

// MovePoint moves {pid} to the {"x","y"} body.
func (h *Handler) MovePoint(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, OpMove, http.StatusOK)
}

// RemovePoint deletes {pid}.
func (h *Handler) RemovePoint(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, OpRemove, http.StatusOK)
}

// apply decodes the request into a Command and runs it.
func (h *Handler) apply(w http.ResponseWriter, r *http.Request, op string, status int) {
	sess, err := h.session(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	cmd := Command{Op: op, ID: mux.Vars(r)["pid"]}
	if op != OpRemove {
		var req pointRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.fail(w, fmt.Errorf("%w: invalid request body: %v", ErrBadParam, err))
			return
		}
		if req.X == nil || req.Y == nil {
			h.fail(w, fmt.Errorf("%w: x and y are required", ErrBadParam))
			return
		}
		cmd.X, cmd.Y = *req.X, *req.Y
	}

	res, err := sess.Apply(cmd)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.writeJSON(w, status, res)
}

type hitResponse struct {
	Found    bool            `json:"found"`
	Position int             `json:"position"`
	Point    *pointset.Point `json:"point,omitempty"`
}

// Hit finds the control point under the cursor: ?x=&y=&r= (r defaults to
// Options.HitRadius).
func (h *Handler) Hit(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	x, err := queryFloat(r, "x")
	if err != nil {
		h.fail(w, err)
		return
	}
	y, err := queryFloat(r, "y")
	if err != nil {
		h.fail(w, err)
		return
	}
	radius := h.opts.HitRadius
	if radius <= 0 {
		radius = DefaultHitRadius
	}
	if r.URL.Query().Has("r") {
		if radius, err = queryFloat(r, "r"); err != nil {
			h.fail(w, err)
			return
		}
	}

	p, pos, ok := sess.Set.FindNear(x, y, radius)
	resp := hitResponse{Found: ok, Position: pos}
	if ok {
		resp.Point = &p
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type evalResponse struct {
	X       float64 `json:"x"`
	Order   int     `json:"order"`
	Value   float64 `json:"value"`
	Segment int     `json:"segment"`
	Version uint64  `json:"version"`
}

// Eval returns the curve value (or a derivative with &order=) at ?x=.
func (h *Handler) Eval(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	x, err := queryFloat(r, "x")
	if err != nil {
		h.fail(w, err)
		return
	}
	order, err := queryInt(r, "order", 0)
	if err != nil {
		h.fail(w, err)
		return
	}

	c, _, ver, err := sess.Curve()
	if err != nil {
		h.fail(w, err)
		return
	}
	seg, err := c.Locate(x)
	if err != nil {
		h.fail(w, err)
		return
	}
	v, err := c.Diff(x, order)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, evalResponse{X: x, Order: order, Value: v, Segment: seg, Version: ver})
}

type samplesResponse struct {
	Version uint64         `json:"version"`
	Points  []spline.Point `json:"points"`
	Control []spline.Point `json:"control"`
}

// Polyline samples the curve with the configured policy; ?min_steps= and
// ?px= override it per request.
func (h *Handler) Polyline(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	opts := h.opts.Render
	if opts.MinSteps, err = queryInt(r, "min_steps", opts.MinSteps); err != nil {
		h.fail(w, err)
		return
	}
	if r.URL.Query().Has("px") {
		if opts.PixelsPerStep, err = queryFloat(r, "px"); err != nil {
			h.fail(w, err)
			return
		}
	}

	c, pts, ver, err := sess.Curve()
	if err != nil {
		h.fail(w, err)
		return
	}
	line, err := render.Polyline(c, &opts)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, samplesResponse{Version: ver, Points: line, Control: pointset.Nodes(pts)})
}

// Columns samples one point per device column: ?n= (defaults to the canvas
// width, at most Options.MaxColumns).
func (h *Handler) Columns(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	n, err := queryInt(r, "n", int(h.opts.CanvasWidth))
	if err != nil {
		h.fail(w, err)
		return
	}
	limit := h.opts.MaxColumns
	if limit <= 0 {
		limit = DefaultMaxColumns
	}
	if n > limit {
		h.fail(w, fmt.Errorf("%w: n=%d exceeds limit %d", ErrBadParam, n, limit))
		return
	}

	c, pts, ver, err := sess.Curve()
	if err != nil {
		h.fail(w, err)
		return
	}
	cols, err := render.Columns(c, n)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, samplesResponse{Version: ver, Points: cols, Control: pointset.Nodes(pts)})
}

// session resolves {sid}.
func (h *Handler) session(r *http.Request) (*Session, error) {
	return h.store.Get(mux.Vars(r)["sid"])
}

// setOptions derives the per-session point set configuration.
func (h *Handler) setOptions() []pointset.Option {
	opts := []pointset.Option{pointset.WithCapacity(16)}
	if h.opts.CanvasWidth > 0 && h.opts.CanvasHeight > 0 {
		opts = append(opts, pointset.WithBounds(0, h.opts.CanvasWidth, 0, h.opts.CanvasHeight))
	}
	if h.opts.MaxPoints > 0 {
		opts = append(opts, pointset.WithMaxPoints(h.opts.MaxPoints))
	}

	return opts
}

// fixturePoints lays a generated sequence across the middle 80% of the
// canvas, centred vertically.
func (h *Handler) fixturePoints(kind string, n int, seed int64) ([]spline.Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: n=%d, need at least 2", ErrBadParam, n)
	}
	if h.opts.MaxPoints > 0 && n > h.opts.MaxPoints {
		return nil, fmt.Errorf("n=%d, limit %d: %w", n, h.opts.MaxPoints, pointset.ErrTooManyPoints)
	}
	w, ht := h.opts.CanvasWidth, h.opts.CanvasHeight
	pts, err := fixture.ByName(kind, n,
		fixture.WithSeed(seed),
		fixture.WithStart(0.1*w),
		fixture.WithStep(0.8*w/float64(n-1)),
		fixture.WithAmplitude(0.3*ht),
		fixture.WithFrequency(2/(0.8*w)),
	)
	if err != nil {
		return nil, err
	}
	for i := range pts {
		pts[i].Y += ht / 2
	}

	return pts, nil
}

// writeView writes the session snapshot.
func (h *Handler) writeView(w http.ResponseWriter, status int, sess *Session) {
	v, err := sess.Snapshot()
	if err != nil {
		h.fail(w, err)
		return
	}
	h.writeJSON(w, status, v)
}

// fail maps err to a status code and writes it.
func (h *Handler) fail(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed", "error", err)
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// StatusFor maps domain errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, pointset.ErrPointNotFound):
		return http.StatusNotFound
	case errors.Is(err, spline.ErrSingularSystem):
		return http.StatusInternalServerError
	case errors.Is(err, pointset.ErrDuplicateX),
		errors.Is(err, spline.ErrDegenerateInput),
		errors.Is(err, pointset.ErrOutOfBounds),
		errors.Is(err, pointset.ErrNaNInf),
		errors.Is(err, spline.ErrNaNInf),
		errors.Is(err, pointset.ErrTooManyPoints):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrBadParam),
		errors.Is(err, ErrUnknownOp),
		errors.Is(err, pointset.ErrBadID),
		errors.Is(err, spline.ErrOutOfDomain),
		errors.Is(err, spline.ErrEmptyCurve),
		errors.Is(err, spline.ErrBadOrder),
		errors.Is(err, render.ErrBadOptions),
		errors.Is(err, render.ErrBadColumns),
		errors.Is(err, fixture.ErrUnknownKind),
		errors.Is(err, fixture.ErrTooFewPoints):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func queryFloat(r *http.Request, key string) (float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrBadParam, key)
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrBadParam, key, err)
	}

	return v, nil
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := cast.ToIntE(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrBadParam, key, err)
	}

	return v, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	writeJSON(h.log, w, status, data)
}

// writeJSON writes data with status. Encode failures happen after the
// header is sent, so they can only be logged.
func writeJSON(logger *slog.Logger, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Debug("write response", "status", status, "error", err)
	}
}
