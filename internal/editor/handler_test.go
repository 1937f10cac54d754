// SPDX-License-Identifier: MIT

package editor_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/katalvlaran/lvspline/internal/editor"
	"github.com/katalvlaran/lvspline/pointset"
	"github.com/katalvlaran/lvspline/spline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRouter wires a handler the way cmd/splined does.
func testRouter(t *testing.T, opts editor.Options) http.Handler {
	t.Helper()
	logger := quietLogger()
	st := editor.NewStore(time.Minute, time.Minute, logger)
	h := editor.NewHandler(st, opts, logger)

	r := mux.NewRouter()
	r.Use(editor.Recovery(logger))
	r.Use(editor.Logger(logger))
	h.Routes(r)

	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

func createSession(t *testing.T, h http.Handler, query string) editor.View {
	t.Helper()
	rec := do(t, h, "POST", "/sessions"+query, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode[editor.View](t, rec)
}

func TestHandler_Health(t *testing.T) {
	h := testRouter(t, editor.DefaultOptions())
	rec := do(t, h, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestHandler_PointLifecycle(t *testing.T) {
	h := testRouter(t, editor.DefaultOptions())
	v := createSession(t, h, "")
	base := "/sessions/" + v.Session

	rec := do(t, h, "POST", base+"/points", `{"x":300,"y":200}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = do(t, h, "POST", base+"/points", `{"x":100,"y":100}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	res := decode[editor.Result](t, rec)
	assert.Equal(t, 0, res.Position)
	left := res.ID

	rec = do(t, h, "PUT", base+"/points/"+left, `{"x":500,"y":100}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res = decode[editor.Result](t, rec)
	assert.Equal(t, 1, res.Position)
	assert.Equal(t, left, res.ID)

	rec = do(t, h, "GET", base, "")
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[editor.View](t, rec)
	require.Len(t, view.Points, 2)
	assert.Equal(t, 500.0, view.Points[1].X)
	assert.Equal(t, &editor.Domain{Min: 300, Max: 500}, view.Domain)

	rec = do(t, h, "DELETE", base+"/points/"+left, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, "DELETE", base, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, "GET", base, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_ErrorMapping(t *testing.T) {
	h := testRouter(t, editor.DefaultOptions())
	v := createSession(t, h, "")
	base := "/sessions/" + v.Session
	require.Equal(t, http.StatusCreated, do(t, h, "POST", base+"/points", `{"x":10,"y":10}`).Code)

	cases := []struct {
		name         string
		method, path string
		body         string
		want         int
	}{
		{"unknown session", "GET", "/sessions/missing", "", http.StatusNotFound},
		{"unknown point", "DELETE", base + "/points/" + pointset.NewID().String(), "", http.StatusNotFound},
		{"malformed point id", "PUT", base + "/points/xyz", `{"x":1,"y":1}`, http.StatusBadRequest},
		{"duplicate x", "POST", base + "/points", `{"x":10,"y":50}`, http.StatusUnprocessableEntity},
		{"off canvas", "POST", base + "/points", `{"x":10000,"y":50}`, http.StatusUnprocessableEntity},
		{"missing y", "POST", base + "/points", `{"x":20}`, http.StatusBadRequest},
		{"bad json", "POST", base + "/points", `{`, http.StatusBadRequest},
		{"eval empty curve", "GET", base + "/eval?x=10", "", http.StatusBadRequest},
		{"eval without x", "GET", base + "/eval", "", http.StatusBadRequest},
		{"columns too few", "GET", base + "/columns?n=1", "", http.StatusBadRequest},
		{"columns too many", "GET", base + "/columns?n=1000000000", "", http.StatusBadRequest},
		{"unknown fixture", "POST", "/sessions?fixture=spiral", "", http.StatusBadRequest},
		{"fixture too large", "POST", "/sessions?fixture=sine&n=1000", "", http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestHandler_FixtureSessionAndSampling(t *testing.T) {
	h := testRouter(t, editor.DefaultOptions())
	v := createSession(t, h, "?fixture=sine&n=6&seed=3")
	require.Len(t, v.Points, 6)
	require.Len(t, v.Segments, 5)
	base := "/sessions/" + v.Session

	x := v.Points[2].X
	rec := do(t, h, "GET", base+"/eval?x="+jsonNum(x), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	ev := decode[map[string]float64](t, rec)
	assert.InDelta(t, v.Points[2].Y, ev["value"], 1e-9)

	rec = do(t, h, "GET", base+"/eval?x="+jsonNum(x)+"&order=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(t, h, "GET", base+"/eval?x=-5", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, "GET", base+"/polyline", "")
	require.Equal(t, http.StatusOK, rec.Code)
	line := decode[struct {
		Points  []spline.Point `json:"points"`
		Control []spline.Point `json:"control"`
	}](t, rec)
	assert.Len(t, line.Control, 6)
	assert.Equal(t, v.Points[0].X, line.Points[0].X)
	assert.Equal(t, v.Points[5].X, line.Points[len(line.Points)-1].X)

	rec = do(t, h, "GET", base+"/polyline?min_steps=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, "GET", base+"/columns?n=64", "")
	require.Equal(t, http.StatusOK, rec.Code)
	cols := decode[struct {
		Points []spline.Point `json:"points"`
	}](t, rec)
	assert.Len(t, cols.Points, 64)
}

func TestHandler_Hit(t *testing.T) {
	h := testRouter(t, editor.DefaultOptions())
	v := createSession(t, h, "")
	base := "/sessions/" + v.Session
	require.Equal(t, http.StatusCreated, do(t, h, "POST", base+"/points", `{"x":100,"y":100}`).Code)

	rec := do(t, h, "GET", base+"/hit?x=103&y=98", "")
	require.Equal(t, http.StatusOK, rec.Code)
	hit := decode[map[string]any](t, rec)
	assert.Equal(t, true, hit["found"])

	rec = do(t, h, "GET", base+"/hit?x=108&y=94", "")
	hit = decode[map[string]any](t, rec)
	assert.Equal(t, true, hit["found"], "distance 10 is inside the default radius")

	rec = do(t, h, "GET", base+"/hit?x=110&y=110", "")
	hit = decode[map[string]any](t, rec)
	assert.Equal(t, false, hit["found"])

	rec = do(t, h, "GET", base+"/hit?x=103&y=98&r=1", "")
	hit = decode[map[string]any](t, rec)
	assert.Equal(t, false, hit["found"])

	rec = do(t, h, "GET", base+"/hit?x=abc&y=1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ColumnsLimit(t *testing.T) {
	opts := editor.DefaultOptions()
	opts.MaxColumns = 100
	h := testRouter(t, opts)
	v := createSession(t, h, "?fixture=sine&n=4")
	base := "/sessions/" + v.Session

	assert.Equal(t, http.StatusOK, do(t, h, "GET", base+"/columns?n=100", "").Code)
	rec := do(t, h, "GET", base+"/columns?n=101", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "exceeds limit 100")
}

func TestHandler_RecoversPanics(t *testing.T) {
	logger := quietLogger()
	r := mux.NewRouter()
	r.Use(editor.Recovery(logger))
	r.HandleFunc("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec := do(t, r, "GET", "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func jsonNum(f float64) string {
	b, _ := json.Marshal(f)
	return string(b)
}

func decodeBody(resp *http.Response, v any) error {
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(v)
}
