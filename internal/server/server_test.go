package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tutte/builder"
	"github.com/katalvlaran/tutte/cache"
	"github.com/katalvlaran/tutte/internal/runner"
	"github.com/katalvlaran/tutte/invariants"
	"github.com/katalvlaran/tutte/metrics"
	"github.com/katalvlaran/tutte/polynomial"
	"github.com/katalvlaran/tutte/tutte"
)

func newTestServer(t *testing.T, opts ...tutte.Option) *httptest.Server {
	t.Helper()
	reg := prometheus.NewRegistry()
	col, err := metrics.New(reg)
	require.NoError(t, err)

	r := &runner.Runner{
		Store:       cache.NewMemory(16),
		Metrics:     col,
		Options:     opts,
		MaxVertices: 64,
		MaxEdges:    256,
	}
	s := &Server{Runner: r, Gatherer: reg}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	return ts
}

func get(t *testing.T, ts *httptest.Server, path string, out any) int {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp.StatusCode
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	var body map[string]string
	assert.Equal(t, http.StatusOK, get(t, ts, "/healthz", &body))
	assert.Equal(t, "ok", body["status"])
}

func TestFamilies(t *testing.T) {
	ts := newTestServer(t)
	var body []FamilyInfo
	require.Equal(t, http.StatusOK, get(t, ts, "/v1/families", &body))
	require.NotEmpty(t, body)

	byName := map[string][]string{}
	for _, f := range body {
		byName[f.Name] = f.Params
	}
	assert.Equal(t, []string{"n", "m"}, byName["grid"])
	assert.Empty(t, byName["diamond"])
}

func TestPolynomial(t *testing.T) {
	ts := newTestServer(t)

	var first PolynomialResponse
	require.Equal(t, http.StatusOK, get(t, ts, "/v1/families/cycle/polynomial?n=5", &first))
	assert.Equal(t, "cycle", first.Family)
	assert.Equal(t, map[string]int{"n": 5}, first.Params)
	assert.Equal(t, 5, first.Vertices)
	assert.Equal(t, 5, first.Edges)
	assert.Equal(t, "x^4 + x^3 + x^2 + x + y", first.Polynomial)
	assert.False(t, first.Cached)

	want := polynomial.MustFromTerms(
		polynomial.T(1, 4, 0), polynomial.T(1, 3, 0), polynomial.T(1, 2, 0),
		polynomial.T(1, 1, 0), polynomial.T(1, 0, 1),
	)
	assert.True(t, want.Equal(first.Terms), "terms: %s", first.Terms)

	var second PolynomialResponse
	require.Equal(t, http.StatusOK, get(t, ts, "/v1/families/cycle/polynomial?n=5", &second))
	assert.True(t, second.Cached)

	var diamond PolynomialResponse
	require.Equal(t, http.StatusOK, get(t, ts, "/v1/families/diamond/polynomial", &diamond))
	assert.Equal(t, "x^3 + 2x^2 + 2xy + x + y^2 + y", diamond.Polynomial)
}

func TestEvaluate(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		query string
		want  string
	}{
		{"x=2&y=0", "30"},
		{"x=2&y=0&domain=int", "30"},
		{"x=1/2&y=0&domain=rat", "15/16"},
		{"x=1&y=1&domain=float", "5"},
		{"x=-1&y=3&domain=int", "3"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var body EvaluateResponse
			require.Equal(t, http.StatusOK, get(t, ts, "/v1/families/cycle/evaluate?n=5&"+tt.query, &body))
			assert.Equal(t, tt.want, body.Value)
		})
	}
}

func TestInvariants(t *testing.T) {
	ts := newTestServer(t)
	var sum invariants.Summary
	require.Equal(t, http.StatusOK, get(t, ts, "/v1/families/grid/invariants?n=2&m=2", &sum))
	assert.Equal(t, 4, sum.Vertices)
	assert.Equal(t, "4", sum.SpanningTrees.String())
	assert.Equal(t, "4", sum.KirchhoffSpanningForests.String())
	assert.Equal(t, "14", sum.AcyclicOrientations.String())
	assert.Equal(t, "16", sum.SpanningSubgraphs.String())
}

func TestErrors(t *testing.T) {
	ts := newTestServer(t, tutte.WithNodeBudget(3))

	tests := []struct {
		path string
		want int
	}{
		{"/v1/families/nope/polynomial", http.StatusNotFound},
		{"/v1/families/cycle/polynomial", http.StatusBadRequest},
		{"/v1/families/cycle/polynomial?n=abc", http.StatusBadRequest},
		{"/v1/families/cycle/polynomial?n=0", http.StatusBadRequest},
		{"/v1/families/random/polynomial?n=4&p=150&seed=1", http.StatusBadRequest},
		{"/v1/families/cycle/evaluate?n=3&x=1", http.StatusBadRequest},
		{"/v1/families/cycle/evaluate?n=3&x=1&y=1&domain=complex", http.StatusBadRequest},
		{"/v1/families/cycle/evaluate?n=3&x=a&y=1", http.StatusBadRequest},
		{"/v1/families/complete/polynomial?n=5", http.StatusServiceUnavailable},
		{"/v1/families/complete/polynomial?n=2500", http.StatusBadRequest},
		{"/v1/families/bouquet/polynomial?k=1000000000", http.StatusBadRequest},
		{"/v1/families/grid/invariants?n=9&m=9", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var body errorResponse
			assert.Equal(t, tt.want, get(t, ts, tt.path, &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, StatusOf(tutte.ErrUnsupportedGraphKind))
	assert.Equal(t, http.StatusServiceUnavailable, StatusOf(fmt.Errorf("x: %w", tutte.ErrResourceExhausted)))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("boom")))
	assert.Equal(t, http.StatusBadRequest, StatusOf(builder.ErrTooLarge))
	assert.Equal(t, StatusClientClosedRequest, StatusOf(fmt.Errorf("x: %w", context.Canceled)))
}

func TestClientGone(t *testing.T) {
	s := &Server{Runner: &runner.Runner{}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/v1/families/complete/polynomial?n=7", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, StatusClientClosedRequest, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	require.Equal(t, http.StatusOK, get(t, ts, "/v1/families/path/polynomial?n=4", &PolynomialResponse{}))

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `tutte_computations_total{outcome="ok"} 1`)
}
