// Package server exposes the Tutte engine over HTTP for the builder
// families:
//
//	GET /v1/families                                   family names and parameters
//	GET /v1/families/{family}/polynomial?n=..&m=..     T(G) as text and terms
//	GET /v1/families/{family}/evaluate?x=..&y=..&domain=int|rat|float
//	GET /v1/families/{family}/invariants               counting invariants
//	GET /metrics                                       Prometheus exposition
//	GET /healthz
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/tutte/builder"
	"github.com/katalvlaran/tutte/core"
	"github.com/katalvlaran/tutte/internal/runner"
	"github.com/katalvlaran/tutte/invariants"
	"github.com/katalvlaran/tutte/polynomial"
	"github.com/katalvlaran/tutte/tutte"
)

// errBadQuery marks malformed query parameters.
var errBadQuery = errors.New("server: bad query parameter")

// StatusClientClosedRequest is reported when the client went away before the
// computation finished.
const StatusClientClosedRequest = 499

// Server serves the HTTP API.
type Server struct {
	Runner   *runner.Runner
	Gatherer prometheus.Gatherer // nil disables /metrics
	Log      logr.Logger
}

// PolynomialResponse is the body of /polynomial.
type PolynomialResponse struct {
	Family     string                 `json:"family"`
	Params     map[string]int         `json:"params"`
	Vertices   int                    `json:"vertices"`
	Edges      int                    `json:"edges"`
	Polynomial string                 `json:"polynomial"`
	Terms      *polynomial.Polynomial `json:"terms"`
	Cached     bool                   `json:"cached"`
}

// EvaluateResponse is the body of /evaluate. Value is a decimal integer,
// a reduced fraction "a/b" or a float, depending on Domain.
type EvaluateResponse struct {
	Family string `json:"family"`
	Domain string `json:"domain"`
	X      string `json:"x"`
	Y      string `json:"y"`
	Value  string `json:"value"`
}

// FamilyInfo is one entry of /v1/families.
type FamilyInfo struct {
	Name   string   `json:"name"`
	Params []string `json:"params"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler builds the chi router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/v1/families", func(r chi.Router) {
		r.Get("/", s.listFamilies)
		r.Route("/{family}", func(r chi.Router) {
			r.Get("/polynomial", s.getPolynomial)
			r.Get("/evaluate", s.getEvaluate)
			r.Get("/invariants", s.getInvariants)
		})
	})

	return r
}

func (s *Server) listFamilies(w http.ResponseWriter, _ *http.Request) {
	names := builder.Families()
	out := make([]FamilyInfo, 0, len(names))
	for _, name := range names {
		params, _ := builder.FamilyParams(name)
		out = append(out, FamilyInfo{Name: name, Params: params})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getPolynomial(w http.ResponseWriter, r *http.Request) {
	family, params, g, p, hit, err := s.compute(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PolynomialResponse{
		Family:     family,
		Params:     params,
		Vertices:   g.VertexCount(),
		Edges:      g.EdgeCount(),
		Polynomial: p.String(),
		Terms:      p,
		Cached:     hit,
	})
}

func (s *Server) getEvaluate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	domain := q.Get("domain")
	if domain == "" {
		domain = runner.DomainInt
	}
	eval, err := runner.Evaluator(domain, q.Get("x"), q.Get("y"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	family, _, _, p, _, err := s.compute(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, EvaluateResponse{
		Family: family,
		Domain: domain,
		X:      q.Get("x"),
		Y:      q.Get("y"),
		Value:  eval(p),
	})
}

func (s *Server) getInvariants(w http.ResponseWriter, r *http.Request) {
	_, _, g, p, _, err := s.compute(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sum, err := invariants.Summarize(g, p)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// compute resolves the family from the path, its parameters from the query
// and runs the engine.
func (s *Server) compute(r *http.Request) (string, map[string]int, *core.Graph, *polynomial.Polynomial, bool, error) {
	family := chi.URLParam(r, "family")
	names, err := builder.FamilyParams(family)
	if err != nil {
		return "", nil, nil, nil, false, err
	}

	q := r.URL.Query()
	params := make(map[string]int, len(names))
	values := make([]int, 0, len(names))
	for _, name := range names {
		raw := q.Get(name)
		if raw == "" {
			return "", nil, nil, nil, false, fmt.Errorf("%w: %s is required", errBadQuery, name)
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return "", nil, nil, nil, false, fmt.Errorf("%w: %s=%q", errBadQuery, name, raw)
		}
		params[name] = v
		values = append(values, v)
	}

	g, err := s.runner().Build(family, values)
	if err != nil {
		return "", nil, nil, nil, false, err
	}
	p, hit, err := s.runner().Polynomial(r.Context(), g)
	if err != nil {
		return "", nil, nil, nil, false, err
	}

	return family, params, g, p, hit, nil
}

func (s *Server) runner() *runner.Runner {
	if s.Runner == nil {
		return &runner.Runner{}
	}

	return s.Runner
}

// StatusOf maps an error to its HTTP status.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, builder.ErrUnknownFamily):
		return http.StatusNotFound
	case errors.Is(err, errBadQuery),
		errors.Is(err, runner.ErrBadValue),
		errors.Is(err, builder.ErrBadParams),
		errors.Is(err, builder.ErrTooLarge),
		errors.Is(err, builder.ErrTooFewVertices),
		errors.Is(err, builder.ErrInvalidProbability):
		return http.StatusBadRequest
	case errors.Is(err, tutte.ErrUnsupportedGraphKind):
		return http.StatusUnprocessableEntity
	case errors.Is(err, tutte.ErrResourceExhausted),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusOf(err)
	switch {
	case status >= http.StatusInternalServerError:
		s.Log.Error(err, "request failed", "path", r.URL.Path, "status", status)
	case status == StatusClientClosedRequest:
		s.Log.V(1).Info("client went away", "path", r.URL.Path, "reason", err.Error())
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.Log.V(1).Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"elapsed", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
