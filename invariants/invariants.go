// SPDX-License-Identifier: MIT
// Package: tutte/invariants
//
// File: invariants.go
// Role: Classical graph invariants read off a computed Tutte polynomial.
// Determinism: pure functions of (g, T); no randomness.
// Concurrency: safe for concurrent use; inputs are only read.

package invariants

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/tutte/bfs"
	"github.com/katalvlaran/tutte/core"
	"github.com/katalvlaran/tutte/matrix"
	"github.com/katalvlaran/tutte/polynomial"
)

var (
	// ErrGraphNil is returned when a nil graph is supplied.
	ErrGraphNil = errors.New("invariants: graph is nil")

	// ErrPolynomialNil is returned when a nil polynomial is supplied.
	ErrPolynomialNil = errors.New("invariants: polynomial is nil")

	// ErrBadProbability is returned when an edge probability lies outside [0,1].
	ErrBadProbability = errors.New("invariants: probability out of range")
)

// SpanningForests is T(1,1) on a graph's polynomial: the number of maximal
// spanning forests (spanning trees when the graph is connected).
func SpanningForests(t *polynomial.Polynomial) *big.Int { return polynomial.EvalInt(t, 1, 1) }

// AcyclicOrientations is T(2,0).
func AcyclicOrientations(t *polynomial.Polynomial) *big.Int { return polynomial.EvalInt(t, 2, 0) }

// SpanningSubgraphs is T(2,2) = 2^|E|.
func SpanningSubgraphs(t *polynomial.Polynomial) *big.Int { return polynomial.EvalInt(t, 2, 2) }

// ConnectedSpanningSubgraphs is T(1,2): spanning subgraphs with the same
// number of components as the graph.
func ConnectedSpanningSubgraphs(t *polynomial.Polynomial) *big.Int {
	return polynomial.EvalInt(t, 1, 2)
}

// TotallyCyclicOrientations is T(0,2): orientations in which every edge lies
// on a directed cycle.
func TotallyCyclicOrientations(t *polynomial.Polynomial) *big.Int {
	return polynomial.EvalInt(t, 0, 2)
}

// IndependentSets is T(2,1): the number of forests (acyclic edge subsets),
// the independent sets of the cycle matroid.
func IndependentSets(t *polynomial.Polynomial) *big.Int { return polynomial.EvalInt(t, 2, 1) }

// rank returns (|V|, k) for g.
func rank(g *core.Graph) (n, k int, err error) {
	if g == nil {
		return 0, 0, ErrGraphNil
	}
	k, err = bfs.CountComponents(g)
	if err != nil {
		return 0, 0, err
	}

	return g.VertexCount(), k, nil
}

// ChromaticValue evaluates the chromatic polynomial of g at lambda:
//
//	P(G; λ) = (-1)^(|V|-k) · λ^k · T(G; 1-λ, 0)
//
// where k is the number of connected components. Graphs with a loop have
// P ≡ 0.
func ChromaticValue(g *core.Graph, t *polynomial.Polynomial, lambda int64) (*big.Int, error) {
	if t == nil {
		return nil, ErrPolynomialNil
	}
	n, k, err := rank(g)
	if err != nil {
		return nil, fmt.Errorf("ChromaticValue: %w", err)
	}
	out := polynomial.EvalInt(t, 1-lambda, 0)
	out.Mul(out, new(big.Int).Exp(big.NewInt(lambda), big.NewInt(int64(k)), nil))
	if (n-k)%2 == 1 {
		out.Neg(out)
	}

	return out, nil
}

// FlowValue evaluates the flow polynomial of g at lambda:
//
//	F(G; λ) = (-1)^(|E|-|V|+k) · T(G; 0, 1-λ)
//
// Graphs with a bridge have F ≡ 0.
func FlowValue(g *core.Graph, t *polynomial.Polynomial, lambda int64) (*big.Int, error) {
	if t == nil {
		return nil, ErrPolynomialNil
	}
	n, k, err := rank(g)
	if err != nil {
		return nil, fmt.Errorf("FlowValue: %w", err)
	}
	out := polynomial.EvalInt(t, 0, 1-lambda)
	if (g.EdgeCount()-n+k)%2 == 1 {
		out.Neg(out)
	}

	return out, nil
}

// Reliability returns the all-terminal reliability of g when every edge works
// independently with probability p:
//
//	R(G; p) = p^(|V|-k) · (1-p)^(|E|-|V|+k) · T(G; 1, 1/(1-p))
//
// For a disconnected graph this is the probability that every component
// stays connected.
func Reliability(g *core.Graph, t *polynomial.Polynomial, p float64) (float64, error) {
	if t == nil {
		return 0, ErrPolynomialNil
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("Reliability: p=%g: %w", p, ErrBadProbability)
	}
	n, k, err := rank(g)
	if err != nil {
		return 0, fmt.Errorf("Reliability: %w", err)
	}
	if p == 1 {
		return 1, nil
	}
	q := 1 - p
	r, m := n-k, g.EdgeCount()
	// Expand T(1, 1/q)·q^(m-r) term by term so each power stays in [0,1].
	var sum float64
	for _, term := range t.Terms() {
		c, _ := new(big.Float).SetInt(term.Coeff).Float64()
		sum += c * math.Pow(q, float64(m-r-term.Y))
	}

	return math.Pow(p, float64(r)) * sum, nil
}

// KirchhoffSpanningForests counts the maximal spanning forests of g without
// the polynomial: the product over components of the Laplacian cofactor.
// It equals SpanningForests(T(g)) and serves as a cross-check.
func KirchhoffSpanningForests(g *core.Graph) (*big.Int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	parts, err := bfs.ComponentGraphs(g)
	if err != nil {
		return nil, fmt.Errorf("KirchhoffSpanningForests: %w", err)
	}
	out := big.NewInt(1)
	for _, part := range parts {
		n, err := matrix.SpanningTrees(part)
		if err != nil {
			return nil, fmt.Errorf("KirchhoffSpanningForests: %w", err)
		}
		out.Mul(out, n)
	}

	return out, nil
}

// Summary collects the counting invariants of one graph.
type Summary struct {
	Vertices                   int      `json:"vertices"`
	Edges                      int      `json:"edges"`
	Components                 int      `json:"components"`
	SpanningTrees              *big.Int `json:"spanning_trees"`
	SpanningForests            *big.Int `json:"spanning_forests"`
	AcyclicOrientations        *big.Int `json:"acyclic_orientations"`
	TotallyCyclicOrientations  *big.Int `json:"totally_cyclic_orientations"`
	SpanningSubgraphs          *big.Int `json:"spanning_subgraphs"`
	ConnectedSpanningSubgraphs *big.Int `json:"connected_spanning_subgraphs"`
	IndependentSets            *big.Int `json:"independent_sets"`
	KirchhoffSpanningForests   *big.Int `json:"kirchhoff_spanning_forests"`
}

// Summarize evaluates every counting invariant of g from its polynomial t.
// SpanningTrees is T(1,1) for a connected graph and 0 otherwise.
// KirchhoffSpanningForests is computed from g alone, so a mismatch with
// SpanningForests means t is not the polynomial of g.
func Summarize(g *core.Graph, t *polynomial.Polynomial) (Summary, error) {
	if t == nil {
		return Summary{}, ErrPolynomialNil
	}
	n, k, err := rank(g)
	if err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}
	s := Summary{
		Vertices:                   n,
		Edges:                      g.EdgeCount(),
		Components:                 k,
		SpanningForests:            SpanningForests(t),
		AcyclicOrientations:        AcyclicOrientations(t),
		TotallyCyclicOrientations:  TotallyCyclicOrientations(t),
		SpanningSubgraphs:          SpanningSubgraphs(t),
		ConnectedSpanningSubgraphs: ConnectedSpanningSubgraphs(t),
		IndependentSets:            IndependentSets(t),
		SpanningTrees:              new(big.Int),
	}
	if k <= 1 {
		s.SpanningTrees.Set(s.SpanningForests)
	}
	if s.KirchhoffSpanningForests, err = KirchhoffSpanningForests(g); err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}

	return s, nil
}
