// SPDX-License-Identifier: MIT
// Package: tutte/builder
//
// family.go: name-based lookup of constructors, used by the CLI and the
// HTTP server to turn "wheel 6" or "/v1/families/grid/...?n=3&m=4" into a graph.

package builder

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/tutte/core"
)

const methodFamily = "Family"

// familyDef describes one named family: its integer parameters, its vertex
// and edge counts and how to turn the parameters into a Constructor plus any
// extra options.
type familyDef struct {
	params []string
	size   func(p []int) (vertices, edges int64)
	make   func(p []int) (Constructor, []BuilderOption)
}

var families = map[string]familyDef{
	"cycle": {params: []string{"n"}, make: one(Cycle), size: func(p []int) (int64, int64) {
		return nat(p[0]), nat(p[0])
	}},
	"path": {params: []string{"n"}, make: one(Path), size: func(p []int) (int64, int64) {
		return nat(p[0]), nat(p[0] - 1)
	}},
	"star": {params: []string{"n"}, make: one(Star), size: func(p []int) (int64, int64) {
		return nat(p[0]), nat(p[0] - 1)
	}},
	"wheel": {params: []string{"n"}, make: one(Wheel), size: func(p []int) (int64, int64) {
		return nat(p[0]), mul(2, nat(p[0]-1))
	}},
	"complete": {params: []string{"n"}, make: one(Complete), size: func(p []int) (int64, int64) {
		return nat(p[0]), pairs(nat(p[0]))
	}},
	"bouquet": {params: []string{"k"}, make: one(Bouquet), size: func(p []int) (int64, int64) {
		return 1, nat(p[0])
	}},
	"dipole": {params: []string{"k"}, make: one(Dipole), size: func(p []int) (int64, int64) {
		return 2, nat(p[0])
	}},
	"diamond": {
		make: func([]int) (Constructor, []BuilderOption) { return Diamond(), nil },
		size: func([]int) (int64, int64) { return 4, 5 },
	},
	"bipartite": {params: []string{"n", "m"}, make: func(p []int) (Constructor, []BuilderOption) {
		return CompleteBipartite(p[0], p[1]), nil
	}, size: func(p []int) (int64, int64) {
		return add(nat(p[0]), nat(p[1])), mul(nat(p[0]), nat(p[1]))
	}},
	"grid": {params: []string{"n", "m"}, make: func(p []int) (Constructor, []BuilderOption) {
		return Grid(p[0], p[1]), nil
	}, size: func(p []int) (int64, int64) {
		n, m := nat(p[0]), nat(p[1])
		return mul(n, m), add(mul(n, nat(p[1]-1)), mul(m, nat(p[0]-1)))
	}},
	// p is the edge probability in percent; edges is the K_n upper bound.
	"random": {params: []string{"n", "p", "seed"}, make: func(p []int) (Constructor, []BuilderOption) {
		return RandomSparse(p[0], float64(p[1])/100), []BuilderOption{WithSeed(int64(p[2]))}
	}, size: func(p []int) (int64, int64) {
		return nat(p[0]), pairs(nat(p[0]))
	}},
}

func one(fn func(int) Constructor) func(p []int) (Constructor, []BuilderOption) {
	return func(p []int) (Constructor, []BuilderOption) { return fn(p[0]), nil }
}

// nat clamps negative parameters to zero; the constructors reject them later.
func nat(n int) int64 {
	if n < 0 {
		return 0
	}

	return int64(n)
}

// add and mul saturate at math.MaxInt64.
func add(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}

	return a + b
}

func mul(a, b int64) int64 {
	if a != 0 && b > math.MaxInt64/a {
		return math.MaxInt64
	}

	return a * b
}

func pairs(n int64) int64 {
	if n < 2 {
		return 0
	}
	if n%2 == 0 {
		return mul(n/2, n-1)
	}

	return mul(n, (n-1)/2)
}

// Families returns the known family names in sorted order.
func Families() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// FamilyParams returns the parameter names expected by a family, in order.
func FamilyParams(name string) ([]string, error) {
	def, ok := families[name]
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", methodFamily, name, ErrUnknownFamily)
	}

	return append([]string(nil), def.params...), nil
}

// FamilySize returns the vertex and edge counts the named family would have,
// without building it. For "random" the edge count is the upper bound n(n-1)/2.
func FamilySize(name string, params []int) (vertices, edges int64, err error) {
	def, err := lookup(name, params)
	if err != nil {
		return 0, 0, err
	}
	vertices, edges = def.size(params)

	return vertices, edges, nil
}

// Family resolves a family name and its integer parameters into a Constructor
// and the builder options it requires.
func Family(name string, params []int) (Constructor, []BuilderOption, error) {
	def, err := lookup(name, params)
	if err != nil {
		return nil, nil, err
	}
	cons, opts := def.make(params)

	return cons, opts, nil
}

func lookup(name string, params []int) (familyDef, error) {
	def, ok := families[name]
	if !ok {
		return familyDef{}, fmt.Errorf("%s: %q: %w", methodFamily, name, ErrUnknownFamily)
	}
	if len(params) != len(def.params) {
		return familyDef{}, fmt.Errorf("%s: %q wants %v, got %d values: %w",
			methodFamily, name, def.params, len(params), ErrBadParams)
	}

	return def, nil
}

// BuildFamily builds the named family as an undirected multigraph. With
// WithMaxSize set, oversized parameters fail with ErrTooLarge before anything
// is built.
func BuildFamily(name string, params []int, bopts ...BuilderOption) (*core.Graph, error) {
	def, err := lookup(name, params)
	if err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(bopts...)
	v, e := def.size(params)
	if cfg.maxVertices > 0 && v > cfg.maxVertices {
		return nil, fmt.Errorf("%s: %q has %d vertices, limit %d: %w",
			methodFamily, name, v, cfg.maxVertices, ErrTooLarge)
	}
	if cfg.maxEdges > 0 && e > cfg.maxEdges {
		return nil, fmt.Errorf("%s: %q has %d edges, limit %d: %w",
			methodFamily, name, e, cfg.maxEdges, ErrTooLarge)
	}
	cons, opts := def.make(params)

	return BuildMultigraph(append(bopts, opts...), cons)
}
