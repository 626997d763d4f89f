// SPDX-License-Identifier: MIT

// Package matrix - graph Laplacian L = D - A over exact integers.
//
// Conventions:
//   - Rows/cols follow g.Vertices() (sorted IDs); VertexIndex maps ID → row.
//   - Parallel edges count with multiplicity (A[u][v] = #edges u-v).
//   - Loops are ignored: they contribute to neither D nor A, so they never
//     change the spanning-tree count.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/tutte/core"
)

const opLaplacian = "Laplacian"

// Laplacian couples the matrix with its vertex ordering.
type Laplacian struct {
	Vertices    []string       // row order
	VertexIndex map[string]int // VertexID → row/col
	Mat         *Dense
}

// NewLaplacian builds the Laplacian of an undirected (multi)graph.
// Errors: ErrGraphNil, ErrDirectedGraph.
// Complexity: O(V² + E).
func NewLaplacian(g *core.Graph) (*Laplacian, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", opLaplacian, ErrGraphNil)
	}
	if g.Directed() {
		return nil, fmt.Errorf("%s: %w", opLaplacian, ErrDirectedGraph)
	}

	vs := g.Vertices()
	idx := make(map[string]int, len(vs))
	for i, v := range vs {
		idx[v] = i
	}
	mat, err := NewDense(len(vs), len(vs))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLaplacian, err)
	}
	for _, e := range g.Edges() {
		if e.IsLoop() {
			continue
		}
		u, v := idx[e.From], idx[e.To]
		mat.add(u, u, 1)
		mat.add(v, v, 1)
		mat.add(u, v, -1)
		mat.add(v, u, -1)
	}

	return &Laplacian{Vertices: vs, VertexIndex: idx, Mat: mat}, nil
}

// Minor returns L with row and column i removed (the reduced Laplacian).
func (l *Laplacian) Minor(i int) (*Dense, error) {
	n := l.Mat.Rows()
	if i < 0 || i >= n {
		return nil, fmt.Errorf("%s.Minor(%d): %w", opLaplacian, i, ErrOutOfRange)
	}
	keep := make([]int, 0, n-1)
	for k := 0; k < n; k++ {
		if k != i {
			keep = append(keep, k)
		}
	}

	return l.Mat.Induced(keep, keep)
}
