// SPDX-License-Identifier: MIT
// Package: tutte/builder
//
// impl_complete.go: Complete(n) and CompleteBipartite(n1, n2) constructors.
//
// Determinism:
//   • Complete: vertices idFn(0..n-1); edges for i<j in lexicographic (i, j) order.
//   • CompleteBipartite: left IDs leftPrefix+i, right IDs rightPrefix+j;
//     edges for each i asc, then j asc.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/tutte/core"
)

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 1
	minPartitionSize        = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		ids, err := addIndexedVertices(methodComplete, g, n, cfg.idFn)
		if err != nil {
			return err
		}

		return addCompleteEdges(methodComplete, g, ids)
	}
}

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left := make([]string, n1)
		for i := range left {
			left[i] = cfg.leftPrefix + strconv.Itoa(i)
			if err := g.AddVertex(left[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteBipartite, left[i], err)
			}
		}
		right := make([]string, n2)
		for j := range right {
			right[j] = cfg.rightPrefix + strconv.Itoa(j)
			if err := g.AddVertex(right[j]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteBipartite, right[j], err)
			}
		}
		for _, u := range left {
			for _, v := range right {
				if err := addEdge(methodCompleteBipartite, g, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
