// SPDX-License-Identifier: MIT
// Package: tutte/builder
//
// impl_cycle.go: Cycle(n) and Path(n) constructors.
//
// Contract:
//   • Cycle: n ≥ 1. n == 1 is a single loop and n == 2 a pair of parallel
//     edges; both require a graph built with WithLoops/WithMultiEdges and fail
//     with the core sentinel otherwise (no silent degrade).
//   • Path: n ≥ 1 (a single vertex has no edges).
//   • Vertices via cfg.idFn in ascending index order (0..n-1).
//   • Edges in stable order i -> i+1 (Cycle closes with (n-1) -> 0).
//
// Complexity: O(n) time, O(n) space for the ID slice.

package builder

import (
	"github.com/katalvlaran/tutte/core"
)

const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	minCycleNodes = 1
	minPathNodes  = 1
)

// Cycle returns a Constructor that builds the n-vertex cycle C_n.
// T(C_n) = x^(n-1) + ... + x + y.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		ids, err := addIndexedVertices(methodCycle, g, n, cfg.idFn)
		if err != nil {
			return err
		}

		return addRing(methodCycle, g, ids)
	}
}

// Path returns a Constructor that builds the path P_n on n vertices (n-1 edges).
// Every edge of a path is a bridge, so T(P_n) = x^(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		ids, err := addIndexedVertices(methodPath, g, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(methodPath, g, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
