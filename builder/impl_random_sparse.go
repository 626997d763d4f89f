// SPDX-License-Identifier: MIT
// Package: tutte/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Erdős–Rényi G(n, p): each unordered pair {i,j} (i<j) is included
// independently with probability p. No loops are sampled; the engine input
// is undirected.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Determinism:
//   - Stable trial order: i asc, then j asc. A fixed seed yields identical
//     graphs, edge IDs included.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tutte/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, "n", n, minRandomSparseVertices); err != nil {
			return err
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addIndexedVertices(methodRandomSparse, g, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var take bool
				switch {
				case rng == nil:
					take = p == probMax
				default:
					take = rng.Float64() < p
				}
				if !take {
					continue
				}
				if err = addEdge(methodRandomSparse, g, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
