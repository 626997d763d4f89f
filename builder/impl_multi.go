// SPDX-License-Identifier: MIT
// Package: tutte/builder
//
// impl_multi.go: small fixtures whose Tutte polynomials are known in closed
// form: Diamond, Bouquet(k) and Dipole(k). Bouquet and Dipole need a
// multigraph (BuildMultigraph); on a simple graph they fail with the core
// sentinels ErrLoopNotAllowed / ErrMultiEdgeNotAllowed.

package builder

import (
	"github.com/katalvlaran/tutte/core"
)

const (
	methodDiamond = "Diamond"
	methodBouquet = "Bouquet"
	methodDipole  = "Dipole"
	minBouquet    = 0
	minDipole     = 1
)

// Diamond returns a Constructor that builds K_4 minus one edge: the 4-cycle
// 0-1-2-3 plus the chord 0-2.
// T = x^3 + 2x^2 + 2xy + x + y^2 + y.
func Diamond() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids, err := addIndexedVertices(methodDiamond, g, 4, cfg.idFn)
		if err != nil {
			return err
		}
		if err = addRing(methodDiamond, g, ids); err != nil {
			return err
		}

		return addEdge(methodDiamond, g, ids[0], ids[2])
	}
}

// Bouquet returns a Constructor that attaches k loops to a single vertex.
// T = y^k; Bouquet(0) is the one-vertex graph with T = 1.
func Bouquet(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodBouquet, "k", k, minBouquet); err != nil {
			return err
		}
		ids, err := addIndexedVertices(methodBouquet, g, 1, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < k; i++ {
			if err = addEdge(methodBouquet, g, ids[0], ids[0]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Dipole returns a Constructor that joins two vertices by k parallel edges.
// T = x + y + y^2 + ... + y^(k-1).
func Dipole(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodDipole, "k", k, minDipole); err != nil {
			return err
		}
		ids, err := addIndexedVertices(methodDipole, g, 2, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < k; i++ {
			if err = addEdge(methodDipole, g, ids[0], ids[1]); err != nil {
				return err
			}
		}

		return nil
	}
}
