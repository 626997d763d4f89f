// SPDX-License-Identifier: MIT
// Package: tutte/builder
//
// impl_star.go: Star(n) and Wheel(n) constructors.
//
// Both use the fixed hub ID CenterVertexID plus n-1 rim/leaf vertices
// idFn(0..n-2). Wheel emits the rim cycle first, then the spokes, so the
// engine's FirstFree order branches on rim edges before spokes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tutte/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor that builds K_{1,n-1}: a hub joined to n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}
		leaves, err := addIndexedVertices(methodStar, g, n-1, cfg.idFn)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err = addEdge(methodStar, g, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n: a cycle on n-1 rim vertices
// plus a hub joined to each of them (2(n-1) edges). W_4 is K_4.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, minWheelNodes); err != nil {
			return err
		}
		rim, err := addIndexedVertices(methodWheel, g, n-1, cfg.idFn)
		if err != nil {
			return err
		}
		if err = addRing(methodWheel, g, rim); err != nil {
			return err
		}
		if err = g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, CenterVertexID, err)
		}
		for _, v := range rim {
			if err = addEdge(methodWheel, g, CenterVertexID, v); err != nil {
				return err
			}
		}

		return nil
	}
}
