// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
package builder

import (
	"fmt"

	"github.com/katalvlaran/tutte/core"
)

// CenterVertexID is the identifier of the hub vertex in Star and Wheel.
const CenterVertexID = "Center"

// addIndexedVertices inserts idFn(0..n-1) into g and returns the IDs.
// Complexity: O(n).
func addIndexedVertices(method string, g *core.Graph, n int, idFn IDFn) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge adds u-v and wraps failures with method context.
func addEdge(method string, g *core.Graph, u, v string) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, u, v, err)
	}

	return nil
}

// addRing connects ids[i]-ids[(i+1)%n] for i ascending. For n == 1 this is a
// loop and for n == 2 a pair of parallel edges; core enforces the mode flags.
func addRing(method string, g *core.Graph, ids []string) error {
	n := len(ids)
	for i := 0; i < n; i++ {
		if err := addEdge(method, g, ids[i], ids[(i+1)%n]); err != nil {
			return err
		}
	}

	return nil
}

// addCompleteEdges connects every unordered pair in ids (i<j ascending).
// Complexity: O(m²).
func addCompleteEdges(method string, g *core.Graph, ids []string) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := addEdge(method, g, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateMin returns ErrTooFewVertices with context if got < min.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}
