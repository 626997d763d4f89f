// File: view.go
// Role: Non-mutating graph views: deletion, contraction, induced subgraphs.
// Determinism:
//   - Preserves vertex and edge IDs (and therefore Edges() order).
// Concurrency:
//   - Read locks on source; result is a fresh graph instance owned by the caller.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph; deletion–contraction branches rely on it.
//   - ContractEdge results always allow loops and multi-edges.

package core

import "fmt"

// DeleteEdge returns a copy of g without the edge eid. The vertex set is
// unchanged, even if an endpoint becomes isolated.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrEdgeNotFound if eid is not in g.
//
// Complexity: O(V + E).
func DeleteEdge(g *Graph, eid string) (*Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if _, err := g.GetEdge(eid); err != nil {
		return nil, fmt.Errorf("DeleteEdge(%s): %w", eid, err)
	}
	out := g.Clone()
	if err := out.RemoveEdge(eid); err != nil {
		return nil, fmt.Errorf("DeleteEdge(%s): %w", eid, err)
	}

	return out, nil
}

// ContractEdge returns a new multigraph in which the endpoints u, v of eid
// are merged into a single fresh vertex w.
//
// Behavior highlights:
//   - Edges incident to exactly one of {u, v} are reattached to w; they keep
//     their ID and their other endpoint.
//   - Every other u–v edge becomes a loop on w (parallel u–v edges become
//     parallel loops; none are discarded).
//   - eid itself is consumed.
//   - u and v are removed; everything not touching them is copied unchanged.
//   - w stays in the vertex set even when it ends up isolated.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrEdgeNotFound if eid is not in g.
//   - ErrContractLoop if eid is a self-loop.
//
// Complexity: O(V + E).
func ContractEdge(g *Graph, eid string) (*Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	target, ok := g.edges[eid]
	if !ok {
		return nil, fmt.Errorf("ContractEdge(%s): %w", eid, ErrEdgeNotFound)
	}
	if target.From == target.To {
		return nil, fmt.Errorf("ContractEdge(%s): %w", eid, ErrContractLoop)
	}
	u, v := target.From, target.To

	out := newSibling(g)
	out.allowMulti, out.allowLoops = true, true

	// The merged vertex must not collide with any vertex of g (u and v included,
	// so that w is always "fresh" for callers tracking identities).
	out.vertices = g.vertices
	w := nextFreeVertexID(out)
	out.vertices = make(map[string]*Vertex, len(g.vertices)-1)

	for id := range g.vertices {
		if id == u || id == v {
			continue
		}
		out.vertices[id] = &Vertex{ID: id}
		ensureVertexBucket(out, id)
	}
	out.vertices[w] = &Vertex{ID: w}
	ensureVertexBucket(out, w)

	merge := func(id string) string {
		if id == u || id == v {
			return w
		}
		return id
	}
	for id, e := range g.edges {
		if id == eid {
			continue
		}
		linkEdge(out, &Edge{ID: e.ID, From: merge(e.From), To: merge(e.To), seq: e.seq})
	}

	return out, nil
}

// InducedSubgraph returns a new Graph induced by the set keep of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges
// whose endpoints are both kept. The input graph is not mutated.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := newSibling(g)
	for id := range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: id}
			ensureVertexBucket(out, id)
		}
	}
	for _, e := range g.edges {
		if keep[e.From] && keep[e.To] {
			linkEdge(out, &Edge{ID: e.ID, From: e.From, To: e.To, seq: e.seq})
		}
	}

	return out
}
