// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over nextEdgeID/nextVertexID so generated IDs on the clone
//     continue the source sequence and never collide with copied ones.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// newSibling returns an empty graph with g's flags and ID counters.
// Caller must hold both read locks on g.
func newSibling(g *Graph) *Graph {
	out := &Graph{
		directed:      g.directed,
		allowMulti:    g.allowMulti,
		allowLoops:    g.allowLoops,
		nextEdgeID:    g.nextEdgeID,
		nextVertexID:  g.nextVertexID,
		vertices:      make(map[string]*Vertex, len(g.vertices)),
		edges:         make(map[string]*Edge, len(g.edges)),
		adjacencyList: make(map[string]map[string]map[string]struct{}, len(g.vertices)),
	}

	return out
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges,
// adjacency and ID counters. Edge IDs and their creation order are preserved.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := newSibling(g)
	for id := range g.vertices {
		clone.vertices[id] = &Vertex{ID: id}
		ensureVertexBucket(clone, id)
	}
	for _, e := range g.edges {
		linkEdge(clone, &Edge{ID: e.ID, From: e.From, To: e.To, seq: e.seq})
	}

	return clone
}
