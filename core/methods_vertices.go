// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

import (
	"sort"
	"strconv"
)

// vertexIDPrefix is the textual prefix of generated (merged) vertex IDs.
const vertexIDPrefix = 'w'

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, check presence; if missing, register it.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Complexity: Time O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = &Vertex{ID: id}

	g.muEdgeAdj.Lock()
	ensureVertexBucket(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertices deletes every listed vertex together with all incident edges.
//
// The operation is all-or-nothing: every ID is validated before anything is
// removed, so a missing ID leaves the graph untouched.
//
// Errors:
//   - ErrEmptyVertexID: if any id == "".
//   - ErrVertexNotFound: if any vertex does not exist.
//
// Complexity: Time O(E + k) for k ids.
func (g *Graph) RemoveVertices(ids ...string) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			return ErrEmptyVertexID
		}
		if _, ok := g.vertices[id]; !ok {
			return ErrVertexNotFound
		}
		drop[id] = struct{}{}
	}

	var hit bool
	for eid, e := range g.edges {
		_, hitFrom := drop[e.From]
		_, hitTo := drop[e.To]
		if hitFrom || hitTo {
			removeAdjacency(g, e)
			delete(g.edges, eid)
			hit = true
		}
	}
	for id := range drop {
		delete(g.vertices, id)
		delete(g.adjacencyList, id)
	}
	if hit {
		cleanupAdjacency(g)
	}

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// nextFreeVertexID reserves a generated vertex ID ("w1", "w2", …) that is not
// present in g. Caller must hold muVert for writing.
func nextFreeVertexID(g *Graph) string {
	for {
		g.nextVertexID++
		buf := make([]byte, 0, 1+20)
		buf = append(buf, vertexIDPrefix)
		buf = strconv.AppendUint(buf, g.nextVertexID, 10)
		id := string(buf)
		if _, taken := g.vertices[id]; !taken {
			return id
		}
	}
}
