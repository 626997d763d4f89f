// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/GetEdge/Edges/EdgeCount,
//       IncidentEdges. Also: nextEdgeID().
// Determinism:
//   - Edges() and IncidentEdges() return edges in creation order (numeric ID sequence).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new edge between from and to and returns its ID.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check the multi-edge policy.
//  4. Generate eid, store the edge and link adjacency (mirrored when undirected).
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacencyList[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	seq, eid := nextEdgeID(g)
	linkEdge(g, &Edge{ID: eid, From: from, To: to, seq: seq})

	return eid, nil
}

// RemoveEdge deletes one edge (and its mirror) from the graph.
// Removing an absent edge returns ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
// Complexity: O(1).
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// HasEdge reports whether at least one edge from→to exists.
// Undirected edges are mirrored, so HasEdge works both ways.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// Edges returns all edges in creation order.
//
// The order is stable across Clone/DeleteEdge/ContractEdge because those keep
// edge identities; the Tutte engine relies on it for its tie-break.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// IncidentEdges returns every edge with id as an endpoint, in creation order.
// A loop appears once; parallel edges each appear.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) IncidentEdges(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	for _, bucket := range g.adjacencyList[id] {
		for eid := range bucket {
			out = append(out, g.edges[eid])
		}
	}
	// directed graphs keep only from→to buckets; collect in-edges separately
	if g.directed {
		for from, inner := range g.adjacencyList {
			if from == id {
				continue
			}
			for eid := range inner[id] {
				out = append(out, g.edges[eid])
			}
		}
	}
	sortEdges(out)

	return out, nil
}

// nextEdgeID reserves the next sequence number and renders it as "e<seq>".
// Caller must hold muEdgeAdj for writing.
func nextEdgeID(g *Graph) (uint64, string) {
	g.nextEdgeID++
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return g.nextEdgeID, string(buf)
}

// sortEdges orders edges by creation sequence.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}
