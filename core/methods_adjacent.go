// File: methods_adjacent.go
// Role: adjacency bookkeeping shared by edge methods, clones and views.
// Concurrency:
//   - Every helper expects the caller to hold muEdgeAdj for writing.

package core

// ensureVertexBucket makes sure adjacencyList[id] exists.
func ensureVertexBucket(g *Graph, id string) {
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
}

// ensureAdjacency makes sure adjacencyList[from][to] exists.
func ensureAdjacency(g *Graph, from, to string) {
	ensureVertexBucket(g, from)
	if _, ok := g.adjacencyList[from][to]; !ok {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// linkEdge stores e in the edge catalog and links adjacency; undirected
// non-loop edges are mirrored.
func linkEdge(g *Graph, e *Edge) {
	g.edges[e.ID] = e
	ensureAdjacency(g, e.From, e.To)
	g.adjacencyList[e.From][e.To][e.ID] = struct{}{}
	if !g.directed && e.From != e.To {
		ensureAdjacency(g, e.To, e.From)
		g.adjacencyList[e.To][e.From][e.ID] = struct{}{}
	}
}

// removeAdjacency unlinks e from adjacency (both directions) and drops
// emptied inner buckets.
func removeAdjacency(g *Graph, e *Edge) {
	if inner, ok := g.adjacencyList[e.From][e.To]; ok {
		delete(inner, e.ID)
		if len(inner) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if e.From == e.To {
		return
	}
	if inner, ok := g.adjacencyList[e.To][e.From]; ok {
		delete(inner, e.ID)
		if len(inner) == 0 {
			delete(g.adjacencyList[e.To], e.From)
		}
	}
}

// cleanupAdjacency drops inner buckets that point at vertices no longer
// present in the graph.
func cleanupAdjacency(g *Graph) {
	for _, inner := range g.adjacencyList {
		for to, set := range inner {
			if _, ok := g.adjacencyList[to]; !ok || len(set) == 0 {
				delete(inner, to)
			}
		}
	}
}
