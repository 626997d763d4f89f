package bfs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/katalvlaran/tutte/core"
)

var (
	// ErrGraphNil is returned when a nil graph is supplied.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// walker holds the state shared by the per-component searches.
type walker struct {
	graph   *core.Graph
	queue   *arrayqueue.Queue // of string
	visited map[string]bool
	order   []string
}

// Components labels the connected components of g.
//
// Components are discovered from vertices in Vertices() order; each
// component lists its vertices in BFS visit order. Isolated vertices form
// singleton components and the empty graph has none.
//
// Complexity: O(V + E log E).
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	vertices := g.Vertices()
	w := &walker{
		graph:   g,
		queue:   arrayqueue.New(),
		visited: make(map[string]bool, len(vertices)),
		order:   make([]string, 0, len(vertices)),
	}

	var out [][]string
	for _, v := range vertices {
		if w.visited[v] {
			continue
		}
		start := len(w.order)
		if err := w.search(v); err != nil {
			return nil, err
		}
		out = append(out, w.order[start:len(w.order):len(w.order)])
	}

	return out, nil
}

// search visits every vertex reachable from root.
func (w *walker) search(root string) error {
	w.visited[root] = true
	w.queue.Enqueue(root)
	for !w.queue.Empty() {
		v, _ := w.queue.Dequeue()
		id := v.(string)
		w.order = append(w.order, id)

		nbrs, err := neighborIDs(w.graph, id)
		if err != nil {
			return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, id, err)
		}
		for _, nbr := range nbrs {
			if !w.visited[nbr] {
				w.visited[nbr] = true
				w.queue.Enqueue(nbr)
			}
		}
	}

	return nil
}

// CountComponents returns the number of connected components of g.
func CountComponents(g *core.Graph) (int, error) {
	comps, err := Components(g)
	if err != nil {
		return 0, err
	}

	return len(comps), nil
}

// ComponentGraphs returns the connected components of g as induced
// subgraphs, in the order Components reports them. Every edge of g lands in
// exactly one of them.
func ComponentGraphs(g *core.Graph) ([]*core.Graph, error) {
	comps, err := Components(g)
	if err != nil {
		return nil, err
	}
	out := make([]*core.Graph, 0, len(comps))
	for _, comp := range comps {
		keep := make(map[string]bool, len(comp))
		for _, v := range comp {
			keep[v] = true
		}
		out = append(out, core.InducedSubgraph(g, keep))
	}

	return out, nil
}

// neighborIDs returns the distinct vertices adjacent to id, sorted, in
// either edge direction. Loops contribute nothing.
func neighborIDs(g *core.Graph, id string) ([]string, error) {
	edges, err := g.IncidentEdges(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		if e.IsLoop() {
			continue
		}
		nbr := e.Other(id)
		if _, dup := seen[nbr]; dup {
			continue
		}
		seen[nbr] = struct{}{}
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}
