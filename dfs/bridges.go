package dfs

import (
	"fmt"

	"github.com/katalvlaran/tutte/core"
)

// frame is one entry of the explicit DFS stack.
type frame struct {
	id  string // vertex on the stack
	via string // edge ID used to enter id ("" for a root)
	idx int    // next position in adj[id]
}

// bridgeWalker encapsulates state during low-link DFS.
type bridgeWalker struct {
	opts    Options
	adj     map[string][]*core.Edge // non-loop incident edges in creation order
	state   map[string]int          // White/Gray/Black
	disc    map[string]int          // discovery time
	low     map[string]int          // lowest discovery time reachable
	timer   int
	bridges map[string]struct{}
}

// Loops returns the set of self-loop edge IDs in g. A nil graph yields an empty set.
// Complexity: O(E).
func Loops(g *core.Graph) map[string]struct{} {
	out := make(map[string]struct{})
	if g == nil {
		return out
	}
	for _, e := range g.Edges() {
		if e.IsLoop() {
			out[e.ID] = struct{}{}
		}
	}

	return out
}

// Bridges returns the set of bridge edge IDs of the undirected multigraph g.
//
// Every connected component is explored. Parallel edges between the same
// pair of vertices are never bridges; loops are never bridges.
//
// Errors: ErrGraphNil, ErrDirectedGraph, ctx.Err() from WithContext.
// Complexity: Time O(V+E), Memory O(V+E).
func Bridges(g *core.Graph, opts ...Option) (map[string]struct{}, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	vertices := g.Vertices()
	w := &bridgeWalker{
		opts:    o,
		adj:     make(map[string][]*core.Edge, len(vertices)),
		state:   make(map[string]int, len(vertices)),
		disc:    make(map[string]int, len(vertices)),
		low:     make(map[string]int, len(vertices)),
		bridges: make(map[string]struct{}),
	}
	for _, e := range g.Edges() {
		if e.IsLoop() {
			continue
		}
		w.adj[e.From] = append(w.adj[e.From], e)
		w.adj[e.To] = append(w.adj[e.To], e)
	}

	for _, v := range vertices {
		if w.state[v] != White {
			continue
		}
		if err := w.walk(v); err != nil {
			return nil, err
		}
	}

	return w.bridges, nil
}

// walk runs the low-link DFS for the component containing root.
func (w *bridgeWalker) walk(root string) error {
	stack := []frame{w.discover(root, "")}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.idx < len(w.adj[top.id]) {
			e := w.adj[top.id][top.idx]
			top.idx++
			if e.ID == top.via {
				continue
			}
			next := e.Other(top.id)
			if w.state[next] == White {
				select {
				case <-w.opts.Ctx.Done():
					return fmt.Errorf("dfs: Bridges: %w", w.opts.Ctx.Err())
				default:
				}
				stack = append(stack, w.discover(next, e.ID))
				continue
			}
			// back edge (or an already finished descendant, harmless)
			if w.disc[next] < w.low[top.id] {
				w.low[top.id] = w.disc[next]
			}
			continue
		}

		// all edges explored: finish top and propagate low to its parent
		done := *top
		w.state[done.id] = Black
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			break
		}
		parent := stack[len(stack)-1].id
		if w.low[done.id] < w.low[parent] {
			w.low[parent] = w.low[done.id]
		}
		if w.low[done.id] > w.disc[parent] {
			w.bridges[done.via] = struct{}{}
		}
	}

	return nil
}

// discover marks id Gray, stamps its discovery time and returns its frame.
func (w *bridgeWalker) discover(id, via string) frame {
	w.state[id] = Gray
	w.disc[id] = w.timer
	w.low[id] = w.timer
	w.timer++

	return frame{id: id, via: via}
}

// Classify partitions the edges of g into loops, bridges and free edges.
// Free preserves g.Edges() order, which deletion–contraction uses as its
// deterministic tie-break.
//
// Errors: as Bridges.
// Complexity: O(V+E + E log E).
func Classify(g *core.Graph, opts ...Option) (*Classification, error) {
	bridges, err := Bridges(g, opts...)
	if err != nil {
		return nil, err
	}
	c := &Classification{
		Bridges: bridges,
		Loops:   make(map[string]struct{}),
	}
	for _, e := range g.Edges() {
		if e.IsLoop() {
			c.Loops[e.ID] = struct{}{}
			continue
		}
		if _, ok := bridges[e.ID]; ok {
			continue
		}
		c.Free = append(c.Free, e.ID)
	}

	return c, nil
}
