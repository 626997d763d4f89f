// Package dfs defines types and options for the depth-first structural
// classifier: bridges, loops and free edges of a multigraph.
package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the explicit DFS stack.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Bridges or Classify.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrDirectedGraph is returned when a directed graph is classified;
	// bridges are defined here for undirected multigraphs only.
	ErrDirectedGraph = errors.New("dfs: directed graphs are not supported")
)

// Option configures optional behavior of Bridges/Classify.
type Option func(*Options)

// Options holds configurable parameters for the classifier.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked once per discovered vertex.
	Ctx context.Context
}

// DefaultOptions returns Options with a Background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext returns an Option that sets the Context for the traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Classification partitions the edges of one graph snapshot.
//
// Every edge ID appears in exactly one of Bridges, Loops or Free. The result
// is only meaningful for the graph it was computed on.
type Classification struct {
	// Bridges holds IDs of edges whose removal increases the number of
	// connected components.
	Bridges map[string]struct{}

	// Loops holds IDs of self-loops.
	Loops map[string]struct{}

	// Free lists the remaining edge IDs in the graph's Edges() order.
	Free []string
}

// IsBase reports whether every edge is a bridge or a loop.
func (c *Classification) IsBase() bool { return len(c.Free) == 0 }
