// Package core defines the central Graph, Vertex, and Edge types.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency). Lock order is always muVert -> muEdgeAdj.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrGraphNil indicates a nil *Graph was passed to a package-level function.
	ErrGraphNil = errors.New("core: graph is nil")

	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an edge that is not
	// present in the graph snapshot it was applied to.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrContractLoop indicates ContractEdge was given a self-loop.
	ErrContractLoop = errors.New("core: cannot contract a self-loop")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// Edge represents a connection between two vertices.
//
// For undirected graphs From/To carry no orientation; they record the order
// the endpoints were given in. A loop has From == To.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the first endpoint (source vertex for directed graphs).
	From string

	// To is the second endpoint (destination vertex for directed graphs).
	To string

	// seq is the numeric part of ID; Edges() orders by it.
	seq uint64
}

// IsLoop reports whether both endpoints of e coincide.
func (e *Edge) IsLoop() bool { return e.From == e.To }

// Other returns the endpoint of e opposite to id. For loops it returns id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are directed (true) or undirected (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory multigraph.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacencyList.
// nextEdgeID/nextVertexID are counters for generated IDs and are carried
// over by every copy so identities never collide between a graph and its
// derived graphs.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, nextVertexID
	muEdgeAdj sync.RWMutex // guards edges, adjacency, nextEdgeID

	// Configuration flags (immutable after construction)
	directed   bool
	allowMulti bool
	allowLoops bool

	// Storage
	nextEdgeID   uint64
	nextVertexID uint64
	vertices     map[string]*Vertex
	edges        map[string]*Edge

	// adjacencyList[from][to][edgeID] = struct{}{}; undirected edges are
	// mirrored, loops are stored once under [v][v].
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, with no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewMultigraph creates an empty undirected Graph that permits parallel
// edges and self-loops, then applies opts.
func NewMultigraph(opts ...GraphOption) *Graph {
	all := make([]GraphOption, 0, len(opts)+2)
	all = append(all, WithMultiEdges(), WithLoops())
	all = append(all, opts...)

	return NewGraph(all...)
}

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	Directed    bool
	AllowsMulti bool
	AllowsLoops bool
	VertexCount int
	EdgeCount   int
	LoopCount   int
}
