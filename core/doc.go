// Package core provides the in-memory multigraph used by the Tutte engine,
// with a minimal, composable API surface.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected). The polynomial engine
//     only accepts undirected graphs, but the flag is carried so callers can
//     be rejected explicitly instead of silently reinterpreted.
//   - Parallel edges / multigraphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Monotonic Edge.ID generation ("e1", "e2", …) carried across clones, so
//     an edge keeps its identity through Clone, DeleteEdge and ContractEdge.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Configuration Options (GraphOption):
//
//	– WithDirected(defaultDirected bool)
//	– WithMultiEdges()  a second AddEdge(u,v) otherwise → ErrMultiEdgeNotAllowed
//	– WithLoops()       AddEdge(v,v) otherwise → ErrLoopNotAllowed
//
// NewMultigraph() enables both multi-edges and loops, which is the mode every
// contraction result is produced in.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error               // O(1)
//	HasVertex(id string) bool                // O(1)
//	RemoveVertices(ids ...string) error      // O(E)
//
//	// Edge lifecycle
//	AddEdge(from, to string) (string, error) // O(1)
//	RemoveEdge(edgeID string) error          // O(1)
//	GetEdge(edgeID string) (*Edge, error)    // O(1)
//
//	// Query
//	Edges() []*Edge                          // O(E log E), creation order
//	IncidentEdges(id string) ([]*Edge, error)// O(d log d), loops once
//	Vertices() []string                      // O(V log V), sorted
//	VertexCount(), EdgeCount()               // O(1)
//
//	// Copies (never mutate the receiver)
//	Clone() *Graph                           // O(V+E)
//	DeleteEdge(g, eid) (*Graph, error)       // O(V+E)
//	ContractEdge(g, eid) (*Graph, error)     // O(V+E)
//	InducedSubgraph(g, keep) *Graph          // O(V+E)
//
// Errors:
//
//	ErrGraphNil            – nil graph passed to a view function
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge (an invalid edge reference)
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//	ErrContractLoop        – ContractEdge asked to contract a self-loop
package core
