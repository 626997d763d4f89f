// Package bfs labels the connected components of a core.Graph by
// breadth-first search.
//
// What
//
//   - Components(g) returns the vertex lists of all connected components,
//     each in BFS visit order.
//   - CountComponents(g) is the k used by the invariants package
//     (λ^k in the chromatic value, |V|-k as the rank).
//   - ComponentGraphs(g) returns each component as its own induced subgraph,
//     edge IDs preserved; the invariants package runs Kirchhoff on each.
//
// Multigraphs and direction
//
//	Parallel edges and loops do not change reachability; neighbors are
//	de-duplicated and loops skipped. Edge direction is ignored, so on a
//	directed graph the result is the weakly connected components.
//
// Determinism
//
//	Neighbors are visited in ascending ID order and components are started
//	from Vertices() order, so all results are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log E)  (neighbor lists are sorted)
//   - Memory: O(V)
package bfs
