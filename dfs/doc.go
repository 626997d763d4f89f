// Package dfs classifies the edges of an undirected multigraph by depth-first
// search: every edge is a loop, a bridge, or free.
//
// What:
//
//   - Loops(g): IDs of self-loops.
//   - Bridges(g, opts...): IDs of bridges, found with Tarjan's low-link DFS
//     over every connected component. The traversal is iterative (explicit
//     stack), so deep path-like graphs do not grow the goroutine stack.
//   - Classify(g, opts...): both of the above plus the ordered list of free
//     edges, which is what a deletion–contraction step needs.
//
// Multigraph rules:
//
//   - Parallel edges are distinct. Only the edge used to enter a vertex is
//     excluded from the back-edge check, matched by edge ID rather than by
//     parent vertex, so a parallel copy of the tree edge is a back edge and
//     neither copy is a bridge.
//   - Loops are never bridges.
//
// Complexity:
//
//   - Loops:    Time O(E), Memory O(L).
//   - Bridges:  Time O(V+E), Memory O(V+E).
//   - Classify: Time O(V+E + E log E), Memory O(V+E).
//
// Errors:
//
//   - ErrGraphNil        graph pointer is nil
//   - ErrDirectedGraph   graph is directed
//   - context.Canceled / context.DeadlineExceeded via WithContext
package dfs
