// Package tutte computes the Tutte polynomial T_G(x, y) of an undirected
// multigraph by deletion–contraction.
//
// What:
//
//   - Compute(ctx, g, opts...) returns T_G as an exact polynomial.Polynomial.
//   - ComputeWithStats additionally reports nodes, leaves, stack high-water
//     mark and elapsed time.
//
// Recurrence:
//
//	T(G) = x^b · y^l              if every edge is one of b bridges or l loops
//	T(G) = T(G − e) + T(G / e)    otherwise, e the chosen free edge
//
// The empty graph (no edges, any number of vertices) gives 1.
// Parallel edges and loops are first-class; directed graphs are rejected.
//
// Options:
//
//   - WithNodeBudget(n)   abort with ErrResourceExhausted beyond n nodes.
//   - WithWorkers(n)      process independent subtrees on n goroutines.
//   - WithEdgeOrder(fn)   choose the branching edge (default FirstFree).
//   - WithLogger(l)       logr.Logger; V(1) lifecycle, V(2) per expansion.
//   - WithOnExpand(fn)    hook per internal node (used by package metrics).
//   - WithOnLeaf(fn)      hook per base-case node.
//
// Complexity:
//
//   - Exponential in the cycle rank in the worst case (the tree has one leaf
//     per term contribution); each node costs O(V+E) for classification plus
//     O(V+E) per child copy. Memory is O(depth · (V+E)) for the stack.
//
// Errors:
//
//   - ErrGraphNil, ErrUnsupportedGraphKind, ErrResourceExhausted,
//     ErrOptionViolation, ErrBadEdgeChoice.
//   - context.Canceled / context.DeadlineExceeded (wrapped) from ctx.
package tutte
