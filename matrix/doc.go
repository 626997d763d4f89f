// Package matrix offers exact-integer matrix tools used to cross-check the
// Tutte engine.
//
// The matrix package provides:
//
//   - Dense: a row-major matrix of *big.Int with safe At/Set accessors.
//   - Laplacian: L = D - A of an undirected multigraph (parallel edges counted,
//     loops ignored) together with its vertex ordering.
//   - Determinant: fraction-free Bareiss elimination, exact for any size.
//   - SpanningTrees: Kirchhoff's matrix-tree theorem. For a connected graph
//     the result equals T(G; 1, 1).
//
// Matrices are O(V²) in memory; they are meant for graphs small enough to
// run through deletion–contraction anyway.
package matrix
