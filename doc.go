// Package tutte computes Tutte polynomials of undirected multigraphs.
//
// T(G; x, y) is obtained by deletion-contraction: a free edge e (neither a
// bridge nor a loop) splits G into G−e and G/e, and a graph made only of b
// bridges and l loops contributes x^b·y^l. Evaluations of T count many
// things at once: T(1,1) spanning forests, T(2,0) acyclic orientations,
// T(2,2) = 2^|E| spanning subgraphs.
//
// Packages:
//
//	core/         multigraph with stable vertex and edge IDs, DeleteEdge / ContractEdge views
//	dfs/          bridges, loops and free-edge classification (iterative low-link DFS)
//	bfs/          connected components
//	polynomial/   exact sparse bivariate polynomials over big.Int, evaluation domains
//	tutte/        the deletion-contraction engine (explicit stack, budget, workers)
//	builder/      graph families: cycle, wheel, grid, dipole, bouquet, random, ...
//	matrix/       exact Laplacian and Bareiss determinant (Kirchhoff cross-check)
//	invariants/   counting invariants, chromatic and flow values, reliability
//	cache/        polynomial stores: in-process, Badger, Redis
//	metrics/      Prometheus collectors fed by the engine hooks
//	cmd/tutte/    CLI and HTTP server
//
// Quick example:
//
//	g, _ := builder.BuildFamily("cycle", []int{5})
//	p, _ := tutte.Compute(context.Background(), g)
//	fmt.Println(p) // x^4 + x^3 + x^2 + x + y
//
//	go install github.com/katalvlaran/tutte/cmd/tutte@latest
package tutte
