// Package builder provides deterministic graph-family constructors used as
// fixtures for the Tutte engine, its cross-checks, the CLI and the HTTP API.
//
// The package offers:
//
//   - Orchestration:
//     – Constructor:       func(g *core.Graph, cfg builderConfig) error.
//     – BuildGraph:        creates a core.Graph and applies constructors in order.
//     – BuildMultigraph:   BuildGraph with loops and parallel edges enabled.
//   - Configuration (BuilderOption):
//     – WithIDScheme, WithSymbNumb, WithExcelColumnIDs: vertex ID strategy.
//     – WithSeed, WithRand:  RNG for RandomSparse.
//     – WithPartitionPrefix: side labels for CompleteBipartite.
//   - Families:
//     – Cycle, Path, Star, Wheel, Complete, CompleteBipartite, Grid.
//     – Diamond, Bouquet (k loops), Dipole (k parallel edges).
//     – RandomSparse (G(n, p)).
//   - Lookup:
//     – Family / BuildFamily: resolve "wheel", []int{6} into a graph.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical graphs,
//     including edge IDs and therefore the engine's branching order.
//   - Constructors never panic; they return sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource) wrapped with method context.
//   - Mode flags are honored: a family needing loops or parallel edges fails
//     on a simple graph with core.ErrLoopNotAllowed / core.ErrMultiEdgeNotAllowed.
package builder
