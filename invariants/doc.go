// Package invariants reads classical graph invariants off a Tutte polynomial
// computed by package tutte.
//
// Counting evaluations (exact, *big.Int):
//
//	SpanningForests             T(1,1)
//	IndependentSets             T(2,1)   forests of any size
//	AcyclicOrientations         T(2,0)
//	TotallyCyclicOrientations   T(0,2)
//	ConnectedSpanningSubgraphs  T(1,2)
//	SpanningSubgraphs           T(2,2) = 2^|E|
//
// Specializations that also need |V|, |E| and the component count k of the
// graph (found with bfs.CountComponents): ChromaticValue, FlowValue and the
// floating-point all-terminal Reliability.
//
// Summarize bundles the counts in a JSON-friendly Summary for the CLI and
// the HTTP server.
package invariants
