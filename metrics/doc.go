// Package metrics exposes Prometheus collectors for the Tutte engine:
//
//	tutte_nodes_expanded_total        counter
//	tutte_leaves_total                counter
//	tutte_computations_total{outcome} counter
//	tutte_compute_seconds             histogram
//
// Collector.Options plugs the counters into tutte.Compute through its
// OnExpand/OnLeaf hooks; Collector.Compute also records outcome and latency.
package metrics
