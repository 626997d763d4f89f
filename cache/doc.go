// Package cache memoizes Tutte polynomials by graph.
//
// Keys come from Key(g): an xxhash64 of the canonical labelled edge list, so
// two graphs share a key exactly when they have the same vertex IDs and the
// same multiset of endpoint pairs. The key does not identify isomorphic
// graphs with different labels.
//
// Backends:
//
//   - Memory: bounded in-process map with FIFO eviction.
//   - Badger: embedded LSM store (on disk, or in memory for an empty path).
//   - Redis: shared remote store with optional TTL.
//
// Cached wraps a compute function with get-or-compute-and-put semantics and
// is what the CLI and server call.
package cache
