// SPDX-License-Identifier: MIT

// Package distdense is the provider for the Distributed storage kind: a
// matrix split into contiguous row blocks (shards), plus a kernel table
// derived from an existing Local table.
//
// Derivation instead of reimplementation: NewTable walks a sealed Local
// table, carries every Local entry over unchanged and registers a
// Distributed wrapper beside it, so one engine serves both storage kinds
// and the Distributed support matrix is exactly the Local one — the same
// operations resolve, the same combinations fail with
// kernel.ErrUnsupportedCombination.
//
// Execution strategy per entry:
//   - Row-aligned operations (entrywise work that never reads a global
//     row index: scale, fill, zero, conjugate, axpy, hadamard) run the
//     Local kernel once per shard, in parallel via errgroup.
//   - Everything else gathers the shards into one Local matrix, runs the
//     Local kernel there, and scatters the (possibly resized) result
//     back. Callback-driven kernels take this path too, preserving the
//     global column-major iteration order callbacks observe.
//
// Extremum positions, vector indices and reduction values are therefore
// identical between a Matrix and its Gather()ed Local copy.
package distdense
