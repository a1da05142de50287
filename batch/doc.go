// Package batch runs many independent similarity calls over aligned pairs
// of byte slices, choosing per-pair between two parallelism strategies
// based on each pair's memory footprint (spec §4.H):
//
//   - small pairs (below the L1 cache threshold) are dispatched one per
//     worker via a dynamically-scheduled Eager loop, each solved with a
//     SingleThreaded inner executor;
//   - large pairs run one at a time, but each gets the full outer executor
//     so every worker can cooperate on that one pair's diagonals.
//
// A failure on any pair (currently: an Allocator error from the similarity
// façade) is published to an atomic first-error cell; once set, later
// pairs in the same call are skipped rather than computed.
package batch
