// Package kernelexec provides the executor abstraction the similarity
// engine and batch scheduler use for optional parallelism (spec §5).
//
// An Executor never appears as a concrete thread pool in any signature;
// callers pass a value that implements three methods — ForEach,
// ForEachRange, and Eager — and kernels call back into it without knowing
// whether it runs inline, on a fixed goroutine pool, or on something else
// entirely. SingleThreaded is the zero-cost default: every body runs
// inline on the caller's goroutine. Pool backs the same interface with a
// fixed-size goroutine pool, grounded on the chunked-range dispatch pattern
// klauspost/reedsolomon uses for its Galois-field multiplies.
package kernelexec
