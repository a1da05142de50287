package kernelexec

// Executor maps an integer range to a set of per-index or per-chunk
// callbacks, potentially in parallel. Every similarity-engine entry point
// and the batch scheduler accept one; there is no other way to opt into
// parallelism, and no requirement that an implementation actually use more
// than one goroutine.
type Executor interface {
	// ForEach invokes body(i) for every i in [0, n), independently — the
	// cell kernel uses this for within-diagonal cell updates (spec §4.D),
	// which is safe because linear-gap cells in one diagonal depend only
	// on prior diagonals, never on siblings.
	ForEach(n int, body func(i int))

	// ForEachRange invokes body(lo, hi) once per contiguous chunk covering
	// [0, n), with chunk boundaries chosen by the executor. Used where
	// per-chunk setup (e.g. loading one substitution-table row) amortizes
	// across many indices.
	ForEachRange(n int, body func(lo, hi int))

	// Eager invokes body(i) for every i in [0, n) under dynamic scheduling
	// — the batch scheduler uses this to hand independent pairs to
	// whichever worker goes idle first, rather than pre-partitioning work
	// that may be wildly uneven in size.
	Eager(n int, body func(i int))
}

// SingleThreaded is the no-op Executor: every body runs inline, in order,
// on the caller's goroutine. It is the correct default for small inputs,
// where dispatch overhead would dominate the work itself.
type SingleThreaded struct{}

// ForEach implements Executor.
func (SingleThreaded) ForEach(n int, body func(i int)) {
	for i := 0; i < n; i++ {
		body(i)
	}
}

// ForEachRange implements Executor.
func (SingleThreaded) ForEachRange(n int, body func(lo, hi int)) {
	if n > 0 {
		body(0, n)
	}
}

// Eager implements Executor.
func (SingleThreaded) Eager(n int, body func(i int)) {
	for i := 0; i < n; i++ {
		body(i)
	}
}
