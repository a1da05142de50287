package kernelexec

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed-size goroutine-backed Executor. The chunking strategy —
// split the range into at most Workers pieces, never smaller than
// MinChunk — mirrors klauspost/reedsolomon's byteCount/maxGoroutines
// splitting (vendored under the xtaci-kcptun example), adapted from
// byte-count chunks to index-count chunks.
type Pool struct {
	// Workers is the number of goroutines to fan out across. Zero means
	// runtime.GOMAXPROCS(0).
	Workers int
	// MinChunk is the smallest chunk size worth dispatching to its own
	// goroutine; when splitting [0, n) across Workers would give chunks
	// smaller than MinChunk, the whole range runs as one chunk on a single
	// goroutine.
	MinChunk int
}

// NewPool returns a Pool sized to the host's GOMAXPROCS, with a MinChunk of
// 1 (every index may be dispatched independently; callers of Eager
// typically want that for unevenly sized batch items).
func NewPool() *Pool {
	return &Pool{Workers: runtime.GOMAXPROCS(0), MinChunk: 1}
}

func (p *Pool) workers() int {
	if p.Workers > 0 {
		return p.Workers
	}

	return runtime.GOMAXPROCS(0)
}

func (p *Pool) minChunk() int {
	if p.MinChunk > 0 {
		return p.MinChunk
	}

	return 1
}

// ForEach implements Executor by splitting [0, n) into contiguous chunks,
// one per worker, and running each chunk's indices on its own goroutine.
func (p *Pool) ForEach(n int, body func(i int)) {
	p.ForEachRange(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			body(i)
		}
	})
}

// ForEachRange implements Executor.
func (p *Pool) ForEachRange(n int, body func(lo, hi int)) {
	if n <= 0 {
		return
	}

	workers := p.workers()
	chunk := (n + workers - 1) / workers
	if chunk < p.minChunk() {
		chunk = n // too small to split at all
	}

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			body(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// Eager implements Executor with dynamic scheduling: a shared cursor is
// claimed one index at a time by whichever worker goroutine asks for it
// next, so uneven per-index costs (e.g. batch pairs of very different
// sizes) don't leave idle workers waiting on one slow chunk.
func (p *Pool) Eager(n int, body func(i int)) {
	if n <= 0 {
		return
	}

	var cursor atomic.Int64
	workers := p.workers()
	if workers > n {
		workers = n
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := cursor.Add(1) - 1
				if i >= int64(n) {
					return
				}
				body(int(i))
			}
		}()
	}
	wg.Wait()
}
