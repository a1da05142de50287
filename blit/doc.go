// Package blit provides length-aware bulk byte transforms: Copy, Move,
// Fill, and LookupTransform.
//
// Go's built-in copy() is already overlap-safe (unlike C's memcpy), so Copy
// and Move share one implementation here; they are kept as two names only
// to preserve the spec's distinction between a caller that promises
// non-overlap (Copy) and one that does not (Move). There is no block/stream
// tiering or non-temporal-store path: those exist in the source to manage
// cache pollution under real SIMD, which is out of scope here (see
// DESIGN.md) — a single straight-line pass is what the Go compiler already
// lowers copy() and range loops to efficiently.
package blit
