package similarity

import (
	"sync"

	"github.com/katalvlaran/simbyte/kernelexec"
	"github.com/katalvlaran/simbyte/subcost"
)

// diagonalWalker traverses the DP grid along anti-diagonals (spec §4.E).
// shorter and longer must already be ordered shorter<=longer by the caller
// (the façade's "swap arguments so the shorter string is first" step); m =
// len(shorter), n = len(longer), m <= n.
//
// Rather than the source's pointer-compacted variable-length diagonals,
// each rolling buffer here is a fixed-length m+1 slice addressed directly
// by row index p — the same O(m) footprint memreq.Estimate already charges
// for MaxDiagonalLength, without negative-offset bookkeeping. See DESIGN.md
// for why this simplification preserves every invariant in spec §8.
//
// Complexity: O(m·n) time (spec §4.E "anti-diagonal band cell count"),
// O(m) space for linear gaps (3 buffers), O(m) for affine (7 buffers).
func diagonalWalker[T Cell](shorter, longer []byte, sub subcost.Substituter, gap GapCost, locality Locality, objective Objective, exec kernelexec.Executor) T {
	if gap.IsAffine() {
		return diagonalAffine[T](shorter, longer, sub, gap, locality, objective, exec)
	}

	return diagonalLinear[T](shorter, longer, sub, gap, locality, objective, exec)
}

func diagonalLinear[T Cell](shorter, longer []byte, sub subcost.Substituter, gap GapCost, locality Locality, objective Objective, exec kernelexec.Executor) T {
	m, n := len(shorter), len(longer)
	g := T(gap.Open)

	prev2 := make([]T, m+1)
	prev1 := make([]T, m+1)
	next := make([]T, m+1)

	var best T
	var bestMu sync.Mutex

	total := m + n
	for d := 0; d <= total; d++ {
		lo := 0
		if d-n > lo {
			lo = d - n
		}
		hi := d
		if m < hi {
			hi = m
		}

		exec.ForEach(hi-lo+1, func(offset int) {
			p := lo + offset
			q := d - p
			if p == 0 || q == 0 {
				next[p] = boundaryLinear[T](locality, d, g)
			} else {
				s := T(sub.Apply(shorter[p-1], longer[q-1]))
				next[p] = cellStepLinear[T](locality, objective, prev2[p-1], prev1[p-1], prev1[p], s, g)
			}
			if locality == Local {
				bestMu.Lock()
				if next[p] > best {
					best = next[p]
				}
				bestMu.Unlock()
			}
		})

		prev2, prev1, next = prev1, next, prev2
	}

	if locality == Local {
		return best
	}

	// Global: the result is the last cell computed, which after the final
	// rotation lives in prev1[m] (q = total-m = n, the bottom-right corner).
	return prev1[m]
}

func diagonalAffine[T Cell](shorter, longer []byte, sub subcost.Substituter, gap GapCost, locality Locality, objective Objective, exec kernelexec.Executor) T {
	m, n := len(shorter), len(longer)
	open, extend := T(gap.Open), T(gap.Extend)

	scorePrev2 := make([]T, m+1)
	scorePrev1 := make([]T, m+1)
	scoreNext := make([]T, m+1)
	insPrev := make([]T, m+1)
	insNext := make([]T, m+1)
	delPrev := make([]T, m+1)
	delNext := make([]T, m+1)

	var best T
	var bestMu sync.Mutex

	total := m + n
	for d := 0; d <= total; d++ {
		lo := 0
		if d-n > lo {
			lo = d - n
		}
		hi := d
		if m < hi {
			hi = m
		}

		exec.ForEach(hi-lo+1, func(offset int) {
			p := lo + offset
			q := d - p
			if p == 0 || q == 0 {
				primary, running := boundaryAffine[T](locality, d, open, extend)
				scoreNext[p] = primary
				insNext[p] = running
				delNext[p] = running
			} else {
				s := T(sub.Apply(shorter[p-1], longer[q-1]))
				score, ins, del := cellStepAffine[T](locality, objective,
					scorePrev2[p-1], scorePrev1[p-1], scorePrev1[p],
					insPrev[p-1], delPrev[p],
					s, open, extend)
				scoreNext[p] = score
				insNext[p] = ins
				delNext[p] = del
			}
			if locality == Local {
				bestMu.Lock()
				if scoreNext[p] > best {
					best = scoreNext[p]
				}
				bestMu.Unlock()
			}
		})

		scorePrev2, scorePrev1, scoreNext = scorePrev1, scoreNext, scorePrev2
		insPrev, insNext = insNext, insPrev
		delPrev, delNext = delNext, delPrev
	}

	if locality == Local {
		return best
	}

	return scorePrev1[m]
}
