package similarity

import (
	"github.com/katalvlaran/simbyte/kernelexec"
	"github.com/katalvlaran/simbyte/subcost"
)

// rowWalker is the Wagner-Fischer traversal (spec §4.F): two rolling rows
// (linear) or six (affine), each of length n+1, built left to right. Unlike
// diagonalWalker, cell j's "deletion" neighbor is current[j-1] — the cell
// this same row just wrote — so the inner loop cannot be handed to exec;
// the executor parameter is accepted only for call-site symmetry with
// diagonalWalker and is intentionally unused here (spec §5: "intra-row
// horizontal data dependency... forbids simple lane parallelism").
//
// shorter/longer follow the same shorter<=longer convention as
// diagonalWalker; rows are indexed by column j over longer, one row per
// character of shorter.
func rowWalker[T Cell](shorter, longer []byte, sub subcost.Substituter, gap GapCost, locality Locality, objective Objective, _ kernelexec.Executor) T {
	if gap.IsAffine() {
		return rowAffine[T](shorter, longer, sub, gap, locality, objective)
	}

	return rowLinear[T](shorter, longer, sub, gap, locality, objective)
}

func rowLinear[T Cell](shorter, longer []byte, sub subcost.Substituter, gap GapCost, locality Locality, objective Objective) T {
	m, n := len(shorter), len(longer)
	g := T(gap.Open)

	prev := make([]T, n+1)
	curr := make([]T, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = boundaryLinear[T](locality, j, g)
	}

	var best T
	if locality == Local {
		for _, v := range prev {
			if v > best {
				best = v
			}
		}
	}

	for i := 1; i <= m; i++ {
		curr[0] = boundaryLinear[T](locality, i, g)
		if locality == Local && curr[0] > best {
			best = curr[0]
		}

		for j := 1; j <= n; j++ {
			s := T(sub.Apply(shorter[i-1], longer[j-1]))
			curr[j] = cellStepLinear[T](locality, objective, prev[j-1], prev[j], curr[j-1], s, g)
			if locality == Local && curr[j] > best {
				best = curr[j]
			}
		}

		prev, curr = curr, prev
	}

	if locality == Local {
		return best
	}

	return prev[n]
}

func rowAffine[T Cell](shorter, longer []byte, sub subcost.Substituter, gap GapCost, locality Locality, objective Objective) T {
	m, n := len(shorter), len(longer)
	open, extend := T(gap.Open), T(gap.Extend)

	scorePrev := make([]T, n+1)
	scoreCurr := make([]T, n+1)
	insPrev := make([]T, n+1)
	insCurr := make([]T, n+1)
	delPrev := make([]T, n+1)
	delCurr := make([]T, n+1)

	var best T
	for j := 0; j <= n; j++ {
		primary, running := boundaryAffine[T](locality, j, open, extend)
		scorePrev[j] = primary
		insPrev[j] = running
		delPrev[j] = running
		if locality == Local && primary > best {
			best = primary
		}
	}

	for i := 1; i <= m; i++ {
		primary, running := boundaryAffine[T](locality, i, open, extend)
		scoreCurr[0] = primary
		insCurr[0] = running
		delCurr[0] = running
		if locality == Local && primary > best {
			best = primary
		}

		for j := 1; j <= n; j++ {
			s := T(sub.Apply(shorter[i-1], longer[j-1]))
			score, ins, del := cellStepAffine[T](locality, objective,
				scorePrev[j-1], scorePrev[j], scoreCurr[j-1],
				insPrev[j], delCurr[j-1],
				s, open, extend)
			scoreCurr[j] = score
			insCurr[j] = ins
			delCurr[j] = del
			if locality == Local && score > best {
				best = score
			}
		}

		scorePrev, scoreCurr = scoreCurr, scorePrev
		insPrev, insCurr = insCurr, insPrev
		delPrev, delCurr = delCurr, delPrev
	}

	if locality == Local {
		return best
	}

	return scorePrev[n]
}
