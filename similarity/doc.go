// Package similarity is the core of this module: the parameterized
// dynamic-programming engine behind Levenshtein edit distance,
// Needleman-Wunsch global alignment, and Smith-Waterman local alignment,
// plus the Hamming-distance shortcuts that need no DP matrix at all.
//
// The public surface is six functions — EditDistance, EditDistanceUTF8,
// HammingDistance, HammingDistanceUTF8, NeedlemanWunschScore,
// SmithWatermanScore — each a façade (spec §4.G) over three private
// layers:
//
//   - a cell-level recurrence (kernel.go) shared by both traversal orders,
//     implementing the global/local, linear/affine variants of spec §4.D;
//   - a diagonal walker (diagonal.go), anti-diagonal traversal with
//     parallel-safe interior cells (spec §4.E);
//   - a row walker (row.go), Wagner-Fischer row-by-row traversal with a
//     sequential intra-row dependency (spec §4.F).
//
// Cell width is chosen once, at the façade boundary, from memreq's
// estimate of the worst-case score — the walkers themselves are
// monomorphic in a Go type parameter and never see the selection logic.
package similarity
