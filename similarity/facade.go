package similarity

import (
	"github.com/katalvlaran/simbyte/kernelexec"
	"github.com/katalvlaran/simbyte/memreq"
	"github.com/katalvlaran/simbyte/subcost"
)

// rowWalkerSmallDiagonal / rowWalkerSmallCellWidth are the walker-selection
// thresholds from spec §4.G step 4 ("max diagonal length < 16 and cell
// width <= 2").
const (
	rowWalkerSmallDiagonal  = 16
	rowWalkerSmallCellWidth = 2
)

// EditDistance returns the Levenshtein edit distance between a and b,
// measured in bytes, with unit substitution and gap costs. If WithBound is
// supplied and the true distance would exceed it, the returned value is
// the bound itself (this module's fixed answer to spec §9.2's open
// question — see DESIGN.md).
//
// Stage 1: bounded early-abort using the length-difference lower bound
// (supplemented from the original source, see SPEC_FULL.md §4).
// Stage 2: empty-input boundary shortcut.
// Stage 3: cell-width and walker selection, then dispatch.
//
// Complexity: O(|a|·|b|) time; O(min(|a|,|b|)) space on the diagonal
// walker, O(max(|a|,|b|)) on the row walker that small inputs route to.
func EditDistance(a, b []byte, opts ...Option) (uint64, error) {
	cfg := applyOptions(opts)

	lenDiff := absInt(len(a) - len(b))
	if cfg.hasBound && uint64(lenDiff) > cfg.bound {
		return cfg.bound, nil
	}

	if len(a) == 0 || len(b) == 0 {
		return clipBound(uint64(max(len(a), len(b))), cfg), nil
	}

	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	sub := subcost.Uniform{Match: 0, Mismatch: 1}
	gap := Linear(1)

	if _, err := cfg.allocator.Alloc(requirementsFor(shorter, longer, gap, sub.Magnitude(), false).TotalBytes); err != nil {
		return 0, ErrOutOfMemory
	}

	result := dispatchWalker(shorter, longer, sub, gap, Global, MinimizeDistance, cfg.executor, false)

	return clipBound(uint64(result), cfg), nil
}

// EditDistanceUTF8 is EditDistance measured in Unicode codepoints rather
// than bytes. Pure-ASCII inputs delegate straight to EditDistance, since a
// byte and a codepoint coincide there (spec §4.G step 2). Non-ASCII inputs
// are expanded into []rune with Go's standard conversion: each byte that
// does not begin a valid UTF-8 sequence decodes to utf8.RuneError (U+FFFD)
// and decoding resumes at the next byte, so malformed input is compared
// rather than truncated.
func EditDistanceUTF8(a, b []byte, opts ...Option) (uint64, error) {
	if isASCII(a) && isASCII(b) {
		return EditDistance(a, b, opts...)
	}

	cfg := applyOptions(opts)
	ra, rb := []rune(string(a)), []rune(string(b))

	lenDiff := absInt(len(ra) - len(rb))
	if cfg.hasBound && uint64(lenDiff) > cfg.bound {
		return cfg.bound, nil
	}
	if len(ra) == 0 || len(rb) == 0 {
		return clipBound(uint64(max(len(ra), len(rb))), cfg), nil
	}

	shorter, longer := ra, rb
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	req := memreq.Estimate(len(shorter), len(longer), memreq.Linear, 1, 1, 4, 8, false)
	result := dispatchRuneWalker(shorter, longer, req)

	return clipBound(uint64(result), cfg), nil
}

// HammingDistance counts positions where a and b differ, plus the absolute
// length difference for any tail beyond the shorter string (spec §6.1). If
// WithBound is supplied, counting stops as soon as the running total
// reaches the bound.
//
// Complexity: O(min(|a|,|b|)) time, O(1) space — no DP matrix involved.
func HammingDistance(a, b []byte, opts ...Option) uint64 {
	cfg := applyOptions(opts)

	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var diff uint64
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			diff++
		}
		if cfg.hasBound && diff >= cfg.bound {
			return cfg.bound
		}
	}
	diff += uint64(absInt(len(a) - len(b)))

	return clipBound(diff, cfg)
}

// HammingDistanceUTF8 is HammingDistance over Unicode codepoints.
func HammingDistanceUTF8(a, b []byte, opts ...Option) uint64 {
	if isASCII(a) && isASCII(b) {
		return HammingDistance(a, b, opts...)
	}

	cfg := applyOptions(opts)
	ra, rb := []rune(string(a)), []rune(string(b))

	n := len(ra)
	if len(rb) < n {
		n = len(rb)
	}

	var diff uint64
	for i := 0; i < n; i++ {
		if ra[i] != rb[i] {
			diff++
		}
		if cfg.hasBound && diff >= cfg.bound {
			return cfg.bound
		}
	}
	diff += uint64(absInt(len(ra) - len(rb)))

	return clipBound(diff, cfg)
}

// NeedlemanWunschScore computes the global alignment score of a against b
// under subs and gap.
//
// Complexity: O(|a|·|b|) time; O(min(|a|,|b|)) space on the diagonal
// walker, O(max(|a|,|b|)) on the row walker that small inputs route to.
func NeedlemanWunschScore(a, b []byte, subs subcost.Substituter, gap GapCost, opts ...Option) (int64, error) {
	return alignmentScore(a, b, subs, gap, Global, opts)
}

// SmithWatermanScore computes the best local alignment score of a against
// b under subs and gap; the result is always >= 0 (spec invariant 6).
//
// Complexity: O(|a|·|b|) time; O(min(|a|,|b|)) space on the diagonal
// walker, O(max(|a|,|b|)) on the row walker that small inputs route to.
func SmithWatermanScore(a, b []byte, subs subcost.Substituter, gap GapCost, opts ...Option) (int64, error) {
	return alignmentScore(a, b, subs, gap, Local, opts)
}

func alignmentScore(a, b []byte, subs subcost.Substituter, gap GapCost, locality Locality, opts []Option) (int64, error) {
	cfg := applyOptions(opts)

	if len(a) == 0 || len(b) == 0 {
		k := max(len(a), len(b))
		if gap.IsAffine() {
			primary, _ := boundaryAffine[int64](locality, k, int64(gap.Open), int64(gap.Extend))
			return primary, nil
		}

		return int64(boundaryLinear[int64](locality, k, int64(gap.Open))), nil
	}

	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	if _, err := cfg.allocator.Alloc(requirementsFor(shorter, longer, gap, subs.Magnitude(), true).TotalBytes); err != nil {
		return 0, ErrOutOfMemory
	}

	return dispatchWalker(shorter, longer, subs, gap, locality, MaximizeScore, cfg.executor, true), nil
}

func requirementsFor(shorter, longer []byte, gap GapCost, subMagnitude int8, signed bool) memreq.Requirements {
	model := memreq.Linear
	if gap.IsAffine() {
		model = memreq.Affine
	}

	return memreq.Estimate(len(shorter), len(longer), model, subMagnitude, gap.Magnitude(), 1, 8, signed)
}

// dispatchWalker picks the smallest admissible cell width and the faster
// walker (spec §4.G steps 3-4), then runs it. The result is widened to
// int64, which always fits: the façade never selects a width narrower than
// the worst case memreq.Estimate reports.
func dispatchWalker(shorter, longer []byte, sub subcost.Substituter, gap GapCost, locality Locality, objective Objective, exec kernelexec.Executor, signed bool) int64 {
	req := requirementsFor(shorter, longer, gap, sub.Magnitude(), signed)
	useDiagonal := !(req.MaxDiagonalLength < rowWalkerSmallDiagonal && req.BytesPerCell <= rowWalkerSmallCellWidth)

	cellBytes := req.BytesPerCell
	if signed && cellBytes < 2 {
		// The Cell type set has no int8 (SPEC_FULL.md §3.D/E/F); promote.
		cellBytes = 2
	}

	switch {
	case !signed && cellBytes == 1:
		return int64(runByteWalker[uint8](useDiagonal, shorter, longer, sub, gap, locality, objective, exec))
	case !signed && cellBytes == 2:
		return int64(runByteWalker[uint16](useDiagonal, shorter, longer, sub, gap, locality, objective, exec))
	case !signed && cellBytes == 4:
		return int64(runByteWalker[uint32](useDiagonal, shorter, longer, sub, gap, locality, objective, exec))
	case !signed && cellBytes == 8:
		return int64(runByteWalker[uint64](useDiagonal, shorter, longer, sub, gap, locality, objective, exec))
	case signed && cellBytes == 2:
		return int64(runByteWalker[int16](useDiagonal, shorter, longer, sub, gap, locality, objective, exec))
	case signed && cellBytes == 4:
		return int64(runByteWalker[int32](useDiagonal, shorter, longer, sub, gap, locality, objective, exec))
	default:
		return int64(runByteWalker[int64](useDiagonal, shorter, longer, sub, gap, locality, objective, exec))
	}
}

func runByteWalker[T Cell](useDiagonal bool, shorter, longer []byte, sub subcost.Substituter, gap GapCost, locality Locality, objective Objective, exec kernelexec.Executor) T {
	if useDiagonal {
		return diagonalWalker[T](shorter, longer, sub, gap, locality, objective, exec)
	}

	return rowWalker[T](shorter, longer, sub, gap, locality, objective, exec)
}

func dispatchRuneWalker(shorter, longer []rune, req memreq.Requirements) int64 {
	useDiagonal := !(req.MaxDiagonalLength < rowWalkerSmallDiagonal && req.BytesPerCell <= rowWalkerSmallCellWidth)

	switch req.BytesPerCell {
	case 1:
		return int64(runRuneWalker[uint8](useDiagonal, shorter, longer))
	case 2:
		return int64(runRuneWalker[uint16](useDiagonal, shorter, longer))
	case 4:
		return int64(runRuneWalker[uint32](useDiagonal, shorter, longer))
	default:
		return int64(runRuneWalker[uint64](useDiagonal, shorter, longer))
	}
}

func runRuneWalker[T Cell](useDiagonal bool, shorter, longer []rune) T {
	if useDiagonal {
		return diagonalWalkerRunes[T](shorter, longer)
	}

	return rowWalkerRunes[T](shorter, longer)
}

func isASCII(data []byte) bool {
	for _, c := range data {
		if c >= 0x80 {
			return false
		}
	}

	return true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func clipBound(v uint64, cfg config) uint64 {
	if cfg.hasBound && v > cfg.bound {
		return cfg.bound
	}

	return v
}
