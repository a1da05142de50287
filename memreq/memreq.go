package memreq

// GapModel selects the gap-cost shape a similarity call uses: Linear (one
// cost per gap cell) or Affine (a distinguished opening cost plus a
// per-extension cost). It determines how many rolling diagonals/rows the
// DP walkers need to keep live (spec §4.E, §4.F).
type GapModel int

const (
	// Linear gap costs need 3 live diagonals (2 rows).
	Linear GapModel = iota
	// Affine gap costs need 7 live diagonals (6 rows): three score
	// diagonals (previous, current, next) plus two each for the running
	// insertion and deletion gaps.
	Affine
)

// diagonalsNeeded returns how many rolling diagonal buffers a walker must
// keep live for this gap model.
func (g GapModel) diagonalsNeeded() int {
	if g == Affine {
		return 7
	}

	return 3
}

// Requirements is the derived sizing a similarity call needs before it
// allocates: the longest live diagonal, the cell width that can hold the
// worst-case score, and the total scratch-buffer size (spec §3.1, §4.J).
type Requirements struct {
	MaxDiagonalLength int
	BytesPerCell      int
	BytesPerDiagonal  int
	TotalBytes        int
}

// Estimate computes the memory requirements for a DP call over strings of
// length lenA and lenB, given the gap model, the magnitude of the
// substitution and gap costs, the width of one input character
// (1 for bytes, 4 for UTF-32 runes), the SIMD/alignment register width to
// round diagonals up to, and whether the DP objective needs signed cells
// (NW/SW) or can stay unsigned (Levenshtein).
//
// If either length is 0, every field is zero (spec §4.J) — the façade
// handles empty inputs as a boundary-value shortcut before ever calling
// Estimate.
//
// Complexity: O(1).
func Estimate(lenA, lenB int, gapModel GapModel, subMagnitude, gapMagnitude int8, bytesPerChar, registerWidth int, signed bool) Requirements {
	if lenA == 0 || lenB == 0 {
		return Requirements{}
	}

	maxDiagonalLength := min(lenA, lenB) + 1
	magnitude := maxInt(int(absInt8(subMagnitude)), int(absInt8(gapMagnitude)))
	maxCellValue := (maxInt(lenA, lenB) + 1) * magnitude

	bytesPerCell := smallestWidth(maxCellValue, signed)
	bytesPerDiagonal := roundUp(maxDiagonalLength*bytesPerCell, registerWidth)
	diagonalsNeeded := gapModel.diagonalsNeeded()
	totalBytes := diagonalsNeeded*bytesPerDiagonal +
		roundUp(lenA*bytesPerChar, registerWidth) +
		roundUp(lenB*bytesPerChar, registerWidth)

	return Requirements{
		MaxDiagonalLength: maxDiagonalLength,
		BytesPerCell:      bytesPerCell,
		BytesPerDiagonal:  bytesPerDiagonal,
		TotalBytes:        totalBytes,
	}
}

// smallestWidth returns the smallest of {1, 2, 4, 8} bytes whose range can
// hold maxCellValue: the full range if unsigned, half the range if signed
// (spec invariant 3.2.2).
func smallestWidth(maxCellValue int, signed bool) int {
	for _, width := range [...]int{1, 2, 4, 8} {
		bits := width * 8
		var limit int64
		if signed {
			limit = int64(1) << (bits - 1)
		} else {
			if bits >= 64 {
				return width // 2^64 would overflow int64; 8 bytes always suffices here
			}
			limit = int64(1) << bits
		}
		if int64(maxCellValue) < limit {
			return width
		}
	}

	return 8
}

func roundUp(n, multiple int) int {
	if multiple <= 1 {
		return n
	}
	rem := n % multiple
	if rem == 0 {
		return n
	}

	return n + (multiple - rem)
}

func absInt8(v int8) int8 {
	if v >= 0 {
		return v
	}
	if v == -128 {
		return 127
	}

	return -v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}
