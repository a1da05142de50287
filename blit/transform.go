package blit

// Copy copies min(len(dst), len(src)) bytes from src into dst and returns
// the number of bytes copied. The caller promises dst and src do not
// overlap; Copy behaves identically to Move if they do, since Go's copy()
// underneath is already overlap-safe.
//
// Complexity: O(min(len(dst), len(src))).
func Copy(dst, src []byte) int {
	return copy(dst, src)
}

// Move copies min(len(dst), len(src)) bytes from src into dst and returns
// the number of bytes copied. Unlike Copy, the caller makes no promise
// about overlap between dst and src.
//
// Complexity: O(min(len(dst), len(src))).
func Move(dst, src []byte) int {
	return copy(dst, src)
}

// Fill sets every byte of dst to value.
//
// Complexity: O(len(dst)).
func Fill(dst []byte, value byte) {
	if len(dst) == 0 {
		return
	}

	// Seed the first byte, then repeatedly double the filled prefix — the
	// same doubling trick the standard library uses in bytes.Repeat, which
	// keeps the number of assembly-level move instructions logarithmic
	// instead of linear in len(dst).
	dst[0] = value
	for filled := 1; filled < len(dst); filled *= 2 {
		copy(dst[filled:], dst[:filled])
	}
}

// LookupTransform writes out[i] = lut[in[i]] for every i, where lut is a
// 256-entry table indexed by byte value. len(out) must be >= len(in).
//
// Complexity: O(len(in)).
func LookupTransform(out, in []byte, lut *[256]byte) {
	for i, b := range in {
		out[i] = lut[b]
	}
}
