package bytescan

import "github.com/katalvlaran/simbyte/dispatch"

func init() {
	dispatch.Default.Register(dispatch.SlotBytescanFind, dispatch.Generic, Find)
}

// Find returns the offset of the first occurrence of needle in haystack, or
// NotFound. An empty needle matches at offset 0.
//
// Small needles (len(needle) <= smallNeedleThreshold) are matched with a
// direct byte-by-byte probe — the per-call cost of building a shift table
// would dominate. Longer needles use Boyer-Moore-Horspool with a 256-entry
// bad-character table built once per call (spec §9.1), guarded by the Raita
// three-offset pre-filter (the needle's first, mid and last bytes, see
// locateNeedleAnomalies) so that most candidate windows are rejected without
// a full comparison.
//
// Complexity: O(len(haystack)) expected, O(len(haystack)*len(needle)) worst
// case (degenerate needles with few distinct bytes).
func Find(haystack, needle []byte) int {
	n := len(needle)
	switch {
	case n == 0:
		return 0
	case n > len(haystack):
		return NotFound
	case n <= smallNeedleThreshold:
		return findSmall(haystack, needle)
	default:
		return findHorspool(haystack, needle)
	}
}

// RFind returns the offset of the last occurrence of needle in haystack, or
// NotFound. An empty needle matches at offset len(haystack).
//
// Complexity: mirrors Find.
func RFind(haystack, needle []byte) int {
	n := len(needle)
	switch {
	case n == 0:
		return len(haystack)
	case n > len(haystack):
		return NotFound
	case n <= smallNeedleThreshold:
		return rfindSmall(haystack, needle)
	default:
		return rfindHorspool(haystack, needle)
	}
}

// smallNeedleThreshold is the needle length at or below which a direct
// probe beats building a 256-entry shift table.
const smallNeedleThreshold = 8

func findSmall(haystack, needle []byte) int {
	first := needle[0]
	last := len(haystack) - len(needle)
	for i := 0; i <= last; i++ {
		if haystack[i] == first && equalAt(haystack, i, needle) {
			return i
		}
	}

	return NotFound
}

func rfindSmall(haystack, needle []byte) int {
	first := needle[0]
	for i := len(haystack) - len(needle); i >= 0; i-- {
		if haystack[i] == first && equalAt(haystack, i, needle) {
			return i
		}
	}

	return NotFound
}

func equalAt(haystack []byte, at int, needle []byte) bool {
	for i := 1; i < len(needle); i++ {
		if haystack[at+i] != needle[i] {
			return false
		}
	}

	return true
}

// findHorspool implements Boyer-Moore-Horspool with the Raita heuristic.
func findHorspool(haystack, needle []byte) int {
	n := len(needle)
	var table [256]int
	for i := range table {
		table[i] = n
	}
	for i := 0; i < n-1; i++ {
		table[needle[i]] = n - 1 - i
	}

	first, mid, last := locateNeedleAnomalies(needle)
	nFirst, nMid, nLast := needle[first], needle[mid], needle[last]

	limit := len(haystack) - n
	for i := 0; i <= limit; {
		if haystack[i+first] == nFirst && haystack[i+mid] == nMid && haystack[i+last] == nLast &&
			equalFull(haystack[i:i+n], needle) {
			return i
		}
		i += table[haystack[i+n-1]]
	}

	return NotFound
}

// rfindHorspool is the mirror-image Horspool scan, walking the haystack
// from its tail and shifting by the bad-character distance from the front
// of the needle.
func rfindHorspool(haystack, needle []byte) int {
	n := len(needle)
	var table [256]int
	for i := range table {
		table[i] = n
	}
	for i := n - 1; i > 0; i-- {
		table[needle[i]] = i
	}

	first, mid, last := locateNeedleAnomalies(needle)
	nFirst, nMid, nLast := needle[first], needle[mid], needle[last]

	for i := len(haystack) - n; i >= 0; {
		if haystack[i+first] == nFirst && haystack[i+mid] == nMid && haystack[i+last] == nLast &&
			equalFull(haystack[i:i+n], needle) {
			return i
		}
		i -= table[haystack[i]]
	}

	return NotFound
}

func equalFull(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// isUTF8Continuation reports whether b lies in the 0x80-0xBF continuation
// range, where single-byte probes are least discriminative on multilingual
// text (spec §9.1).
func isUTF8Continuation(b byte) bool {
	return b&0xC0 == 0x80
}

// locateNeedleAnomalies picks three offsets (first, mid, last) into needle.
// first and last are always 0 and len(needle)-1. mid is the first of
// len(needle)/2, len(needle)/2+1 and len(needle)/2-1 that lies strictly
// between them and whose byte is outside the UTF-8 continuation range, so
// the middle probe stays selective on multilingual input; if none
// qualifies, mid stays len(needle)/2. Byte values are not compared with each
// other: the three probed bytes may be equal, and the first and last bytes
// may be continuation bytes.
//
// Complexity: O(1).
func locateNeedleAnomalies(needle []byte) (first, mid, last int) {
	n := len(needle)
	first, mid, last = 0, n/2, n-1

	// Try to push `mid` away from `first` and `last` if they collide, and
	// away from continuation bytes, without leaving the needle's bounds.
	candidates := []int{mid, mid + 1, mid - 1}
	for _, c := range candidates {
		if c <= 0 || c >= n-1 {
			continue
		}
		if c == first || c == last {
			continue
		}
		if isUTF8Continuation(needle[c]) {
			continue
		}
		mid = c

		break
	}

	return first, mid, last
}
