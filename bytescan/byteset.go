package bytescan

// ByteSet is a 256-bit membership set, one bit per possible byte value.
// The zero value is the empty set.
type ByteSet struct {
	words [4]uint64
}

// NewByteSet builds a ByteSet containing every byte in members.
//
// Complexity: O(len(members)).
func NewByteSet(members ...byte) ByteSet {
	var s ByteSet
	for _, b := range members {
		s.Add(b)
	}

	return s
}

// Add inserts b into the set.
//
// Complexity: O(1).
func (s *ByteSet) Add(b byte) {
	s.words[b>>6] |= 1 << (b & 63)
}

// Contains reports whether b is a member of the set.
//
// Complexity: O(1).
func (s ByteSet) Contains(b byte) bool {
	return s.words[b>>6]&(1<<(b&63)) != 0
}

// Invert replaces the set with its complement over the full byte range.
//
// Complexity: O(1).
func (s *ByteSet) Invert() {
	for i := range s.words {
		s.words[i] = ^s.words[i]
	}
}

// FindByteSet returns the offset of the first byte in haystack that is a
// member of set, or NotFound.
//
// Complexity: O(len(haystack)).
func FindByteSet(haystack []byte, set ByteSet) int {
	for i := 0; i < len(haystack); i++ {
		if set.Contains(haystack[i]) {
			return i
		}
	}

	return NotFound
}

// RFindByteSet returns the offset of the last byte in haystack that is a
// member of set, or NotFound.
//
// Complexity: O(len(haystack)).
func RFindByteSet(haystack []byte, set ByteSet) int {
	for i := len(haystack) - 1; i >= 0; i-- {
		if set.Contains(haystack[i]) {
			return i
		}
	}

	return NotFound
}
