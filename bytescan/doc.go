// Package bytescan provides exact substring search and byte-set membership
// scanning over byte slices.
//
//   - FindByte / RFindByte — first/last occurrence of a single byte
//   - Find / RFind — exact substring search, Horspool-backed for longer needles
//   - ByteSet / FindByteSet / RFindByteSet — 256-bit membership scanning
//
// Every function returns NotFound rather than a (-1, bool) pair or an error,
// matching the convention callers already know from strings.Index.
package bytescan

// NotFound is the sentinel offset returned by every search function in this
// package when no match exists. Call sites read:
//
//	if off := bytescan.Find(h, n); off != bytescan.NotFound { ... }
const NotFound = -1
