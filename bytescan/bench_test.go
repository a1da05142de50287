package bytescan_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/simbyte/bytescan"
)

// benchHaystack returns a deterministic haystack of length n built by
// repeating "the quick brown fox ".
func benchHaystack(n int) []byte {
	h := bytes.Repeat([]byte("the quick brown fox "), n/20+1)
	return h[:n]
}

func BenchmarkFindShortNeedle(b *testing.B) {
	h := benchHaystack(4096)
	n := []byte("fox")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bytescan.Find(h, n)
	}
}

func BenchmarkFindLongNeedle(b *testing.B) {
	h := benchHaystack(65536)
	n := []byte("the quick brown fox jumped")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bytescan.Find(h, n)
	}
}

func BenchmarkFindByteSet(b *testing.B) {
	h := benchHaystack(65536)
	set := bytescan.NewByteSet('x', 'j', 'z')
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bytescan.FindByteSet(h, set)
	}
}
