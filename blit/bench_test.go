package blit_test

import (
	"testing"

	"github.com/katalvlaran/simbyte/blit"
)

func benchBuf(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}

	return b
}

func BenchmarkCopy(b *testing.B) {
	src := benchBuf(65536)
	dst := make([]byte, len(src))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		blit.Copy(dst, src)
	}
}

func BenchmarkMove(b *testing.B) {
	buf := benchBuf(65536)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		blit.Move(buf[8:], buf[:len(buf)-8])
	}
}

func BenchmarkFill(b *testing.B) {
	dst := make([]byte, 65536)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		blit.Fill(dst, 0x42)
	}
}

func BenchmarkLookupTransform(b *testing.B) {
	src := benchBuf(65536)
	dst := make([]byte, len(src))
	var lut [256]byte
	for i := range lut {
		lut[i] = byte(255 - i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		blit.LookupTransform(dst, src, &lut)
	}
}
