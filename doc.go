// Package simbyte (root) documents the overall module: a library of
// high-throughput primitives for byte sequences and short Unicode text.
//
// 🚀 What is simbyte?
//
//	A fast, branch-lean toolkit that brings together:
//
//	  • Byte scanning: find/rfind, byte-set membership (bytescan/)
//	  • Bulk transforms: copy/move/fill/lookup (blit/)
//	  • A byte checksum (checksum/)
//	  • Substitution-cost tables: BLOSUM62, NUC.4.4, uniform, identity (subcost/)
//	  • DP memory sizing (memreq/)
//	  • An executor abstraction for optional parallelism (kernelexec/)
//	  • The similarity engine: Levenshtein, Needleman-Wunsch, Smith-Waterman (similarity/)
//	  • A batch scheduler for many pairs at once (batch/)
//	  • A capability-keyed kernel dispatch stub (dispatch/)
//
// ✨ Why choose simbyte?
//
//   - No hidden state — every function is pure, every buffer is scoped to one call
//   - Adaptive — cell width and traversal strategy are chosen per call from
//     input size, not fixed at compile time
//   - Composable — similarity consumes subcost, memreq and kernelexec as
//     plain interfaces; none of them know about each other otherwise
//   - Pure Go — no cgo
//
// This is a library, not a service: there is no persistent state, no file
// format, no wire protocol, and no CLI. Every exported function is called
// directly from your Go code.
//
//	go get github.com/katalvlaran/simbyte
package simbyte
