// Package checksum provides a single non-cryptographic byte checksum: an
// unsigned 64-bit additive sum of bytes. Nothing else — spec §1 scopes
// every other hash/checksum variant as an external collaborator.
package checksum

import "github.com/katalvlaran/simbyte/dispatch"

func init() {
	dispatch.Default.Register(dispatch.SlotChecksumSum64, dispatch.Generic, Sum64)
}

// Sum64 returns the unsigned sum of every byte in data, widened to 64 bits.
// It is not a hash in any cryptographic or collision-resistant sense; it is
// the cheapest possible data-integrity signal, useful for quick equality
// pre-checks before a full byte comparison.
//
// Complexity: O(len(data)).
func Sum64(data []byte) uint64 {
	var sum uint64
	for _, b := range data {
		sum += uint64(b)
	}

	return sum
}
