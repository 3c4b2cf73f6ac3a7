// tdtable.go - Lazily-built decryption T-table.
//
// TD fuses InvSubBytes and InvMixColumns into a single 256-entry table of
// 32-bit words, the classic AES T-table trick: one lookup and three
// rotations replace a byte substitution followed by a matrix multiply.
// It is built once, on first use, behind a sync.Once rather than as a
// package-level table literal — nothing in the decrypt path needs it
// until the first Decrypt call, and callers that only ever encrypt never
// pay for it.

// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package botan

import (
	"sync"
	"unsafe"
)

var (
	tdOnce sync.Once
	tdBuf  [256 + 16]uint32
	td     *[256]uint32
)

// initTD places td at the first 64-byte boundary inside tdBuf and populates
// td[i] = concat(14*SD[i], 9*SD[i], 13*SD[i], 11*SD[i]), each product taken
// in GF(2^8) under the AES reduction polynomial.
func initTD() {
	off := int((64-uintptr(unsafe.Pointer(&tdBuf[0]))%64)%64) / 4
	td = (*[256]uint32)(tdBuf[off : off+256])
	for i := 0; i != 256; i++ {
		s := SD[i]
		td[i] = uint32(xtime14(s))<<24 | uint32(xtime9(s))<<16 | uint32(xtime13(s))<<8 | uint32(xtime11(s))
	}
}

// TD returns the decryption T-table, building it on first call.
func TD() *[256]uint32 {
	tdOnce.Do(initTD)
	return td
}
