// bitops.go - Byte/word helpers shared by the round transform and key
// schedule.
//
// Words are treated as big-endian: getByte(0, w) is the most significant
// byte of w, matching how AES numbers the bytes of a state column.

// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package botan

import "math/bits"

func getByte(n uint, w uint32) byte {
	return byte(w >> (24 - 8*n))
}

func makeWord(b0, b1, b2, b3 byte) uint32 {
	return uint32(b0)<<24 | uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3)
}

func rotl8(w uint32) uint32  { return bits.RotateLeft32(w, 8) }
func rotr8(w uint32) uint32  { return bits.RotateLeft32(w, -8) }
func rotr16(w uint32) uint32 { return bits.RotateLeft32(w, -16) }
func rotr24(w uint32) uint32 { return bits.RotateLeft32(w, -24) }

func loadWordBE(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func storeWordBE(w uint32, b []byte) {
	b[0] = byte(w >> 24)
	b[1] = byte(w >> 16)
	b[2] = byte(w >> 8)
	b[3] = byte(w)
}
