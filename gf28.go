// gf28.go - GF(2^8) byte and lane-wise multiplication primitives.

// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package botan

// xtime multiplies a single byte by 2 in GF(2^8) with the AES reduction
// polynomial x^8+x^4+x^3+x+1 (0x11B), without branching on the input's top
// bit.
func xtime(s byte) byte {
	return (s << 1) ^ ((s >> 7) * 0x1B)
}

func xtime4(s byte) byte { return xtime(xtime(s)) }
func xtime8(s byte) byte { return xtime(xtime(xtime(s))) }

func xtime3(s byte) byte  { return xtime(s) ^ s }
func xtime9(s byte) byte  { return xtime8(s) ^ s }
func xtime11(s byte) byte { return xtime8(s) ^ xtime(s) ^ s }
func xtime13(s byte) byte { return xtime8(s) ^ xtime4(s) ^ s }
func xtime14(s byte) byte { return xtime8(s) ^ xtime4(s) ^ xtime(s) }

// xtimeWord applies xtime independently to each of the four bytes packed
// into a 32-bit word, using only shifts and XORs (no per-byte branch).
func xtimeWord(s uint32) uint32 {
	hb := (s >> 7) & 0x01010101
	shifted := (s << 1) & 0xFEFEFEFE
	carry := (hb << 4) | (hb << 3) | (hb << 1) | hb // hb * 0x1B
	return shifted ^ carry
}
