// round.go - The forward and inverse AES round transforms.
//
// The forward round fuses ShiftRows and MixColumns into a single per-column
// gather-and-XOR over bytes already passed through the bitsliced S-box, the
// same trick the reference implementation uses: each output column is
// assembled from one real byte of the shifted state plus its xtime/xtime3
// images, picked up from whichever input column ShiftRows would have placed
// there. The inverse round instead drives the fused InvSubBytes∘InvMixColumns
// table (TD, see tdtable.go) with InvShiftRows' column selection baked into
// which argument feeds which rotation.

// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package botan

// aesMixedColumn computes one output column of ShiftRows+MixColumns fused
// together, given the four (already ShiftRows-permuted by argument order)
// input columns for that output.
func aesMixedColumn(v0, v1, v2, v3 uint32) uint32 {
	s := makeWord(getByte(0, v0), getByte(1, v1), getByte(2, v2), getByte(3, v3))

	xtimeS := xtimeWord(s)
	xtime3S := xtimeS ^ s

	z0 := makeWord(getByte(0, xtimeS), getByte(0, v0), getByte(0, v0), getByte(0, xtime3S))
	z1 := makeWord(getByte(1, xtime3S), getByte(1, xtimeS), getByte(1, v1), getByte(1, v1))
	z2 := makeWord(getByte(2, v2), getByte(2, xtime3S), getByte(2, xtimeS), getByte(2, v2))
	z3 := makeWord(getByte(3, v3), getByte(3, v3), getByte(3, xtime3S), getByte(3, xtimeS))

	return z0 ^ z1 ^ z2 ^ z3
}

// forwardRound applies SubBytes, ShiftRows and MixColumns to one block,
// then AddRoundKey, using the bitsliced S-box.
func forwardRound(b0, b1, b2, b3, k0, k1, k2, k3 uint32) (uint32, uint32, uint32, uint32) {
	s0, s1, s2, s3 := sboxWordX4(b0, b1, b2, b3)

	t0 := aesMixedColumn(s0, s1, s2, s3)
	t1 := aesMixedColumn(s1, s2, s3, s0)
	t2 := aesMixedColumn(s2, s3, s0, s1)
	t3 := aesMixedColumn(s3, s0, s1, s2)

	return t0 ^ k0, t1 ^ k1, t2 ^ k2, t3 ^ k3
}

// forwardRoundX2 applies forwardRound to two independent blocks at once,
// amortising the bitsliced S-box over both via sboxWordX8. The second block
// reuses the same round keys as the first (batching is ECB-like; any
// mode-level chaining is the caller's responsibility).
func forwardRoundX2(b0, b1, b2, b3, b4, b5, b6, b7, k0, k1, k2, k3 uint32) (uint32, uint32, uint32, uint32, uint32, uint32, uint32, uint32) {
	s0, s1, s2, s3, s4, s5, s6, s7 := sboxWordX8(b0, b1, b2, b3, b4, b5, b6, b7)

	t0 := aesMixedColumn(s0, s1, s2, s3)
	t1 := aesMixedColumn(s1, s2, s3, s0)
	t2 := aesMixedColumn(s2, s3, s0, s1)
	t3 := aesMixedColumn(s3, s0, s1, s2)
	t4 := aesMixedColumn(s4, s5, s6, s7)
	t5 := aesMixedColumn(s5, s6, s7, s4)
	t6 := aesMixedColumn(s6, s7, s4, s5)
	t7 := aesMixedColumn(s7, s4, s5, s6)

	return t0 ^ k0, t1 ^ k1, t2 ^ k2, t3 ^ k3, t4 ^ k0, t5 ^ k1, t6 ^ k2, t7 ^ k3
}

// finalForwardRound applies SubBytes and ShiftRows (no MixColumns), XORs
// the final-round mask ME, and writes the 16 output bytes directly — this
// replaces the source's byte-at-a-time gather that left the ShiftRows step
// as a FIXME; here ShiftRows is the explicit index rule state[(c+r)%4].
func finalForwardRound(out []byte, b0, b1, b2, b3 uint32, me *[16]byte) {
	s0, s1, s2, s3 := sboxWordX4(b0, b1, b2, b3)
	state := [4]uint32{s0, s1, s2, s3}

	for c := 0; c != 4; c++ {
		for r := 0; r != 4; r++ {
			out[r+4*c] = getByte(uint(r), state[(c+r)%4]) ^ me[r+4*c]
		}
	}
}

// finalForwardRoundX2 is finalForwardRound applied to two blocks sharing a
// single bitsliced S-box call.
func finalForwardRoundX2(out []byte, b0, b1, b2, b3, b4, b5, b6, b7 uint32, me *[16]byte) {
	s0, s1, s2, s3, s4, s5, s6, s7 := sboxWordX8(b0, b1, b2, b3, b4, b5, b6, b7)

	state0 := [4]uint32{s0, s1, s2, s3}
	state1 := [4]uint32{s4, s5, s6, s7}

	for c := 0; c != 4; c++ {
		for r := 0; r != 4; r++ {
			out[r+4*c] = getByte(uint(r), state0[(c+r)%4]) ^ me[r+4*c]
			out[16+r+4*c] = getByte(uint(r), state1[(c+r)%4]) ^ me[r+4*c]
		}
	}
}

// aesInvRound computes one InvShiftRows+InvSubBytes+InvMixColumns+
// AddRoundKey output column via the fused T-table, given the InvShiftRows
// source column order (v0..v3) for this output column.
func aesInvRound(td *[256]uint32, k, v0, v1, v2, v3 uint32) uint32 {
	return k ^
		td[getByte(0, v0)] ^
		rotr8(td[getByte(1, v1)]) ^
		rotr16(td[getByte(2, v2)]) ^
		rotr24(td[getByte(3, v3)])
}

// inverseRound applies one T-table inverse round to a block. The caller
// passes the state's four columns; the InvShiftRows permutation is realised
// by the fixed argument order below.
func inverseRound(td *[256]uint32, b0, b1, b2, b3, k0, k1, k2, k3 uint32) (uint32, uint32, uint32, uint32) {
	t0 := aesInvRound(td, k0, b0, b3, b2, b1)
	t1 := aesInvRound(td, k1, b1, b0, b3, b2)
	t2 := aesInvRound(td, k2, b2, b1, b0, b3)
	t3 := aesInvRound(td, k3, b3, b2, b1, b0)
	return t0, t1, t2, t3
}

// finalInverseRound applies InvShiftRows and InvSubBytes directly through
// SD (no T-table, no MixColumns), XORs MD, and writes the 16 output bytes.
func finalInverseRound(out []byte, b0, b1, b2, b3 uint32, md *[16]byte) {
	state := [4]uint32{b0, b1, b2, b3}
	srcCols := [4][4]int{{0, 3, 2, 1}, {1, 0, 3, 2}, {2, 1, 0, 3}, {3, 2, 1, 0}}

	for c := 0; c != 4; c++ {
		for r := 0; r != 4; r++ {
			out[r+4*c] = SD[getByte(uint(r), state[srcCols[c][r]])] ^ md[r+4*c]
		}
	}
}
