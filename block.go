// block.go - Multi-block encrypt/decrypt pipelines built from the round
// transforms in round.go, batching two blocks at a time on the forward
// path to amortise the bitsliced S-box's fixed circuit cost.

// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package botan

// encryptBlocks encrypts n consecutive 16-byte blocks from in into out
// using the given key schedule. in and out must be exactly 16*n bytes and
// must not partially overlap.
func encryptBlocks(ks *keySchedule, in, out []byte) {
	n := len(in) / BlockSize
	ek := ks.ek

	i := 0
	for ; n-i >= 2; i += 2 {
		off0 := i * BlockSize
		off1 := (i + 1) * BlockSize

		b0 := loadWordBE(in[off0:]) ^ ek[0]
		b1 := loadWordBE(in[off0+4:]) ^ ek[1]
		b2 := loadWordBE(in[off0+8:]) ^ ek[2]
		b3 := loadWordBE(in[off0+12:]) ^ ek[3]
		b4 := loadWordBE(in[off1:]) ^ ek[0]
		b5 := loadWordBE(in[off1+4:]) ^ ek[1]
		b6 := loadWordBE(in[off1+8:]) ^ ek[2]
		b7 := loadWordBE(in[off1+12:]) ^ ek[3]

		b0, b1, b2, b3, b4, b5, b6, b7 = forwardRoundX2(b0, b1, b2, b3, b4, b5, b6, b7, ek[4], ek[5], ek[6], ek[7])

		for r := 8; r < len(ek); r += 8 {
			b0, b1, b2, b3, b4, b5, b6, b7 = forwardRoundX2(b0, b1, b2, b3, b4, b5, b6, b7, ek[r], ek[r+1], ek[r+2], ek[r+3])
			b0, b1, b2, b3, b4, b5, b6, b7 = forwardRoundX2(b0, b1, b2, b3, b4, b5, b6, b7, ek[r+4], ek[r+5], ek[r+6], ek[r+7])
		}

		finalForwardRoundX2(out[off0:], b0, b1, b2, b3, b4, b5, b6, b7, &ks.me)
	}

	for ; i < n; i++ {
		off := i * BlockSize

		b0 := loadWordBE(in[off:]) ^ ek[0]
		b1 := loadWordBE(in[off+4:]) ^ ek[1]
		b2 := loadWordBE(in[off+8:]) ^ ek[2]
		b3 := loadWordBE(in[off+12:]) ^ ek[3]

		b0, b1, b2, b3 = forwardRound(b0, b1, b2, b3, ek[4], ek[5], ek[6], ek[7])

		for r := 8; r < len(ek); r += 8 {
			b0, b1, b2, b3 = forwardRound(b0, b1, b2, b3, ek[r], ek[r+1], ek[r+2], ek[r+3])
			b0, b1, b2, b3 = forwardRound(b0, b1, b2, b3, ek[r+4], ek[r+5], ek[r+6], ek[r+7])
		}

		finalForwardRound(out[off:], b0, b1, b2, b3, &ks.me)
	}
}

// decryptBlocks decrypts n consecutive 16-byte blocks from in into out
// using the given key schedule. in and out must be exactly 16*n bytes and
// must not partially overlap. Every call runs the cache-timing preamble
// before the first secret-dependent table access, even for a single block.
func decryptBlocks(ks *keySchedule, in, out []byte) {
	n := len(in) / BlockSize
	dk := ks.dk
	td := TD()

	z := touchTables()

	for i := 0; i != n; i++ {
		off := i * BlockSize

		t0 := loadWordBE(in[off:]) ^ dk[0]
		t1 := loadWordBE(in[off+4:]) ^ dk[1]
		t2 := loadWordBE(in[off+8:]) ^ dk[2]
		t3 := loadWordBE(in[off+12:]) ^ dk[3]

		t0 ^= z

		b0, b1, b2, b3 := inverseRound(td, t0, t1, t2, t3, dk[4], dk[5], dk[6], dk[7])

		for r := 8; r < len(dk); r += 8 {
			t0, t1, t2, t3 = inverseRound(td, b0, b1, b2, b3, dk[r], dk[r+1], dk[r+2], dk[r+3])
			b0, b1, b2, b3 = inverseRound(td, t0, t1, t2, t3, dk[r+4], dk[r+5], dk[r+6], dk[r+7])
		}

		finalInverseRound(out[off:], b0, b1, b2, b3, &ks.md)
	}
}
