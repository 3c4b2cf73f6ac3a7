// keyschedule.go - AES key expansion: forward round keys (EK/ME) and the
// equivalent-inverse-cipher schedule (DK/MD) for the T-table decrypt path.
//
// Unlike the forward round keys, which are used as-is, the interior
// decryption round keys need InvMixColumns applied so that the T-table
// decrypt path (built around InvSubBytes∘InvMixColumns) can XOR directly
// against its output. The reference implementation gets there by running
// the forward S-box over each word and then multiplying through TD with a
// zero key, relying on the SD lookup inside TD to cancel the SE it just
// applied — a roundabout way to reach "the net effect is InvMixColumns".
// invMixColumnsWord below computes that InvMixColumns directly.

// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package botan

import (
	"errors"
	"runtime"
)

// rcon holds the round constants used by the key schedule, already placed
// in the top byte of a word.
var rcon = [10]uint32{
	0x01000000, 0x02000000, 0x04000000, 0x08000000, 0x10000000,
	0x20000000, 0x40000000, 0x80000000, 0x1B000000, 0x36000000,
}

// ErrInvalidKeyLength is returned by expandKey when the supplied key is not
// 16, 24 or 32 bytes long.
var ErrInvalidKeyLength = errors.New("botan: invalid AES key length")

// invMixColumnsWord applies InvMixColumns to the 4 bytes packed big-endian
// into w.
func invMixColumnsWord(w uint32) uint32 {
	a0 := byte(w >> 24)
	a1 := byte(w >> 16)
	a2 := byte(w >> 8)
	a3 := byte(w)

	b0 := xtime14(a0) ^ xtime11(a1) ^ xtime13(a2) ^ xtime9(a3)
	b1 := xtime9(a0) ^ xtime14(a1) ^ xtime11(a2) ^ xtime13(a3)
	b2 := xtime13(a0) ^ xtime9(a1) ^ xtime14(a2) ^ xtime11(a3)
	b3 := xtime11(a0) ^ xtime13(a1) ^ xtime9(a2) ^ xtime14(a3)

	return makeWord(b0, b1, b2, b3)
}

// keySchedule holds the expanded round keys for one AES key.
type keySchedule struct {
	rounds int
	ek     []uint32
	dk     []uint32
	me     [16]byte
	md     [16]byte
}

// expandKey builds the forward and equivalent-inverse round key schedules
// for a 16, 24 or 32 byte key.
func expandKey(key []byte) (*keySchedule, error) {
	x := len(key) / 4
	if len(key)%4 != 0 || (x != 4 && x != 6 && x != 8) {
		return nil, ErrInvalidKeyLength
	}

	rounds := x + 6
	total := 4 * (rounds + 1)

	// The key-expansion loop below fills xek/xdk one x-word chunk past the
	// last multiple-of-x boundary below total, which can run x-1 words past
	// total itself (e.g. AES-192: x=6, total=52, last chunk writes up to
	// index 53). The reference allocates the same slack
	// (secure_vector<uint32_t> XEK(length + 32)); xek/xdk are trimmed back
	// to total once the schedule is fully built.
	xek := make([]uint32, total+x-1)
	xdk := make([]uint32, total+x-1)

	for i := 0; i != x; i++ {
		xek[i] = loadWordBE(key[4*i:])
	}

	for i := x; i < total; i += x {
		xek[i] = xek[i-x] ^ rcon[(i-x)/x] ^ sboxWord(rotl8(xek[i-1]))

		for j := 1; j != x; j++ {
			xek[i+j] = xek[i+j-x]

			if x == 8 && j == 4 {
				xek[i+j] ^= sboxWord(xek[i+j-1])
			} else {
				xek[i+j] ^= xek[i+j-1]
			}
		}
	}

	xek = xek[:total]
	xdk = xdk[:total]

	for i := 0; i != total; i += 4 {
		xdk[i] = xek[4*rounds-i]
		xdk[i+1] = xek[4*rounds-i+1]
		xdk[i+2] = xek[4*rounds-i+2]
		xdk[i+3] = xek[4*rounds-i+3]
	}

	for i := 4; i != total-4; i++ {
		xdk[i] = invMixColumnsWord(xdk[i])
	}

	ks := &keySchedule{rounds: rounds}

	for i := 0; i != 4; i++ {
		storeWordBE(xek[i+4*rounds], ks.me[4*i:])
		storeWordBE(xek[i], ks.md[4*i:])
	}

	ks.ek = xek[:total-4]
	ks.dk = xdk[:total-4]

	return ks, nil
}

// clear zeroes the round key material. runtime.KeepAlive after each loop
// keeps the compiler from proving the store dead and eliding it.
func (ks *keySchedule) clear() {
	for i := range ks.ek {
		ks.ek[i] = 0
	}
	runtime.KeepAlive(ks.ek)

	for i := range ks.dk {
		ks.dk[i] = 0
	}
	runtime.KeepAlive(ks.dk)

	for i := range ks.me {
		ks.me[i] = 0
	}
	runtime.KeepAlive(ks.me)

	for i := range ks.md {
		ks.md[i] = 0
	}
	runtime.KeepAlive(ks.md)
}
