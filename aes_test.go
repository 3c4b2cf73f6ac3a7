// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package botan

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func unhex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func TestFIPS197Vectors(t *testing.T) {
	for _, tc := range []struct {
		name       string
		key        []byte
		plaintext  []byte
		ciphertext []byte
	}{
		{
			name:       "Appendix B",
			key:        unhex("2b7e151628aed2a6abf7158809cf4f3c"),
			plaintext:  unhex("3243f6a8885a308d313198a2e0370734"),
			ciphertext: unhex("3925841d02dc09fbdc118597196a0b32"),
		},
		{
			name:       "Appendix C.1 AES-128",
			key:        unhex("000102030405060708090a0b0c0d0e0f"),
			plaintext:  unhex("00112233445566778899aabbccddeeff"),
			ciphertext: unhex("69c4e0d86a7b0430d8cdb78070b4c55a"),
		},
		{
			name:       "Appendix C.2 AES-192",
			key:        unhex("000102030405060708090a0b0c0d0e0f1011121314151617"),
			plaintext:  unhex("00112233445566778899aabbccddeeff"),
			ciphertext: unhex("dda97ca4864cdfe06eaf70a0ec0d7191"),
		},
		{
			name:       "Appendix C.3 AES-256",
			key:        unhex("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"),
			plaintext:  unhex("00112233445566778899aabbccddeeff"),
			ciphertext: unhex("8ea2b7ca516745bfeafc49904b496089"),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ks, err := expandKey(tc.key)
			if err != nil {
				t.Fatalf("expandKey: %v", err)
			}

			got := make([]byte, BlockSize)
			encryptBlocks(ks, tc.plaintext, got)
			if !bytes.Equal(got, tc.ciphertext) {
				t.Fatalf("encrypt: got %x, want %x", got, tc.ciphertext)
			}

			back := make([]byte, BlockSize)
			decryptBlocks(ks, got, back)
			if !bytes.Equal(back, tc.plaintext) {
				t.Fatalf("decrypt: got %x, want %x", back, tc.plaintext)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	keys := [][]byte{
		bytes.Repeat([]byte{0x42}, KeySize128),
		bytes.Repeat([]byte{0x24}, KeySize192),
		bytes.Repeat([]byte{0x99}, KeySize256),
	}

	for _, key := range keys {
		ks, err := expandKey(key)
		if err != nil {
			t.Fatalf("expandKey(%d): %v", len(key), err)
		}

		for n := 1; n <= 5; n++ {
			plaintext := make([]byte, BlockSize*n)
			for i := range plaintext {
				plaintext[i] = byte(i*7 + n)
			}

			ciphertext := make([]byte, len(plaintext))
			encryptBlocks(ks, plaintext, ciphertext)

			got := make([]byte, len(plaintext))
			decryptBlocks(ks, ciphertext, got)

			if !bytes.Equal(got, plaintext) {
				t.Fatalf("key len %d, %d blocks: round-trip mismatch", len(key), n)
			}
		}
	}
}

func TestSboxWordEquivalence(t *testing.T) {
	inputs := []uint32{
		0x00000000, 0xffffffff, 0x01234567, 0x89abcdef,
		0xdeadbeef, 0x13371337, 0xa5a5a5a5, 0x5a5a5a5a,
	}

	for _, x := range inputs {
		got := sboxWord(x)
		want := uint32(SE[byte(x>>24)])<<24 |
			uint32(SE[byte(x>>16)])<<16 |
			uint32(SE[byte(x>>8)])<<8 |
			uint32(SE[byte(x)])

		if got != want {
			t.Errorf("sboxWord(%#08x) = %#08x, want %#08x", x, got, want)
		}
	}
}

func TestSboxBitslicedParity(t *testing.T) {
	words := []uint32{
		0x00000000, 0xffffffff, 0x01234567, 0x89abcdef,
		0xdeadbeef, 0x13371337, 0xa5a5a5a5, 0x5a5a5a5a,
	}

	for i := 0; i+4 <= len(words); i += 4 {
		w0, w1, w2, w3 := words[i], words[i+1], words[i+2], words[i+3]
		g0, g1, g2, g3 := sboxWordX4(w0, w1, w2, w3)

		if g0 != sboxWord(w0) || g1 != sboxWord(w1) || g2 != sboxWord(w2) || g3 != sboxWord(w3) {
			t.Errorf("sboxWordX4(%#08x,%#08x,%#08x,%#08x) = %#08x,%#08x,%#08x,%#08x, want %#08x,%#08x,%#08x,%#08x",
				w0, w1, w2, w3, g0, g1, g2, g3, sboxWord(w0), sboxWord(w1), sboxWord(w2), sboxWord(w3))
		}
	}

	h0, h1, h2, h3, h4, h5, h6, h7 := sboxWordX8(words[0], words[1], words[2], words[3], words[4], words[5], words[6], words[7])
	want := [8]uint32{
		sboxWord(words[0]), sboxWord(words[1]), sboxWord(words[2]), sboxWord(words[3]),
		sboxWord(words[4]), sboxWord(words[5]), sboxWord(words[6]), sboxWord(words[7]),
	}
	got := [8]uint32{h0, h1, h2, h3, h4, h5, h6, h7}
	if got != want {
		t.Errorf("sboxWordX8(%#08x) = %#08x, want %#08x", words, got, want)
	}
}

func TestInPlace(t *testing.T) {
	key := bytes.Repeat([]byte{0x11}, KeySize128)
	ks, err := expandKey(key)
	if err != nil {
		t.Fatal(err)
	}

	plaintext := make([]byte, BlockSize*3)
	for i := range plaintext {
		plaintext[i] = byte(i)
	}

	separate := make([]byte, len(plaintext))
	encryptBlocks(ks, plaintext, separate)

	inplace := make([]byte, len(plaintext))
	copy(inplace, plaintext)
	encryptBlocks(ks, inplace, inplace)

	if !bytes.Equal(separate, inplace) {
		t.Fatalf("in-place encrypt diverged from out-of-place: %x vs %x", inplace, separate)
	}
}

func TestBlockIndependence(t *testing.T) {
	key := bytes.Repeat([]byte{0x77}, KeySize256)
	ks, err := expandKey(key)
	if err != nil {
		t.Fatal(err)
	}

	p := bytes.Repeat([]byte{0xaa}, BlockSize)
	q := bytes.Repeat([]byte{0xbb}, BlockSize)

	joint := append(append([]byte{}, p...), q...)
	jointOut := make([]byte, len(joint))
	encryptBlocks(ks, joint, jointOut)

	pOut := make([]byte, BlockSize)
	qOut := make([]byte, BlockSize)
	encryptBlocks(ks, p, pOut)
	encryptBlocks(ks, q, qOut)

	if !bytes.Equal(jointOut[:BlockSize], pOut) || !bytes.Equal(jointOut[BlockSize:], qOut) {
		t.Fatalf("encrypting p||q differs from encrypt(p)||encrypt(q)")
	}
}

func TestInvMixColumnsInvariant(t *testing.T) {
	key := bytes.Repeat([]byte{0x5c}, KeySize192)
	rounds := len(key)/4 + 6

	ks, err := expandKey(key)
	if err != nil {
		t.Fatal(err)
	}

	// dk[i] for interior index i is InvMixColumns applied to word i%4 of
	// the encryption round key quartet starting at ek[4*rounds-4*(i/4)]
	// (quartets are reversed, words within a quartet keep their order);
	// dk[0..3] (the last forward round key, reused verbatim as the decrypt
	// whitening key) is excluded.
	for i := 4; i < len(ks.dk); i++ {
		ekIdx := 4*rounds - 4*(i/4) + i%4
		want := invMixColumnsWord(ks.ek[ekIdx])
		got := ks.dk[i]
		if want != got {
			t.Fatalf("InvMixColumns invariant broke at dk index %d (ek index %d)", i, ekIdx)
		}
	}
}

func TestInvalidKeyLength(t *testing.T) {
	for _, n := range []int{15, 17, 20, 25, 31, 33} {
		if _, err := expandKey(make([]byte, n)); err != ErrInvalidKeyLength {
			t.Errorf("expandKey(%d bytes): got %v, want ErrInvalidKeyLength", n, err)
		}
	}

	var c AES128
	for _, n := range []int{15, 17, 32} {
		if err := c.SetKey(make([]byte, n)); err == nil {
			t.Errorf("AES128.SetKey(%d bytes): expected error", n)
		}
	}
}

func TestClearWipesState(t *testing.T) {
	var c AES128
	if err := c.SetKey(bytes.Repeat([]byte{1}, KeySize128)); err != nil {
		t.Fatal(err)
	}

	buf := make([]byte, BlockSize)
	if err := c.EncryptBlocks(buf, buf); err != nil {
		t.Fatalf("encrypt before clear: %v", err)
	}

	c.Clear()

	if err := c.EncryptBlocks(buf, buf); err != ErrKeyNotSet {
		t.Fatalf("encrypt after clear: got %v, want ErrKeyNotSet", err)
	}
}

func TestPrefetchTouchesEveryCacheLine(t *testing.T) {
	// td[99] must be exactly zero for touchTables' final mask to leave the
	// decrypt path's state untouched; this also checks that the stride below
	// (one word per cacheLineSize bytes) evenly divides the 256-entry table.
	td := TD()
	if td[99] != 0 {
		t.Fatalf("td[99] = %#x, want 0", td[99])
	}

	stride := cacheLineSize / 4
	if 256%stride != 0 {
		t.Fatalf("cache line stride %d does not evenly divide TD's 256 entries", stride)
	}

	if z := touchTables(); z != 0 {
		t.Fatalf("touchTables() = %#x, want 0", z)
	}
}
