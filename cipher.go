// cipher.go - Keyed AES block cipher objects: AES128, AES192, AES256.
//
// The three key sizes are distinct exported types so callers get a
// compile-time record of which variant they hold, but all three share the
// one generic keySchedule/encryptBlocks/decryptBlocks core — the source's
// three near-identical AES_128/AES_192/AES_256 classes collapse into one
// implementation parameterised by key length.

// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package botan

import (
	"errors"
	"strconv"
)

// ErrKeyNotSet is returned by EncryptBlocks/DecryptBlocks when called
// before a successful SetKey, or after Clear.
var ErrKeyNotSet = errors.New("botan: key not set")

// KeySizeError reports that a key passed to SetKey had an invalid length.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "botan: invalid AES key size " + strconv.Itoa(int(k))
}

// aesCipher is the shared implementation behind AES128, AES192 and AES256.
type aesCipher struct {
	ks *keySchedule
}

func (c *aesCipher) setKey(key []byte, want int) error {
	if len(key) != want {
		return KeySizeError(len(key))
	}
	ks, err := expandKey(key)
	if err != nil {
		return err
	}
	c.ks = ks
	return nil
}

func (c *aesCipher) clear() {
	if c.ks != nil {
		c.ks.clear()
		c.ks = nil
	}
}

func (c *aesCipher) checkBuffers(in, out []byte) error {
	if c.ks == nil {
		return ErrKeyNotSet
	}
	if len(in) != len(out) {
		panic("botan: input and output buffers must be the same length")
	}
	if len(in)%BlockSize != 0 {
		panic("botan: buffer length is not a multiple of the AES block size")
	}
	if inexactOverlap(in, out) {
		panic("botan: input and output buffers overlap partially")
	}
	return nil
}

func (c *aesCipher) encryptBlocks(in, out []byte) error {
	if err := c.checkBuffers(in, out); err != nil {
		return err
	}
	encryptBlocks(c.ks, in, out)
	return nil
}

func (c *aesCipher) decryptBlocks(in, out []byte) error {
	if err := c.checkBuffers(in, out); err != nil {
		return err
	}
	decryptBlocks(c.ks, in, out)
	return nil
}

// AES128 is the AES block cipher keyed with a 16-byte key.
type AES128 struct{ aesCipher }

// SetKey installs a 16-byte key, replacing any key set previously.
func (c *AES128) SetKey(key []byte) error { return c.setKey(key, KeySize128) }

// EncryptBlocks encrypts len(in)/BlockSize blocks from in into out.
func (c *AES128) EncryptBlocks(in, out []byte) error { return c.encryptBlocks(in, out) }

// DecryptBlocks decrypts len(in)/BlockSize blocks from in into out.
func (c *AES128) DecryptBlocks(in, out []byte) error { return c.decryptBlocks(in, out) }

// Clear zeroes the round-key material and forgets the key.
func (c *AES128) Clear() { c.clear() }

// Provider reports which implementation backs this cipher instance.
func (c *AES128) Provider() string { return provider() }

// Parallelism returns an advisory hint to higher-level modes of how many
// blocks to pass per call; the base provider reports 4.
func (c *AES128) Parallelism() int { return parallelism() }

// AES192 is the AES block cipher keyed with a 24-byte key.
type AES192 struct{ aesCipher }

func (c *AES192) SetKey(key []byte) error            { return c.setKey(key, KeySize192) }
func (c *AES192) EncryptBlocks(in, out []byte) error { return c.encryptBlocks(in, out) }
func (c *AES192) DecryptBlocks(in, out []byte) error { return c.decryptBlocks(in, out) }
func (c *AES192) Clear()                             { c.clear() }
func (c *AES192) Provider() string                   { return provider() }
func (c *AES192) Parallelism() int                   { return parallelism() }

// AES256 is the AES block cipher keyed with a 32-byte key.
type AES256 struct{ aesCipher }

func (c *AES256) SetKey(key []byte) error            { return c.setKey(key, KeySize256) }
func (c *AES256) EncryptBlocks(in, out []byte) error { return c.encryptBlocks(in, out) }
func (c *AES256) DecryptBlocks(in, out []byte) error { return c.decryptBlocks(in, out) }
func (c *AES256) Clear()                             { c.clear() }
func (c *AES256) Provider() string                   { return provider() }
func (c *AES256) Parallelism() int                   { return parallelism() }
