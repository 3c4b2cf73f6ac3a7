// aesbase.go - Package-level constants and documentation.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package botan implements the AES block cipher (FIPS-197) entirely in
// software, for use as the fallback path of a cryptographic library when no
// hardware AES instructions are available.
//
// The forward (encrypt) direction is built on a constant-time bitsliced
// S-box: a fixed Boolean circuit with no data-dependent memory access, so
// encryption has no secret-dependent branch or address. The inverse
// (decrypt) direction uses a classic T-table construction, which is fast
// but not naturally constant-time; a cache-line prefetch preamble touches
// every line of the lookup tables before the first secret-dependent index
// to flatten cache-timing side channels.
//
// This package is a raw 16-byte block primitive: it has no mode of
// operation (no CBC, CTR, GCM), no padding, and no key derivation. Callers
// drive it through a mode implemented elsewhere.
package botan

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// Round counts for the three standard AES key sizes.
const (
	rounds128 = 10
	rounds192 = 12
	rounds256 = 14
)

// Key sizes in bytes for the three standard AES variants.
const (
	KeySize128 = 16
	KeySize192 = 24
	KeySize256 = 32
)
