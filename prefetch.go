// prefetch.go - Cache-timing preamble for the T-table decrypt path.
//
// The T-table decrypt path is fast but, unlike the bitsliced encrypt path,
// its timing depends on which cache lines of TD and SD get touched by
// secret-dependent indices. touchTables reads every cache line of both
// tables up front, unconditionally, so that by the time the first real
// (secret-dependent) lookup happens every line is already resident — the
// access pattern from then on can't be distinguished by timing alone.
//
// cacheLineSize is a conservative guess; the preamble only needs to touch
// at least one word per line; touching more often than necessary costs
// nothing but a few extra loads.

// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package botan

const cacheLineSize = 64

// touchTables reads TD and SD once per cache line and folds the results
// into a value that is provably zero but not something the compiler can
// prove is zero, so it cannot eliminate the reads as dead code. It returns
// that value, which callers XOR into the first loaded state word.
func touchTables() uint32 {
	td := TD()

	var z uint32
	for i := 0; i < 256; i += cacheLineSize / 4 {
		z |= td[i]
	}
	for i := 0; i < 256; i += cacheLineSize {
		z |= uint32(SD[i])
	}

	// td[99] is always the zero word (SD[99] == 0, since SE[0] == 0x63 ==
	// 99), so this AND leaves the result exactly 0 at runtime while giving
	// the compiler no static proof of that, which is what keeps the reads
	// above from being optimised away.
	return z & td[99]
}
