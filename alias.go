// alias.go - Buffer-overlap checking for in-place operation.
//
// EncryptBlocks/DecryptBlocks allow in and out to be the identical slice
// (in-place operation) but not to partially overlap otherwise, since the
// round pipeline reads and writes a given block's bytes interleaved with
// its neighbours. inexactOverlap flags any overlap that isn't a full
// alias, the same distinction crypto/cipher and its subtle helpers draw.

// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package botan

import "unsafe"

func inexactOverlap(x, y []byte) bool {
	if len(x) == 0 || len(y) == 0 {
		return false
	}

	xStart := uintptr(unsafe.Pointer(&x[0]))
	xEnd := xStart + uintptr(len(x))
	yStart := uintptr(unsafe.Pointer(&y[0]))
	yEnd := yStart + uintptr(len(y))

	if xStart == yStart && len(x) == len(y) {
		return false
	}

	return xStart < yEnd && yStart < xEnd
}
