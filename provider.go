// provider.go - Runtime CPU feature probe and provider/parallelism
// reporting.
//
// AES128/192/256 expose Provider() and Parallelism() so a caller building
// a higher-level mode can tell which backend it got and how many blocks to
// hand it per call, without the cipher itself branching its own block path
// on the result. This build links only the bitsliced "base" path described
// by this package; the feature probe below still runs, though nothing reads
// its results, so the AES-NI/ARMv8/POWER8 hardware backends the
// provider-string contract names have a real detection point to slot into
// if one is added later — their actual implementations are out of scope
// here.

// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package botan

import "golang.org/x/sys/cpu"

var (
	haveAESNI  = cpu.X86.HasAES && cpu.X86.HasSSE41
	haveARMv8  = cpu.ARM64.HasAES
	havePOWER8 = cpu.PPC64.IsPOWER8
)

// provider reports which implementation would serve a cipher instance.
// No hardware backend is linked into this build, so it always reports the
// bitsliced/T-table "base" path regardless of what the CPU supports.
func provider() string {
	return "base"
}

// parallelism reports the advisory number of blocks to pass per call to
// the active provider. The base provider reports 4; its bitsliced encrypt
// path S-boxes two blocks per circuit invocation.
func parallelism() int {
	return 4
}
