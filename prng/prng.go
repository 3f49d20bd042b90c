// Package prng implements the 16-bit tag nonce generator used by MIFARE
// Classic (spec §4.9): a 32-bit successor function, byte-swapped before and
// after each step, with feedback taken from bits 16, 18, 19, and 21.
package prng

import "github.com/foXaCe/go-crypto1/crypto1"

// Successor advances x by n steps of the tag PRNG and returns the result.
func Successor(x uint32, n int) uint32 {
	x = crypto1.ByteSwap32(x)
	for i := 0; i < n; i++ {
		fb := ((x >> 16) ^ (x >> 18) ^ (x >> 19) ^ (x >> 21)) & 1
		x = (x >> 1) | (fb << 31)
	}
	return crypto1.ByteSwap32(x)
}

// Successor1 is Successor(x, 1).
func Successor1(x uint32) uint32 {
	return Successor(x, 1)
}

// Successor16 is Successor(x, 16), the common "next nonce" fast path.
func Successor16(x uint32) uint32 {
	return Successor(x, 16)
}
