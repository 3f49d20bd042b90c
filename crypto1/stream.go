package crypto1

import (
	"fmt"

	"github.com/foXaCe/go-crypto1/internal/subtle"
)

// KeystreamByte generates 8 keystream bits with no input feedback, bit i in
// position i.
func KeystreamByte(s *State) uint8 {
	return s.ClockByte(0, false)
}

// KeystreamNibble generates 4 keystream bits with no input feedback.
func KeystreamNibble(s *State) uint8 {
	return s.ClockNibble(0, false)
}

// XorBytes XORs a fresh keystream byte into each of buf's n bytes in
// place, advancing s by 8n positions.
func XorBytes(s *State, buf []byte) {
	for i := range buf {
		buf[i] ^= KeystreamByte(s)
	}
}

// XorBytesWithParity behaves as XorBytes but also fills par with each
// byte's parity bit, encrypted the way MIFARE transmits it: the odd parity
// of the plaintext byte XORed with the filter output of the state as it
// stands after that byte's 8 clocks — not a 9th clocked bit, and not
// derived from the ciphertext byte (spec §4.8).
//
// len(par) must be at least len(buf); buf and par must not overlap.
func XorBytesWithParity(s *State, buf, par []byte) error {
	if len(par) < len(buf) {
		return invalidArgument(fmt.Sprintf("parity buffer too short: have %d, need %d", len(par), len(buf)))
	}
	if subtle.AnyOverlap(buf, par) {
		return invalidArgument("buf and par must not overlap")
	}
	for i, plain := range buf {
		var ks uint8
		for bit := uint(0); bit < 8; bit++ {
			ks |= Filter(s.Odd) << bit
			s.ClockBit(0, false)
		}
		pout := Filter(s.Odd)
		par[i] = OddParity8(plain) ^ pout
		buf[i] = plain ^ ks
	}
	return nil
}

// XorBytesWithParityFeedback behaves as XorBytesWithParity but additionally
// feeds each bit of buf's original (pre-XOR) contents back into the LFSR,
// the "has-in" feedback variant (spec §4.8).
//
// len(par) must be at least len(buf); buf and par must not overlap.
func XorBytesWithParityFeedback(s *State, buf, par []byte) error {
	if len(par) < len(buf) {
		return invalidArgument(fmt.Sprintf("parity buffer too short: have %d, need %d", len(par), len(buf)))
	}
	if subtle.AnyOverlap(buf, par) {
		return invalidArgument("buf and par must not overlap")
	}
	for i, plain := range buf {
		var ks uint8
		for bit := uint(0); bit < 8; bit++ {
			ks |= Filter(s.Odd) << bit
			b := (plain >> bit) & 1
			s.ClockBit(b, false)
		}
		pout := Filter(s.Odd)
		par[i] = OddParity8(plain) ^ pout
		buf[i] = plain ^ ks
	}
	return nil
}

// EncryptWithParityBits XORs keystream into bitCount bits of buf (MIFARE's
// bit-addressed wire format), treating every 9th bit (positions 8, 17,
// 26, ...) as a parity bit: that bit is still XORed with keystream, but the
// LFSR is not clocked for it (spec §4.8).
func EncryptWithParityBits(s *State, buf []byte, bitCount int) {
	for i := 0; i < bitCount; i++ {
		ks := Filter(s.Odd)
		bit := GetBitLSB(buf, i) ^ ks
		SetBitLSB(buf, i, bit)
		if (i+1)%9 != 0 {
			s.ClockBit(0, false)
		}
	}
}

// ReaderAuthWithParity processes the 72-bit reader-authentication exchange
// (spec §4.8): for the first 36 bits the pre-XOR bit of buf is fed back
// into the LFSR (absorbing the reader's answer), for the remaining 36 bits
// no input is fed, and on every 9th bit (the parity positions) the LFSR is
// not clocked at all even though keystream is still XORed into that bit.
func ReaderAuthWithParity(s *State, buf []byte) {
	const totalBits = 72
	for i := 0; i < totalBits; i++ {
		ks := Filter(s.Odd)
		pre := GetBitLSB(buf, i)
		SetBitLSB(buf, i, pre^ks)

		if (i+1)%9 == 0 {
			continue
		}
		var in uint8
		if i < 36 {
			in = pre
		}
		s.ClockBit(in, false)
	}
}
