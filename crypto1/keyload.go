package crypto1

// keyBit returns bit n (0=LSB of the 48-bit key, 47=MSB) of key, where key
// is the standard 6-byte MIFARE key representation: key[0] holds bits
// 47..40, key[5] holds bits 7..0.
func keyBit(key [6]byte, n int) uint32 {
	byteIdx := 5 - n/8
	bitIdx := uint(n % 8)
	return uint32((key[byteIdx] >> bitIdx) & 1)
}

// LoadKey zeroes both halves of s and loads key into it: key bit 2i becomes
// Even bit i, key bit 2i+1 becomes Odd bit i (spec §4.4). This is the exact
// inverse of Uint48's interleaving, so GetLFSR(init(S,K)) == K holds for
// every key (spec §8 item 3; pinned in TestLoadKeyRoundTripsThroughGetLFSR).
func LoadKey(s *State, key [6]byte) {
	var odd, even uint32
	for i := uint(0); i < 24; i++ {
		even |= keyBit(key, int(2*i)) << i
		odd |= keyBit(key, int(2*i+1)) << i
	}
	s.Odd, s.Even = odd, even
}
