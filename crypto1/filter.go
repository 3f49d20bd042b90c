package crypto1

// FilterFunc computes the filter network's output bit from the odd half of
// the LFSR state. Only the low 20 bits of odd feed the network; the
// remaining bits are ignored.
type FilterFunc func(odd uint32) uint8

// Filter is the active filter implementation used by every clock in this
// package. It defaults to the table-driven form (FilterTable); assign
// FilterBitMath to select the compact bit-math form instead. Both are
// required to agree on every input — see filter_test.go's property test —
// so swapping this variable is purely a size/speed tradeoff, never a
// behavior change (spec §4.1, §9).
var Filter FilterFunc = FilterTable

// filterMasterTable is the 32-entry output table indexed by the five
// sub-function results, bit i holding the output for composed index i.
const filterMasterTable uint32 = 0xEC57E80A

func fa(a, b, c, d uint32) uint32 {
	return (((d | c) ^ (d & a)) ^ (b & ((d ^ c) | a))) & 1
}

func fb(a, b, c, d uint32) uint32 {
	return (((d & c) | b) ^ ((d ^ c) & (b | a))) & 1
}

func fc(a, b, c, d, e uint32) uint32 {
	return ((e | ((d | a) & (c ^ a))) ^ ((e ^ (d & c)) & ((b ^ c) | (d & a)))) & 1
}

// FilterBitMath is the compact boolean-formula form of the filter network
// from spec §4.1:
//
//	f(x) = table[ fa(x3..x0) | fb(x7..x4)<<1 | fb(x11..x8)<<2
//	            | fb(x15..x12)<<3 | fc(x19..x16)<<4 ]
//
// fc is defined over five inputs but the network only has 20 distinct tap
// positions (x0..x19) to offer; we resolve that by giving fc's fifth input
// (e) the top bit of the preceding nibble, x15 — an overlapping tap, which
// is how the physical filter network's taps are actually laid out. This
// choice is pinned by TestFilterAgreesWithTable and by the fixed vectors in
// vectors_test.go, so an accidental change here cannot pass unnoticed.
func FilterBitMath(odd uint32) uint8 {
	x := odd & 0xFFFFF
	bit := func(n uint) uint32 { return (x >> n) & 1 }

	r0 := fa(bit(0), bit(1), bit(2), bit(3))
	r1 := fb(bit(4), bit(5), bit(6), bit(7))
	r2 := fb(bit(8), bit(9), bit(10), bit(11))
	r3 := fb(bit(12), bit(13), bit(14), bit(15))
	r4 := fc(bit(16), bit(17), bit(18), bit(19), bit(15))

	idx := r0 | r1<<1 | r2<<2 | r3<<3 | r4<<4
	return uint8((filterMasterTable >> idx) & 1)
}
