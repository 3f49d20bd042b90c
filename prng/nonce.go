package prng

import "github.com/foXaCe/go-crypto1/crypto1"

// ValidNonceIterator lazily enumerates the 16-bit seeds consistent with a
// captured parity-leak pattern (spec §4.10). It replaces the reference
// FOREACH_VALID_NONCE macro's nested-loop-with-break shape (flagged in spec
// §9 as a redesign target) with a pull-based, restartable sequence: callers
// range over it with repeated Next() calls and can stop consuming at any
// point without unwinding anything.
type ValidNonceIterator struct {
	filter uint32
	width  int
	next   uint32
	done   bool
}

// NewValidNonceIterator returns an iterator over the 16-bit seeds M for
// which every bit j in [0, width) of filter equals
// EvenParity32(M' & 0xFF01), where M' is chained from bit to bit: starting
// from M, each bit advances the previous value by 8 successor steps, except
// the last bit, which advances it by 48.
func NewValidNonceIterator(filter uint32, width int) *ValidNonceIterator {
	return &ValidNonceIterator{filter: filter, width: width}
}

// Reset restarts the iterator from the first candidate seed.
func (it *ValidNonceIterator) Reset() {
	it.next = 0
	it.done = false
}

func (it *ValidNonceIterator) matches(seed uint32) bool {
	m := seed
	for j := 0; j < it.width; j++ {
		n := 8
		if j == it.width-1 {
			n = 48
		}
		m = Successor(m, n)
		bit := crypto1.EvenParity32(m & 0xFF01)
		want := (it.filter >> uint(j)) & 1
		if bit != want {
			return false
		}
	}
	return true
}

// Next returns the next valid seed and true, or (0, false) once the 16-bit
// seed space is exhausted.
func (it *ValidNonceIterator) Next() (uint32, bool) {
	if it.done {
		return 0, false
	}
	for seed := it.next; seed <= 0xFFFF; seed++ {
		if it.matches(seed) {
			if seed == 0xFFFF {
				it.done = true
			} else {
				it.next = seed + 1
			}
			return seed, true
		}
		if seed == 0xFFFF {
			break
		}
	}
	it.done = true
	return 0, false
}
