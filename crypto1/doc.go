// Package crypto1 implements the CRYPTO1 stream cipher used by MIFARE
// Classic for tag authentication and traffic encryption.
//
// The cipher's entire live state is a 48-bit LFSR held as two 24-bit
// halves, Odd and Even. Every operation here is a pure function over a
// caller-owned State: there is no global state, no I/O, and no allocation
// beyond the State value itself. Callers sequence operations themselves;
// nothing in this package blocks, retries, or recovers from a bad call —
// contract violations (wrong-length buffers) come back as errors wrapping
// ErrInvalidArgument rather than being silently tolerated.
//
// Framing (ISO-14443A), key-recovery search strategies, and persistent key
// storage are out of scope; this package only implements the cipher
// primitives those layers call into.
package crypto1
