// Package legacy wraps the stateless crypto1 package functions around a
// single process-wide State, for the tag-emulation fast path that spec §3
// and §9 describe as needing binary-compatible global-state semantics.
//
// Every function here delegates to the stateless crypto1 package, so there
// is exactly one algorithm implementation; this package only supplies the
// storage. Per spec §5, concurrent use of this package across goroutines is
// undefined — callers (the RFID framing layer that owns the radio) must
// serialize their own access. This package does not attempt to enforce
// that with a mutex: doing so would hide a caller bug behind an
// unpredictable latency instead of surfacing it.
package legacy

import "github.com/foXaCe/go-crypto1/crypto1"

var global crypto1.State

// Init loads key into the process-wide state.
func Init(key [6]byte) {
	global = crypto1.State{}
	crypto1.LoadKey(&global, key)
}

// Setup runs crypto1.Setup against the process-wide state.
func Setup(key [6]byte, uid [4]byte, nonce *[4]byte) {
	crypto1.Setup(&global, key, uid, nonce)
}

// ClockBit runs crypto1.State.ClockBit against the process-wide state.
func ClockBit(in uint8, isEncrypted bool) uint8 {
	return global.ClockBit(in, isEncrypted)
}

// ClockByte runs crypto1.State.ClockByte against the process-wide state.
func ClockByte(in uint8, isEncrypted bool) uint8 {
	return global.ClockByte(in, isEncrypted)
}

// ClockWord runs crypto1.State.ClockWord against the process-wide state.
func ClockWord(in uint32, isEncrypted bool) uint32 {
	return global.ClockWord(in, isEncrypted)
}

// KeystreamByte runs crypto1.KeystreamByte against the process-wide state.
func KeystreamByte() uint8 {
	return crypto1.KeystreamByte(&global)
}

// XorBytes runs crypto1.XorBytes against the process-wide state.
func XorBytes(buf []byte) {
	crypto1.XorBytes(&global, buf)
}

// GetLFSR returns the process-wide state's 48-bit interleaved contents.
func GetLFSR() uint64 {
	return crypto1.GetLFSR(&global)
}

// Snapshot returns a copy of the process-wide state for inspection;
// mutating the copy has no effect on the package-level state.
func Snapshot() crypto1.State {
	return global
}
