// Package wots implements the WOTS+ (Winternitz One-Time Signature
// Plus) engine used by the Mochimo protocol: fixed parameters n=32,
// w=16, len=67, a keyed/masked hash chain, and the public-key/
// signature/verification primitives built on top of it.
//
// Parameters are fixed and never configurable — Mochimo runs exactly
// one WOTS+ parameter set.
package wots

const (
	// N is the hash output size and chain element size, in bytes.
	N = 32
	// W is the Winternitz parameter.
	W = 16
	// LogW is log2(W).
	LogW = 4
	// Len1 is the number of chains carrying the message digits.
	Len1 = 8 * N / LogW // 64
	// Len2 is the number of chains carrying the checksum digits.
	Len2 = 3
	// Len is the total number of WOTS+ chains.
	Len = Len1 + Len2 // 67

	// PKBytes is the size of a WOTS+ public key / signature: Len chains
	// of N bytes each.
	PKBytes = Len * N // 2144

	// FixedTagBytes is the size of the fixed 12-byte tag constant that
	// overwrites the tail of the addr-seed slot in an extended public key.
	FixedTagBytes = 12

	hashPaddingPRF = 3
	hashPaddingF   = 0
)

// FixedTag12 is the fixed 12-byte constant appended to every extended
// public key, in place of the last 12 bytes of the address seed. Its
// semantics are undocumented upstream (see spec §9 Open Questions); it
// must be preserved bit-exactly.
var FixedTag12 = [FixedTagBytes]byte{0x42, 0x00, 0x00, 0x00, 0x0e, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00}
