// Package hash collects the hash primitives the Mochimo cryptographic
// core is built from: SHA-256, SHA3-512, RIPEMD-160 and SHA-512, plus
// the domain-tagged "mochimo hash" used throughout the WOTS+ engine and
// the transaction message digest.
//
// All functions here are bit-exact wrappers around the standard library
// or golang.org/x/crypto; no truncation or re-keying happens beyond what
// is documented per function.
package hash

import (
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // protocol requires legacy RIPEMD-160
	"golang.org/x/crypto/sha3"
)

// SHA256 returns the 32-byte SHA-256 digest of b.
func SHA256(b []byte) [32]byte {
	return sha256.Sum256(b)
}

// SHA3_512 returns the 64-byte SHA3-512 digest of b.
func SHA3_512(b []byte) [64]byte {
	return sha3.Sum512(b)
}

// SHA512 returns the 64-byte SHA-512 digest of b.
func SHA512(b []byte) [64]byte {
	return sha512.Sum512(b)
}

// RIPEMD160 returns the 20-byte RIPEMD-160 digest of b.
func RIPEMD160(b []byte) [20]byte {
	h := ripemd160.New()
	h.Write(b) //nolint:errcheck // hash.Hash.Write never errors
	var out [20]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Mochimo is the domain-tagged hash used by the transaction builder's
// message-to-sign and by WOTS+ component derivation: it is
// bit-identical to SHA-256. (The deterministic PRNG uses SHA-512, not
// this hash.)
func Mochimo(b []byte) [32]byte {
	return SHA256(b)
}

// DSA computes the one-time DSA hash of a 2144-byte WOTS+ public key:
// RIPEMD-160(SHA3-512(pk)).
func DSA(pk []byte) [20]byte {
	h3 := SHA3_512(pk)
	return RIPEMD160(h3[:])
}
