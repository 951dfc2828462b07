// Package addr composes the Mochimo ledger-address forms from a WOTS+
// public key: the one-time DSA hash, the implicit (deposit) address,
// and the general tag||DSA ledger address.
package addr

import (
	"github.com/adequatesystems/mochimo-wallet/internal/errs"
	"github.com/adequatesystems/mochimo-wallet/internal/hash"
)

const (
	// TagSize is the size in bytes of a persistent account tag.
	TagSize = 20
	// DSASize is the size in bytes of a one-time DSA hash.
	DSASize = 20
	// LedgerSize is the size in bytes of a full ledger address.
	LedgerSize = TagSize + DSASize
	// WOTSPKSize is the size in bytes of a raw WOTS+ public key.
	WOTSPKSize = 2144
)

// DSAHash computes the 20-byte DSA hash of a 2144-byte WOTS+ public
// key: RIPEMD-160(SHA3-512(pk)).
func DSAHash(pk []byte) ([DSASize]byte, error) {
	var out [DSASize]byte
	if len(pk) != WOTSPKSize {
		return out, errs.SizeError("wots public key", WOTSPKSize, len(pk))
	}
	out = hash.DSA(pk)
	return out, nil
}

// Implicit builds the 40-byte implicit address dsa||dsa used for the
// first deposit to a freshly created account.
func Implicit(dsa [DSASize]byte) [LedgerSize]byte {
	var out [LedgerSize]byte
	copy(out[:TagSize], dsa[:])
	copy(out[TagSize:], dsa[:])
	return out
}

// Ledger composes a 40-byte ledger address from an account tag and a
// DSA hash. The address is implicit iff tag == dsa.
func Ledger(tag [TagSize]byte, dsa [DSASize]byte) [LedgerSize]byte {
	var out [LedgerSize]byte
	copy(out[:TagSize], tag[:])
	copy(out[TagSize:], dsa[:])
	return out
}

// IsImplicit reports whether a ledger address's tag half equals its DSA
// half.
func IsImplicit(ledger [LedgerSize]byte) bool {
	for i := 0; i < TagSize; i++ {
		if ledger[i] != ledger[TagSize+i] {
			return false
		}
	}
	return true
}
