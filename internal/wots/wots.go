package wots

import (
	"github.com/adequatesystems/mochimo-wallet/internal/errs"
)

// Keygen derives the full WOTS+ component set from a 32-byte seed and
// computes the 2144-byte public key: the concatenation of all Len
// chain tops, each walked the full W-1 steps from the chain seed.
func Keygen(seed []byte) (pk [PKBytes]byte, comps Components, err error) {
	comps, err = DeriveComponents(seed)
	if err != nil {
		return pk, comps, err
	}

	chainSeeds := expandSeed(comps.PrivateSeed[:])
	addr := NewAddress(comps.AddrSeed[:])

	for i := 0; i < Len; i++ {
		chainAddr := addr.WithChain(uint32(i))
		top := genChain(chainSeeds[i][:], 0, W-1, comps.PublicSeed[:], chainAddr)
		copy(pk[i*N:(i+1)*N], top[:])
	}
	return pk, comps, nil
}

// Sign produces a 2144-byte WOTS+ signature over a 32-byte message
// using the keypair derived from seed. The returned Components must be
// reused by the caller to recover the public seed and address seed for
// the extended public key.
func Sign(msg []byte, seed []byte) (sig [PKBytes]byte, comps Components, err error) {
	if len(msg) != N {
		return sig, comps, errs.SizeError("message", N, len(msg))
	}

	comps, err = DeriveComponents(seed)
	if err != nil {
		return sig, comps, err
	}

	chainSeeds := expandSeed(comps.PrivateSeed[:])
	addr := NewAddress(comps.AddrSeed[:])
	l := lengthVector(msg)

	for i := 0; i < Len; i++ {
		chainAddr := addr.WithChain(uint32(i))
		s := genChain(chainSeeds[i][:], 0, uint32(l[i]), comps.PublicSeed[:], chainAddr)
		copy(sig[i*N:(i+1)*N], s[:])
	}
	return sig, comps, nil
}

// PkFromSig reconstructs the candidate public key implied by a
// signature over msg, walking each chain from its signed position to
// the chain top. Verify compares the result against a stored key.
func PkFromSig(sig []byte, msg []byte, pubSeed []byte, addrSeed []byte) (pk [PKBytes]byte, err error) {
	if len(sig) != PKBytes {
		return pk, errs.SizeError("signature", PKBytes, len(sig))
	}
	if len(msg) != N {
		return pk, errs.SizeError("message", N, len(msg))
	}
	if len(pubSeed) != N {
		return pk, errs.SizeError("public seed", N, len(pubSeed))
	}
	if len(addrSeed) != N {
		return pk, errs.SizeError("address seed", N, len(addrSeed))
	}

	addr := NewAddress(addrSeed)
	l := lengthVector(msg)

	for i := 0; i < Len; i++ {
		chainAddr := addr.WithChain(uint32(i))
		start := uint32(l[i])
		steps := uint32(W-1) - start
		top := genChain(sig[i*N:(i+1)*N], start, steps, pubSeed, chainAddr)
		copy(pk[i*N:(i+1)*N], top[:])
	}
	return pk, nil
}

// Verify reports whether sig is a valid WOTS+ signature over msg under
// the given public key, public seed and address seed.
func Verify(msg []byte, sig []byte, pk []byte, pubSeed []byte, addrSeed []byte) bool {
	if len(pk) != PKBytes {
		return false
	}
	candidate, err := PkFromSig(sig, msg, pubSeed, addrSeed)
	if err != nil {
		return false
	}
	for i := range candidate {
		if candidate[i] != pk[i] {
			return false
		}
	}
	return true
}
