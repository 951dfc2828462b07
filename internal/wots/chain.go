package wots

import "crypto/sha256"

// pad returns a k-byte big-endian encoding of v in its low bytes, zero
// above — the domain-separation prefix prepended to every PRF/F input.
func pad(v uint64, k int) []byte {
	out := make([]byte, k)
	for i := k - 1; i >= 0 && v != 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}

// PRF computes sha256(pad(3, 32) || key || in).
func PRF(key, in []byte) [32]byte {
	h := sha256.New()
	h.Write(pad(hashPaddingPRF, N)) //nolint:errcheck
	h.Write(key)                    //nolint:errcheck
	h.Write(in)                     //nolint:errcheck
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// F is the keyed, masked hash used by the chain: it derives a key and a
// mask keyed by pubSeed over two address variants (key/mask selector
// 0/1), XORs in with the mask, and hashes key || masked-in with a zero
// padding prefix.
func F(in []byte, pubSeed []byte, addr Address) [32]byte {
	keyAddr := addr.WithKeyAndMask(0)
	keyAddrBytes := keyAddr.Bytes()
	key := PRF(pubSeed, keyAddrBytes[:])

	maskAddr := addr.WithKeyAndMask(1)
	maskAddrBytes := maskAddr.Bytes()
	mask := PRF(pubSeed, maskAddrBytes[:])

	var masked [N]byte
	for i := 0; i < N; i++ {
		masked[i] = in[i] ^ mask[i]
	}

	h := sha256.New()
	h.Write(pad(hashPaddingF, N)) //nolint:errcheck
	h.Write(key[:])               //nolint:errcheck
	h.Write(masked[:])            //nolint:errcheck
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// genChain iterates F exactly steps times starting from hash-within-
// chain index start, never advancing the index past w-1.
func genChain(x []byte, start, steps uint32, pubSeed []byte, addr Address) [N]byte {
	var cur [N]byte
	copy(cur[:], x)

	for i := start; i < start+steps && i < W; i++ {
		out := F(cur[:], pubSeed, addr.WithHash(i))
		cur = out
	}
	return cur
}

// expandSeed derives the Len per-chain seeds from a 32-byte private
// seed: chainSeed[i] = PRF(privateSeed, beBytes32(i)).
func expandSeed(privateSeed []byte) [Len][N]byte {
	var seeds [Len][N]byte
	for i := 0; i < Len; i++ {
		ctr := pad(uint64(i), N)
		seeds[i] = PRF(privateSeed, ctr)
	}
	return seeds
}
