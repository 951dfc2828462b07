package wots

import "encoding/binary"

// Address is the 8-lane, 32-bit hash domain separator used as input to
// the keyed/masked hash. Lane values are read little-endian from the
// address seed, but the lanes are packed big-endian into their 32-byte
// hash-input form — matching the WOTS+ chain-seed and derivation-input
// counter convention. This packing is load-bearing for bit-parity with
// the reference.
//
// Lane layout: 0..4 come from the address seed, 5 is the chain index,
// 6 is the hash-within-chain index, 7 is the key(0)/mask(1) selector.
type Address [8]uint32

// NewAddress initializes lanes 0..4 from the 20 leading bytes of the
// address seed, interpreted as five little-endian uint32s. Lanes 5..7
// start at zero and are set by the caller before each hash chain step.
func NewAddress(addrSeed []byte) Address {
	var a Address
	for i := 0; i < 5; i++ {
		a[i] = binary.LittleEndian.Uint32(addrSeed[i*4 : i*4+4])
	}
	return a
}

// WithChain returns a copy of a with the chain-index lane (5) set.
func (a Address) WithChain(chain uint32) Address {
	a[5] = chain
	return a
}

// WithHash returns a copy of a with the hash-within-chain lane (6) set.
func (a Address) WithHash(i uint32) Address {
	a[6] = i
	return a
}

// WithKeyAndMask returns a copy of a with the key(0)/mask(1) selector
// lane (7) set.
func (a Address) WithKeyAndMask(sel uint32) Address {
	a[7] = sel
	return a
}

// Bytes packs the eight lanes into their 32-byte big-endian hash-input
// form.
func (a Address) Bytes() [32]byte {
	var out [32]byte
	for i := 0; i < 8; i++ {
		binary.BigEndian.PutUint32(out[i*4:i*4+4], a[i])
	}
	return out
}
