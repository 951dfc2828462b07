// Package prng implements the SHA-512-based digest random generator
// that hinges Mochimo's hierarchical derivation to WOTS+ seed material:
// a cycling seed+state pair, driven by two 32-bit counters, extracting
// an arbitrary-length reproducible byte stream.
//
// The generator's internal counters are little-endian, padded to 8
// bytes — a different convention than the big-endian counters used
// elsewhere in derivation and in the WOTS+ engine. The two must never
// be unified.
package prng

import (
	"crypto/sha512"
	"encoding/binary"
)

const stateSize = 64

// DRG is a SHA-512 digest random generator. The zero value is not
// ready for use; construct one with New.
type DRG struct {
	seed         [stateSize]byte
	state        [stateSize]byte
	seedCounter  uint32
	stateCounter uint32
}

// New returns a freshly initialized generator: seed and state are all
// zero, and both counters start at 1.
func New() *DRG {
	return &DRG{seedCounter: 1, stateCounter: 1}
}

// AddSeedMaterial folds m into the seed register: seed = sha512(m || seed).
func (d *DRG) AddSeedMaterial(m []byte) {
	h := sha512.New()
	h.Write(m)        //nolint:errcheck
	h.Write(d.seed[:]) //nolint:errcheck
	copy(d.seed[:], h.Sum(nil))
}

// generateState advances the state register by one step and cycles the
// seed register whenever the incremented state counter reaches a
// multiple of ten: the ninth step of a fresh generator, then every
// tenth step after that.
func (d *DRG) generateState() {
	var ctr [8]byte
	binary.LittleEndian.PutUint32(ctr[:4], d.stateCounter)
	d.stateCounter++

	h := sha512.New()
	h.Write(ctr[:])     //nolint:errcheck
	h.Write(d.state[:]) //nolint:errcheck
	h.Write(d.seed[:])  //nolint:errcheck
	copy(d.state[:], h.Sum(nil))

	if d.stateCounter%10 == 0 {
		var sctr [8]byte
		binary.LittleEndian.PutUint32(sctr[:4], d.seedCounter)
		d.seedCounter++

		hs := sha512.New()
		hs.Write(d.seed[:]) //nolint:errcheck
		hs.Write(sctr[:])   //nolint:errcheck
		copy(d.seed[:], hs.Sum(nil))
	}
}

// NextBytes returns n deterministic bytes extracted from the generator,
// advancing its internal state as needed.
func (d *DRG) NextBytes(n int) []byte {
	out := make([]byte, 0, n)
	for len(out) < n {
		d.generateState()
		remaining := n - len(out)
		if remaining > stateSize {
			remaining = stateSize
		}
		out = append(out, d.state[:remaining]...)
	}
	return out
}
