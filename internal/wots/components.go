package wots

import (
	"github.com/adequatesystems/mochimo-wallet/internal/errs"
	"github.com/adequatesystems/mochimo-wallet/internal/hash"
)

// Components holds the three seeds a single WOTS+ keypair is built
// from, each a distinct function of the 32-byte WOTS seed.
type Components struct {
	PrivateSeed [N]byte
	PublicSeed  [N]byte
	AddrSeed    [N]byte
}

// DeriveComponents expands a 32-byte WOTS seed into its private seed,
// public seed and address seed via mochimo_hash(seed || suffix), one
// distinct 4-byte ASCII suffix per component.
func DeriveComponents(seed []byte) (Components, error) {
	if len(seed) != N {
		return Components{}, errs.SizeError("wots seed", N, len(seed))
	}

	var c Components
	c.PrivateSeed = hash.Mochimo(append(append([]byte{}, seed...), "seed"...))
	c.PublicSeed = hash.Mochimo(append(append([]byte{}, seed...), "publ"...))
	c.AddrSeed = hash.Mochimo(append(append([]byte{}, seed...), "addr"...))
	return c, nil
}
