// Package derive implements the hierarchical derivation tree: master
// seed -> account seed -> per-spend WOTS+ secret -> keypair, plus the
// account tag that gives an account its persistent identity.
//
// Every function here is a pure function of its inputs (master seed,
// account index, spend index); callers are responsible for the single
// external invariant the core cannot enforce itself: a given (master
// seed, account, spend) triple must be used to sign at most one
// transaction.
package derive

import (
	"encoding/binary"

	"github.com/adequatesystems/mochimo-wallet/internal/addr"
	"github.com/adequatesystems/mochimo-wallet/internal/errs"
	"github.com/adequatesystems/mochimo-wallet/internal/hash"
	"github.com/adequatesystems/mochimo-wallet/internal/prng"
	"github.com/adequatesystems/mochimo-wallet/internal/wots"
)

const (
	// MasterSeedSize is the size in bytes of a master seed.
	MasterSeedSize = 32
	// AccountSeedSize is the size in bytes of a derived account seed.
	AccountSeedSize = 32
	// WOTSSecretSize is the size in bytes of a derived WOTS+ secret.
	WOTSSecretSize = 32
	// ExtendedPKSize is the size in bytes of an extended WOTS+ public key.
	ExtendedPKSize = wots.PKBytes + wots.N + wots.N
)

func beU32(v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return b[:]
}

// AccountSeed derives the 32-byte account seed for acctIdx from a
// master seed: h := sha512(master || be_u32(acctIdx)); a fresh PRNG is
// seeded with h and extracts 32 bytes.
func AccountSeed(master []byte, acctIdx uint32) ([AccountSeedSize]byte, error) {
	var out [AccountSeedSize]byte
	if len(master) != MasterSeedSize {
		return out, errs.SizeError("master seed", MasterSeedSize, len(master))
	}

	h := hash.SHA512(append(append([]byte{}, master...), beU32(acctIdx)...))

	gen := prng.New()
	gen.AddSeedMaterial(h[:])
	copy(out[:], gen.NextBytes(AccountSeedSize))
	return out, nil
}

// WOTSSecret derives the 32-byte WOTS+ secret for spendIdx from an
// account seed: h := sha512(accountSeed || be_u32(spendIdx)); a fresh
// PRNG is seeded with h and extracts 32 bytes.
func WOTSSecret(accountSeed []byte, spendIdx uint32) ([WOTSSecretSize]byte, error) {
	var out [WOTSSecretSize]byte
	if len(accountSeed) != AccountSeedSize {
		return out, errs.SizeError("account seed", AccountSeedSize, len(accountSeed))
	}

	h := hash.SHA512(append(append([]byte{}, accountSeed...), beU32(spendIdx)...))

	gen := prng.New()
	gen.AddSeedMaterial(h[:])
	copy(out[:], gen.NextBytes(WOTSSecretSize))
	return out, nil
}

// Keypair is a materialized WOTS+ keypair for one (account, spend)
// index: the secret that recreates it, its raw 2144-byte public key,
// its 2208-byte extended public key, and the DSA hash of its public key.
type Keypair struct {
	Secret      [WOTSSecretSize]byte
	PublicKey   [wots.PKBytes]byte
	ExtendedPK  [ExtendedPKSize]byte
	DSAHash     [addr.DSASize]byte
	PublicSeed  [wots.N]byte
	AddrSeed    [wots.N]byte
}

// ExtendPublicKey wraps a raw 2144-byte WOTS+ public key into the
// protocol's 2208-byte extended form: pk || pub_seed || (addr_seed[0:20]
// || fixed 12-byte tag constant).
func ExtendPublicKey(pk [wots.PKBytes]byte, pubSeed [wots.N]byte, addrSeed [wots.N]byte) [ExtendedPKSize]byte {
	var out [ExtendedPKSize]byte
	copy(out[:wots.PKBytes], pk[:])
	copy(out[wots.PKBytes:wots.PKBytes+wots.N], pubSeed[:])
	copy(out[wots.PKBytes+wots.N:wots.PKBytes+wots.N+20], addrSeed[:20])
	copy(out[wots.PKBytes+wots.N+20:], wots.FixedTag12[:])
	return out
}

// WOTSKeypair derives the full WOTS+ keypair for a given (account
// seed, spend index).
func WOTSKeypair(accountSeed []byte, spendIdx uint32) (Keypair, error) {
	var kp Keypair

	secret, err := WOTSSecret(accountSeed, spendIdx)
	if err != nil {
		return kp, err
	}
	kp.Secret = secret

	pk, comps, err := wots.Keygen(secret[:])
	if err != nil {
		return kp, err
	}
	kp.PublicKey = pk
	kp.PublicSeed = comps.PublicSeed
	kp.AddrSeed = comps.AddrSeed
	kp.ExtendedPK = ExtendPublicKey(pk, comps.PublicSeed, comps.AddrSeed)

	dsa, err := addr.DSAHash(pk[:])
	if err != nil {
		return kp, err
	}
	kp.DSAHash = dsa

	return kp, nil
}

// AccountTag derives the 20-byte persistent account tag for acctIdx:
// the DSA hash of the spend-0 WOTS+ public key. The tag is defined by,
// and exists iff, the spend-0 keypair exists — computing the tag always
// materializes the spend-0 keypair, even when only the tag is needed.
func AccountTag(master []byte, acctIdx uint32) ([addr.TagSize]byte, error) {
	var tag [addr.TagSize]byte

	accountSeed, err := AccountSeed(master, acctIdx)
	if err != nil {
		return tag, err
	}

	kp, err := WOTSKeypair(accountSeed[:], 0)
	if err != nil {
		return tag, err
	}

	copy(tag[:], kp.DSAHash[:])
	return tag, nil
}

// Account is the public view of a derived account: its seed (kept
// confidential by callers), its persistent tag, and its first deposit
// address.
type Account struct {
	AccountSeed    [AccountSeedSize]byte
	AccountTag     [addr.TagSize]byte
	DepositAddress [addr.LedgerSize]byte
}

// GetAccount derives the account seed, persistent tag and first deposit
// (implicit) address for acctIdx.
func GetAccount(master []byte, acctIdx uint32) (Account, error) {
	var a Account

	accountSeed, err := AccountSeed(master, acctIdx)
	if err != nil {
		return a, err
	}
	a.AccountSeed = accountSeed

	tag, err := AccountTag(master, acctIdx)
	if err != nil {
		return a, err
	}
	a.AccountTag = tag
	a.DepositAddress = addr.Implicit(tag)

	return a, nil
}
