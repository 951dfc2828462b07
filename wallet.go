// Package mochimo implements the offline cryptographic core of a
// Mochimo wallet: WOTS+ keypair derivation, ledger-address composition
// and transaction assembly, built on a simple hierarchical derivation
// tree rooted at a single master seed.
//
// Package mochimo never touches the network. Callers are responsible
// for persisting each account's next unused spend index and for
// submitting the serialized transactions this package produces to a
// Mesh API collaborator service (see the meshapi package for the
// request/response shapes).
package mochimo

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/tyler-smith/go-bip39"

	"github.com/adequatesystems/mochimo-wallet/internal/addr"
	"github.com/adequatesystems/mochimo-wallet/internal/codec"
	"github.com/adequatesystems/mochimo-wallet/internal/derive"
	"github.com/adequatesystems/mochimo-wallet/internal/errs"
	"github.com/adequatesystems/mochimo-wallet/internal/tx"
)

// ErrAccountNotFound means the requested account index has not been
// derived and pinned into the wallet yet.
var ErrAccountNotFound = errors.New("account not found")

// ErrInvalidMnemonic means the supplied BIP-39 mnemonic failed
// validation.
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// Account is a pinned view of one derived account: its persistent tag,
// its first (implicit) deposit address, and the next spend index this
// wallet believes is unused.
type Account struct {
	Index          uint32
	AccountSeed    [derive.AccountSeedSize]byte
	Tag            [addr.TagSize]byte
	DepositAddress [addr.LedgerSize]byte
	NextSpendIndex uint32
}

// Wallet derives Mochimo accounts from a single master seed and tracks
// which accounts the caller has pinned for reuse. It does not persist
// anything across process restarts; the caller owns that.
type Wallet struct {
	masterSeed [derive.MasterSeedSize]byte
	mnemonic   string

	stateLock sync.RWMutex
	accounts  map[uint32]*Account
}

// NewFromMasterSeed builds a Wallet directly from a 32-byte master
// seed.
func NewFromMasterSeed(seed []byte) (*Wallet, error) {
	if len(seed) != derive.MasterSeedSize {
		return nil, errs.SizeError("master seed", derive.MasterSeedSize, len(seed))
	}
	w := &Wallet{accounts: make(map[uint32]*Account)}
	copy(w.masterSeed[:], seed)
	runtime.SetFinalizer(w, (*Wallet).wipe)
	return w, nil
}

// wipe zeroes the master seed before the Wallet is garbage collected.
func (w *Wallet) wipe() {
	w.stateLock.Lock()
	defer w.stateLock.Unlock()
	for i := range w.masterSeed {
		w.masterSeed[i] = 0
	}
}

// Close zeroes the master seed immediately and detaches the finalizer.
// Subsequent calls to derivation methods on w are invalid.
func (w *Wallet) Close() {
	w.wipe()
	runtime.SetFinalizer(w, nil)
}

// NewFromMnemonic builds a Wallet from a BIP-39 mnemonic phrase (empty
// passphrase). The first 32 bytes of the standard 64-byte BIP-39 seed
// become the master seed this package's derivation tree expects; the
// remaining 32 bytes are not used.
func NewFromMnemonic(mnemonic string) (*Wallet, error) {
	if mnemonic == "" {
		return nil, fmt.Errorf("%w: mnemonic is empty", ErrInvalidMnemonic)
	}
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("%w: failed BIP-39 checksum", ErrInvalidMnemonic)
	}

	seed64, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}

	w, err := NewFromMasterSeed(seed64[:derive.MasterSeedSize])
	if err != nil {
		return nil, err
	}
	w.mnemonic = mnemonic
	return w, nil
}

// NewMnemonic returns a freshly generated BIP-39 mnemonic phrase at the
// given entropy size in bits (128, 160, 192, 224 or 256).
func NewMnemonic(bits int) (string, error) {
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// Derive computes (but does not pin) the account at acctIdx: its
// account seed, persistent tag, and first deposit address.
func (w *Wallet) Derive(acctIdx uint32) (Account, error) {
	a, err := derive.GetAccount(w.masterSeed[:], acctIdx)
	if err != nil {
		return Account{}, err
	}
	return Account{
		Index:          acctIdx,
		AccountSeed:    a.AccountSeed,
		Tag:            a.AccountTag,
		DepositAddress: a.DepositAddress,
		NextSpendIndex: 0,
	}, nil
}

// Pin derives the account at acctIdx, if not already pinned, and adds
// it to the wallet's tracked account list.
func (w *Wallet) Pin(acctIdx uint32) (Account, error) {
	w.stateLock.Lock()
	defer w.stateLock.Unlock()

	if existing, ok := w.accounts[acctIdx]; ok {
		return *existing, nil
	}

	a, err := w.Derive(acctIdx)
	if err != nil {
		return Account{}, err
	}
	w.accounts[acctIdx] = &a
	return a, nil
}

// Accounts returns a snapshot of every account pinned so far.
func (w *Wallet) Accounts() []Account {
	w.stateLock.RLock()
	defer w.stateLock.RUnlock()

	out := make([]Account, 0, len(w.accounts))
	for _, a := range w.accounts {
		out = append(out, *a)
	}
	return out
}

// Account returns the pinned account at acctIdx, or ErrAccountNotFound.
func (w *Wallet) Account(acctIdx uint32) (Account, error) {
	w.stateLock.RLock()
	defer w.stateLock.RUnlock()

	a, ok := w.accounts[acctIdx]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	return *a, nil
}

// SpendKeypair derives the WOTS+ keypair for (acctIdx, spendIdx). It
// does not consume the spend index; the caller must only use the
// returned keypair to sign one transaction and must persist the
// incremented spend index only after that transaction is accepted by
// the network.
func (w *Wallet) SpendKeypair(acctIdx, spendIdx uint32) (derive.Keypair, error) {
	a, err := w.Derive(acctIdx)
	if err != nil {
		return derive.Keypair{}, err
	}
	return derive.WOTSKeypair(a.AccountSeed[:], spendIdx)
}

// TagString returns the Base58+CRC16 encoding of an account's tag, the
// form suitable for display and for collaborator service requests.
func (a Account) TagString() (string, error) {
	return codec.Encode(a.Tag[:])
}

// SendParams are the caller-supplied inputs to Send, expressed in
// terms of account/spend indices rather than raw keypairs.
type SendParams struct {
	AccountIndex uint32
	SpendIndex   uint32
	ChangeIndex  uint32

	Balance uint64
	Amount  uint64
	Fee     uint64

	DestinationTag [addr.TagSize]byte
	Memo           string
	BlocksToLive   uint64
}

// Send derives the source and change WOTS+ keypairs for p and builds
// and signs the resulting transaction. It does not submit the
// transaction or advance any spend index; callers must do both only
// after confirming the build succeeded.
func (w *Wallet) Send(p SendParams) (tx.Transaction, error) {
	a, err := w.Derive(p.AccountIndex)
	if err != nil {
		return tx.Transaction{}, err
	}

	source, err := derive.WOTSKeypair(a.AccountSeed[:], p.SpendIndex)
	if err != nil {
		return tx.Transaction{}, err
	}
	change, err := derive.WOTSKeypair(a.AccountSeed[:], p.ChangeIndex)
	if err != nil {
		return tx.Transaction{}, err
	}

	return tx.BuildAndSign(tx.BuildParams{
		SourceTag:      a.Tag,
		SourcePK:       source.ExtendedPK,
		ChangePK:       change.ExtendedPK,
		Secret:         source.Secret,
		Balance:        p.Balance,
		Amount:         p.Amount,
		Fee:            p.Fee,
		DestinationTag: p.DestinationTag,
		Memo:           p.Memo,
		BlocksToLive:   p.BlocksToLive,
	})
}
