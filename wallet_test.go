package mochimo

import (
	"errors"
	"testing"

	"github.com/adequatesystems/mochimo-wallet/internal/codec"
)

func testSeed() []byte {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i)
	}
	return seed
}

func TestNewFromMasterSeedRejectsWrongSize(t *testing.T) {
	if _, err := NewFromMasterSeed(make([]byte, 10)); err == nil {
		t.Fatal("expected error for wrong-sized master seed")
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	w, err := NewFromMasterSeed(testSeed())
	if err != nil {
		t.Fatalf("NewFromMasterSeed: %v", err)
	}

	a1, err := w.Derive(0)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	a2, err := w.Derive(0)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if a1.Tag != a2.Tag {
		t.Error("deriving the same account index twice must produce the same tag")
	}
}

func TestDeriveDiffersAcrossAccounts(t *testing.T) {
	w, err := NewFromMasterSeed(testSeed())
	if err != nil {
		t.Fatalf("NewFromMasterSeed: %v", err)
	}

	a0, err := w.Derive(0)
	if err != nil {
		t.Fatalf("Derive(0): %v", err)
	}
	a1, err := w.Derive(1)
	if err != nil {
		t.Fatalf("Derive(1): %v", err)
	}
	if a0.Tag == a1.Tag {
		t.Error("different account indices must produce different tags")
	}
}

func TestPinTracksAccounts(t *testing.T) {
	w, err := NewFromMasterSeed(testSeed())
	if err != nil {
		t.Fatalf("NewFromMasterSeed: %v", err)
	}

	if _, err := w.Account(0); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound before pinning, got %v", err)
	}

	if _, err := w.Pin(0); err != nil {
		t.Fatalf("Pin: %v", err)
	}

	a, err := w.Account(0)
	if err != nil {
		t.Fatalf("Account: %v", err)
	}
	if a.Index != 0 {
		t.Errorf("Index = %d, want 0", a.Index)
	}
	if len(w.Accounts()) != 1 {
		t.Errorf("Accounts() length = %d, want 1", len(w.Accounts()))
	}
}

func TestNewFromMnemonicRejectsInvalid(t *testing.T) {
	if _, err := NewFromMnemonic(""); !errors.Is(err, ErrInvalidMnemonic) {
		t.Errorf("got %v, want ErrInvalidMnemonic", err)
	}
	if _, err := NewFromMnemonic("not a real mnemonic phrase at all"); !errors.Is(err, ErrInvalidMnemonic) {
		t.Errorf("got %v, want ErrInvalidMnemonic", err)
	}
}

func TestSendBuildsTransaction(t *testing.T) {
	w, err := NewFromMasterSeed(testSeed())
	if err != nil {
		t.Fatalf("NewFromMasterSeed: %v", err)
	}

	var dstTag [20]byte
	dstTag[0] = 0x42

	txn, err := w.Send(SendParams{
		AccountIndex:   0,
		SpendIndex:     0,
		ChangeIndex:    1,
		Balance:        100000,
		Amount:         5000,
		Fee:            500,
		DestinationTag: dstTag,
		Memo:           "TEST-1",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if txn.ChangeAmount != 94500 {
		t.Errorf("ChangeAmount = %d, want 94500", txn.ChangeAmount)
	}
}

func TestTagStringRoundTrips(t *testing.T) {
	w, err := NewFromMasterSeed(testSeed())
	if err != nil {
		t.Fatalf("NewFromMasterSeed: %v", err)
	}
	a, err := w.Derive(0)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	s, err := a.TagString()
	if err != nil {
		t.Fatalf("TagString: %v", err)
	}
	if s == "" {
		t.Error("expected a non-empty tag string")
	}
	decoded, err := codec.Decode(s)
	if err != nil {
		t.Fatalf("codec.Decode(%q): %v", s, err)
	}
	if decoded != a.Tag {
		t.Errorf("decoded tag = %x, want %x", decoded, a.Tag)
	}
}
