package addr

import (
	"bytes"
	"testing"
)

func TestDSAHashSizeInvariant(t *testing.T) {
	pk := bytes.Repeat([]byte{0x11}, WOTSPKSize)
	dsa, err := DSAHash(pk)
	if err != nil {
		t.Fatalf("DSAHash: %v", err)
	}
	if len(dsa) != DSASize {
		t.Fatalf("dsa hash must be %d bytes, got %d", DSASize, len(dsa))
	}
}

func TestDSAHashRejectsWrongSize(t *testing.T) {
	if _, err := DSAHash(make([]byte, 100)); err == nil {
		t.Fatal("expected error for wrong-sized public key")
	}
}

func TestImplicitAddressIsImplicit(t *testing.T) {
	var dsa [DSASize]byte
	copy(dsa[:], bytes.Repeat([]byte{0xab}, DSASize))

	ledger := Implicit(dsa)
	if !IsImplicit(ledger) {
		t.Fatal("Implicit() must produce an implicit ledger address")
	}
}

func TestLedgerExplicitWhenTagDiffers(t *testing.T) {
	var tag, dsa [TagSize]byte
	copy(tag[:], bytes.Repeat([]byte{0x01}, TagSize))
	copy(dsa[:], bytes.Repeat([]byte{0x02}, TagSize))

	ledger := Ledger(tag, dsa)
	if IsImplicit(ledger) {
		t.Fatal("ledger address with differing tag/dsa must not be implicit")
	}
}

func TestLedgerImplicitWhenTagEqualsDSA(t *testing.T) {
	var tag [TagSize]byte
	copy(tag[:], bytes.Repeat([]byte{0x03}, TagSize))

	ledger := Ledger(tag, tag)
	if !IsImplicit(ledger) {
		t.Fatal("ledger address with tag == dsa must be implicit")
	}
}
