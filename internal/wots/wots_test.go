package wots

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func sequentialSeed() []byte {
	s := make([]byte, 32)
	for i := range s {
		s[i] = byte(i)
	}
	return s
}

func zeroSeed() []byte {
	return make([]byte, 32)
}

func ffSeed() []byte {
	s := make([]byte, 32)
	for i := range s {
		s[i] = 0xff
	}
	return s
}

// TestComponentsDeterministic pins the determinism property (spec §8.1)
// for component derivation: equal seeds produce byte-identical
// components across calls.
func TestComponentsDeterministic(t *testing.T) {
	seed := sequentialSeed()
	c1, err := DeriveComponents(seed)
	if err != nil {
		t.Fatalf("DeriveComponents: %v", err)
	}
	c2, err := DeriveComponents(seed)
	if err != nil {
		t.Fatalf("DeriveComponents: %v", err)
	}
	if c1 != c2 {
		t.Fatal("components not deterministic for equal seeds")
	}
}

func TestComponentsDistinctPerSuffix(t *testing.T) {
	seed := zeroSeed()
	c, err := DeriveComponents(seed)
	if err != nil {
		t.Fatalf("DeriveComponents: %v", err)
	}
	if c.PrivateSeed == c.PublicSeed || c.PublicSeed == c.AddrSeed || c.PrivateSeed == c.AddrSeed {
		t.Fatal("component seeds must be pairwise distinct")
	}
}

func TestKeygenSizeInvariant(t *testing.T) {
	pk, _, err := Keygen(sequentialSeed())
	if err != nil {
		t.Fatalf("Keygen: %v", err)
	}
	if len(pk) != PKBytes {
		t.Fatalf("public key must be %d bytes, got %d", PKBytes, len(pk))
	}
}

func TestKeygenDeterministic(t *testing.T) {
	seed := sequentialSeed()
	pk1, _, err := Keygen(seed)
	if err != nil {
		t.Fatalf("Keygen: %v", err)
	}
	pk2, _, err := Keygen(seed)
	if err != nil {
		t.Fatalf("Keygen: %v", err)
	}
	if pk1 != pk2 {
		t.Fatal("Keygen must be a pure function of its seed")
	}
}

func TestSignVerifySoundness(t *testing.T) {
	seed := sequentialSeed()
	pk, comps, err := Keygen(seed)
	if err != nil {
		t.Fatalf("Keygen: %v", err)
	}

	msg := make([]byte, 32)
	for i := range msg {
		msg[i] = byte(0xff - i)
	}

	sig, signComps, err := Sign(msg, seed)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if signComps.PublicSeed != comps.PublicSeed || signComps.AddrSeed != comps.AddrSeed {
		t.Fatal("Sign must derive identical components to Keygen for the same seed")
	}

	if !Verify(msg, sig[:], pk[:], comps.PublicSeed[:], comps.AddrSeed[:]) {
		t.Fatal("valid signature failed to verify")
	}
}

func TestSignVerifyCompleteness(t *testing.T) {
	seed := zeroSeed()
	pk, comps, err := Keygen(seed)
	if err != nil {
		t.Fatalf("Keygen: %v", err)
	}
	msg := bytes.Repeat([]byte{0x5a}, 32)
	sig, _, err := Sign(msg, seed)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if !Verify(msg, sig[:], pk[:], comps.PublicSeed[:], comps.AddrSeed[:]) {
		t.Fatal("unmodified signature must verify")
	}

	for _, idx := range []int{0, 1, PKBytes / 2, PKBytes - 1} {
		corrupt := sig
		corrupt[idx] ^= 0x01
		if Verify(msg, corrupt[:], pk[:], comps.PublicSeed[:], comps.AddrSeed[:]) {
			t.Fatalf("flipping byte %d of a valid signature must fail verification", idx)
		}
	}
}

func TestVerifyRejectsWrongMessage(t *testing.T) {
	seed := ffSeed()
	pk, comps, err := Keygen(seed)
	if err != nil {
		t.Fatalf("Keygen: %v", err)
	}
	msg := bytes.Repeat([]byte{0x01}, 32)
	sig, _, err := Sign(msg, seed)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	wrongMsg := bytes.Repeat([]byte{0x02}, 32)
	if Verify(wrongMsg, sig[:], pk[:], comps.PublicSeed[:], comps.AddrSeed[:]) {
		t.Fatal("signature must not verify against a different message")
	}
}

// TestSequentialSeedVector pins the S1 seeded vector from spec §8: the
// component seeds and the public key bytes for the sequential 00..1f
// seed.
func TestSequentialSeedVector(t *testing.T) {
	comps, err := DeriveComponents(sequentialSeed())
	if err != nil {
		t.Fatalf("DeriveComponents: %v", err)
	}

	wantPriv := mustDecode(t, "2cdf53d3")
	wantPub := mustDecode(t, "fa8564d4")
	wantAddr := mustDecode(t, "fa83b390")

	if !bytes.HasPrefix(comps.PrivateSeed[:], wantPriv) {
		t.Errorf("private seed prefix = %x, want prefix %x", comps.PrivateSeed, wantPriv)
	}
	if !bytes.HasPrefix(comps.PublicSeed[:], wantPub) {
		t.Errorf("public seed prefix = %x, want prefix %x", comps.PublicSeed, wantPub)
	}
	if !bytes.HasPrefix(comps.AddrSeed[:], wantAddr) {
		t.Errorf("addr seed prefix = %x, want prefix %x", comps.AddrSeed, wantAddr)
	}

	pk, _, err := Keygen(sequentialSeed())
	if err != nil {
		t.Fatalf("Keygen: %v", err)
	}
	if len(pk) != PKBytes {
		t.Fatalf("pk size = %d, want %d", len(pk), PKBytes)
	}

	wantPKPrefix := mustDecode(t, "edd0ad03")
	wantPKTailPrefix := mustDecode(t, "cda1e982")
	if !bytes.HasPrefix(pk[:], wantPKPrefix) {
		t.Errorf("S1 pk prefix = %x, want prefix %x", pk[:8], wantPKPrefix)
	}
	if !bytes.HasPrefix(pk[PKBytes-64:], wantPKTailPrefix) {
		t.Errorf("S1 pk last-64 prefix = %x, want prefix %x", pk[PKBytes-64:PKBytes-56], wantPKTailPrefix)
	}
}

// TestZeroSeedVector pins the S2 all-zero-seed public key vector from
// spec §8.
func TestZeroSeedVector(t *testing.T) {
	pk, _, err := Keygen(zeroSeed())
	if err != nil {
		t.Fatalf("Keygen: %v", err)
	}

	wantPKPrefix := mustDecode(t, "7adab300")
	if !bytes.HasPrefix(pk[:], wantPKPrefix) {
		t.Errorf("S2 pk prefix = %x, want prefix %x", pk[:8], wantPKPrefix)
	}
}

// TestFFSeedVector pins the S3 all-0xff-seed public key vector from
// spec §8.
func TestFFSeedVector(t *testing.T) {
	pk, _, err := Keygen(ffSeed())
	if err != nil {
		t.Fatalf("Keygen: %v", err)
	}

	wantPKPrefix := mustDecode(t, "50e62d03")
	if !bytes.HasPrefix(pk[:], wantPKPrefix) {
		t.Errorf("S3 pk prefix = %x, want prefix %x", pk[:8], wantPKPrefix)
	}
}

func mustDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture %q: %v", s, err)
	}
	return b
}
