package meshapi

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewBalanceRequestHexPrefix(t *testing.T) {
	var ledger [40]byte
	ledger[0] = 0xab
	req := NewBalanceRequest(ledger)
	if !strings.HasPrefix(req.AccountIdentifier.Address, "0x") {
		t.Errorf("address = %q, want 0x prefix", req.AccountIdentifier.Address)
	}
	if len(req.AccountIdentifier.Address) != 2+80 {
		t.Errorf("address length = %d, want %d", len(req.AccountIdentifier.Address), 2+80)
	}
}

func TestNewSearchRequestUsesTagOnly(t *testing.T) {
	var tag [20]byte
	tag[0] = 0xff
	req := NewSearchRequest(tag)
	if len(req.AccountIdentifier.Address) != 2+40 {
		t.Errorf("address length = %d, want %d", len(req.AccountIdentifier.Address), 2+40)
	}
}

func TestNewSubmitRequestRoundTrips(t *testing.T) {
	blob := make([]byte, 2408)
	blob[0] = 0x42
	req := NewSubmitRequest(blob)

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded SubmitRequest
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.SignedTransaction != req.SignedTransaction {
		t.Error("signed_transaction did not round trip through JSON")
	}
}

func TestNewTagResolveRequest(t *testing.T) {
	var tag [20]byte
	req := NewTagResolveRequest(tag)
	if req.Method != TagResolveMethod {
		t.Errorf("method = %q, want %q", req.Method, TagResolveMethod)
	}
	if _, ok := req.Parameters["tag"]; !ok {
		t.Error("expected a \"tag\" parameter")
	}
}

func TestStripHexPrefix(t *testing.T) {
	cases := map[string]string{
		"0xabcd": "abcd",
		"0Xabcd": "abcd",
		"abcd":   "abcd",
		"":       "",
	}
	for in, want := range cases {
		if got := StripHexPrefix(in); got != want {
			t.Errorf("StripHexPrefix(%q) = %q, want %q", in, got, want)
		}
	}
}
