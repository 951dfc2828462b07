// Package meshapi defines the collaborator DTOs for the Mochimo Mesh
// (Rosetta-style) REST API: balance, search, mempool, submit and
// tag-resolve requests and responses. These are pure data shapes for a
// caller to marshal/unmarshal; no HTTP client lives here.
package meshapi

import (
	"encoding/hex"
	"strings"
)

// NetworkIdentifier names the chain and network every request is
// scoped to.
type NetworkIdentifier struct {
	Blockchain string `json:"blockchain"`
	Network    string `json:"network"`
}

// MochimoMainnet is the network identifier used by the reference
// collaborator services.
var MochimoMainnet = NetworkIdentifier{Blockchain: "mochimo", Network: "mainnet"}

// AccountIdentifier carries a hex-encoded, "0x"-prefixed address or tag.
type AccountIdentifier struct {
	Address string `json:"address"`
}

// BalanceRequest is the request body for the balance endpoint: a
// 40-byte ledger address, 0x-prefixed and hex-encoded.
type BalanceRequest struct {
	NetworkIdentifier NetworkIdentifier `json:"network_identifier"`
	AccountIdentifier AccountIdentifier `json:"account_identifier"`
}

// NewBalanceRequest builds a BalanceRequest from a 40-byte ledger
// address.
func NewBalanceRequest(ledger [40]byte) BalanceRequest {
	return BalanceRequest{
		NetworkIdentifier: MochimoMainnet,
		AccountIdentifier: AccountIdentifier{Address: hexPrefixed(ledger[:])},
	}
}

// BlockIdentifier names a block by index and hash, as returned by the
// balance and search endpoints.
type BlockIdentifier struct {
	Index int64  `json:"index"`
	Hash  string `json:"hash"`
}

// Amount is a single balance value with its currency.
type Amount struct {
	Value    string   `json:"value"`
	Currency Currency `json:"currency"`
}

// Currency names the denomination of an Amount.
type Currency struct {
	Symbol   string `json:"symbol"`
	Decimals int32  `json:"decimals"`
}

// NanoMCM is the currency descriptor for Mochimo's base unit.
var NanoMCM = Currency{Symbol: "MCM", Decimals: 9}

// BalanceResponse is the balance endpoint's response body.
type BalanceResponse struct {
	BlockIdentifier BlockIdentifier `json:"block_identifier"`
	Balances        []Amount        `json:"balances"`
}

// SearchRequest is the transaction-search request body: a 20-byte
// account tag (not a full ledger address).
type SearchRequest struct {
	NetworkIdentifier NetworkIdentifier `json:"network_identifier"`
	AccountIdentifier AccountIdentifier `json:"account_identifier"`
}

// NewSearchRequest builds a SearchRequest from a 20-byte account tag.
func NewSearchRequest(tag [20]byte) SearchRequest {
	return SearchRequest{
		NetworkIdentifier: MochimoMainnet,
		AccountIdentifier: AccountIdentifier{Address: hexPrefixed(tag[:])},
	}
}

// MempoolRequest lists the request body shared by the mempool list and
// mempool-transaction endpoints.
type MempoolRequest struct {
	NetworkIdentifier NetworkIdentifier `json:"network_identifier"`
}

// TransactionIdentifier names a transaction by its hex-encoded hash.
type TransactionIdentifier struct {
	Hash string `json:"hash"`
}

// MempoolResponse lists the transaction identifiers currently pending.
type MempoolResponse struct {
	TransactionIdentifiers []TransactionIdentifier `json:"transaction_identifiers"`
}

// MempoolTransactionRequest fetches one pending transaction by id.
type MempoolTransactionRequest struct {
	NetworkIdentifier     NetworkIdentifier     `json:"network_identifier"`
	TransactionIdentifier TransactionIdentifier `json:"transaction_identifier"`
}

// SubmitRequest is the request body for /construction/submit: the
// hex-encoded, fully-assembled 2408-byte transaction blob.
type SubmitRequest struct {
	NetworkIdentifier NetworkIdentifier `json:"network_identifier"`
	SignedTransaction string            `json:"signed_transaction"`
}

// NewSubmitRequest builds a SubmitRequest from a serialized 2408-byte
// transaction.
func NewSubmitRequest(txBytes []byte) SubmitRequest {
	return SubmitRequest{
		NetworkIdentifier: MochimoMainnet,
		SignedTransaction: hex.EncodeToString(txBytes),
	}
}

// CallRequest is the generic /call envelope used for the tag-resolve
// method.
type CallRequest struct {
	NetworkIdentifier NetworkIdentifier `json:"network_identifier"`
	Method            string            `json:"method"`
	Parameters        map[string]string `json:"parameters"`
}

// TagResolveMethod is the /call method name for resolving a persistent
// tag to its current ledger address.
const TagResolveMethod = "tag_resolve"

// NewTagResolveRequest builds the /call request body that resolves a
// 20-byte account tag to its current 40-byte ledger address.
func NewTagResolveRequest(tag [20]byte) CallRequest {
	return CallRequest{
		NetworkIdentifier: MochimoMainnet,
		Method:            TagResolveMethod,
		Parameters:        map[string]string{"tag": hexPrefixed(tag[:])},
	}
}

// CallResponse wraps the opaque result of a /call request. The tag
// resolve method populates Result with "address" and "amount" keys;
// callers treat both as opaque strings and strip the "0x" prefix
// themselves via StripHexPrefix.
type CallResponse struct {
	Result map[string]string `json:"result"`
}

// StripHexPrefix removes a leading "0x"/"0X" from s, if present. The
// core treats hashes and addresses returned by collaborator services
// as opaque and always strips this prefix on ingress.
func StripHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

func hexPrefixed(b []byte) string {
	var sb strings.Builder
	sb.WriteString("0x")
	sb.WriteString(hex.EncodeToString(b))
	return sb.String()
}
