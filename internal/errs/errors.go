// Package errs defines the error taxonomy surfaced by the Mochimo
// cryptographic core. Every exported function in the core returns one
// of these sentinels (wrapped with context via fmt.Errorf("%w: ...")),
// never a bare ad-hoc error.
package errs

import "errors"

var (
	// ErrInvalidInputSize means a fixed-width field (tag, pk, secret,
	// address, ledger address, ...) was not the expected length.
	ErrInvalidInputSize = errors.New("invalid input size")

	// ErrInvalidHex means a hex-string input contained non-hex
	// characters or an odd number of digits.
	ErrInvalidHex = errors.New("invalid hex string")

	// ErrInvalidMemo means the memo failed the grammar check in §4.6.
	ErrInvalidMemo = errors.New("invalid memo")

	// ErrAmountOutOfRange means amount <= 0, fee < 0 is impossible for
	// an unsigned type but is reported when balance < amount+fee, or
	// amount == 0.
	ErrAmountOutOfRange = errors.New("amount out of range")

	// ErrChangeAddressImplicit means the computed change ledger address
	// has tag == DSA hash; the caller must re-derive the change keypair
	// from a fresh spend index.
	ErrChangeAddressImplicit = errors.New("change address is implicit")

	// ErrSecretMismatch means the WOTS+ keypair re-derived from the
	// supplied secret does not match the declared source DSA hash.
	ErrSecretMismatch = errors.New("secret does not match declared source address")

	// ErrChecksumFailure means a Base58+CRC decode produced a mismatching
	// checksum.
	ErrChecksumFailure = errors.New("checksum failure")

	// ErrVerificationFailure means a WOTS+ signature did not verify.
	ErrVerificationFailure = errors.New("signature verification failed")
)
