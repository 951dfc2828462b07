package errs

import "fmt"

// SizeError wraps ErrInvalidInputSize with the offending field name and
// the expected/actual lengths, so callers get an actionable message
// without the core needing typed exceptions.
func SizeError(field string, want, got int) error {
	return fmt.Errorf("%w: %s must be %d bytes, got %d", ErrInvalidInputSize, field, want, got)
}

// HexError wraps ErrInvalidHex with the field name that failed to decode.
func HexError(field string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidHex, field, cause)
}

// ShortfallError wraps ErrAmountOutOfRange with the nanoMCM shortfall
// between balance and amount+fee.
func ShortfallError(balance, amount, fee uint64) error {
	need := amount + fee
	if need >= balance {
		return fmt.Errorf("%w: balance %d is short by %d nanoMCM", ErrAmountOutOfRange, balance, need-balance)
	}
	return fmt.Errorf("%w: amount %d", ErrAmountOutOfRange, amount)
}
