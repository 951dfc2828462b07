package tx

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/adequatesystems/mochimo-wallet/internal/addr"
	"github.com/adequatesystems/mochimo-wallet/internal/derive"
	"github.com/adequatesystems/mochimo-wallet/internal/errs"
	"github.com/adequatesystems/mochimo-wallet/internal/hash"
	"github.com/adequatesystems/mochimo-wallet/internal/memo"
	"github.com/adequatesystems/mochimo-wallet/internal/wots"
)

// optionsSingleDest is the options field for a single-destination
// transaction: type=0x00, dsa=0x00 (WOTS+), dst_count_minus_1=0.
var optionsSingleDest = [OptionsSize]byte{0x00, 0x00, 0x00, 0x00}

// BuildParams are the caller-supplied inputs to BuildAndSign.
type BuildParams struct {
	// SourceTag is the persistent source account tag (not the current
	// DSA hash).
	SourceTag [TagSize]byte
	// SourcePK is the current spend's extended (2208-byte) public key.
	SourcePK [derive.ExtendedPKSize]byte
	// ChangePK is the next spend's extended (2208-byte) public key.
	ChangePK [derive.ExtendedPKSize]byte
	// Secret is the WOTS+ seed for the current spend.
	Secret [32]byte

	Balance uint64
	Amount  uint64
	Fee     uint64

	DestinationTag [TagSize]byte
	Memo           string
	BlocksToLive   uint64
}

// Transaction is the fully assembled, signed 2408-byte transaction and
// the derived values a caller needs to track it.
type Transaction struct {
	Bytes        [TotalSize]byte
	MessageHash  [32]byte
	SourceLedger [LedgerSize]byte
	ChangeLedger [LedgerSize]byte
	ChangeAmount uint64
}

// Hex returns the lowercase hex encoding of the serialized transaction.
func (t Transaction) Hex() string {
	return hex.EncodeToString(t.Bytes[:])
}

func putU64(dst []byte, v uint64) {
	binary.LittleEndian.PutUint64(dst, v)
}

// BuildAndSign validates p, assembles the header and data sections,
// computes the message-to-sign, signs it with the source WOTS+ keypair
// derived from p.Secret, and serializes the full 2408-byte transaction.
//
// Validation failures (bad sizes, memo grammar, arithmetic) are
// reported before any WOTS+ signing is attempted. The secret/source
// DSA-hash check in step 8 of the protocol is a cryptographic
// assertion: a mismatch is fatal for this transaction.
func BuildAndSign(p BuildParams) (Transaction, error) {
	var out Transaction

	if err := memo.Validate(p.Memo); err != nil {
		return out, err
	}
	if len(p.Memo) > memo.MaxLen {
		return out, errs.ErrInvalidMemo
	}
	if p.Amount == 0 {
		return out, fmt.Errorf("%w: amount must be greater than zero", errs.ErrAmountOutOfRange)
	}
	if p.Balance < p.Amount+p.Fee {
		return out, errs.ShortfallError(p.Balance, p.Amount, p.Fee)
	}

	sourcePK := p.SourcePK[:wots.PKBytes]
	changePK := p.ChangePK[:wots.PKBytes]

	srcDSA, err := addr.DSAHash(sourcePK)
	if err != nil {
		return out, err
	}
	chgDSA, err := addr.DSAHash(changePK)
	if err != nil {
		return out, err
	}

	sourceLedger := addr.Ledger(p.SourceTag, srcDSA)
	changeLedger := addr.Ledger(p.SourceTag, chgDSA)

	if addr.IsImplicit(changeLedger) {
		return out, errs.ErrChangeAddressImplicit
	}

	changeAmount := p.Balance - p.Amount - p.Fee

	var header [HeaderSize]byte
	copy(header[OffOptions:], optionsSingleDest[:])
	copy(header[OffSourceAddr:], sourceLedger[:])
	copy(header[OffChangeAddr:], changeLedger[:])
	putU64(header[OffSendTotal:], p.Amount)
	putU64(header[OffChangeTotal:], changeAmount)
	putU64(header[OffFeeTotal:], p.Fee)
	putU64(header[OffBlocksLive:], p.BlocksToLive)

	var data [DataSize]byte
	paddedMemo := memo.Pad16(p.Memo)
	copy(data[OffDstTag-OffDstTag:], p.DestinationTag[:])
	copy(data[OffMemo-OffDstTag:], paddedMemo[:])
	putU64(data[OffDstAmount-OffDstTag:], p.Amount)

	msg := hash.Mochimo(append(append([]byte{}, header[:]...), data[:]...))

	pk, comps, err := wots.Keygen(p.Secret[:])
	if err != nil {
		return out, err
	}
	reDSA, err := addr.DSAHash(pk[:])
	if err != nil {
		return out, err
	}
	if reDSA != srcDSA {
		return out, errs.ErrSecretMismatch
	}

	sig, _, err := wots.Sign(msg[:], p.Secret[:])
	if err != nil {
		return out, err
	}

	var sigSection [SignatureSectionSize]byte
	copy(sigSection[:wots.PKBytes], sig[:])
	copy(sigSection[wots.PKBytes:wots.PKBytes+wots.N], comps.PublicSeed[:])
	copy(sigSection[wots.PKBytes+wots.N:wots.PKBytes+wots.N+20], comps.AddrSeed[:20])
	copy(sigSection[wots.PKBytes+wots.N+20:], wots.FixedTag12[:])

	var trailer [TrailerSize]byte // nonce and id are zeroed at creation

	n := 0
	n += copy(out.Bytes[n:], header[:])
	n += copy(out.Bytes[n:], data[:])
	n += copy(out.Bytes[n:], sigSection[:])
	n += copy(out.Bytes[n:], trailer[:])

	out.MessageHash = msg
	out.SourceLedger = sourceLedger
	out.ChangeLedger = changeLedger
	out.ChangeAmount = changeAmount

	return out, nil
}
