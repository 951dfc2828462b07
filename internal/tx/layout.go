// Package tx assembles, signs and serializes the Mochimo transaction
// wire format: a fixed 2408-byte layout built from a header, a
// single-destination data section, a WOTS+ signature section and a
// zeroed trailer.
package tx

import "github.com/adequatesystems/mochimo-wallet/internal/wots"

const (
	// OptionsSize is the size in bytes of the options field.
	OptionsSize = 4
	// LedgerSize is the size in bytes of one ledger address (tag||dsa).
	LedgerSize = 40
	// HeaderSize is the size in bytes of the header section.
	HeaderSize = OptionsSize + LedgerSize + LedgerSize + 8 + 8 + 8 + 8 // 116... see below
	// TagSize is the size in bytes of a bare account tag.
	TagSize = 20
	// MemoSize is the size in bytes of the zero-padded memo field.
	MemoSize = 16
	// DataSize is the size in bytes of the single-destination data section.
	DataSize = TagSize + MemoSize + 8 // 44
	// SignatureSectionSize is the size in bytes of the signature section:
	// the raw WOTS+ signature, the public seed, and the addr-seed/tag tail.
	SignatureSectionSize = wots.PKBytes + wots.N + wots.N // 2208
	// NonceSize is the size in bytes of the trailer nonce.
	NonceSize = 8
	// IDSize is the size in bytes of the trailer transaction id.
	IDSize = 32
	// TrailerSize is the size in bytes of the trailer section.
	TrailerSize = NonceSize + IDSize // 40

	// TotalSize is the total size in bytes of a serialized transaction.
	TotalSize = HeaderSize + DataSize + SignatureSectionSize + TrailerSize

	// Field offsets within the serialized transaction, per spec §6.2.
	OffOptions     = 0
	OffSourceAddr  = 4
	OffChangeAddr  = 44
	OffSendTotal   = 84
	OffChangeTotal = 92
	OffFeeTotal    = 100
	OffBlocksLive  = 108
	OffDstTag      = 116
	OffMemo        = 136
	OffDstAmount   = 152
	OffSignature   = 160
	OffPublicSeed  = 2304
	OffAddrTag     = 2336
	OffNonce       = 2368
	OffID          = 2376
)
