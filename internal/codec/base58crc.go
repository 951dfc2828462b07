// Package codec implements the Base58+CRC encoding Mochimo uses for its
// human-facing account tag identifiers: a 20-byte tag, a 2-byte
// CRC-16/XMODEM trailer, Base58-encoded as one 22-byte payload.
package codec

import (
	"github.com/btcsuite/btcutil/base58"
	"github.com/sigurn/crc16"

	"github.com/adequatesystems/mochimo-wallet/internal/errs"
)

const (
	// TagSize is the size in bytes of the account tag being encoded.
	TagSize = 20
	// PayloadSize is the size in bytes of the tag plus its CRC trailer.
	PayloadSize = TagSize + 2
)

var xmodemTable = crc16.MakeTable(crc16.CRC16_XMODEM)

// Encode Base58-encodes a 20-byte account tag with a little-endian
// CRC-16/XMODEM trailer appended.
func Encode(tag []byte) (string, error) {
	if len(tag) != TagSize {
		return "", errs.SizeError("account tag", TagSize, len(tag))
	}

	crc := crc16.Checksum(tag, xmodemTable)
	payload := make([]byte, 0, PayloadSize)
	payload = append(payload, tag...)
	payload = append(payload, byte(crc), byte(crc>>8))

	return base58.Encode(payload), nil
}

// Decode Base58-decodes s into a 20-byte account tag, verifying its
// CRC-16/XMODEM trailer. It fails with ErrChecksumFailure if the
// decoded payload is the wrong size or the checksum does not verify.
func Decode(s string) ([TagSize]byte, error) {
	var tag [TagSize]byte

	payload := base58.Decode(s)
	if len(payload) != PayloadSize {
		return tag, errs.ErrChecksumFailure
	}

	want := crc16.Checksum(payload[:TagSize], xmodemTable)
	got := uint16(payload[TagSize]) | uint16(payload[TagSize+1])<<8
	if want != got {
		return tag, errs.ErrChecksumFailure
	}

	copy(tag[:], payload[:TagSize])
	return tag, nil
}
