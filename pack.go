package cdtext

import (
	"encoding/binary"

	"github.com/sigurn/crc16"
)

// Pack is one 18-byte CD-Text unit as it appears in the lead-in data.
// It is a pure copy of the source bytes: reading never fails on bad
// content, suspect packs are only flagged.
type Pack struct {
	Type     PackType
	Track    uint8 // 0 refers to the whole album
	Sequence uint8 // position of the pack within its language block

	// CharacterPosition counts how many characters of the current
	// text field appeared in earlier packs, saturated at 15. Field
	// boundaries are found by terminator scan; this is kept as a
	// diagnostic.
	CharacterPosition uint8
	Block             uint8 // language block number, 0-7
	DoubleByte        bool  // payload uses two-byte character codes

	Payload [PayloadSize]byte
	CRC     uint16 // stored big-endian after the payload

	// ChecksumInvalid is set when the stored CRC does not match one
	// recomputed over the pack's first 16 bytes. The pack is still
	// yielded; consumers decide whether to trust it.
	ChecksumInvalid bool

	raw [PackSize]byte
}

// CD-Text stores the one's complement of CRC-16/CCITT with a zero
// initial value (the XMODEM parameters), computed over the pack's
// first 16 bytes.
var crcTable = crc16.MakeTable(crc16.CRC16_XMODEM)

// Raw returns a copy of the pack's original 18 bytes, unchanged from
// the source buffer.
func (p *Pack) Raw() []byte {
	return append([]byte(nil), p.raw[:]...)
}

func parsePack(raw []byte) Pack {
	p := Pack{
		Type: PackType(raw[0]),
		// bit 7 of the track byte is the extension flag
		Track:             raw[1] & 0x7f,
		Sequence:          raw[2],
		CharacterPosition: raw[3] & 0x0f,
		Block:             (raw[3] >> 4) & 0x07,
		DoubleByte:        raw[3]&0x80 != 0,
		CRC:               binary.BigEndian.Uint16(raw[16:18]),
	}
	copy(p.Payload[:], raw[4:16])
	copy(p.raw[:], raw)

	// An all-zero CRC means the value was stripped by the drive or
	// dumping tool, not that the data is bad.
	if p.CRC != 0 {
		p.ChecksumInvalid = p.CRC != ^crc16.Checksum(raw[:16], crcTable)
	}
	return p
}

// ReadPacks splits the first length bytes of buf into 18-byte packs,
// in buffer order. The packs copy their bytes out, so buf may be
// reused afterwards. Reading the same buffer twice yields identical
// packs.
//
// A length larger than the buffer fails with [ErrTruncatedInput] and
// no result. A length that is not a multiple of [PackSize] decodes
// the largest whole number of packs and returns them together with
// [ErrMalformedPackSize]; the trailing bytes are ignored.
func ReadPacks(buf []byte, length int) ([]Pack, error) {
	if length < 0 || length > len(buf) {
		return nil, ErrTruncatedInput
	}

	packs := make([]Pack, 0, length/PackSize)
	for off := 0; off+PackSize <= length; off += PackSize {
		packs = append(packs, parsePack(buf[off:off+PackSize]))
	}

	if length%PackSize != 0 {
		return packs, ErrMalformedPackSize
	}
	return packs, nil
}
