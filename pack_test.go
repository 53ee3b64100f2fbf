package cdtext

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/sigurn/crc16"
	"github.com/stretchr/testify/assert"
)

// rawPack builds one wire-format pack with a valid CRC.
func rawPack(typ PackType, track, seq, flags uint8, payload string) []byte {
	b := make([]byte, PackSize)
	b[0] = byte(typ)
	b[1] = track
	b[2] = seq
	b[3] = flags
	copy(b[4:16], payload)
	binary.BigEndian.PutUint16(b[16:18], ^crc16.Checksum(b[:16], crcTable))
	return b
}

func TestReadPacks(t *testing.T) {
	var buf []byte
	buf = append(buf, rawPack(PackTypeTitle, 0, 0, 0, "Kind of Blue")...)
	buf = append(buf, rawPack(PackTypeTitle, 1, 1, 0, "So What")...)
	buf = append(buf, rawPack(PackTypePerformer, 0, 2, 0, "Miles Davis")...)

	packs, err := ReadPacks(buf, len(buf))
	assert.NoError(t, err)
	assert.Len(t, packs, 3)

	assert.Equal(t, PackTypeTitle, packs[0].Type)
	assert.Equal(t, uint8(0), packs[0].Track)
	assert.Equal(t, PackTypeTitle, packs[1].Type)
	assert.Equal(t, uint8(1), packs[1].Track)
	assert.Equal(t, PackTypePerformer, packs[2].Type)

	// each pack is a distinct, non-overlapping 18-byte window
	for i := range packs {
		assert.Equal(t, buf[i*PackSize:(i+1)*PackSize], packs[i].Raw(), "pack %d", i)
		assert.Equal(t, buf[i*PackSize+4:i*PackSize+16], packs[i].Payload[:], "pack %d payload", i)
		assert.Equal(t, uint8(i), packs[i].Sequence)
		assert.False(t, packs[i].ChecksumInvalid)
	}
}

func TestReadPacksEmpty(t *testing.T) {
	packs, err := ReadPacks([]byte{}, 0)
	assert.NoError(t, err)
	assert.Len(t, packs, 0)
}

func TestReadPacksTruncated(t *testing.T) {
	buf := rawPack(PackTypeTitle, 0, 0, 0, "SHORT")

	packs, err := ReadPacks(buf, len(buf)+1)
	assert.ErrorIs(t, err, ErrTruncatedInput)
	assert.Nil(t, packs)

	packs, err = ReadPacks(buf, -1)
	assert.ErrorIs(t, err, ErrTruncatedInput)
	assert.Nil(t, packs)
}

func TestReadPacksMalformedSize(t *testing.T) {
	var buf []byte
	buf = append(buf, rawPack(PackTypeTitle, 0, 0, 0, "ONE")...)
	buf = append(buf, rawPack(PackTypeTitle, 0, 1, 0, "TWO")...)
	buf = append(buf, rawPack(PackTypeTitle, 0, 2, 0, "THREE")...)
	buf = append(buf, 0xde, 0xad, 0xbe, 0xef, 0x00) // trailing garbage

	packs, err := ReadPacks(buf, len(buf))
	assert.ErrorIs(t, err, ErrMalformedPackSize)
	assert.Len(t, packs, 3)
	assert.Equal(t, uint8(2), packs[2].Sequence)
}

func TestReadPacksChecksum(t *testing.T) {
	buf := rawPack(PackTypeTitle, 0, 0, 0, "GOOD")
	buf = append(buf, rawPack(PackTypeTitle, 0, 1, 0, "BAD")...)
	buf[PackSize+16] ^= 0xff // corrupt the second pack's CRC

	packs, err := ReadPacks(buf, len(buf))
	assert.NoError(t, err)
	assert.False(t, packs[0].ChecksumInvalid)
	assert.True(t, packs[1].ChecksumInvalid)

	// the flagged pack's bytes are unchanged from the buffer
	assert.Equal(t, buf[PackSize:2*PackSize], packs[1].Raw())
}

func TestReadPacksChecksumNotRecorded(t *testing.T) {
	// drives and dump tools sometimes zero out the CRC field
	buf := rawPack(PackTypeTitle, 0, 0, 0, "NOCRC")
	buf[16], buf[17] = 0, 0

	packs, err := ReadPacks(buf, len(buf))
	assert.NoError(t, err)
	assert.False(t, packs[0].ChecksumInvalid)
	assert.Equal(t, uint16(0), packs[0].CRC)
}

func TestParsePackHeaderBits(t *testing.T) {
	// byte 3 packs character position (0-3), block (4-6),
	// and the double-byte flag (7)
	buf := rawPack(PackTypeSongwriter, 5, 9, 0x80|0x30|0x05, "BITS")

	packs, err := ReadPacks(buf, len(buf))
	assert.NoError(t, err)

	p := packs[0]
	assert.Equal(t, PackTypeSongwriter, p.Type)
	assert.Equal(t, uint8(5), p.Track)
	assert.Equal(t, uint8(9), p.Sequence)
	assert.Equal(t, uint8(5), p.CharacterPosition)
	assert.Equal(t, uint8(3), p.Block)
	assert.True(t, p.DoubleByte)
}

func TestReadPacksRestartable(t *testing.T) {
	var buf []byte
	buf = append(buf, rawPack(PackTypeTitle, 0, 0, 0, "AGAIN")...)
	buf = append(buf, rawPack(PackTypeGenre, 0, 1, 0, "Jazz")...)

	first, err := ReadPacks(buf, len(buf))
	assert.NoError(t, err)
	second, err := ReadPacks(buf, len(buf))
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestErrorsDistinguishable(t *testing.T) {
	assert.False(t, errors.Is(ErrMalformedPackSize, ErrTruncatedInput))
	assert.False(t, errors.Is(ErrTruncatedInput, ErrMalformedPackSize))
}
