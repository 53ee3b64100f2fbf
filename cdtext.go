// Package cdtext decodes CD-Text data from the lead-in area of audio
// CDs into per-track text entries: titles, performers, songwriters,
// composers, disc identifiers, genres, and the other pack types the
// Red Book defines.
//
// The package operates on a raw byte buffer as captured by a drive
// ioctl or an external dumping tool; it never talks to hardware
// itself. Reading audio data from a disc is covered by
// [github.com/rabidaudio/audiocd].
//
// Decoding is lenient. CD-Text in the wild is frequently imperfect,
// so suspect data is flagged rather than dropped: only a declared
// length that overruns the supplied buffer aborts a decode.
package cdtext

import (
	"encoding/binary"
	"errors"
)

// DumpHeaderSize is the size of the header prepended to CD-Text data
// by CDROMREADTOCENTRY-style ioctls and the dumping tools built on
// them: a big-endian data length followed by two reserved bytes.
const DumpHeaderSize = 4

// Decode reads the first length bytes of buf as a sequence of 18-byte
// packs and assembles them into entries.
//
// If length is not a multiple of [PackSize], the trailing bytes are
// ignored and Decode returns the assembled entries together with
// [ErrMalformedPackSize]. Only [ErrTruncatedInput] (length exceeds
// the buffer) returns no result.
func Decode(buf []byte, length int) ([]Entry, error) {
	packs, err := ReadPacks(buf, length)
	if err != nil && !errors.Is(err, ErrMalformedPackSize) {
		return nil, err
	}
	return Assemble(packs), err
}

// DecodeDump decodes a captured dump that begins with the 4-byte
// ioctl header: the first two bytes hold, big-endian, the length of
// everything after them (so the pack data length plus the two
// reserved header bytes).
//
// A header length that overruns the supplied data fails with
// [ErrTruncatedInput], same as [Decode].
func DecodeDump(data []byte) ([]Entry, error) {
	if len(data) < DumpHeaderSize {
		return nil, ErrShortHeader
	}
	length := int(binary.BigEndian.Uint16(data[0:2])) - 2
	return Decode(data[DumpHeaderSize:], length)
}
