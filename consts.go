package cdtext

// PackSize is the size in bytes of one CD-Text pack: a 4-byte header,
// 12 bytes of payload, and a 2-byte CRC.
const PackSize = 18

// PayloadSize is the number of payload bytes carried by one pack.
const PayloadSize = 12

// MaxTrack is the highest track number CD-Text can address.
// Track 0 refers to the whole album.
const MaxTrack = 99

// MaxBlocks is the number of language blocks a disc can carry.
const MaxBlocks = 8

// Character set codes, declared in the first payload byte of a
// block's first size information pack.
const (
	CharsetISO8859_1 uint8 = 0x00 // the default
	CharsetASCII     uint8 = 0x01
	CharsetMSJIS     uint8 = 0x80 // double-byte
)
