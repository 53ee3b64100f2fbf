package cdtext

import "fmt"

// PackType identifies the semantic category of a pack's payload.
// The assigned range is 0x80 through 0x8f; other values appear in the
// wild (padding, drive quirks) and are passed through as raw data.
type PackType uint8

const (
	PackTypeTitle      PackType = 0x80 // album title, or track title
	PackTypePerformer  PackType = 0x81
	PackTypeSongwriter PackType = 0x82
	PackTypeComposer   PackType = 0x83
	PackTypeArranger   PackType = 0x84
	PackTypeMessage    PackType = 0x85 // message from the content provider
	PackTypeDiscID     PackType = 0x86 // disc identification, catalog number
	PackTypeGenre      PackType = 0x87
	PackTypeTOC        PackType = 0x88 // table of contents copy
	PackTypeTOC2       PackType = 0x89 // second table of contents
	PackTypeReserved1  PackType = 0x8a
	PackTypeReserved2  PackType = 0x8b
	PackTypeReserved3  PackType = 0x8c
	PackTypeClosedInfo PackType = 0x8d // private data for the content provider
	PackTypeUPCEAN     PackType = 0x8e // UPC/EAN of the album, ISRC per track
	PackTypeSizeInfo   PackType = 0x8f // block size information
)

// IsValid reports whether the type byte is one of the assigned
// CD-Text pack types.
func (pt PackType) IsValid() bool {
	return pt >= PackTypeTitle && pt <= PackTypeSizeInfo
}

// IsText reports whether payloads of this type carry character data.
// Table of contents copies, size information, closed information, and
// the reserved range are binary and passed through undecoded.
func (pt PackType) IsText() bool {
	switch pt {
	case PackTypeTitle, PackTypePerformer, PackTypeSongwriter,
		PackTypeComposer, PackTypeArranger, PackTypeMessage,
		PackTypeDiscID, PackTypeGenre, PackTypeUPCEAN:
		return true
	}
	return false
}

func (pt PackType) String() string {
	switch pt {
	case PackTypeTitle:
		return "title"
	case PackTypePerformer:
		return "performer"
	case PackTypeSongwriter:
		return "songwriter"
	case PackTypeComposer:
		return "composer"
	case PackTypeArranger:
		return "arranger"
	case PackTypeMessage:
		return "message"
	case PackTypeDiscID:
		return "disc id"
	case PackTypeGenre:
		return "genre"
	case PackTypeTOC:
		return "toc"
	case PackTypeTOC2:
		return "toc2"
	case PackTypeReserved1, PackTypeReserved2, PackTypeReserved3:
		return "reserved"
	case PackTypeClosedInfo:
		return "closed info"
	case PackTypeUPCEAN:
		return "upc/ean"
	case PackTypeSizeInfo:
		return "size info"
	default:
		return fmt.Sprintf("unknown (0x%02x)", uint8(pt))
	}
}
