package cdtext

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

// decoderFor picks a decoder for a text field. The double-byte set is
// MS-JIS, for which Shift-JIS is the closest available decoder; ASCII
// is a strict subset of ISO 8859-1, so both single-byte sets decode
// through the same table.
func decoderFor(charset uint8, doubleByte bool) *encoding.Decoder {
	if doubleByte || charset == CharsetMSJIS {
		return japanese.ShiftJIS.NewDecoder()
	}
	return charmap.ISO8859_1.NewDecoder()
}

func decodeText(raw []byte, charset uint8, doubleByte bool) string {
	// Undecodable bytes come back as replacement runes. Partial text
	// beats no text here.
	out, _ := decoderFor(charset, doubleByte).Bytes(raw)
	return string(out)
}
