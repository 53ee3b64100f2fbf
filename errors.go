package cdtext

import "errors"

// ErrTruncatedInput is returned when the declared length of the
// CD-Text data exceeds the buffer actually supplied. Nothing is
// decoded in this case.
var ErrTruncatedInput = errors.New("cdtext: declared length exceeds buffer")

// ErrMalformedPackSize is returned when the declared length is not a
// multiple of [PackSize]. Decoding still covers the largest whole
// number of packs, so callers receive both a result and this error;
// use errors.Is to tell it apart from fatal conditions.
var ErrMalformedPackSize = errors.New("cdtext: length is not a multiple of the pack size")

// ErrShortHeader is returned by [DecodeDump] when the data is too
// short to contain the 4-byte dump header.
var ErrShortHeader = errors.New("cdtext: dump shorter than its 4-byte header")
