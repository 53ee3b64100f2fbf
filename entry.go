package cdtext

import (
	"bytes"
	"encoding/hex"
)

// Entry is one fully reconstructed CD-Text field, assembled from the
// packs that carried its bytes.
type Entry struct {
	Type  PackType
	Track uint8  // 0 refers to the whole album
	Text  string // decoded text, or hex for binary pack types

	// Sequences lists the sequence counters of the packs that
	// contributed to this entry, in the order they were folded in.
	// Useful for diagnosing gaps.
	Sequences []uint8

	Incomplete      bool // a sequence gap was seen while assembling
	Truncated       bool // input ended before the field terminator
	ChecksumSuspect bool // a contributing pack failed CRC validation
}

// Packs of the same type, track, and language block reassemble into
// the same text field. Real discs carry up to eight language blocks
// repeating the same (type, track) pairs, so the block is part of the
// group identity.
type groupKey struct {
	typ   PackType
	track uint8
	block uint8
}

type accumulator struct {
	key     groupKey
	buf     []byte
	seqs    []uint8
	lastSeq uint8
	gap     bool
	suspect bool
	double  bool
	entries []Entry
}

// assembler folds packs into entries. Groups are held in first-seen
// order; map iteration order is never relied on.
type assembler struct {
	order    []groupKey
	groups   map[groupKey]*accumulator
	charsets [MaxBlocks]uint8
}

// Assemble folds packs, in the order given, into reconstructed
// entries.
//
// Output order is deterministic: groups appear in the order they are
// first encountered, and within a group entries appear in the order
// their terminators were found. Suspect data is flagged on the entry
// rather than dropped.
func Assemble(packs []Pack) []Entry {
	a := assembler{groups: make(map[groupKey]*accumulator)}
	for i := range packs {
		a.fold(&packs[i])
	}
	return a.flush()
}

func (a *assembler) group(key groupKey) *accumulator {
	acc, ok := a.groups[key]
	if !ok {
		acc = &accumulator{key: key}
		a.groups[key] = acc
		a.order = append(a.order, key)
	}
	return acc
}

func (a *assembler) fold(p *Pack) {
	if p.Type == PackTypeSizeInfo && p.Track == 0 {
		// The first size information pack of a block declares the
		// character set for the block's text.
		a.charsets[p.Block] = p.Payload[0]
	}

	acc := a.group(groupKey{p.Type, p.Track, p.Block})
	if len(acc.seqs) > 0 && p.Sequence != acc.lastSeq+1 {
		acc.gap = true
	}
	acc.lastSeq = p.Sequence
	acc.seqs = append(acc.seqs, p.Sequence)
	acc.suspect = acc.suspect || p.ChecksumInvalid
	acc.double = p.DoubleByte
	acc.buf = append(acc.buf, p.Payload[:]...)

	if !p.Type.IsText() {
		// binary groups emit in one piece once all input is seen
		return
	}
	a.scan(acc, p)
}

// scan emits every terminated field accumulated so far. A pack's 12
// bytes routinely carry the tail of one track's text and the head of
// the next, so bytes after a terminator open the next track's field
// in the same group (the album field, track 0, hands off to track 1).
func (a *assembler) scan(acc *accumulator, p *Pack) {
	for {
		i, width := terminatorIndex(acc.buf, acc.double)
		if i < 0 {
			return
		}
		rest := acc.buf[i+width:]
		a.emitText(acc, acc.buf[:i])
		acc.buf = nil
		acc.seqs = nil
		acc.gap = false
		acc.suspect = false

		if allZero(rest) || acc.key.track >= MaxTrack {
			// trailing NUL padding, not a new field
			return
		}
		next := a.group(groupKey{acc.key.typ, acc.key.track + 1, acc.key.block})
		next.buf = append(next.buf, rest...)
		next.seqs = append(next.seqs, p.Sequence)
		next.lastSeq = p.Sequence
		next.suspect = next.suspect || p.ChecksumInvalid
		next.double = p.DoubleByte
		acc = next
	}
}

func (a *assembler) emitText(acc *accumulator, field []byte) {
	if len(field) == 0 {
		// padding between fields
		return
	}
	acc.entries = append(acc.entries, Entry{
		Type:            acc.key.typ,
		Track:           acc.key.track,
		Text:            decodeText(field, a.charsets[acc.key.block], acc.double),
		Sequences:       acc.seqs,
		Incomplete:      acc.gap,
		ChecksumSuspect: acc.suspect,
	})
}

// flush emits whatever is still accumulated once the input is
// exhausted: binary groups in one piece, and unterminated text as a
// best-effort entry flagged Truncated. Discs are not always perfectly
// terminated at the end of the captured region.
func (a *assembler) flush() []Entry {
	var entries []Entry
	for _, key := range a.order {
		acc := a.groups[key]
		if len(acc.buf) > 0 {
			if key.typ.IsText() {
				acc.entries = append(acc.entries, Entry{
					Type:            key.typ,
					Track:           key.track,
					Text:            decodeText(acc.buf, a.charsets[key.block], acc.double),
					Sequences:       acc.seqs,
					Incomplete:      acc.gap,
					Truncated:       true,
					ChecksumSuspect: acc.suspect,
				})
			} else {
				acc.entries = append(acc.entries, Entry{
					Type:            key.typ,
					Track:           key.track,
					Text:            hex.EncodeToString(acc.buf),
					Sequences:       acc.seqs,
					Incomplete:      acc.gap,
					ChecksumSuspect: acc.suspect,
				})
			}
		}
		entries = append(entries, acc.entries...)
	}
	return entries
}

// terminatorIndex finds the field terminator: a NUL byte in
// single-byte mode, an aligned NUL pair in double-byte mode.
func terminatorIndex(buf []byte, double bool) (idx, width int) {
	if double {
		for i := 0; i+1 < len(buf); i += 2 {
			if buf[i] == 0 && buf[i+1] == 0 {
				return i, 2
			}
		}
		return -1, 0
	}
	return bytes.IndexByte(buf, 0), 1
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
