package vocab

import (
	"bytes"
	"encoding/binary"
	"math"
	"unicode/utf8"
)

const (
	// TermBytes is the fixed width of the encoded term field. Longer terms
	// are truncated to fit.
	TermBytes = 64

	// EntrySize is the on-disk size of one record:
	// term + df + tf + idf + posting offset + frequency offset + posting size.
	EntrySize = TermBytes + 4 + 4 + 8 + 8 + 8 + 8
)

/*
Record layout (big-endian):
  - [0]  term, UTF-8, zero-padded (64 bytes)
  - [64] document frequency (uint32)
  - [68] term frequency (uint32)
  - [72] inverse document frequency (float64 bits)
  - [80] posting-list offset (uint64)
  - [88] posting-list frequency-section offset (uint64)
  - [96] posting-list size (uint64)
*/

// truncateTerm trims an encoded term to the largest valid UTF-8 prefix that
// fits in TermBytes. Truncating mid-rune would put an undecodable partial
// sequence on disk.
func truncateTerm(term []byte) ([]byte, bool) {
	if len(term) <= TermBytes {
		return term, false
	}

	end := TermBytes
	for end > 0 && !utf8.RuneStart(term[end]) {
		end--
	}

	return term[:end], true
}

// EncodeEntry writes the 104-byte record image of an entry into buffer,
// which must be at least EntrySize bytes. Reports whether the term was
// truncated to fit the fixed field.
func EncodeEntry(entry *Entry, buffer []byte) bool {
	term, truncated := truncateTerm([]byte(entry.Term))

	copy(buffer, term)
	for i := len(term); i < TermBytes; i++ {
		buffer[i] = 0
	}

	binary.BigEndian.PutUint32(buffer[TermBytes:], entry.DocFreq)
	binary.BigEndian.PutUint32(buffer[TermBytes+4:], entry.TermFreq)
	binary.BigEndian.PutUint64(buffer[TermBytes+8:], math.Float64bits(entry.IDF))
	binary.BigEndian.PutUint64(buffer[TermBytes+16:], entry.PostingOffset)
	binary.BigEndian.PutUint64(buffer[TermBytes+24:], entry.FrequencyOffset)
	binary.BigEndian.PutUint64(buffer[TermBytes+32:], entry.PostingSize)

	return truncated
}

// DecodeEntry reconstructs an entry from a 104-byte record image. The
// returned entry is finalized: records are only ever written after idf
// computation, so accumulation never resumes on a decoded entry.
func DecodeEntry(id TermID, buffer []byte) (*Entry, error) {
	if len(buffer) < EntrySize {
		return nil, ErrCorruptRecord
	}

	term := buffer[:TermBytes]
	if zero := bytes.IndexByte(term, 0); zero != -1 {
		term = term[:zero]
	}

	// An empty term field marks a region that was never written, such as
	// the hole left by an out-of-order WriteAt: no persisted term is empty.
	if len(term) == 0 {
		return nil, ErrCorruptRecord
	}

	if !utf8.Valid(term) {
		return nil, ErrCorruptRecord
	}

	return &Entry{
		TermID:          id,
		Term:            string(term),
		DocFreq:         binary.BigEndian.Uint32(buffer[TermBytes:]),
		TermFreq:        binary.BigEndian.Uint32(buffer[TermBytes+4:]),
		IDF:             math.Float64frombits(binary.BigEndian.Uint64(buffer[TermBytes+8:])),
		PostingOffset:   binary.BigEndian.Uint64(buffer[TermBytes+16:]),
		FrequencyOffset: binary.BigEndian.Uint64(buffer[TermBytes+24:]),
		PostingSize:     binary.BigEndian.Uint64(buffer[TermBytes+32:]),
		finalized:       true,
	}, nil
}
