package vocab

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// VocabularyWriter writes fixed-width records to the vocabulary file. The
// file handle is held for the duration of the whole write pass and released
// by Close.
type VocabularyWriter struct {
	buffer []byte
	file   *os.File
	offset int64
}

func NewVocabularyWriter(filename string) (*VocabularyWriter, error) {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_RDWR|os.O_EXCL, 0600)
	if err != nil {
		return nil, err
	}

	return &VocabularyWriter{
		buffer: make([]byte, EntrySize),
		file:   file,
	}, nil
}

func (writer *VocabularyWriter) Offset() int64 {
	return writer.offset
}

// Write appends a record at the current offset and returns the position of
// the next record. Reports whether the term was truncated.
func (writer *VocabularyWriter) Write(entry *Entry) (int64, bool, error) {
	return writer.WriteAt(entry, writer.offset)
}

// WriteAt writes a record at an explicit position. Sequential writes of
// entries with ids 0, 1, 2, ... starting at position 0 place record i at
// byte offset i * EntrySize.
func (writer *VocabularyWriter) WriteAt(entry *Entry, position int64) (int64, bool, error) {
	if !entry.finalized {
		return 0, false, ErrNotFinalized
	}

	truncated := EncodeEntry(entry, writer.buffer)

	if _, err := writer.file.WriteAt(writer.buffer, position); err != nil {
		return 0, truncated, err
	}

	next := position + EntrySize
	if next > writer.offset {
		writer.offset = next
	}

	return next, truncated, nil
}

func (writer *VocabularyWriter) Close() error {
	return writer.file.Close()
}

// VocabularyReader maps the vocabulary file once and decodes records by
// position. The mapping length is authoritative for end-of-data: no content
// heuristic is needed to tell an empty term from an unwritten region.
type VocabularyReader struct {
	data mmap.MMap
	file *os.File
}

func NewVocabularyReader(filename string) (*VocabularyReader, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	// An empty vocabulary is a valid file with zero records; mapping it
	// would fail with EINVAL.
	if info.Size() == 0 {
		return &VocabularyReader{file: file}, nil
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	return &VocabularyReader{
		data: data,
		file: file,
	}, nil
}

// Count returns the number of complete records in the file.
func (reader *VocabularyReader) Count() int {
	return len(reader.data) / EntrySize
}

// ReadAt decodes the record at position and returns it along with the
// position of the next record. Returns ErrEndOfData when position is at or
// past the end of the file, and ErrCorruptRecord when only part of a record
// is present there.
func (reader *VocabularyReader) ReadAt(position int64) (*Entry, int64, error) {
	if position < 0 || position%EntrySize != 0 {
		return nil, 0, fmt.Errorf("%w: position %d not on a record boundary", ErrCorruptRecord, position)
	}

	if position >= int64(len(reader.data)) {
		return nil, 0, ErrEndOfData
	}

	if position+EntrySize > int64(len(reader.data)) {
		return nil, 0, fmt.Errorf("%w: partial record at position %d", ErrCorruptRecord, position)
	}

	entry, err := DecodeEntry(TermID(position/EntrySize), reader.data[position:position+EntrySize])
	if err != nil {
		return nil, 0, fmt.Errorf("%w at position %d", err, position)
	}

	return entry, position + EntrySize, nil
}

// Entry reads the record of a term id directly: record i occupies byte
// range [i*EntrySize, (i+1)*EntrySize).
func (reader *VocabularyReader) Entry(id TermID) (*Entry, error) {
	entry, _, err := reader.ReadAt(int64(id) * EntrySize)
	return entry, err
}

func (reader *VocabularyReader) Scanner() *Scanner {
	return &Scanner{reader: reader}
}

func (reader *VocabularyReader) Close() error {
	if reader.data != nil {
		if err := reader.data.Unmap(); err != nil {
			_ = reader.file.Close()
			return err
		}
	}

	return reader.file.Close()
}

// Scanner iterates over all records of a vocabulary file in term id order.
type Scanner struct {
	position int64
	reader   *VocabularyReader
}

// Next returns the next record, or ErrEndOfData after the last one.
func (scanner *Scanner) Next() (*Entry, error) {
	entry, next, err := scanner.reader.ReadAt(scanner.position)
	if err != nil {
		return nil, err
	}

	scanner.position = next

	return entry, nil
}
