package vocab

import "errors"

var (
	// ErrEndOfData is returned when no record exists at the requested
	// position. It marks the normal end of a sequential scan and is never
	// used for I/O failures, which are returned as-is.
	ErrEndOfData = errors.New("no record at position")

	// ErrCorruptRecord is returned when a record region exists but cannot
	// be decoded: a trailing partial record or a term field that is not
	// valid zero-padded UTF-8.
	ErrCorruptRecord = errors.New("corrupt vocabulary record")

	// ErrZeroDocFreq is returned when finalizing an entry that was never
	// accumulated. Every persisted term must occur in at least one document.
	ErrZeroDocFreq = errors.New("document frequency is zero")

	// ErrZeroCollection is returned when finalizing against an empty
	// collection.
	ErrZeroCollection = errors.New("collection document count is zero")

	// ErrAlreadyFinalized is returned when accumulating into or finalizing
	// an entry a second time.
	ErrAlreadyFinalized = errors.New("entry already finalized")

	// ErrNotFinalized is returned when writing an entry whose idf has not
	// been computed yet.
	ErrNotFinalized = errors.New("entry not finalized")
)
