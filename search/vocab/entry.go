package vocab

import (
	"math"
	"sync/atomic"
)

type TermID uint32

// PostingIterator iterates over the (document id, frequency) pairs of one
// term's posting list within one partial index.
type PostingIterator interface {
	// Next advances to the next posting. Returns false when exhausted.
	Next() bool

	// DocID returns the current document id. Valid only after Next()
	// returns true.
	DocID() uint32

	// Freq returns the term frequency in the current document.
	Freq() uint32
}

// Entry holds the statistics and posting-list location of one term.
type Entry struct {
	TermID   TermID
	Term     string
	DocFreq  uint32
	TermFreq uint32
	IDF      float64

	// Byte offsets/length into the posting-list file, assigned at
	// finalization by the merge pass.
	PostingOffset   uint64
	FrequencyOffset uint64
	PostingSize     uint64

	finalized bool
}

func NewEntry(id TermID, term string) *Entry {
	return &Entry{
		TermID: id,
		Term:   term,
	}
}

func (entry *Entry) Finalized() bool {
	return entry.finalized
}

// Accumulate folds one partial posting list into the entry: each posting
// adds its frequency to the term frequency and one to the document
// frequency. Postings from different calls are never deduplicated; the
// caller must supply at most one posting per document per call.
func (entry *Entry) Accumulate(postings PostingIterator) error {
	if entry.finalized {
		return ErrAlreadyFinalized
	}

	for postings.Next() {
		entry.TermFreq += postings.Freq()
		entry.DocFreq++
	}

	return nil
}

// FinalizeIDF computes idf = log10(totalDocs / df) and seals the entry.
// Must run exactly once, after the document frequency is final.
func (entry *Entry) FinalizeIDF(totalDocs uint64) error {
	if entry.finalized {
		return ErrAlreadyFinalized
	}

	if entry.DocFreq == 0 {
		return ErrZeroDocFreq
	}

	if totalDocs == 0 {
		return ErrZeroCollection
	}

	entry.IDF = math.Log10(float64(totalDocs) / float64(entry.DocFreq))
	entry.finalized = true

	return nil
}

// TermIDAllocator hands out dense, creation-ordered term ids starting at 0.
// Safe for concurrent use.
type TermIDAllocator struct {
	next atomic.Uint32
}

func (allocator *TermIDAllocator) Next() TermID {
	return TermID(allocator.next.Add(1) - 1)
}

// Vocabulary is the construction-time term table. Entries are created on
// first sighting of a term, so ids reflect discovery order.
type Vocabulary struct {
	allocator TermIDAllocator
	entries   map[string]*Entry
	ordered   []*Entry
}

func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		entries: make(map[string]*Entry, 1000),
	}
}

func (vocabulary *Vocabulary) Entry(term string) *Entry {
	entry, exists := vocabulary.entries[term]
	if !exists {
		entry = NewEntry(vocabulary.allocator.Next(), term)
		vocabulary.entries[term] = entry
		vocabulary.ordered = append(vocabulary.ordered, entry)
	}

	return entry
}

func (vocabulary *Vocabulary) Len() int {
	return len(vocabulary.ordered)
}

// Entries returns the entries in term id order.
func (vocabulary *Vocabulary) Entries() []*Entry {
	return vocabulary.ordered
}

// Write runs the positional write pass: entry i lands at byte offset
// i * EntrySize. Returns the number of entries whose term was truncated.
func (vocabulary *Vocabulary) Write(writer *VocabularyWriter) (int, error) {
	numTruncated := 0

	for _, entry := range vocabulary.ordered {
		_, truncated, err := writer.Write(entry)
		if err != nil {
			return numTruncated, err
		}

		if truncated {
			numTruncated++
		}
	}

	return numTruncated, nil
}
