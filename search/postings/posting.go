package postings

import (
	"errors"

	"github.com/RoaringBitmap/roaring/v2"
)

var (
	// ErrDuplicateDoc is returned when a document already has a posting in
	// the list. One partial index contributes at most one posting per
	// document per term; a duplicate would inflate the document frequency
	// downstream.
	ErrDuplicateDoc = errors.New("document already in posting list")

	// ErrZeroFreq is returned for a posting with frequency zero: a term
	// that does not occur in a document has no posting at all.
	ErrZeroFreq = errors.New("posting frequency is zero")
)

type Posting struct {
	DocID uint32
	Freq  uint32
}

// List is the posting list of one term within one partial index: the
// (document id, frequency) pairs in insertion order, plus a bitmap of the
// documents seen so far.
type List struct {
	docIDs   *roaring.Bitmap
	postings []Posting
}

func NewList() *List {
	return &List{
		docIDs:   roaring.NewBitmap(),
		postings: make([]Posting, 0, 100),
	}
}

func (list *List) Add(docID, freq uint32) error {
	if freq == 0 {
		return ErrZeroFreq
	}

	if list.docIDs.Contains(docID) {
		return ErrDuplicateDoc
	}

	list.docIDs.Add(docID)
	list.postings = append(list.postings, Posting{DocID: docID, Freq: freq})

	return nil
}

func (list *List) Len() int {
	return len(list.postings)
}

// Documents returns the set of document ids carrying a posting.
func (list *List) Documents() *roaring.Bitmap {
	return list.docIDs
}

func (list *List) Iterator() *Iterator {
	return &Iterator{list: list, index: -1}
}

// Iterator walks a list in insertion order. It satisfies
// vocab.PostingIterator.
type Iterator struct {
	index int
	list  *List
}

func (it *Iterator) Next() bool {
	it.index++
	return it.index < len(it.list.postings)
}

func (it *Iterator) DocID() uint32 {
	return it.list.postings[it.index].DocID
}

func (it *Iterator) Freq() uint32 {
	return it.list.postings[it.index].Freq
}
