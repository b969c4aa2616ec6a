package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mbellotti/egret/search/postings"
	"github.com/mbellotti/egret/search/vocab"
	"golang.org/x/exp/rand"
)

const (
	numTerms       = 1_000_000
	numDocs        = 100_000
	numPartialsMax = 5
	postingsMax    = 50
)

func randomTerm(rng *rand.Rand) string {
	length := 3 + rng.Intn(12)

	term := make([]byte, length)
	for i := range term {
		term[i] = byte('a' + rng.Intn(26))
	}

	return string(term)
}

// randomPostings builds one partial posting list with distinct, increasing
// document ids.
func randomPostings(rng *rand.Rand) *postings.List {
	list := postings.NewList()

	docID := rng.Uint32() % 1000
	for i := 0; i < 1+rng.Intn(postingsMax); i++ {
		if err := list.Add(docID, 1+rng.Uint32()%20); err != nil {
			log.Fatal(err)
		}

		docID += 1 + rng.Uint32()%1000
	}

	return list
}

func _write() {
	stopProfiler := startCpuProfiler("write")
	defer stopProfiler()

	os.RemoveAll(directory)

	if err := os.MkdirAll(directory, 0700); err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewSource(42))

	var stats vocab.CollectionStats
	for i := 0; i < numDocs; i++ {
		stats.AddDocument(uint64(50 + rng.Intn(500)))
	}

	vocabulary := vocab.NewVocabulary()

	for i := 0; i < numTerms; i++ {
		if i%100_000 == 0 {
			log.Printf("termsProcessed = %d\n", i)
		}

		entry := vocabulary.Entry(randomTerm(rng))

		for j := 0; j < 1+rng.Intn(numPartialsMax); j++ {
			list := randomPostings(rng)

			if err := entry.Accumulate(list.Iterator()); err != nil {
				log.Fatal(err)
			}
		}
	}

	postingOffset := uint64(0)

	for _, entry := range vocabulary.Entries() {
		if err := entry.FinalizeIDF(stats.DocumentCount()); err != nil {
			log.Fatal(err)
		}

		entry.PostingOffset = postingOffset
		entry.PostingSize = uint64(entry.DocFreq) * 8
		entry.FrequencyOffset = postingOffset + uint64(entry.DocFreq)*4
		postingOffset += entry.PostingSize
	}

	writer, err := vocab.NewVocabularyWriter(filepath.Join(directory, "vocabulary"))
	if err != nil {
		log.Fatal(err)
	}

	numTruncated, err := vocabulary.Write(writer)
	if err != nil {
		log.Fatal(err)
	}

	if err := writer.Close(); err != nil {
		log.Fatal(err)
	}

	statsWriter, err := vocab.NewCollectionStatsWriter(filepath.Join(directory, "collection.stats"))
	if err != nil {
		log.Fatal(err)
	}

	if err := statsWriter.Write(&stats); err != nil {
		log.Fatal(err)
	}

	if err := statsWriter.Close(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("wrote %d entries (%d truncated terms)\n", vocabulary.Len(), numTruncated)
}
