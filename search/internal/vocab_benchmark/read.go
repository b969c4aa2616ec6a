package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/mbellotti/egret/search/vocab"
	"golang.org/x/exp/rand"
)

const numLookups = 1_000_000

func _read() {
	stopProfiler := startCpuProfiler("read")
	defer stopProfiler()

	reader, err := vocab.NewVocabularyReader(filepath.Join(directory, "vocabulary"))
	if err != nil {
		log.Fatal(err)
	}
	defer reader.Close()

	count := reader.Count()
	log.Printf("entries = %d\n", count)

	start := time.Now()

	scanner := reader.Scanner()
	scanned := 0
	for {
		_, err := scanner.Next()
		if err == vocab.ErrEndOfData {
			break
		}
		if err != nil {
			log.Fatal(err)
		}

		scanned++
	}

	elapsed := time.Since(start)
	fmt.Printf("sequential scan of %d entries: %d ms\n", scanned, elapsed.Milliseconds())

	rng := rand.New(rand.NewSource(42))

	start = time.Now()

	for i := 0; i < numLookups; i++ {
		id := vocab.TermID(rng.Intn(count))

		if _, err := reader.Entry(id); err != nil {
			log.Fatal(err)
		}
	}

	elapsed = time.Since(start)
	fmt.Printf("%d random lookups: %d ms\n", numLookups, elapsed.Milliseconds())
}
