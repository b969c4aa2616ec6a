package vocab

import (
	"encoding/binary"
	"os"
)

// CollectionStats tracks the collection-wide counters needed at
// finalization time: total document count and total document length.
type CollectionStats struct {
	docCount    uint64
	totalLength uint64
}

func (stats *CollectionStats) AddDocument(length uint64) {
	stats.docCount++
	stats.totalLength += length
}

func (stats *CollectionStats) DocumentCount() uint64 {
	return stats.docCount
}

func (stats *CollectionStats) TotalLength() uint64 {
	return stats.totalLength
}

type CollectionStatsWriter struct {
	file *os.File
}

func NewCollectionStatsWriter(filename string) (*CollectionStatsWriter, error) {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0600)
	if err != nil {
		return nil, err
	}

	return &CollectionStatsWriter{
		file: file,
	}, nil
}

func (writer *CollectionStatsWriter) Write(stats *CollectionStats) error {
	buffer := make([]byte, 16)

	binary.BigEndian.PutUint64(buffer, stats.docCount)
	binary.BigEndian.PutUint64(buffer[8:], stats.totalLength)

	_, err := writer.file.Write(buffer)
	return err
}

func (writer *CollectionStatsWriter) Close() error {
	return writer.file.Close()
}

type CollectionStatsReader struct {
	file *os.File
}

func NewCollectionStatsReader(filename string) (*CollectionStatsReader, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	return &CollectionStatsReader{
		file: file,
	}, nil
}

func (reader *CollectionStatsReader) Read() (*CollectionStats, error) {
	buffer := make([]byte, 16)

	if _, err := reader.file.Read(buffer); err != nil {
		return nil, err
	}

	return &CollectionStats{
		docCount:    binary.BigEndian.Uint64(buffer),
		totalLength: binary.BigEndian.Uint64(buffer[8:]),
	}, nil
}

func (reader *CollectionStatsReader) Close() error {
	return reader.file.Close()
}
