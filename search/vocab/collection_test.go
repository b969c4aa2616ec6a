package vocab

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionStatsCounters(t *testing.T) {
	var stats CollectionStats

	stats.AddDocument(120)
	stats.AddDocument(80)
	stats.AddDocument(250)

	assert.Equal(t, uint64(3), stats.DocumentCount())
	assert.Equal(t, uint64(450), stats.TotalLength())
}

func TestCollectionStatsRoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "collection.stats")

	var stats CollectionStats
	for i := 0; i < 1000; i++ {
		stats.AddDocument(42)
	}

	writer, err := NewCollectionStatsWriter(filename)
	require.NoError(t, err)

	require.NoError(t, writer.Write(&stats))
	require.NoError(t, writer.Close())

	reader, err := NewCollectionStatsReader(filename)
	require.NoError(t, err)
	defer reader.Close()

	loaded, err := reader.Read()
	require.NoError(t, err)

	assert.Equal(t, uint64(1000), loaded.DocumentCount())
	assert.Equal(t, uint64(42000), loaded.TotalLength())
}
