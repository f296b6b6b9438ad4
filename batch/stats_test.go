package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recbatch/recbatch/batch"
	"github.com/recbatch/recbatch/source"
)

func TestBasicStatsCollector(t *testing.T) {
	records := [][]byte{
		[]byte("a"), []byte("a"), []byte("a"),
		[]byte("b"), []byte("ccc"),
		[]byte("toolargeforbatch"),
		[]byte("dd"), []byte("e"),
	}

	stats := batch.NewBasicStatsCollector()
	b, err := batch.New(source.FromSlice(records), batch.Config[[]byte]{
		MaxBatchLen:  3,
		MaxBatchSize: 5,
		SizeFunc:     batch.ByteLen,
		OnOversize:   batch.OversizeSkip,
	})
	require.NoError(t, err)
	b.WithStats(stats)

	_, err = b.Batches()
	require.NoError(t, err)

	s := stats.GetStats()
	assert.Equal(t, uint64(8), s.RecordsRead)
	assert.Equal(t, uint64(3), s.BatchesEmitted)
	assert.Equal(t, uint64(1), s.RecordsSkipped)
	// The single dropped record is "toolargeforbatch", 16 bytes.
	assert.Equal(t, uint64(16), s.SkippedSize)
	assert.Equal(t, uint64(0), s.SourceErrors)
	// Batch sizes are 3 (a a a), 4 (b ccc) and 3 (dd e).
	assert.Equal(t, uint64(10), s.TotalBatchedSize)
	assert.Equal(t, 2, s.MinBatchLen)
	assert.Equal(t, 3, s.MaxBatchLen)
	assert.Equal(t, 3, s.MinBatchSize)
	assert.Equal(t, 4, s.MaxBatchSize)

	assert.InDelta(t, 7.0/3.0, s.AverageBatchLen(), 1e-9)
	assert.InDelta(t, 10.0/3.0, s.AverageBatchSize(), 1e-9)
	assert.False(t, s.LastUpdateTime.Before(s.StartTime))
}

func TestBasicStatsCollector_SourceError(t *testing.T) {
	stats := batch.NewBasicStatsCollector()
	b, err := batch.New(source.Err[int](assert.AnError), batch.Config[int]{MaxBatchLen: 2})
	require.NoError(t, err)
	b.WithStats(stats)

	assert.False(t, b.Next())
	assert.Equal(t, uint64(1), stats.GetStats().SourceErrors)
}

func TestStatsZeroValues(t *testing.T) {
	var s batch.Stats
	assert.Zero(t, s.AverageBatchLen())
	assert.Zero(t, s.AverageBatchSize())

	noop := &batch.NoOpStatsCollector{}
	noop.RecordRead()
	noop.RecordBatchEmitted(3, 9)
	noop.RecordSkipped(12)
	noop.RecordSourceError()
	assert.Equal(t, batch.Stats{}, noop.GetStats())
}
