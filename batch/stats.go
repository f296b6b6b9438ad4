package batch

import (
	"sync"
	"sync/atomic"
	"time"
)

// StatsCollector defines the interface for collecting metrics during
// batching. Implementations can store metrics in memory or export them to
// monitoring systems. The StatsCollector is optional - if not provided,
// no statistics are collected.
type StatsCollector interface {
	// RecordRead is called for each record pulled from the source.
	RecordRead()

	// RecordBatchEmitted is called when a batch is emitted.
	// length is the number of records, size their summed measure.
	RecordBatchEmitted(length, size int)

	// RecordSkipped is called when an oversized record is dropped under
	// the OversizeSkip policy.
	RecordSkipped(size int)

	// RecordSourceError is called when the source fails.
	RecordSourceError()

	// GetStats returns a snapshot of the current statistics.
	GetStats() Stats
}

// Stats holds aggregated statistics about a batching run.
type Stats struct {
	// RecordsRead is the total number of records pulled from the source.
	RecordsRead uint64

	// BatchesEmitted is the total number of batches emitted.
	BatchesEmitted uint64

	// RecordsSkipped is the total number of oversized records dropped.
	RecordsSkipped uint64

	// SkippedSize is the summed size of all dropped records.
	SkippedSize uint64

	// SourceErrors is the total number of errors from the source.
	SourceErrors uint64

	// TotalBatchedSize is the summed size of all emitted batches.
	TotalBatchedSize uint64

	// MinBatchLen is the smallest batch emitted, in records.
	MinBatchLen int

	// MaxBatchLen is the largest batch emitted, in records.
	MaxBatchLen int

	// MinBatchSize is the smallest batch emitted, by summed size.
	MinBatchSize int

	// MaxBatchSize is the largest batch emitted, by summed size.
	MaxBatchSize int

	// StartTime is when statistics collection began.
	StartTime time.Time

	// LastUpdateTime is when statistics were last updated.
	LastUpdateTime time.Time
}

// AverageBatchLen returns the average number of records per emitted batch.
// Returns 0 if no batches have been emitted.
func (s *Stats) AverageBatchLen() float64 {
	if s.BatchesEmitted == 0 {
		return 0
	}
	batched := s.RecordsRead - s.RecordsSkipped
	return float64(batched) / float64(s.BatchesEmitted)
}

// AverageBatchSize returns the average summed size per emitted batch.
// Returns 0 if no batches have been emitted.
func (s *Stats) AverageBatchSize() float64 {
	if s.BatchesEmitted == 0 {
		return 0
	}
	return float64(s.TotalBatchedSize) / float64(s.BatchesEmitted)
}

// Duration returns the total duration since statistics collection started.
func (s *Stats) Duration() time.Duration {
	return s.LastUpdateTime.Sub(s.StartTime)
}

// NoOpStatsCollector is a stats collector that discards all metrics.
// It implements the StatsCollector interface but performs no operations.
// This is the default stats collector when none is specified.
type NoOpStatsCollector struct{}

// RecordRead implements the StatsCollector interface.
func (n *NoOpStatsCollector) RecordRead() {}

// RecordBatchEmitted implements the StatsCollector interface.
func (n *NoOpStatsCollector) RecordBatchEmitted(length, size int) {}

// RecordSkipped implements the StatsCollector interface.
func (n *NoOpStatsCollector) RecordSkipped(size int) {}

// RecordSourceError implements the StatsCollector interface.
func (n *NoOpStatsCollector) RecordSourceError() {}

// GetStats implements the StatsCollector interface.
func (n *NoOpStatsCollector) GetStats() Stats {
	return Stats{}
}

// BasicStatsCollector is a simple in-memory implementation of
// StatsCollector. The engine itself is single-threaded, but GetStats may
// be called from other goroutines, so all operations are thread-safe.
type BasicStatsCollector struct {
	mu    sync.RWMutex
	stats Stats

	// Atomic counters for lock-free updates
	recordsRead    uint64
	batchesEmitted uint64
	recordsSkipped uint64
	skippedSize    uint64
	sourceErrors   uint64
	totalSize      uint64
}

// NewBasicStatsCollector creates a new BasicStatsCollector.
func NewBasicStatsCollector() *BasicStatsCollector {
	now := time.Now()
	return &BasicStatsCollector{
		stats: Stats{
			StartTime:      now,
			LastUpdateTime: now,
		},
	}
}

// RecordRead implements the StatsCollector interface.
func (b *BasicStatsCollector) RecordRead() {
	atomic.AddUint64(&b.recordsRead, 1)
}

// RecordBatchEmitted implements the StatsCollector interface.
func (b *BasicStatsCollector) RecordBatchEmitted(length, size int) {
	atomic.AddUint64(&b.batchesEmitted, 1)
	atomic.AddUint64(&b.totalSize, uint64(size))

	b.mu.Lock()
	defer b.mu.Unlock()

	b.stats.LastUpdateTime = time.Now()

	if length < b.stats.MinBatchLen || b.stats.MinBatchLen == 0 {
		b.stats.MinBatchLen = length
	}
	if length > b.stats.MaxBatchLen {
		b.stats.MaxBatchLen = length
	}
	if size < b.stats.MinBatchSize || b.stats.MinBatchSize == 0 {
		b.stats.MinBatchSize = size
	}
	if size > b.stats.MaxBatchSize {
		b.stats.MaxBatchSize = size
	}
}

// RecordSkipped implements the StatsCollector interface.
func (b *BasicStatsCollector) RecordSkipped(size int) {
	atomic.AddUint64(&b.recordsSkipped, 1)
	atomic.AddUint64(&b.skippedSize, uint64(size))

	b.mu.Lock()
	defer b.mu.Unlock()
	b.stats.LastUpdateTime = time.Now()
}

// RecordSourceError implements the StatsCollector interface.
func (b *BasicStatsCollector) RecordSourceError() {
	atomic.AddUint64(&b.sourceErrors, 1)
}

// GetStats implements the StatsCollector interface.
// It returns a snapshot of the current statistics.
func (b *BasicStatsCollector) GetStats() Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()

	stats := b.stats
	stats.RecordsRead = atomic.LoadUint64(&b.recordsRead)
	stats.BatchesEmitted = atomic.LoadUint64(&b.batchesEmitted)
	stats.RecordsSkipped = atomic.LoadUint64(&b.recordsSkipped)
	stats.SkippedSize = atomic.LoadUint64(&b.skippedSize)
	stats.SourceErrors = atomic.LoadUint64(&b.sourceErrors)
	stats.TotalBatchedSize = atomic.LoadUint64(&b.totalSize)

	return stats
}
