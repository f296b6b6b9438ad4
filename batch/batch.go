package batch

import (
	"errors"
	"io"

	"github.com/recbatch/recbatch/source"
)

// Batcher groups the records of a single-pass source into batches that
// respect the configured limits. Records are pulled lazily, one at a time,
// and every emitted batch is non-empty, holds at most MaxBatchLen records
// and sums to at most MaxBatchSize. Record order is preserved within and
// across batches, and no record is duplicated.
//
// To create a Batcher, call New. The zero value is not usable.
//
// A Batcher is consumed with a scanner-style loop:
//
//	b, err := batch.New(src, batch.Config[string]{MaxBatchLen: 100})
//	if err != nil {
//	    return err
//	}
//	for b.Next() {
//	    send(b.Batch())
//	}
//	if err := b.Err(); err != nil {
//	    return err
//	}
//
// Each call to Next pulls just enough records from the source to assemble
// one batch, so memory use is bounded by the open batch, not by the input.
// This is the recommended consumption mode for large or unbounded sources.
// For finite, moderate-size sources, Batches collects everything at once.
//
// A Batcher makes exactly one pass over its source and is exhausted
// afterwards: once Next has returned false it keeps returning false. It is
// not safe for concurrent use; it is designed for a single consumer.
type Batcher[T any] struct {
	cfg    Config[T]
	src    source.Source[T]
	logger Logger
	stats  StatsCollector

	// pending holds the record that closed the previous batch; it opens
	// the next one. This is the only lookahead the engine keeps.
	pending     T
	pendingSize int
	hasPending  bool

	batch   []T
	batches uint64
	skipped uint64
	err     error
	started bool
	done    bool
}

// New creates a Batcher that reads from src under the limits in cfg.
// It returns a *ConfigurationError if src is nil, if neither MaxBatchLen
// nor MaxBatchSize is set, if any limit is negative, or if MaxRecordSize
// is set without a SizeFunc or exceeds MaxBatchSize.
func New[T any](src source.Source[T], cfg Config[T]) (*Batcher[T], error) {
	if src == nil {
		return nil, &ConfigurationError{Reason: "source must not be nil"}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Batcher[T]{
		cfg:    cfg,
		src:    src,
		logger: &NoOpLogger{},
		stats:  &NoOpStatsCollector{},
	}, nil
}

// WithLogger sets a custom logger for the Batcher.
// If not set, no logging occurs (uses NoOpLogger internally).
//
// Example:
//
//	b = b.WithLogger(batch.NewLogrusLogger(logrus.StandardLogger()))
//
// Panics if called after iteration has started to prevent confusion about
// which events were observed.
func (b *Batcher[T]) WithLogger(logger Logger) *Batcher[T] {
	if b.started {
		panic("batch: WithLogger cannot be called after iteration has started")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}
	b.logger = logger
	return b
}

// WithStats sets a custom stats collector for the Batcher.
// If not set, no statistics are collected (uses NoOpStatsCollector
// internally).
//
// Example:
//
//	stats := batch.NewBasicStatsCollector()
//	b = b.WithStats(stats)
//
//	// Later, retrieve statistics
//	current := stats.GetStats()
//
// Panics if called after iteration has started to prevent confusion about
// which events were counted.
func (b *Batcher[T]) WithStats(stats StatsCollector) *Batcher[T] {
	if b.started {
		panic("batch: WithStats cannot be called after iteration has started")
	}
	if stats == nil {
		stats = &NoOpStatsCollector{}
	}
	b.stats = stats
	return b
}

// Next assembles the next batch, pulling records from the source as
// needed. It returns true if a batch is available from Batch, false when
// the source is exhausted or an error occurred; Err tells the two apart.
//
// Next blocks only as long as the source blocks producing its next record.
// If the source is unbounded and limits are generous, a single call may
// pull many records before a limit closes the batch.
func (b *Batcher[T]) Next() bool {
	if b.done || b.err != nil {
		b.batch = nil
		return false
	}
	b.started = true

	var (
		cur     []T
		curSize int
	)
	if b.hasPending {
		cur = append(cur, b.pending)
		curSize = b.pendingSize
		b.hasPending = false
		var zero T
		b.pending = zero
	}

	for {
		r, err := b.src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				b.done = true
				if len(cur) == 0 {
					b.batch = nil
					return false
				}
				b.emit(cur, curSize)
				return true
			}
			b.fail(&SourceError{Err: err})
			b.stats.RecordSourceError()
			return false
		}
		b.stats.RecordRead()

		s := b.sizeOf(r)
		if limit := b.cfg.recordLimit(); limit > 0 && s > limit {
			if b.cfg.OnOversize == OversizeSkip {
				b.skipped++
				b.stats.RecordSkipped(s)
				b.logger.Debug("skipping record of size %d (limit %d)", s, limit)
				continue
			}
			b.fail(&RecordTooLargeError{Record: r, Size: s, Limit: limit})
			return false
		}

		// A record always enters an empty batch, even if it saturates a
		// limit by itself; the next record then closes the batch.
		if len(cur) > 0 && b.wouldOverflow(len(cur), curSize, s) {
			b.pending = r
			b.pendingSize = s
			b.hasPending = true
			b.emit(cur, curSize)
			return true
		}
		cur = append(cur, r)
		curSize += s
	}
}

// Batch returns the batch assembled by the last successful call to Next.
// The returned slice is owned by the caller; the Batcher does not reuse it.
func (b *Batcher[T]) Batch() []T {
	return b.batch
}

// Err returns the error that stopped iteration, if any. It returns nil
// while iteration is in progress and after a normal exhaustion of the
// source. Possible errors are *RecordTooLargeError and *SourceError.
func (b *Batcher[T]) Err() error {
	return b.err
}

// Batches drains the source and returns all batches in order. It is a
// collect-all wrapper over Next, intended for finite, moderate-size
// sources: if the source is unbounded, Batches never returns. On error it
// returns the batches emitted before the error together with the error.
func (b *Batcher[T]) Batches() ([][]T, error) {
	var out [][]T
	for b.Next() {
		out = append(out, b.Batch())
	}
	return out, b.Err()
}

// Skipped returns the number of records dropped so far under the
// OversizeSkip policy.
func (b *Batcher[T]) Skipped() uint64 {
	return b.skipped
}

func (b *Batcher[T]) sizeOf(r T) int {
	if b.cfg.SizeFunc == nil {
		return 1
	}
	return b.cfg.SizeFunc(r)
}

// wouldOverflow reports whether adding a record of size s to the current
// batch would violate either limit. The limits are independent: violating
// one of them is enough.
func (b *Batcher[T]) wouldOverflow(curLen, curSize, s int) bool {
	if b.cfg.MaxBatchLen > 0 && curLen+1 > b.cfg.MaxBatchLen {
		return true
	}
	if b.cfg.MaxBatchSize > 0 && curSize+s > b.cfg.MaxBatchSize {
		return true
	}
	return false
}

func (b *Batcher[T]) emit(cur []T, size int) {
	b.batch = cur
	b.batches++
	b.stats.RecordBatchEmitted(len(cur), size)
	b.logger.Debug("emitting batch %d: %d record(s), size %d", b.batches, len(cur), size)
}

// fail records the terminal error. The partially assembled batch is
// discarded: only batches already emitted remain visible to the caller.
func (b *Batcher[T]) fail(err error) {
	b.err = err
	b.batch = nil
	b.logger.Error("batching stopped: %v", err)
}
