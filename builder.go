package recbatch

import (
	"github.com/recbatch/recbatch/batch"
	"github.com/recbatch/recbatch/source"
)

// Builder assembles a batch.Batcher from individual settings. The With
// methods do not modify the Builder they operate on, and instead return a
// new Builder based on the original, so a partially configured Builder can
// be shared and specialized.
type Builder[T any] struct {
	cfg    batch.Config[T]
	logger batch.Logger
	stats  batch.StatsCollector
}

// NewBuilder returns an empty Builder. At least one of WithMaxBatchLen and
// WithMaxBatchSize must be applied before Batcher is called, otherwise
// construction fails with a *batch.ConfigurationError.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// WithMaxBatchLen returns a Builder whose batches hold at most maxLen
// records.
func (b *Builder[T]) WithMaxBatchLen(maxLen int) *Builder[T] {
	nb := *b
	nb.cfg.MaxBatchLen = maxLen
	return &nb
}

// WithMaxBatchSize returns a Builder whose batches sum to at most maxSize,
// as measured by the size function.
func (b *Builder[T]) WithMaxBatchSize(maxSize int) *Builder[T] {
	nb := *b
	nb.cfg.MaxBatchSize = maxSize
	return &nb
}

// WithMaxRecordSize returns a Builder that limits the size of individual
// records. Records above the limit are handled per the oversize policy.
func (b *Builder[T]) WithMaxRecordSize(maxSize int) *Builder[T] {
	nb := *b
	nb.cfg.MaxRecordSize = maxSize
	return &nb
}

// WithSizeFunc returns a Builder that measures records with fn instead of
// counting every record as 1.
func (b *Builder[T]) WithSizeFunc(fn batch.SizeFunc[T]) *Builder[T] {
	nb := *b
	nb.cfg.SizeFunc = fn
	return &nb
}

// WithOversizePolicy returns a Builder with the given handling of records
// that can never fit in any batch.
func (b *Builder[T]) WithOversizePolicy(policy batch.OversizePolicy) *Builder[T] {
	nb := *b
	nb.cfg.OnOversize = policy
	return &nb
}

// WithLogger returns a Builder whose batchers log through logger.
func (b *Builder[T]) WithLogger(logger batch.Logger) *Builder[T] {
	nb := *b
	nb.logger = logger
	return &nb
}

// WithStats returns a Builder whose batchers report to stats.
func (b *Builder[T]) WithStats(stats batch.StatsCollector) *Builder[T] {
	nb := *b
	nb.stats = stats
	return &nb
}

// Batcher constructs a batcher reading from src with the accumulated
// settings.
func (b *Builder[T]) Batcher(src source.Source[T]) (*batch.Batcher[T], error) {
	bt, err := batch.New(src, b.cfg)
	if err != nil {
		return nil, err
	}
	if b.logger != nil {
		bt.WithLogger(b.logger)
	}
	if b.stats != nil {
		bt.WithStats(b.stats)
	}
	return bt, nil
}
