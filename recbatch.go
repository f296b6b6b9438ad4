package recbatch

import (
	"github.com/recbatch/recbatch/batch"
	"github.com/recbatch/recbatch/source"
)

// Slice batches a slice of records eagerly and returns all batches in
// order. It is shorthand for constructing a slice source, a batcher, and
// draining it with Batches.
func Slice[T any](records []T, cfg batch.Config[T]) ([][]T, error) {
	b, err := batch.New(source.FromSlice(records), cfg)
	if err != nil {
		return nil, err
	}
	return b.Batches()
}

// Channel returns a lazy batcher reading from ch until it is closed.
func Channel[T any](ch <-chan T, cfg batch.Config[T]) (*batch.Batcher[T], error) {
	return batch.New(source.FromChannel(ch), cfg)
}

// Each drains b, calling fn once per batch, in order, on the calling
// goroutine. It stops at the first error from fn and returns it; otherwise
// it returns the error that stopped b, if any.
func Each[T any](b *batch.Batcher[T], fn func(records []T) error) error {
	for b.Next() {
		if err := fn(b.Batch()); err != nil {
			return err
		}
	}
	return b.Err()
}

// Must is a helper that panics on err and otherwise returns b. It can be
// used to chain construction in examples and tests:
//
//	b := recbatch.Must(recbatch.NewBuilder[int]().WithMaxBatchLen(10).Batcher(src))
func Must[T any](b *batch.Batcher[T], err error) *batch.Batcher[T] {
	if err != nil {
		panic(err)
	}
	return b
}
