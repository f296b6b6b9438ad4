// Package recbatch groups sequences of records into bounded batches. The
// core engine lives in the batch package; it reads from an implementation
// of the source.Source interface and emits batches limited by a maximum
// record count, a maximum summed size, or both. Some Source
// implementations are provided in the source package, or you can create
// your own custom one.
//
// This package provides the convenience surface: a Builder for assembling
// a configured batcher, one-call helpers for slices and channels, and a
// sequential consumption loop.
//
//	batches, err := recbatch.Slice(records, batch.Config[string]{
//	    MaxBatchLen: 100,
//	})
//
// For large or unbounded inputs, build a batcher and iterate it lazily:
//
//	b, err := recbatch.NewBuilder[string]().
//	    WithMaxBatchSize(1 << 20).
//	    WithSizeFunc(batch.StringLen).
//	    Batcher(source.FromChannel(ch))
//	if err != nil {
//	    return err
//	}
//	err = recbatch.Each(b, func(batch []string) error {
//	    return sink.Write(batch)
//	})
package recbatch
