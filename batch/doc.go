// Package batch contains a windowing engine that groups a single-pass
// sequence of records into bounded batches. The main type is Batcher,
// which is created using New. It pulls records from an implementation of
// the source.Source interface and emits batches that respect two
// independent limits: MaxBatchLen (records per batch) and MaxBatchSize
// (summed size per batch, measured by an injected SizeFunc).
//
// A new batch is started as soon as adding the incoming record to the
// current batch would violate either limit. A record is always admitted
// into an empty batch, so a record whose size equals the limit fills and
// closes a batch by itself. Records whose own size exceeds the per-record
// limit can never fit in any batch; depending on the OversizePolicy they
// are either skipped entirely or abort the iteration with a
// RecordTooLargeError.
//
// A few examples, with sizes measured by record length:
//
// MaxBatchLen = 3. Records a, b, c, d are grouped as [a b c], [d].
//
// MaxBatchSize = 5. Records aa, bb, cc are grouped as [aa bb], [cc]:
// adding cc to the first batch would sum to 6.
//
// MaxBatchLen = 3, MaxBatchSize = 5. Both limits are checked per record;
// whichever would be violated first closes the batch.
//
// The engine is strictly online: it consumes its source exactly once, in
// order, keeping at most one record of lookahead (the record that closed
// the previous batch opens the next one). Memory use is bounded by the
// open batch, never by the total input.
package batch
