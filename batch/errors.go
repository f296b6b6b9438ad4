package batch

import "fmt"

// ConfigurationError is returned by New when the configuration is
// contradictory or incomplete, for example when no limit is set at all.
// No Batcher is produced in that case.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("batch: invalid configuration: %s", e.Reason)
}

// RecordTooLargeError is reported by Err when a record's measured size
// exceeds the per-record limit and the policy is OversizeError. Iteration
// stops at the offending record; batches emitted earlier remain valid.
type RecordTooLargeError struct {
	// Record is the offending record.
	Record any

	// Size is the measured size of the record.
	Size int

	// Limit is the per-record size limit that was exceeded.
	Limit int
}

func (e *RecordTooLargeError) Error() string {
	return fmt.Sprintf("batch: record size %d exceeds limit %d: %v", e.Size, e.Limit, e.Record)
}

// SourceError wraps a failure reported by the record source, so the caller
// can distinguish source failures from batching failures.
type SourceError struct {
	Err error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("batch: source error: %v", e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
