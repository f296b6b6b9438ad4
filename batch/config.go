package batch

import "fmt"

// SizeFunc measures the cost of a single record in caller-defined units
// (bytes, rows, weight). It must be pure and is called exactly once per
// record pulled from the source. A panic inside a SizeFunc propagates
// unmodified to the caller of Next.
type SizeFunc[T any] func(record T) int

// ByteLen is a SizeFunc that measures a record by its length in bytes.
func ByteLen(record []byte) int { return len(record) }

// StringLen is a SizeFunc that measures a record by its length in bytes.
func StringLen(record string) int { return len(record) }

// OversizePolicy determines what happens to a record whose own size
// exceeds the per-record limit, so that it can never fit in any batch.
type OversizePolicy int

const (
	// OversizeError aborts iteration with a RecordTooLargeError when an
	// oversized record is encountered. This is the default.
	OversizeError OversizePolicy = iota

	// OversizeSkip silently drops oversized records; they never appear in
	// any batch. The number of dropped records is reported by
	// Batcher.Skipped.
	OversizeSkip
)

// String returns the string representation of the policy.
func (p OversizePolicy) String() string {
	switch p {
	case OversizeError:
		return "error"
	case OversizeSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// ParseOversizePolicy parses a policy name ("error" or "skip") as used in
// configuration files and command line flags.
func ParseOversizePolicy(s string) (OversizePolicy, error) {
	switch s {
	case "error":
		return OversizeError, nil
	case "skip":
		return OversizeSkip, nil
	default:
		return 0, &ConfigurationError{Reason: fmt.Sprintf("unknown oversize policy %q (want %q or %q)", s, "error", "skip")}
	}
}

// Config contains the limits and policies for a Batcher. A zero limit
// means "no limit"; at least one of MaxBatchLen and MaxBatchSize must be
// set. The config is validated by New and cannot change for the life of
// the Batcher.
type Config[T any] struct {
	// MaxBatchLen is the maximum number of records per batch.
	// Zero means the record count per batch is unbounded.
	MaxBatchLen int

	// MaxBatchSize is the maximum summed size per batch, as measured by
	// SizeFunc. Zero means the summed size per batch is unbounded.
	MaxBatchSize int

	// MaxRecordSize is the maximum size of a single record. Records larger
	// than this are handled according to OnOversize. Zero means the limit
	// defaults to MaxBatchSize, since a record larger than the whole batch
	// budget can never be placed. Setting MaxRecordSize requires SizeFunc.
	MaxRecordSize int

	// SizeFunc measures records. If nil, every record costs 1, so
	// MaxBatchSize degenerates to a record count limit.
	SizeFunc SizeFunc[T]

	// OnOversize selects the handling of records that exceed the
	// per-record limit. The zero value is OversizeError.
	OnOversize OversizePolicy
}

// validate checks the config for contradictions. It returns a
// *ConfigurationError describing the first problem found.
func (c *Config[T]) validate() error {
	if c.MaxBatchLen < 0 {
		return &ConfigurationError{Reason: fmt.Sprintf("MaxBatchLen must not be negative, got %d", c.MaxBatchLen)}
	}
	if c.MaxBatchSize < 0 {
		return &ConfigurationError{Reason: fmt.Sprintf("MaxBatchSize must not be negative, got %d", c.MaxBatchSize)}
	}
	if c.MaxRecordSize < 0 {
		return &ConfigurationError{Reason: fmt.Sprintf("MaxRecordSize must not be negative, got %d", c.MaxRecordSize)}
	}
	if c.MaxBatchLen == 0 && c.MaxBatchSize == 0 {
		return &ConfigurationError{Reason: "at least one of MaxBatchLen and MaxBatchSize must be set"}
	}
	if c.MaxRecordSize > 0 && c.SizeFunc == nil {
		return &ConfigurationError{Reason: "MaxRecordSize requires a SizeFunc"}
	}
	if c.MaxRecordSize > 0 && c.MaxBatchSize > 0 && c.MaxRecordSize > c.MaxBatchSize {
		return &ConfigurationError{Reason: fmt.Sprintf("MaxRecordSize (%d) must not exceed MaxBatchSize (%d)", c.MaxRecordSize, c.MaxBatchSize)}
	}
	if c.OnOversize != OversizeError && c.OnOversize != OversizeSkip {
		return &ConfigurationError{Reason: fmt.Sprintf("invalid oversize policy %d", c.OnOversize)}
	}
	return nil
}

// recordLimit returns the effective per-record size limit, or zero if
// record sizes are unbounded.
func (c *Config[T]) recordLimit() int {
	if c.MaxRecordSize > 0 {
		return c.MaxRecordSize
	}
	return c.MaxBatchSize
}
