package source

import "io"

type sliceSource[T any] struct {
	records []T
	pos     int
}

// FromSlice returns a Source that yields the elements of records in order.
// The slice is not copied; the caller should not modify it while the
// source is being consumed.
func FromSlice[T any](records []T) Source[T] {
	return &sliceSource[T]{records: records}
}

func (s *sliceSource[T]) Next() (T, error) {
	if s.pos >= len(s.records) {
		var zero T
		return zero, io.EOF
	}
	r := s.records[s.pos]
	s.pos++
	return r, nil
}
