package source

import (
	"io"
	"iter"
)

type seqSource[T any] struct {
	next func() (T, bool)
	stop func()
}

// FromSeq adapts a range-over-func iterator into a Source. The sequence is
// pulled lazily; the underlying iterator is stopped when it is exhausted.
func FromSeq[T any](seq iter.Seq[T]) Source[T] {
	next, stop := iter.Pull(seq)
	return &seqSource[T]{next: next, stop: stop}
}

func (s *seqSource[T]) Next() (T, error) {
	r, ok := s.next()
	if !ok {
		s.stop()
		var zero T
		return zero, io.EOF
	}
	return r, nil
}
