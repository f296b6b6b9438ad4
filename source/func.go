package source

type funcSource[T any] struct {
	next func() (T, error)
}

// FromFunc returns a Source backed by a generator function. The function
// is called once per record and should return io.EOF when the sequence
// ends. It may produce an unbounded sequence.
func FromFunc[T any](next func() (T, error)) Source[T] {
	return &funcSource[T]{next: next}
}

func (s *funcSource[T]) Next() (T, error) {
	return s.next()
}
