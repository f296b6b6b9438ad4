package source

type errorSource[T any] struct {
	err error
}

// Err returns a Source that produces no records and fails every Next call
// with err. It is useful for testing error handling in consumers.
func Err[T any](err error) Source[T] {
	return &errorSource[T]{err: err}
}

func (s *errorSource[T]) Next() (T, error) {
	var zero T
	return zero, s.err
}
