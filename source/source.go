package source

// Source supplies records to a batcher, one at a time. The sequence ends
// when Next returns io.EOF; any other error aborts the consumer.
//
// A Source is a single-pass, consumable resource: once Next has returned
// io.EOF, every later call must keep returning io.EOF. Sources are pulled
// from exactly one goroutine and do not need to be safe for concurrent use.
type Source[T any] interface {
	// Next returns the next record in the sequence. It blocks only as long
	// as producing the record blocks. At the end of the sequence it returns
	// the zero value of T and io.EOF.
	Next() (T, error)
}
