package source

import (
	"context"
	"io"
)

type channelSource[T any] struct {
	items <-chan T
}

// FromChannel returns a Source that receives records from items until the
// channel is closed. Next blocks with the channel, so a producer that
// never sends and never closes will block the consumer indefinitely.
func FromChannel[T any](items <-chan T) Source[T] {
	return &channelSource[T]{items: items}
}

func (s *channelSource[T]) Next() (T, error) {
	r, ok := <-s.items
	if !ok {
		var zero T
		return zero, io.EOF
	}
	return r, nil
}

type contextChannelSource[T any] struct {
	ctx   context.Context
	items <-chan T
}

// FromContextChannel is like FromChannel but stops early when ctx is
// canceled, returning ctx.Err. Records already received are unaffected.
func FromContextChannel[T any](ctx context.Context, items <-chan T) Source[T] {
	return &contextChannelSource[T]{ctx: ctx, items: items}
}

func (s *contextChannelSource[T]) Next() (T, error) {
	var zero T
	select {
	case <-s.ctx.Done():
		return zero, s.ctx.Err()
	case r, ok := <-s.items:
		if !ok {
			return zero, io.EOF
		}
		return r, nil
	}
}
