package relay

import (
	"context"
	"io"
)

type funcSource[T any] struct {
	next  func() (T, error)
	close func() error
}

func (s funcSource[T]) Next() (T, error) {
	return s.next()
}

func (s funcSource[T]) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// FromFunc builds a Source from a next function and an optional close
// function. next must return io.EOF at exhaustion.
func FromFunc[T any](next func() (T, error), close func() error) Source[T] {
	return funcSource[T]{next: next, close: close}
}

// FromSlice returns a factory producing a source over a copy of values.
func FromSlice[T any](values []T) SourceFactory[T] {
	return func(ctx context.Context) (Source[T], error) {
		cpy := make([]T, len(values))
		copy(cpy, values)

		var idx int
		return FromFunc(func() (T, error) {
			var zero T
			if err := ctx.Err(); err != nil {
				return zero, err
			}
			if idx >= len(cpy) {
				return zero, io.EOF
			}
			v := cpy[idx]
			idx++
			return v, nil
		}, nil), nil
	}
}
