package bridge

import (
	"io"
	"iter"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ib-77/relay/pkg/relay"
	"github.com/ib-77/relay/pkg/relay/handoff"
)

// Stream is the consumer-facing side of a run. It is single-consumer:
// Next must not be called concurrently. It never buffers more than the
// one message it just retrieved.
type Stream[T any] struct {
	slot  *handoff.Slot[T]
	track *relay.Tracker
	id    uuid.UUID
	log   zerolog.Logger
	term  error
	done  bool
}

func newStream[T any](id uuid.UUID, slot *handoff.Slot[T], track *relay.Tracker, log zerolog.Logger) *Stream[T] {
	return &Stream[T]{
		slot:  slot,
		track: track,
		id:    id,
		log:   log,
	}
}

// Next performs one timed retrieval and yields the next element in
// source order. It returns io.EOF on normal completion, the worker's
// error on failure, and relay.ErrTimeout when no message arrived in
// time. After a terminal result the same error is returned again
// without touching the slot.
func (s *Stream[T]) Next() (T, error) {
	var zero T

	if s.done {
		return zero, s.term
	}

	m, ok := s.slot.Retrieve(s.track.Timeout())
	if !ok {
		s.done = true
		s.term = relay.ErrTimeout
		s.log.Warn().Stringer("run", s.id).Msg("retrieve timed out")
		return zero, s.term
	}
	s.track.Advance()

	switch {
	case m.IsItem():
		return m.Value(), nil
	case m.IsFinish():
		s.done = true
		s.term = io.EOF
		return zero, s.term
	default:
		s.done = true
		s.term = m.Err()
		return zero, s.term
	}
}

// Id returns the run id shared with the worker.
func (s *Stream[T]) Id() uuid.UUID {
	return s.id
}

// Seq adapts the stream to a range-over-func sequence. Completion ends
// the range silently; any other terminal outcome is yielded once as a
// non-nil error. Breaking out of the range stops demand, which the
// worker observes as an offer timeout.
func (s *Stream[T]) Seq() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			v, err := s.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Collect drains the stream into a slice. On failure the elements
// delivered before the failure are returned alongside the error.
func (s *Stream[T]) Collect() ([]T, error) {
	res := make([]T, 0)
	for {
		v, err := s.Next()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return res, err
		}
		res = append(res, v)
	}
}
