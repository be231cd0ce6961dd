package relay

import (
	"time"

	"github.com/google/uuid"
)

type kind uint8

const (
	kindEmpty kind = iota
	kindItem
	kindFinish
	kindFailure
)

// Message is the tagged hand-off unit between worker and stream.
// Exactly one of three variants: an item carrying a value, a finish
// marker, or a failure carrying an error. A run sends zero or more
// items followed by exactly one terminal message.
type Message[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	kind      kind
}

func Item[T any](v T) Message[T] {
	return Message[T]{
		value:     v,
		kind:      kindItem,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Finish[T any]() Message[T] {
	return Message[T]{
		kind:      kindFinish,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T any](err error) Message[T] {
	return Message[T]{
		err:       err,
		kind:      kindFailure,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (m Message[T]) Value() T {
	return m.value
}

func (m Message[T]) Err() error {
	return m.err
}

func (m Message[T]) IsItem() bool {
	return m.kind == kindItem
}

func (m Message[T]) IsFinish() bool {
	return m.kind == kindFinish
}

func (m Message[T]) IsFailure() bool {
	return m.kind == kindFailure
}

// IsTerminal reports whether the message ends the run.
func (m Message[T]) IsTerminal() bool {
	return m.kind == kindFinish || m.kind == kindFailure
}

// IsEmpty reports whether the message is the zero value, as returned
// by a timed-out retrieval.
func (m Message[T]) IsEmpty() bool {
	return m.kind == kindEmpty
}

func (m Message[T]) CreatedAt() time.Time {
	return m.createdAt
}

func (m Message[T]) Id() uuid.UUID {
	return m.id
}
