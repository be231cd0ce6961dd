package handoff

import (
	"time"

	"github.com/ib-77/relay/pkg/relay"
)

// Slot is the capacity-one rendezvous between one worker and one
// stream. An offer succeeds only if a retrieval accepts the message
// within the timeout, so at most one message is ever in flight.
type Slot[T any] struct {
	ch chan relay.Message[T]
}

func New[T any]() *Slot[T] {
	return &Slot[T]{ch: make(chan relay.Message[T])}
}

// Offer places m into the slot, waiting up to timeout for a matching
// retrieval. It reports whether the hand-off happened.
func (s *Slot[T]) Offer(m relay.Message[T], timeout time.Duration) bool {
	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case s.ch <- m:
		return true
	case <-t.C:
		return false
	}
}

// Retrieve takes the pending message, waiting up to timeout for a
// matching offer. The second result is false when nothing arrived in
// time; the returned message is then empty.
func (s *Slot[T]) Retrieve(timeout time.Duration) (relay.Message[T], bool) {
	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case m := <-s.ch:
		return m, true
	case <-t.C:
		return relay.Message[T]{}, false
	}
}
