package bridge

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/ib-77/relay/pkg/relay"
	"github.com/ib-77/relay/pkg/relay/handoff"
)

// errAbandoned marks an item offer that timed out: the consumer
// stopped retrieving. The run ends silently, no terminal message.
var errAbandoned = errors.New("consumer abandoned run")

type worker[T any] struct {
	ctx    context.Context
	id     uuid.UUID
	slot   *handoff.Slot[T]
	track  *relay.Tracker
	open   relay.SourceFactory[T]
	scope  relay.Scope
	onElem relay.OnElement[T]
	log    zerolog.Logger
	met    *Metrics
}

// run executes one full transfer inside the scope and offers exactly
// one terminal message, best-effort. Only an item-offer timeout is
// silent; every other failure becomes a Failure message.
func (w *worker[T]) run() {
	begin := time.Now()

	err := w.guarded()
	switch {
	case err == nil:
		w.slot.Offer(relay.Finish[T](), w.track.Timeout())
		w.log.Debug().Stringer("run", w.id).Msg("transfer finished")
		w.met.observeRun(OutcomeFinish, begin)
	case errors.Is(err, errAbandoned):
		w.log.Warn().Stringer("run", w.id).Msg("offer timed out, abandoning run")
		w.met.observeRun(OutcomeAbandoned, begin)
	default:
		w.slot.Offer(relay.Failure[T](err), w.track.Timeout())
		w.log.Error().Stringer("run", w.id).Err(err).Msg("transfer failed")
		w.met.observeRun(OutcomeFailure, begin)
	}
}

// guarded turns a panic anywhere inside the scope or the transfer into
// an ordinary failure, so it reaches the consumer as a message instead
// of killing the worker goroutine.
func (w *worker[T]) guarded() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = pkgerrors.Errorf("transfer panicked: %v", r)
		}
	}()
	return w.scope.Run(w.transfer)
}

func (w *worker[T]) transfer() (err error) {
	src, err := w.open(w.ctx)
	if err != nil {
		return pkgerrors.Wrap(err, "open source")
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			err = pkgerrors.Wrap(cerr, "close source")
		}
	}()

	w.log.Debug().Stringer("run", w.id).Msg("transfer started")

	for {
		v, nerr := src.Next()
		if nerr == io.EOF {
			return nil
		}
		if nerr != nil {
			return pkgerrors.Wrap(nerr, "pull element")
		}

		if w.onElem != nil {
			w.onElem(v)
		}

		if !w.slot.Offer(relay.Item(v), w.track.Timeout()) {
			return errAbandoned
		}
		w.track.Advance()
		w.met.Items.Add(1)
	}
}
