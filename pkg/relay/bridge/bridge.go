package bridge

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ib-77/relay/pkg/relay"
	"github.com/ib-77/relay/pkg/relay/handoff"
)

// Config is the whole configuration surface of a run: the timeout
// policy and the execution context the worker runs on.
type Config struct {
	Policy   relay.Policy
	Executor relay.Executor
}

type options[T any] struct {
	scope  relay.Scope
	onElem relay.OnElement[T]
	log    zerolog.Logger
	met    *Metrics
}

type Option[T any] func(*options[T])

// WithScope wraps the whole transfer in the given scope, e.g. a
// read-only transaction.
func WithScope[T any](s relay.Scope) Option[T] {
	return func(o *options[T]) {
		o.scope = s
	}
}

// WithOnElement installs the per-element hook, invoked on the worker
// once per element before it is offered.
func WithOnElement[T any](h relay.OnElement[T]) Option[T] {
	return func(o *options[T]) {
		o.onElem = h
	}
}

func WithLogger[T any](log zerolog.Logger) Option[T] {
	return func(o *options[T]) {
		o.log = log
	}
}

func WithMetrics[T any](m *Metrics) Option[T] {
	return func(o *options[T]) {
		o.met = m
	}
}

// Run starts one run: it creates the slot, hands a worker to the
// executor and returns the stream the consumer pulls from. A Run is
// not reusable; call Run again for a new transfer.
//
// The worker is left to terminate on its own: either naturally, on a
// terminal message, or through an offer timeout once the consumer
// stops pulling. There is no explicit cancel signal.
func Run[T any](ctx context.Context, cfg Config, open relay.SourceFactory[T], opts ...Option[T]) *Stream[T] {
	o := &options[T]{
		scope: relay.PassThrough(),
		log:   zerolog.Nop(),
		met:   NopMetrics(),
	}
	for _, opt := range opts {
		opt(o)
	}

	exec := cfg.Executor
	if exec == nil {
		exec = relay.GoRoutines()
	}

	id := uuid.New()
	slot := handoff.New[T]()

	w := &worker[T]{
		ctx:    ctx,
		id:     id,
		slot:   slot,
		track:  cfg.Policy.Tracker(),
		open:   open,
		scope:  o.scope,
		onElem: o.onElem,
		log:    o.log,
		met:    o.met,
	}
	exec.Go(w.run)

	return newStream(id, slot, cfg.Policy.Tracker(), o.log)
}
