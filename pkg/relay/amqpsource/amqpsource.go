package amqpsource

import (
	"io"

	pkgerrors "github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// Config describes one consumer on an AMQP channel.
type Config struct {
	Queue    string
	Consumer string
	AutoAck  bool
	// Prefetch is the channel Qos; 0 means 1, which matches the
	// single-slot pacing of the bridge.
	Prefetch int
}

// Source pulls deliveries from one AMQP consumer. Next blocks until a
// delivery arrives, the consumer is cancelled, or the channel closes;
// Close cancels the consumer so the broker stops feeding it.
//
// It satisfies relay.Source[amqp.Delivery].
type Source struct {
	deliveries <-chan amqp.Delivery
	closed     <-chan *amqp.Error
	cancel     func() error
	log        zerolog.Logger
}

// New registers a consumer on ch per cfg and returns a Source over it.
func New(ch *amqp.Channel, cfg Config, log zerolog.Logger) (*Source, error) {
	prefetch := cfg.Prefetch
	if prefetch == 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, pkgerrors.Wrap(err, "configure qos")
	}

	deliveries, err := ch.Consume(cfg.Queue, cfg.Consumer, cfg.AutoAck, false, false, false, nil)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "consume queue %q", cfg.Queue)
	}

	log.Info().
		Str("queue", cfg.Queue).
		Str("consumer", cfg.Consumer).
		Msg("amqp consumer registered")

	return newSource(
		deliveries,
		ch.NotifyClose(make(chan *amqp.Error, 1)),
		func() error { return ch.Cancel(cfg.Consumer, false) },
		log,
	), nil
}

func newSource(deliveries <-chan amqp.Delivery, closed <-chan *amqp.Error,
	cancel func() error, log zerolog.Logger) *Source {
	return &Source{
		deliveries: deliveries,
		closed:     closed,
		cancel:     cancel,
		log:        log,
	}
}

func (s *Source) Next() (amqp.Delivery, error) {
	select {
	case d, ok := <-s.deliveries:
		if !ok {
			return amqp.Delivery{}, io.EOF
		}
		return d, nil
	case aerr, ok := <-s.closed:
		if !ok || aerr == nil {
			return amqp.Delivery{}, io.EOF
		}
		s.log.Warn().Err(aerr).Msg("amqp channel closed")
		return amqp.Delivery{}, pkgerrors.Wrap(aerr, "amqp channel closed")
	}
}

func (s *Source) Close() error {
	if s.cancel == nil {
		return nil
	}
	return s.cancel()
}
