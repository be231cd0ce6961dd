// Package amqpsource adapts an AMQP consumer to the bridge's Source
// contract: deliveries are pulled one at a time, and closing the source
// cancels the consumer on the broker.
package amqpsource
