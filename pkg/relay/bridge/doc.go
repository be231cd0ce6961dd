// Package bridge connects a blocking, closable source to a lazy pull
// consumer through the single-slot hand-off.
//
// One call to Run is one run: a dedicated worker pulls elements in
// source order and offers each to the slot; the returned Stream performs
// one timed retrieval per demand. At most one element is in flight, so
// memory stays O(1) no matter how large the source is.
//
// There is no explicit cancellation. A consumer that stops pulling makes
// the worker's next offer time out, at which point the worker closes the
// source and exits silently. A stalled worker makes the consumer's
// retrieval time out, surfaced as relay.ErrTimeout.
package bridge
