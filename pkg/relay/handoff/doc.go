// Package handoff provides the single-slot synchronization channel of a
// run. It is a pure rendezvous primitive: no queueing beyond one in-flight
// message, no business logic, safe for exactly one producer and one
// consumer.
package handoff
