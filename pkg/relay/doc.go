// Package relay contains the shared contracts of the bridge: the tagged
// Message hand-off unit, the Source pull contract, the timeout Policy with
// its per-side first-vs-steady Tracker, and the two extension hooks.
//
// Highlights:
// - Item/Finish/Failure: construct Message[T]
// - Source/SourceFactory: blocking, closable pull origin
// - Policy/Tracker: steady timeout with an optional special first timeout
// - Scope/OnElement: injected behaviors, identity and no-op by default
// - Executor: injected execution context for the worker
package relay
