// Package stream runs the endless display loop over a loaded record
// collection.
//
// # Engine
//
// The Engine is the only moving part of artstream at runtime:
//
//	engine := stream.NewEngine(records, 2*time.Second, renderer, onEvent)
//	engine.Run(ctx)
//
// Run loops forever: uniform random pick, hand the record to the Renderer,
// interruptible sleep. Cancelling the context is the sole way to stop it,
// and Run treats that as success, not as an error.
//
// # Concurrency
//
// Selection, rendering and sleeping happen sequentially on the calling
// goroutine. The record collection is immutable after load, so the
// cancellation path and the loop never race over shared mutable data; the
// engine's lifecycle state is the one atomically-updated field.
package stream
