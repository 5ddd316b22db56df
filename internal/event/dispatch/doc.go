// Package dispatch runs event handlers with panic recovery and timing.
//
// The executor is shared by the synchronous event bus and by the engine's
// deferred attachment queue, so a misbehaving presenter callback is
// reported instead of tearing down the editor.
package dispatch
