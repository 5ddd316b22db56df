// Package attach schedules the deferred attachment of inserted images.
//
// After the engine inserts an ImageBlock it waits a fixed delay before
// telling the presenter to attach the image to the visible layout, so a
// transition animation can start cleanly. Two schedulers are provided:
//
//   - Queue: a single worker goroutine firing callbacks in FIFO order,
//     each no earlier than the configured delay after it was scheduled
//   - Manual: a deterministic scheduler whose callbacks run only when
//     the owner calls RunPending, used by tests and headless hosts
//
// Neither scheduler supports cancelling an individual callback. Stopping
// a Queue drops whatever is still pending.
package attach
