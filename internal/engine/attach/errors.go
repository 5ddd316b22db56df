package attach

import "errors"

// ErrStopped is returned when scheduling on a stopped queue.
var ErrStopped = errors.New("attach queue is stopped")
