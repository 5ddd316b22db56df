package cursor

import "errors"

// Errors returned by tracker operations.
var (
	// ErrInvalidOffset indicates an offset outside [0, len(text)].
	ErrInvalidOffset = errors.New("invalid offset")

	// ErrNoActiveBlock indicates the tracker has no active text block.
	ErrNoActiveBlock = errors.New("no active block")
)
