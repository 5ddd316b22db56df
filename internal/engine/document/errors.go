package document

import "errors"

// Errors returned by document operations. They mark contract violations
// by the caller and are not expected during normal editing.
var (
	// ErrIndexOutOfRange indicates a position outside the block sequence.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrBlockNotFound indicates no block carries the requested id.
	ErrBlockNotFound = errors.New("block not found")

	// ErrNotATextBlock indicates a text operation on a non-text block.
	ErrNotATextBlock = errors.New("not a text block")

	// ErrNotAnImageBlock indicates an image operation on a non-image block.
	ErrNotAnImageBlock = errors.New("not an image block")

	// ErrDuplicateID indicates an inserted block reuses a live id.
	ErrDuplicateID = errors.New("duplicate block id")

	// ErrInvariant indicates the block sequence violates a document invariant.
	ErrInvariant = errors.New("document invariant violated")
)
