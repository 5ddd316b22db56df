package engine

import (
	"errors"

	"github.com/dshills/richeditor/internal/engine/cursor"
	"github.com/dshills/richeditor/internal/engine/document"
)

// Errors returned by engine operations.
var (
	// ErrIndexOutOfRange indicates a position outside the block sequence.
	ErrIndexOutOfRange = document.ErrIndexOutOfRange

	// ErrBlockNotFound indicates an unknown block id.
	ErrBlockNotFound = document.ErrBlockNotFound

	// ErrNotATextBlock indicates a text operation on an image.
	ErrNotATextBlock = document.ErrNotATextBlock

	// ErrNotAnImageBlock indicates an image operation on text.
	ErrNotAnImageBlock = document.ErrNotAnImageBlock

	// ErrInvalidOffset indicates a caret offset outside the text.
	ErrInvalidOffset = cursor.ErrInvalidOffset

	// ErrNoActiveBlock indicates the caret has no text block.
	ErrNoActiveBlock = cursor.ErrNoActiveBlock

	// ErrNoHost indicates an operation needs a Host and none is configured.
	ErrNoHost = errors.New("no host configured")

	// ErrClosed indicates the editor was closed.
	ErrClosed = errors.New("editor is closed")
)
