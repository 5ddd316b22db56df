package events

import (
	"github.com/dshills/richeditor/internal/engine/block"
	"github.com/dshills/richeditor/internal/event/topic"
)

// Cursor and input topics.
const (
	// TopicCursorMoved is published when the caret moves.
	TopicCursorMoved topic.Topic = "cursor.moved"

	// TopicInputDismissed is published when the engine asks the presenter
	// to hide the on-screen input method.
	TopicInputDismissed topic.Topic = "input.dismissed"
)

// CursorMoved is published when the caret moves.
type CursorMoved struct {
	BlockID block.ID
	Offset  int

	// Reason describes what caused the move ("focus", "edit", "insert-image",
	// "merge").
	Reason string
}

// InputDismissed is published after a structural edit that should close
// the on-screen input method.
type InputDismissed struct {
	BlockID block.ID
}
