package events

import (
	"github.com/dshills/richeditor/internal/engine/block"
	"github.com/dshills/richeditor/internal/event/topic"
)

// Document event topics.
const (
	// TopicBlockInserted is published after a block is inserted.
	TopicBlockInserted topic.Topic = "document.block.inserted"

	// TopicBlockRemoved is published after a block is removed.
	TopicBlockRemoved topic.Topic = "document.block.removed"

	// TopicTextChanged is published after a TextBlock's text is replaced.
	TopicTextChanged topic.Topic = "document.text.changed"

	// TopicImageAttached is published when a pending image is attached
	// to the layout.
	TopicImageAttached topic.Topic = "document.image.attached"
)

// BlockInserted is published after a block is inserted.
type BlockInserted struct {
	// Index is the position the block now occupies.
	Index int

	// Block is the inserted block.
	Block block.Block
}

// BlockRemoved is published after a block is removed.
type BlockRemoved struct {
	// Index is the position the block occupied.
	Index int

	// Block is the removed block.
	Block block.Block
}

// TextChanged is published after a TextBlock's text is replaced.
type TextChanged struct {
	BlockID block.ID
	OldText string
	NewText string
}

// ImageAttached is published when a pending image attachment resolves.
type ImageAttached struct {
	// Index is the image's position at the time it was attached.
	Index int

	// Block is the attached image.
	Block block.ImageBlock

	// Height is the display height reserved for the image.
	Height int
}
