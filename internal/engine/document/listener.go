package document

import "github.com/dshills/richeditor/internal/engine/block"

// Listener observes structural changes to a Document.
type Listener interface {
	// BlockInserted is called after b was inserted at index.
	BlockInserted(index int, b block.Block)

	// BlockRemoved is called after b was removed from index.
	BlockRemoved(index int, b block.Block)

	// TextChanged is called after the text of block id was replaced.
	TextChanged(id block.ID, oldText, newText string)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnInserted    func(index int, b block.Block)
	OnRemoved     func(index int, b block.Block)
	OnTextChanged func(id block.ID, oldText, newText string)
}

// BlockInserted implements Listener.
func (f ListenerFuncs) BlockInserted(index int, b block.Block) {
	if f.OnInserted != nil {
		f.OnInserted(index, b)
	}
}

// BlockRemoved implements Listener.
func (f ListenerFuncs) BlockRemoved(index int, b block.Block) {
	if f.OnRemoved != nil {
		f.OnRemoved(index, b)
	}
}

// TextChanged implements Listener.
func (f ListenerFuncs) TextChanged(id block.ID, oldText, newText string) {
	if f.OnTextChanged != nil {
		f.OnTextChanged(id, oldText, newText)
	}
}
