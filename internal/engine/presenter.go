package engine

import "github.com/dshills/richeditor/internal/engine/block"

// Presenter mirrors the document on screen.
type Presenter interface {
	// OnBlockInserted is called after b was inserted at index.
	OnBlockInserted(index int, b block.Block)

	// OnBlockRemoved is called after b was removed from index.
	OnBlockRemoved(index int, b block.Block)

	// OnTextChanged is called after the text of block id changed.
	OnTextChanged(id block.ID, text string)

	// OnCursorMoved is called after the caret moved.
	OnCursorMoved(id block.ID, offset int)

	// OnDismissInputMethod asks the presenter to hide any on-screen
	// keyboard or input focus.
	OnDismissInputMethod()

	// OnImageAttached is called when the deferred attachment of an image
	// fires. height is the display height at the insertion viewport width.
	OnImageAttached(index int, img block.ImageBlock, height int)
}

// Host supplies environment information and image decoding.
type Host interface {
	// ViewportWidth returns the current layout width.
	ViewportWidth() int

	// DecodeImage loads the image at path, downsampled so its width does
	// not exceed maxWidth.
	DecodeImage(path string, maxWidth int) (block.ImageRef, error)
}

// NopPresenter ignores every notification.
type NopPresenter struct{}

func (NopPresenter) OnBlockInserted(int, block.Block)           {}
func (NopPresenter) OnBlockRemoved(int, block.Block)            {}
func (NopPresenter) OnTextChanged(block.ID, string)             {}
func (NopPresenter) OnCursorMoved(block.ID, int)                {}
func (NopPresenter) OnDismissInputMethod()                      {}
func (NopPresenter) OnImageAttached(int, block.ImageBlock, int) {}
