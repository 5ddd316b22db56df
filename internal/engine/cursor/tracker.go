package cursor

import (
	"fmt"

	"github.com/dshills/richeditor/internal/engine/block"
)

// TextSource resolves the text of a TextBlock.
type TextSource interface {
	Text(id block.ID) (string, error)
}

// Tracker records the active text block and the caret offset within it.
type Tracker struct {
	src    TextSource
	pos    Position
	active bool
}

// NewTracker creates a tracker focused on id at offset 0.
func NewTracker(src TextSource, id block.ID) *Tracker {
	return &Tracker{src: src, pos: At(id, 0), active: true}
}

// OnFocus makes id the active block with the caret at the end of its
// text. It is used when a presenter reports focus without a caret.
func (t *Tracker) OnFocus(id block.ID) error {
	text, err := t.src.Text(id)
	if err != nil {
		return fmt.Errorf("focus %d: %w", id, err)
	}
	t.pos = At(id, block.Len(text))
	t.active = true
	return nil
}

// SetPosition moves the caret to offset within id.
func (t *Tracker) SetPosition(id block.ID, offset int) error {
	text, err := t.src.Text(id)
	if err != nil {
		return fmt.Errorf("set position %d: %w", id, err)
	}
	if offset < 0 || offset > block.Len(text) {
		return fmt.Errorf("offset %d in block %d of length %d: %w", offset, id, block.Len(text), ErrInvalidOffset)
	}
	t.pos = At(id, offset)
	t.active = true
	return nil
}

// Current returns the caret position. ok is false when the active block
// was removed and nothing has been focused since.
func (t *Tracker) Current() (pos Position, ok bool) {
	if !t.active {
		return Position{}, false
	}
	return t.pos, true
}

// MustCurrent returns the caret position or ErrNoActiveBlock.
func (t *Tracker) MustCurrent() (Position, error) {
	pos, ok := t.Current()
	if !ok {
		return Position{}, ErrNoActiveBlock
	}
	return pos, nil
}

// IsActive reports whether id is the active block.
func (t *Tracker) IsActive(id block.ID) bool {
	return t.active && t.pos.Block == id
}

// Invalidate drops the active block if it is id. It reports whether the
// tracker lost its focus.
func (t *Tracker) Invalidate(id block.ID) bool {
	if !t.IsActive(id) {
		return false
	}
	t.active = false
	return true
}

// Clamp pulls the caret back inside the active block after its text
// changed. It reports whether the offset moved.
func (t *Tracker) Clamp() (bool, error) {
	if !t.active {
		return false, nil
	}
	text, err := t.src.Text(t.pos.Block)
	if err != nil {
		return false, fmt.Errorf("clamp %d: %w", t.pos.Block, err)
	}
	clamped := block.ClampOffset(text, t.pos.Offset)
	if clamped == t.pos.Offset {
		return false, nil
	}
	t.pos = t.pos.MoveTo(clamped)
	return true, nil
}
