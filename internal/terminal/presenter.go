package terminal

import (
	"slices"

	"github.com/dshills/richeditor/internal/engine/block"
)

// OnBlockInserted implements engine.Presenter.
func (v *View) OnBlockInserted(index int, b block.Block) {
	v.mu.Lock()
	it := item{block: b}
	if img, ok := b.(block.ImageBlock); ok {
		it.rows = v.imageRows(img)
	}
	v.items = slices.Insert(v.items, index, it)
	v.mu.Unlock()
	v.redraw()
}

// OnBlockRemoved implements engine.Presenter.
func (v *View) OnBlockRemoved(index int, _ block.Block) {
	v.mu.Lock()
	if index >= 0 && index < len(v.items) {
		v.items = slices.Delete(v.items, index, index+1)
	}
	v.mu.Unlock()
	v.redraw()
}

// OnTextChanged implements engine.Presenter.
func (v *View) OnTextChanged(id block.ID, text string) {
	v.mu.Lock()
	if i := v.indexOf(id); i >= 0 {
		if tb, ok := v.items[i].block.(block.TextBlock); ok {
			v.items[i].block = tb.WithText(text)
		}
	}
	v.mu.Unlock()
	v.redraw()
}

// OnCursorMoved implements engine.Presenter.
func (v *View) OnCursorMoved(id block.ID, offset int) {
	v.mu.Lock()
	v.caret = caret{id: id, offset: offset}
	v.mu.Unlock()
	v.redraw()
}

// OnDismissInputMethod implements engine.Presenter. The caret stays
// hidden until the next key press.
func (v *View) OnDismissInputMethod() {
	v.mu.Lock()
	v.caretHidden = true
	v.mu.Unlock()
	v.redraw()
}

// OnImageAttached implements engine.Presenter.
func (v *View) OnImageAttached(index int, img block.ImageBlock, height int) {
	v.mu.Lock()
	if index >= 0 && index < len(v.items) && v.items[index].block.BlockID() == img.ID {
		v.items[index].attached = true
		v.items[index].rows = cellRows(height, v.maxImageRows())
	}
	v.mu.Unlock()
	v.redraw()
}

func (v *View) indexOf(id block.ID) int {
	return slices.IndexFunc(v.items, func(it item) bool {
		return it.block.BlockID() == id
	})
}

func (v *View) imageRows(img block.ImageBlock) int {
	w, _ := v.screen.Size()
	return cellRows(img.DisplayHeight(w), v.maxImageRows())
}

func (v *View) maxImageRows() int {
	_, h := v.screen.Size()
	return max(3, h/2)
}

// cellRows converts a height in columns to terminal rows. A cell is about
// twice as tall as it is wide.
func cellRows(height, limit int) int {
	return min(max(3, height/2), limit)
}
