package terminal

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/dshills/richeditor/internal/engine/block"
)

const promptLabel = "image path: "

type prompt struct {
	text string
}

// HandleEvent applies one screen event. It reports whether the view
// should quit.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *quitEvent:
		return true
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	}
	return false
}

func (v *View) handleKey(ev *tcell.EventKey) bool {
	v.mu.Lock()
	v.caretHidden = false
	prompting := v.prompt != nil
	cur := v.caret
	text := v.textOf(cur.id)
	v.mu.Unlock()

	if prompting {
		v.handlePromptKey(ev)
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlQ:
		return true
	case tcell.KeyCtrlO:
		v.mu.Lock()
		v.prompt = &prompt{}
		v.mu.Unlock()
	case tcell.KeyRune:
		left, right := block.SplitAt(text, cur.offset)
		left += string(ev.Rune())
		// A combining rune joins the preceding grapheme.
		v.edit(cur.id, left+right, block.Len(left))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		v.backspace(cur, text)
	case tcell.KeyLeft:
		if cur.offset > 0 {
			v.focus(cur.id, cur.offset-1)
		}
	case tcell.KeyRight:
		if cur.offset < block.Len(text) {
			v.focus(cur.id, cur.offset+1)
		}
	case tcell.KeyUp:
		v.focusNeighbour(cur, -1)
	case tcell.KeyDown:
		v.focusNeighbour(cur, 1)
	}
	return false
}

func (v *View) handlePromptKey(ev *tcell.EventKey) {
	v.mu.Lock()
	p := v.prompt
	switch ev.Key() {
	case tcell.KeyEscape:
		v.prompt = nil
	case tcell.KeyRune:
		p.text += string(ev.Rune())
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if n := block.Len(p.text); n > 0 {
			p.text, _ = block.SplitAt(p.text, n-1)
		}
	case tcell.KeyEnter:
		v.prompt = nil
		path := p.text
		v.mu.Unlock()
		v.insertFile(path)
		return
	}
	v.mu.Unlock()
}

func (v *View) insertFile(path string) {
	if path == "" {
		return
	}
	id, err := v.ed.InsertImageFromPath(path)
	if err != nil {
		v.report(err)
		return
	}
	v.logger.Info("image inserted", zap.String("path", path), zap.Stringer("block", id))
	v.setStatus("inserted " + path)
}

func (v *View) backspace(cur caret, text string) {
	handled, err := v.ed.Backspace(cur.id)
	if err != nil {
		v.report(err)
		return
	}
	if handled || cur.offset == 0 {
		return
	}
	left, right := block.SplitAt(text, cur.offset)
	left, _ = block.SplitAt(left, block.Len(left)-1)
	v.edit(cur.id, left+right, cur.offset-1)
}

func (v *View) edit(id block.ID, text string, offset int) {
	if err := v.ed.ReportTextEdit(id, text); err != nil {
		v.report(err)
		return
	}
	v.focus(id, offset)
}

func (v *View) focus(id block.ID, offset int) {
	if err := v.ed.ReportFocus(id, offset); err != nil {
		v.report(err)
	}
}

// focusNeighbour moves to the previous (dir<0) or next text block.
func (v *View) focusNeighbour(cur caret, dir int) {
	v.mu.Lock()
	i := v.indexOf(cur.id)
	var target block.TextBlock
	found := false
	for j := i + dir; i >= 0 && j >= 0 && j < len(v.items); j += dir {
		if tb, ok := v.items[j].block.(block.TextBlock); ok {
			target, found = tb, true
			break
		}
	}
	v.mu.Unlock()

	if found {
		v.focus(target.ID, min(cur.offset, target.Len()))
	}
}

func (v *View) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := ev.Position()

	v.mu.Lock()
	var target *hit
	for i := range v.hits {
		h := v.hits[i]
		if h.y == y && x >= h.x0 && x < h.x1 {
			target = &h
			if h.kind == hitClose {
				break
			}
		}
	}
	var text string
	if target != nil && target.kind == hitText {
		text = v.textOf(target.id)
	}
	v.mu.Unlock()

	if target == nil {
		return
	}
	switch target.kind {
	case hitClose:
		if err := v.ed.RemoveImage(target.id); err != nil {
			v.report(err)
		}
	case hitText:
		v.focus(target.id, offsetAt(text, x))
	}
}

func (v *View) report(err error) {
	v.logger.Warn("edit failed", zap.Error(err))
	v.setStatus(err.Error())
}

// textOf returns the mirrored text of id. Caller holds v.mu.
func (v *View) textOf(id block.ID) string {
	if i := v.indexOf(id); i >= 0 {
		if tb, ok := v.items[i].block.(block.TextBlock); ok {
			return tb.Text
		}
	}
	return ""
}
