package terminal

import (
	"fmt"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"

	"github.com/dshills/richeditor/internal/engine/block"
	"github.com/dshills/richeditor/internal/imaging"
)

const closeMarker = "[x]"

var (
	textStyle   = tcell.StyleDefault
	hintStyle   = tcell.StyleDefault.Dim(true).Italic(true)
	statusStyle = tcell.StyleDefault.Reverse(true)
	borderStyle = tcell.StyleDefault.Dim(true)
)

type hitKind int

const (
	hitText hitKind = iota
	hitClose
)

// hit is a clickable screen region recorded by Draw.
type hit struct {
	x0, x1, y int
	id        block.ID
	kind      hitKind
}

// Draw repaints the screen from the mirror.
func (v *View) Draw() {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := v.screen
	s.Clear()
	w, h := s.Size()
	body := h - 1
	v.hits = v.hits[:0]

	caretX, caretY := -1, -1
	y := 0
	for _, it := range v.items {
		if y >= body {
			break
		}
		switch b := it.block.(type) {
		case block.TextBlock:
			if b.Text == "" && b.Hint != "" {
				drawString(s, 0, y, w, b.Hint, hintStyle)
			} else {
				drawString(s, 0, y, w, b.Text, textStyle)
			}
			v.hits = append(v.hits, hit{x0: 0, x1: w, y: y, id: b.ID, kind: hitText})
			if b.ID == v.caret.id {
				caretX, caretY = columnOf(b.Text, v.caret.offset), y
			}
			y++
		case block.ImageBlock:
			rows := min(it.rows, body-y)
			v.drawImage(b, it.attached, y, w, rows)
			y += rows
		}
	}

	v.drawStatus(w, h-1)

	switch {
	case v.prompt != nil:
		s.ShowCursor(min(w-1, len(promptLabel)+uniseg.StringWidth(v.prompt.text)), h-1)
	case !v.caretHidden && caretY >= 0 && caretX < w:
		s.ShowCursor(caretX, caretY)
	default:
		s.HideCursor()
	}
	s.Show()
}

func (v *View) drawImage(b block.ImageBlock, attached bool, y, w, rows int) {
	if rows <= 0 {
		return
	}
	s := v.screen

	if !attached {
		for x := 0; x < w; x++ {
			s.SetContent(x, y, '─', nil, borderStyle)
			s.SetContent(x, y+rows-1, '─', nil, borderStyle)
		}
		drawString(s, 1, y+rows/2, w-1, "loading image…", borderStyle)
		return
	}

	bg, fg := swatch(b)
	style := tcell.StyleDefault.Background(toTcell(bg)).Foreground(toTcell(fg))
	for r := 0; r < rows; r++ {
		for x := 0; x < w; x++ {
			s.SetContent(x, y+r, ' ', nil, style)
		}
	}
	drawString(s, 1, y+rows/2, w-1, imageLabel(b), style)

	mx := max(0, w-len(closeMarker))
	drawString(s, mx, y, w, closeMarker, style.Bold(true))
	v.hits = append(v.hits, hit{x0: mx, x1: w, y: y, id: b.ID, kind: hitClose})
}

func (v *View) drawStatus(w, y int) {
	s := v.screen
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, statusStyle)
	}
	if v.prompt != nil {
		drawString(s, 0, y, w, promptLabel+v.prompt.text, statusStyle)
		return
	}
	msg := v.status
	if msg == "" {
		msg = "Ctrl-O insert image  Esc quit"
	}
	drawString(s, 0, y, w, msg, statusStyle)
}

// swatch returns the fill and label colours of an image box.
func swatch(b block.ImageBlock) (bg, fg colorful.Color) {
	if pic, ok := b.Image.Handle.(*imaging.Picture); ok {
		return pic.Swatch, pic.Label()
	}
	bg = colorful.Hcl(float64(uint64(b.ID)*47%360), 0.4, 0.6).Clamped()
	l, _, _ := bg.Lab()
	if l > 0.6 {
		return bg, colorful.Color{}
	}
	return bg, colorful.Color{R: 1, G: 1, B: 1}
}

func imageLabel(b block.ImageBlock) string {
	name := "image"
	if pic, ok := b.Image.Handle.(*imaging.Picture); ok {
		name = filepath.Base(pic.Path)
	} else if s, ok := b.Image.Handle.(string); ok && s != "" {
		name = s
	}
	return fmt.Sprintf("%s %dx%d", name, b.Image.Width, b.Image.Height)
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// drawString draws s from column x, clipped at column limit.
func drawString(scr tcell.Screen, x, y, limit int, s string, style tcell.Style) {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		width := g.Width()
		if x+width > limit {
			return
		}
		runes := g.Runes()
		scr.SetContent(x, y, runes[0], runes[1:], style)
		x += max(1, width)
	}
}

// columnOf returns the screen column of the caret at offset in text.
func columnOf(text string, offset int) int {
	left, _ := block.SplitAt(text, block.ClampOffset(text, offset))
	return uniseg.StringWidth(left)
}

// offsetAt returns the offset of the grapheme drawn at screen column col.
func offsetAt(text string, col int) int {
	offset, x := 0, 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		x += g.Width()
		if col < x {
			return offset
		}
		offset++
	}
	return offset
}
