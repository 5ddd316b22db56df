package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dshills/richeditor/internal/engine/block"
	"github.com/dshills/richeditor/internal/engine/cursor"
	"github.com/dshills/richeditor/internal/event"
	"github.com/dshills/richeditor/internal/event/events"
)

// InsertImage splits the active TextBlock at the caret and places a new
// ImageBlock between the halves. Surrounding whitespace is trimmed from
// both halves.
//
// When the active text is empty, or nothing but whitespace precedes the
// caret, the image goes directly before the active block and the caret
// stays where it is. Otherwise the active block keeps the left half, the
// image follows it and a new TextBlock holding the right half follows
// the image. The right TextBlock is omitted when the right half is empty
// and another TextBlock already follows. The caret ends at the end of
// the left half.
//
// Attachment of the image is deferred; see the package documentation.
// viewportWidth is the layout width used for the reserved display height.
func (e *Editor) InsertImage(viewportWidth int, ref block.ImageRef) (block.ID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return 0, ErrClosed
	}

	pos, err := e.cursor.MustCurrent()
	if err != nil {
		return 0, fmt.Errorf("insert image: %w", err)
	}
	tb, idx, err := e.doc.TextBlock(pos.Block)
	if err != nil {
		return 0, fmt.Errorf("insert image: %w", err)
	}

	leftRaw, rightRaw := block.SplitAt(tb.Text, pos.Offset)
	left, right := block.Trim(leftRaw), block.Trim(rightRaw)
	img := e.doc.NewImage(ref)

	if tb.Text == "" || left == "" {
		at := idx
		if e.isImageAt(idx - 1) {
			if err := e.doc.InsertAt(at, e.doc.NewText("", "")); err != nil {
				return 0, err
			}
			at++
		}
		if err := e.doc.InsertAt(at, img); err != nil {
			return 0, err
		}
	} else {
		if err := e.doc.ReplaceText(tb.ID, left); err != nil {
			return 0, err
		}
		last := idx == e.doc.Len()-1
		if last || right != "" || e.isImageAt(idx+1) {
			if err := e.doc.InsertAt(idx+1, e.doc.NewText(right, "")); err != nil {
				return 0, err
			}
		}
		if err := e.doc.InsertAt(idx+1, img); err != nil {
			return 0, err
		}
		if err := e.moveCursor(tb.ID, block.Len(left), "insert-image"); err != nil {
			return 0, err
		}
	}

	e.scheduleAttach(img.ID, viewportWidth)
	e.dismissInput(tb.ID)

	e.logger.Debug("image inserted",
		zap.Stringer("block", img.ID),
		zap.Stringer("split", tb.ID),
		zap.Int("width", ref.Width),
		zap.Int("height", ref.Height),
	)
	return img.ID, nil
}

// InsertImageFromPath decodes the image at path through the Host and
// inserts it at the caret.
func (e *Editor) InsertImageFromPath(path string) (block.ID, error) {
	if e.host == nil {
		return 0, ErrNoHost
	}

	width := e.host.ViewportWidth()
	maxWidth := width
	if e.maxImageWidth > 0 && (maxWidth <= 0 || e.maxImageWidth < maxWidth) {
		maxWidth = e.maxImageWidth
	}

	ref, err := e.host.DecodeImage(path, maxWidth)
	if err != nil {
		return 0, fmt.Errorf("decode %s: %w", path, err)
	}
	return e.InsertImage(width, ref)
}

// BackspaceAtBoundary handles backspace with the caret at offset 0 of
// the TextBlock id. A preceding ImageBlock is removed and the caret stays
// at the start of id. A preceding TextBlock absorbs the text of id, id is
// removed and the caret lands at the merge point. At the first block it
// does nothing.
func (e *Editor) BackspaceAtBoundary(id block.ID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	return e.backspaceAtBoundary(id)
}

// Backspace handles a backspace key in the TextBlock id. It acts only
// when the caret is at offset 0 of id and reports whether it did; the
// presenter deletes a character itself otherwise.
func (e *Editor) Backspace(id block.ID) (handled bool, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return false, ErrClosed
	}

	if _, _, err := e.doc.TextBlock(id); err != nil {
		return false, fmt.Errorf("backspace: %w", err)
	}
	pos, ok := e.cursor.Current()
	if !ok || pos.Block != id || !pos.IsStart() {
		return false, nil
	}
	return true, e.backspaceAtBoundary(id)
}

func (e *Editor) backspaceAtBoundary(id block.ID) error {
	tb, idx, err := e.doc.TextBlock(id)
	if err != nil {
		return fmt.Errorf("backspace: %w", err)
	}
	if idx == 0 {
		return nil
	}

	prev, err := e.doc.BlockAt(idx - 1)
	if err != nil {
		return err
	}

	switch p := prev.(type) {
	case block.ImageBlock:
		if _, err := e.doc.RemoveAt(idx - 1); err != nil {
			return err
		}
		e.logger.Debug("image removed by backspace", zap.Stringer("block", p.ID))
		if pos, ok := e.cursor.Current(); !ok || !pos.Equals(cursor.At(id, 0)) {
			return e.moveCursor(id, 0, "backspace")
		}

	case block.TextBlock:
		merged := p.Text + tb.Text
		point := min(block.Len(p.Text), block.Len(merged))
		if _, err := e.doc.RemoveAt(idx); err != nil {
			return err
		}
		if err := e.doc.ReplaceText(p.ID, merged); err != nil {
			return err
		}
		if err := e.moveCursor(p.ID, point, "merge"); err != nil {
			return err
		}
		e.logger.Debug("text blocks merged", zap.Stringer("into", p.ID), zap.Stringer("from", id))
	}
	return nil
}

// RemoveImage deletes the ImageBlock id. Neighbouring TextBlocks are not
// merged and the caret is unaffected.
func (e *Editor) RemoveImage(id block.ID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}

	_, idx, err := e.doc.ImageBlock(id)
	if err != nil {
		return fmt.Errorf("remove image: %w", err)
	}
	if _, err := e.doc.RemoveAt(idx); err != nil {
		return err
	}
	e.logger.Debug("image removed", zap.Stringer("block", id))
	return nil
}

func (e *Editor) isImageAt(index int) bool {
	b, err := e.doc.BlockAt(index)
	return err == nil && block.IsImage(b)
}

func (e *Editor) scheduleAttach(id block.ID, viewportWidth int) {
	err := e.scheduler.Schedule(func() { e.attach(id, viewportWidth) })
	if err != nil {
		e.logger.Warn("image attachment dropped", zap.Stringer("block", id), zap.Error(err))
	}
}

// attach resolves a deferred attachment against the live document.
func (e *Editor) attach(id block.ID, viewportWidth int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	img, idx, err := e.doc.ImageBlock(id)
	if err != nil {
		e.logger.Debug("image attachment skipped", zap.Stringer("block", id), zap.Error(err))
		return
	}
	height := img.DisplayHeight(viewportWidth)
	e.presenter.OnImageAttached(idx, img, height)
	e.publish(event.NewEvent(events.TopicImageAttached, events.ImageAttached{
		Index:  idx,
		Block:  img,
		Height: height,
	}, eventSource))
}
