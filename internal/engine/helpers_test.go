package engine

import (
	"fmt"
	"sync"
	"testing"

	"github.com/dshills/richeditor/internal/engine/attach"
	"github.com/dshills/richeditor/internal/engine/block"
	"github.com/dshills/richeditor/internal/engine/cursor"
)

// recorder is a Presenter that logs every call.
type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) OnBlockInserted(index int, b block.Block) {
	r.add("insert %d %s", index, b.Kind())
}

func (r *recorder) OnBlockRemoved(index int, b block.Block) {
	r.add("remove %d %s", index, b.Kind())
}

func (r *recorder) OnTextChanged(_ block.ID, text string) {
	r.add("text %q", text)
}

func (r *recorder) OnCursorMoved(_ block.ID, offset int) {
	r.add("cursor %d", offset)
}

func (r *recorder) OnDismissInputMethod() {
	r.add("dismiss")
}

func (r *recorder) OnImageAttached(index int, img block.ImageBlock, height int) {
	r.add("attach %d %dx%d h=%d", index, img.Image.Width, img.Image.Height, height)
}

func (r *recorder) take() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.calls
	r.calls = nil
	return out
}

type fixture struct {
	ed    *Editor
	rec   *recorder
	sched *attach.Manual
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{rec: &recorder{}, sched: attach.NewManual()}
	opts = append([]Option{WithPresenter(f.rec), WithScheduler(f.sched)}, opts...)
	f.ed = New(opts...)
	f.rec.take()
	return f
}

// first returns the id of the block at index 0.
func (f *fixture) first() block.ID {
	return f.ed.Blocks()[0].BlockID()
}

func (f *fixture) idAt(t *testing.T, index int) block.ID {
	t.Helper()
	blocks := f.ed.Blocks()
	if index >= len(blocks) {
		t.Fatalf("no block at %d in %v", index, shape(blocks))
	}
	return blocks[index].BlockID()
}

func (f *fixture) setText(t *testing.T, id block.ID, text string, offset int) {
	t.Helper()
	if err := f.ed.ReportTextEdit(id, text); err != nil {
		t.Fatalf("ReportTextEdit: %v", err)
	}
	if err := f.ed.ReportFocus(id, offset); err != nil {
		t.Fatalf("ReportFocus: %v", err)
	}
	f.rec.take()
}

func (f *fixture) insert(t *testing.T, w, h int) block.ID {
	t.Helper()
	id, err := f.ed.InsertImage(100, block.ImageRef{Width: w, Height: h})
	if err != nil {
		t.Fatalf("InsertImage: %v", err)
	}
	return id
}

func (f *fixture) cursor(t *testing.T) cursor.Position {
	t.Helper()
	pos, ok := f.ed.Cursor()
	if !ok {
		t.Fatal("no active block")
	}
	return pos
}

func (f *fixture) mustValid(t *testing.T) {
	t.Helper()
	if err := f.ed.Validate(); err != nil {
		t.Fatalf("Validate: %v in %v", err, shape(f.ed.Blocks()))
	}
}

// shape renders blocks as "T:text" and "I" entries.
func shape(blocks []block.Block) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		switch b := b.(type) {
		case block.TextBlock:
			out[i] = "T:" + b.Text
		case block.ImageBlock:
			out[i] = "I"
		}
	}
	return out
}
