package terminal

import (
	"context"
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/dshills/richeditor/internal/engine"
	"github.com/dshills/richeditor/internal/engine/block"
	"github.com/dshills/richeditor/internal/imaging"
)

// ErrNotAttached indicates Run was called before Attach.
var ErrNotAttached = errors.New("view has no editor attached")

// DecodeFunc decodes an image file for insertion.
type DecodeFunc func(path string, maxWidth int) (block.ImageRef, error)

// item is the mirror of one block.
type item struct {
	block    block.Block
	attached bool
	rows     int
}

type caret struct {
	id     block.ID
	offset int
}

// View draws an engine.Editor on a tcell screen.
type View struct {
	mu sync.Mutex

	screen tcell.Screen
	ed     *engine.Editor
	decode DecodeFunc
	logger *zap.Logger

	items       []item
	caret       caret
	caretHidden bool
	prompt      *prompt
	status      string
	hits        []hit
}

// Option configures a View.
type Option func(*View)

// WithDecoder replaces imaging.Decode.
func WithDecoder(fn DecodeFunc) Option {
	return func(v *View) {
		if fn != nil {
			v.decode = fn
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(v *View) {
		if l != nil {
			v.logger = l
		}
	}
}

// New creates a view on an initialised screen.
func New(screen tcell.Screen, opts ...Option) *View {
	v := &View{
		screen: screen,
		decode: imaging.Decode,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Attach connects the editor the view drives. It must be called before
// events are handled.
func (v *View) Attach(ed *engine.Editor) {
	pos, ok := ed.Cursor()

	v.mu.Lock()
	defer v.mu.Unlock()
	v.ed = ed
	if ok {
		v.caret = caret{id: pos.Block, offset: pos.Offset}
	}
}

// Run processes screen events until the user quits or ctx is done.
func (v *View) Run(ctx context.Context) error {
	if v.editor() == nil {
		return ErrNotAttached
	}

	stop := context.AfterFunc(ctx, func() {
		_ = v.screen.PostEvent(newQuitEvent())
	})
	defer stop()

	v.Draw()
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if v.HandleEvent(ev) {
			return ctx.Err()
		}
		v.Draw()
	}
}

func (v *View) editor() *engine.Editor {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ed
}

// Status returns the status line message.
func (v *View) Status() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status
}

func (v *View) setStatus(msg string) {
	v.mu.Lock()
	v.status = msg
	v.mu.Unlock()
}

// redraw asks the event loop to repaint from any goroutine.
func (v *View) redraw() {
	_ = v.screen.PostEvent(newRedrawEvent())
}

// ViewportWidth implements engine.Host.
func (v *View) ViewportWidth() int {
	w, _ := v.screen.Size()
	return w
}

// DecodeImage implements engine.Host.
func (v *View) DecodeImage(path string, maxWidth int) (block.ImageRef, error) {
	return v.decode(path, maxWidth)
}

var _ engine.Host = (*View)(nil)
var _ engine.Presenter = (*View)(nil)
