package engine

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/richeditor/internal/engine/attach"
	"github.com/dshills/richeditor/internal/engine/block"
	"github.com/dshills/richeditor/internal/engine/cursor"
	"github.com/dshills/richeditor/internal/engine/document"
	"github.com/dshills/richeditor/internal/event"
	"github.com/dshills/richeditor/internal/event/events"
)

const eventSource = "engine"

// Editor is the editing core. It is safe for concurrent use.
type Editor struct {
	mu sync.Mutex

	doc    *document.Document
	cursor *cursor.Tracker

	presenter Presenter
	host      Host
	scheduler attach.Scheduler
	ownsQueue bool
	bus       *event.Bus
	logger    *zap.Logger

	placeholder   string
	attachDelay   time.Duration
	maxImageWidth int
	closed        bool
}

// New creates an editor holding a single empty TextBlock with the caret
// at offset 0. The presenter observes that first insertion.
func New(opts ...Option) *Editor {
	e := &Editor{
		presenter:   NopPresenter{},
		logger:      zap.NewNop(),
		placeholder: DefaultPlaceholder,
		attachDelay: DefaultAttachDelay,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.scheduler == nil {
		e.scheduler = attach.NewQueue(
			attach.WithDelay(e.attachDelay),
			attach.WithPanicHandler(func(_ any, r any, _ []byte) {
				e.logger.Error("image attachment panicked", zap.Any("recovered", r))
			}),
		)
		e.ownsQueue = true
	}

	e.doc = document.NewWithText(e.placeholder, document.WithListener(observer{e}))
	first := e.doc.Blocks()[0].BlockID()
	e.cursor = cursor.NewTracker(e.doc, first)
	return e
}

// Close stops deferred attachment. Pending attachments are dropped and
// later operations fail with ErrClosed.
func (e *Editor) Close(ctx context.Context) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.mu.Unlock()

	if q, ok := e.scheduler.(*attach.Queue); ok && e.ownsQueue {
		return q.Stop(ctx)
	}
	return nil
}

// Blocks returns a snapshot of the block sequence.
func (e *Editor) Blocks() []block.Block {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc.Blocks()
}

// Len returns the number of blocks.
func (e *Editor) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc.Len()
}

// Text returns the text of the TextBlock id.
func (e *Editor) Text(id block.ID) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc.Text(id)
}

// Cursor returns the caret position.
func (e *Editor) Cursor() (cursor.Position, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cursor.Current()
}

// Validate checks the document invariants.
func (e *Editor) Validate() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc.Validate()
}

// ReportFocus records that the presenter focused id with the caret at
// offset. A negative offset places the caret at the end of the text.
func (e *Editor) ReportFocus(id block.ID, offset int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}

	var err error
	if offset < 0 {
		err = e.cursor.OnFocus(id)
	} else {
		err = e.cursor.SetPosition(id, offset)
	}
	if err != nil {
		return err
	}
	e.cursorMoved("focus")
	return nil
}

// ReportTextEdit records that the user changed the text of id. The caret
// is clamped into the new text when id is active.
func (e *Editor) ReportTextEdit(id block.ID, text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}

	if err := e.doc.ReplaceText(id, text); err != nil {
		return err
	}
	if !e.cursor.IsActive(id) {
		return nil
	}
	moved, err := e.cursor.Clamp()
	if err != nil {
		return err
	}
	if moved {
		e.cursorMoved("edit")
	}
	return nil
}

// moveCursor places the caret and notifies. Caller holds e.mu.
func (e *Editor) moveCursor(id block.ID, offset int, reason string) error {
	if err := e.cursor.SetPosition(id, offset); err != nil {
		return err
	}
	e.cursorMoved(reason)
	return nil
}

func (e *Editor) cursorMoved(reason string) {
	pos, ok := e.cursor.Current()
	if !ok {
		return
	}
	e.presenter.OnCursorMoved(pos.Block, pos.Offset)
	e.publish(event.NewEvent(events.TopicCursorMoved, events.CursorMoved{
		BlockID: pos.Block,
		Offset:  pos.Offset,
		Reason:  reason,
	}, eventSource))
}

func (e *Editor) dismissInput(id block.ID) {
	e.presenter.OnDismissInputMethod()
	e.publish(event.NewEvent(events.TopicInputDismissed, events.InputDismissed{BlockID: id}, eventSource))
}

func (e *Editor) publish(ev any) {
	if e.bus == nil {
		return
	}
	if err := e.bus.Publish(context.Background(), ev); err != nil {
		e.logger.Warn("event handler failed", zap.Error(err))
	}
}

// observer forwards document mutations to the presenter and the bus.
type observer struct {
	e *Editor
}

func (o observer) BlockInserted(index int, b block.Block) {
	o.e.presenter.OnBlockInserted(index, b)
	o.e.publish(event.NewEvent(events.TopicBlockInserted, events.BlockInserted{Index: index, Block: b}, eventSource))
}

func (o observer) BlockRemoved(index int, b block.Block) {
	if o.e.cursor != nil {
		o.e.cursor.Invalidate(b.BlockID())
	}
	o.e.presenter.OnBlockRemoved(index, b)
	o.e.publish(event.NewEvent(events.TopicBlockRemoved, events.BlockRemoved{Index: index, Block: b}, eventSource))
}

func (o observer) TextChanged(id block.ID, oldText, newText string) {
	o.e.presenter.OnTextChanged(id, newText)
	o.e.publish(event.NewEvent(events.TopicTextChanged, events.TextChanged{
		BlockID: id,
		OldText: oldText,
		NewText: newText,
	}, eventSource))
}
