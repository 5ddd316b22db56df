package document

import (
	"fmt"

	"github.com/dshills/richeditor/internal/engine/block"
)

// Document is an ordered sequence of blocks.
type Document struct {
	blocks    []block.Block
	seq       block.Sequence
	listeners []Listener
	version   uint64
}

// Option configures a Document during creation.
type Option func(*Document)

// WithListener registers a listener at creation time.
func WithListener(l Listener) Option {
	return func(d *Document) {
		if l != nil {
			d.listeners = append(d.listeners, l)
		}
	}
}

// New creates an empty document. Callers normally seed it with a single
// TextBlock straight away, since an empty document is only legal before
// the first insertion.
func New(opts ...Option) *Document {
	d := &Document{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewWithText creates a document holding a single TextBlock with the
// given placeholder hint. Listeners registered through opts observe the
// seed insertion.
func NewWithText(hint string, opts ...Option) *Document {
	d := New(opts...)
	_ = d.InsertAt(0, d.NewText("", hint))
	return d
}

// AddListener registers l for subsequent mutations.
func (d *Document) AddListener(l Listener) {
	if l != nil {
		d.listeners = append(d.listeners, l)
	}
}

// NewText creates a TextBlock with a fresh id. The block is not inserted.
func (d *Document) NewText(text, hint string) block.TextBlock {
	return block.TextBlock{ID: d.seq.Next(), Text: text, Hint: hint}
}

// NewImage creates an ImageBlock with a fresh id. The block is not inserted.
func (d *Document) NewImage(ref block.ImageRef) block.ImageBlock {
	return block.NewImageBlock(d.seq.Next(), ref)
}

// Len returns the number of blocks.
func (d *Document) Len() int {
	return len(d.blocks)
}

// Version returns a counter incremented by every successful mutation.
func (d *Document) Version() uint64 {
	return d.version
}

// Blocks returns a copy of the block sequence.
func (d *Document) Blocks() []block.Block {
	out := make([]block.Block, len(d.blocks))
	copy(out, d.blocks)
	return out
}

// InsertAt inserts b at index, shifting later blocks right.
// index may equal Len to append.
func (d *Document) InsertAt(index int, b block.Block) error {
	if index < 0 || index > len(d.blocks) {
		return fmt.Errorf("insert at %d of %d: %w", index, len(d.blocks), ErrIndexOutOfRange)
	}
	if b == nil {
		return fmt.Errorf("insert at %d: nil block: %w", index, ErrInvariant)
	}
	if _, err := d.IndexOf(b.BlockID()); err == nil {
		return fmt.Errorf("insert block %d: %w", b.BlockID(), ErrDuplicateID)
	}

	d.blocks = append(d.blocks, nil)
	copy(d.blocks[index+1:], d.blocks[index:])
	d.blocks[index] = b
	d.version++

	for _, l := range d.listeners {
		l.BlockInserted(index, b)
	}
	return nil
}

// RemoveAt removes the block at index and returns it.
func (d *Document) RemoveAt(index int) (block.Block, error) {
	if index < 0 || index >= len(d.blocks) {
		return nil, fmt.Errorf("remove at %d of %d: %w", index, len(d.blocks), ErrIndexOutOfRange)
	}

	removed := d.blocks[index]
	copy(d.blocks[index:], d.blocks[index+1:])
	d.blocks[len(d.blocks)-1] = nil
	d.blocks = d.blocks[:len(d.blocks)-1]
	d.version++

	for _, l := range d.listeners {
		l.BlockRemoved(index, removed)
	}
	return removed, nil
}

// ReplaceText replaces the text of the TextBlock id.
func (d *Document) ReplaceText(id block.ID, text string) error {
	idx, err := d.IndexOf(id)
	if err != nil {
		return err
	}
	tb, ok := d.blocks[idx].(block.TextBlock)
	if !ok {
		return fmt.Errorf("replace text of block %d: %w", id, ErrNotATextBlock)
	}

	old := tb.Text
	d.blocks[idx] = tb.WithText(text)
	d.version++

	for _, l := range d.listeners {
		l.TextChanged(id, old, text)
	}
	return nil
}

// IndexOf returns the position of block id.
func (d *Document) IndexOf(id block.ID) (int, error) {
	for i, b := range d.blocks {
		if b.BlockID() == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("block %d: %w", id, ErrBlockNotFound)
}

// BlockAt returns the block at index.
func (d *Document) BlockAt(index int) (block.Block, error) {
	if index < 0 || index >= len(d.blocks) {
		return nil, fmt.Errorf("block at %d of %d: %w", index, len(d.blocks), ErrIndexOutOfRange)
	}
	return d.blocks[index], nil
}

// Block returns the block with the given id.
func (d *Document) Block(id block.ID) (block.Block, error) {
	idx, err := d.IndexOf(id)
	if err != nil {
		return nil, err
	}
	return d.blocks[idx], nil
}

// TextBlock returns the TextBlock id and its position.
func (d *Document) TextBlock(id block.ID) (block.TextBlock, int, error) {
	idx, err := d.IndexOf(id)
	if err != nil {
		return block.TextBlock{}, -1, err
	}
	tb, ok := d.blocks[idx].(block.TextBlock)
	if !ok {
		return block.TextBlock{}, idx, fmt.Errorf("block %d: %w", id, ErrNotATextBlock)
	}
	return tb, idx, nil
}

// ImageBlock returns the ImageBlock id and its position.
func (d *Document) ImageBlock(id block.ID) (block.ImageBlock, int, error) {
	idx, err := d.IndexOf(id)
	if err != nil {
		return block.ImageBlock{}, -1, err
	}
	ib, ok := d.blocks[idx].(block.ImageBlock)
	if !ok {
		return block.ImageBlock{}, idx, fmt.Errorf("block %d: %w", id, ErrNotAnImageBlock)
	}
	return ib, idx, nil
}

// Text returns the text of the TextBlock id. It satisfies the cursor
// package's TextSource.
func (d *Document) Text(id block.ID) (string, error) {
	tb, _, err := d.TextBlock(id)
	if err != nil {
		return "", err
	}
	return tb.Text, nil
}

// TextBlocks returns the number of TextBlocks in the document.
func (d *Document) TextBlocks() int {
	n := 0
	for _, b := range d.blocks {
		if block.IsText(b) {
			n++
		}
	}
	return n
}
