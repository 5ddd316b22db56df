package document

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/richeditor/internal/engine/block"
)

// recorder captures listener callbacks as strings.
type recorder struct {
	calls []string
}

func (r *recorder) BlockInserted(index int, b block.Block) {
	r.calls = append(r.calls, "insert "+strconv.Itoa(index)+" "+b.Kind().String())
}

func (r *recorder) BlockRemoved(index int, b block.Block) {
	r.calls = append(r.calls, "remove "+strconv.Itoa(index)+" "+b.Kind().String())
}

func (r *recorder) TextChanged(id block.ID, oldText, newText string) {
	r.calls = append(r.calls, "text "+id.String()+" "+oldText+"->"+newText)
}

func kinds(d *Document) []string {
	var out []string
	for _, b := range d.Blocks() {
		out = append(out, b.Kind().String())
	}
	return out
}

func TestNewWithText(t *testing.T) {
	rec := &recorder{}
	d := NewWithText("input here", WithListener(rec))

	if d.Len() != 1 {
		t.Fatalf("expected 1 block, got %d", d.Len())
	}
	b, err := d.BlockAt(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tb, ok := b.(block.TextBlock)
	if !ok {
		t.Fatalf("expected TextBlock, got %T", b)
	}
	if tb.Hint != "input here" || tb.Text != "" || tb.ID != 1 {
		t.Errorf("unexpected seed block %+v", tb)
	}
	if diff := cmp.Diff([]string{"insert 0 text"}, rec.calls); diff != "" {
		t.Errorf("listener calls mismatch (-want +got):\n%s", diff)
	}
	if err := d.Validate(); err != nil {
		t.Errorf("seed document invalid: %v", err)
	}
}

func TestInsertAt(t *testing.T) {
	rec := &recorder{}
	d := New(WithListener(rec))

	a := d.NewText("a", "")
	img := d.NewImage(block.ImageRef{Width: 10, Height: 5})
	c := d.NewText("c", "")

	for _, step := range []struct {
		index int
		b     block.Block
	}{
		{0, a},
		{1, c},
		{1, img},
	} {
		if err := d.InsertAt(step.index, step.b); err != nil {
			t.Fatalf("InsertAt(%d): %v", step.index, err)
		}
	}

	if diff := cmp.Diff([]string{"text", "image", "text"}, kinds(d)); diff != "" {
		t.Errorf("block kinds mismatch (-want +got):\n%s", diff)
	}
	want := []string{"insert 0 text", "insert 1 text", "insert 1 image"}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("listener calls mismatch (-want +got):\n%s", diff)
	}
	if d.Version() != 3 {
		t.Errorf("Version = %d, want 3", d.Version())
	}
}

func TestInsertAtOutOfRange(t *testing.T) {
	d := NewWithText("")
	for _, idx := range []int{-1, 2, 10} {
		err := d.InsertAt(idx, d.NewText("x", ""))
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("InsertAt(%d): expected ErrIndexOutOfRange, got %v", idx, err)
		}
	}
	if d.Len() != 1 {
		t.Errorf("failed inserts changed the document: len %d", d.Len())
	}
}

func TestInsertDuplicateID(t *testing.T) {
	d := NewWithText("")
	b, _ := d.BlockAt(0)
	if err := d.InsertAt(1, b); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
}

func TestRemoveAt(t *testing.T) {
	rec := &recorder{}
	d := NewWithText("")
	img := d.NewImage(block.ImageRef{Width: 1, Height: 1})
	_ = d.InsertAt(0, img)
	d.AddListener(rec)

	removed, err := d.RemoveAt(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed.BlockID() != img.ID {
		t.Errorf("removed %d, want %d", removed.BlockID(), img.ID)
	}
	if diff := cmp.Diff([]string{"remove 0 image"}, rec.calls); diff != "" {
		t.Errorf("listener calls mismatch (-want +got):\n%s", diff)
	}
	if _, err := d.IndexOf(img.ID); !errors.Is(err, ErrBlockNotFound) {
		t.Errorf("expected ErrBlockNotFound after removal, got %v", err)
	}
}

func TestRemoveAtOutOfRange(t *testing.T) {
	d := NewWithText("")
	for _, idx := range []int{-1, 1} {
		if _, err := d.RemoveAt(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("RemoveAt(%d): expected ErrIndexOutOfRange, got %v", idx, err)
		}
	}
}

func TestReplaceText(t *testing.T) {
	rec := &recorder{}
	d := NewWithText("", WithListener(rec))
	tb, _ := d.BlockAt(0)

	if err := d.ReplaceText(tb.BlockID(), "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text, err := d.Text(tb.BlockID())
	if err != nil || text != "hello" {
		t.Errorf("Text = %q, %v; want hello", text, err)
	}
	if got := rec.calls[len(rec.calls)-1]; got != "text 1 ->hello" {
		t.Errorf("last call = %q", got)
	}
}

func TestReplaceTextErrors(t *testing.T) {
	d := NewWithText("")
	img := d.NewImage(block.ImageRef{Width: 1, Height: 1})
	_ = d.InsertAt(0, img)

	if err := d.ReplaceText(img.ID, "x"); !errors.Is(err, ErrNotATextBlock) {
		t.Errorf("expected ErrNotATextBlock, got %v", err)
	}
	if err := d.ReplaceText(999, "x"); !errors.Is(err, ErrBlockNotFound) {
		t.Errorf("expected ErrBlockNotFound, got %v", err)
	}
}

func TestTypedLookups(t *testing.T) {
	d := NewWithText("")
	img := d.NewImage(block.ImageRef{Width: 4, Height: 2})
	_ = d.InsertAt(1, img)
	textID := block.ID(1)

	if _, idx, err := d.ImageBlock(img.ID); err != nil || idx != 1 {
		t.Errorf("ImageBlock = %d, %v", idx, err)
	}
	if _, _, err := d.ImageBlock(textID); !errors.Is(err, ErrNotAnImageBlock) {
		t.Errorf("expected ErrNotAnImageBlock, got %v", err)
	}
	if _, _, err := d.TextBlock(img.ID); !errors.Is(err, ErrNotATextBlock) {
		t.Errorf("expected ErrNotATextBlock, got %v", err)
	}
	if b, err := d.Block(img.ID); err != nil || b.Kind() != block.KindImage {
		t.Errorf("Block = %v, %v", b, err)
	}
	if _, err := d.BlockAt(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestIDsNeverReused(t *testing.T) {
	d := NewWithText("")
	first := d.NewText("x", "")
	_ = d.InsertAt(1, first)
	_, _ = d.RemoveAt(1)
	second := d.NewText("x", "")
	if second.ID <= first.ID {
		t.Errorf("id %d reused or decreased after %d", second.ID, first.ID)
	}
}

func TestBlocksIsCopy(t *testing.T) {
	d := NewWithText("")
	blocks := d.Blocks()
	blocks[0] = block.TextBlock{ID: 42}
	b, _ := d.BlockAt(0)
	if b.BlockID() == 42 {
		t.Error("Blocks exposed internal slice")
	}
}

func TestListenerFuncs(t *testing.T) {
	var inserted, removed, changed int
	d := New(WithListener(ListenerFuncs{
		OnInserted:    func(int, block.Block) { inserted++ },
		OnRemoved:     func(int, block.Block) { removed++ },
		OnTextChanged: func(block.ID, string, string) { changed++ },
	}))
	d.AddListener(ListenerFuncs{}) // nil funcs must be skipped

	tb := d.NewText("", "")
	_ = d.InsertAt(0, tb)
	_ = d.ReplaceText(tb.ID, "x")
	_, _ = d.RemoveAt(0)

	if inserted != 1 || removed != 1 || changed != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/1/1", inserted, removed, changed)
	}
}
