package script

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/richeditor/internal/engine"
	"github.com/dshills/richeditor/internal/engine/attach"
	"github.com/dshills/richeditor/internal/engine/block"
)

type attachLog struct {
	engine.NopPresenter
	attached []block.ID
}

func (a *attachLog) OnImageAttached(_ int, img block.ImageBlock, _ int) {
	a.attached = append(a.attached, img.ID)
}

func newScriptState(t *testing.T) (*State, *engine.Editor, *attachLog, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	log := &attachLog{}
	sched := attach.NewManual()
	ed := engine.New(engine.WithPresenter(log), engine.WithScheduler(sched))
	s := NewState(WithOutput(&out))
	if err := s.Register(NewEditorModule(ed, WithFlush(sched.RunPending))); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = s.Close()
		_ = ed.Close(context.Background())
	})
	return s, ed, log, &out
}

func TestEditorModule(t *testing.T) {
	s, ed, log, out := newScriptState(t)

	err := s.DoString(`
		local first = editor.blocks()[1].id
		editor.set_text(first, "hello world")
		editor.focus(first, 5)
		local img = editor.insert_image(40, 20, "cat")
		local id, off = editor.cursor()
		assert(id == first and off == 5, "cursor after split")

		local bs = editor.blocks()
		assert(#bs == 3, "three blocks")
		assert(bs[2].kind == "image" and bs[2].width == 40)
		assert(bs[3].text == "world")

		editor.backspace(bs[3].id)
		assert(#editor.blocks() == 2)
		editor.backspace(bs[3].id)
		print(#editor.blocks(), editor.blocks()[1].text)
		assert(editor.validate())
	`)
	if err != nil {
		t.Fatalf("DoString: %v", err)
	}

	if got := strings.TrimSpace(out.String()); got != "1\thelloworld" {
		t.Errorf("output = %q", got)
	}
	if len(log.attached) != 1 {
		t.Errorf("attached = %v, want one image", log.attached)
	}
	if ed.Len() != 1 {
		t.Errorf("Len = %d", ed.Len())
	}
}

func TestEditorModuleErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"remove text block", `editor.remove_image(editor.blocks()[1].id)`, "not an image block"},
		{"unknown block", `editor.focus(999)`, "block not found"},
		{"bad offset", `editor.focus(editor.blocks()[1].id, 3)`, "invalid offset"},
		{"bad dimensions", `editor.insert_image(0, 10)`, "dimensions must be positive"},
		{"bad id", `editor.backspace(-1)`, "block id must be positive"},
		{"no host", `editor.insert_image_file("x.png")`, "no host configured"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _, _ := newScriptState(t)
			err := s.DoString(tt.code)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestSandbox(t *testing.T) {
	s, _, _, out := newScriptState(t)
	err := s.DoString(`print(os == nil, io == nil, dofile == nil, require == nil, load == nil)`)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out.String()); got != "true\ttrue\ttrue\ttrue\ttrue" {
		t.Errorf("sandbox globals = %q", got)
	}
}

func TestExecutionTimeout(t *testing.T) {
	s := NewState(WithExecutionTimeout(50 * time.Millisecond))
	defer s.Close()

	err := s.DoString(`while true do end`)
	if !errors.Is(err, ErrExecutionTimeout) {
		t.Errorf("err = %v, want ErrExecutionTimeout", err)
	}
}

func TestClosedState(t *testing.T) {
	s := NewState()
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.DoString(`x = 1`); !errors.Is(err, ErrStateClosed) {
		t.Errorf("err = %v, want ErrStateClosed", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestWriteBlocks(t *testing.T) {
	blocks := []block.Block{
		block.TextBlock{ID: 1, Text: "a"},
		block.ImageBlock{ID: 2, Image: block.ImageRef{Width: 3, Height: 4}},
	}
	var buf bytes.Buffer
	if err := WriteBlocks(&buf, blocks); err != nil {
		t.Fatal(err)
	}
	want := "0\t1\ttext\t\"a\"\n1\t2\timage\t3x4\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}
