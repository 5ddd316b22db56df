package engine

import (
	"errors"
	"strconv"
	"testing"

	"github.com/dshills/richeditor/internal/engine/block"
)

type fakeHost struct {
	width    int
	maxWidth int
	err      error
}

func (h *fakeHost) ViewportWidth() int { return h.width }

func (h *fakeHost) DecodeImage(_ string, maxWidth int) (block.ImageRef, error) {
	h.maxWidth = maxWidth
	if h.err != nil {
		return block.ImageRef{}, h.err
	}
	return block.ImageRef{Width: 80, Height: 40}, nil
}

func TestInsertImageFromPath(t *testing.T) {
	tests := []struct {
		name         string
		viewport     int
		maxImage     int
		wantMaxWidth int
	}{
		{"viewport bound", 120, 0, 120},
		{"config cap", 120, 64, 64},
		{"cap above viewport", 120, 500, 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := &fakeHost{width: tt.viewport}
			f := newFixture(t, WithHost(host), WithMaxImageWidth(tt.maxImage))

			id, err := f.ed.InsertImageFromPath("cat.png")
			if err != nil {
				t.Fatalf("InsertImageFromPath: %v", err)
			}
			if host.maxWidth != tt.wantMaxWidth {
				t.Errorf("decode max width = %d, want %d", host.maxWidth, tt.wantMaxWidth)
			}
			f.sched.RunPending()
			calls := f.rec.take()
			last := calls[len(calls)-1]
			want := "attach 0 80x40 h=" + strconv.Itoa(tt.viewport/2)
			if last != want {
				t.Errorf("last call = %q, want %q (id %d)", last, want, id)
			}
		})
	}
}

func TestInsertImageFromPathErrors(t *testing.T) {
	f := newFixture(t)
	if _, err := f.ed.InsertImageFromPath("x.png"); !errors.Is(err, ErrNoHost) {
		t.Errorf("err = %v, want ErrNoHost", err)
	}

	decodeErr := errors.New("corrupt")
	f = newFixture(t, WithHost(&fakeHost{width: 10, err: decodeErr}))
	if _, err := f.ed.InsertImageFromPath("x.png"); !errors.Is(err, decodeErr) {
		t.Errorf("err = %v, want %v", err, decodeErr)
	}
	if f.ed.Len() != 1 {
		t.Errorf("Len = %d after failed decode", f.ed.Len())
	}
}
