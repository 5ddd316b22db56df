package document

import (
	"errors"
	"testing"

	"github.com/dshills/richeditor/internal/engine/block"
)

func TestValidate(t *testing.T) {
	img := func(id block.ID) block.Block { return block.NewImageBlock(id, block.ImageRef{Width: 1, Height: 1}) }
	txt := func(id block.ID) block.Block { return block.TextBlock{ID: id} }

	tests := []struct {
		name    string
		blocks  []block.Block
		wantErr bool
	}{
		{"empty", nil, true},
		{"single text", []block.Block{txt(1)}, false},
		{"image only", []block.Block{img(1)}, true},
		{"image text", []block.Block{img(1), txt(2)}, false},
		{"adjacent texts", []block.Block{txt(1), txt(2)}, false},
		{"adjacent images", []block.Block{txt(1), img(2), img(3)}, true},
		{"duplicate ids", []block.Block{txt(1), img(2), txt(1)}, true},
		{"interleaved", []block.Block{txt(1), img(2), txt(3), img(4), txt(5)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Document{blocks: tt.blocks}
			err := d.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvariant) {
					t.Errorf("expected ErrInvariant, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
