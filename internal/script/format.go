package script

import (
	"fmt"
	"io"

	"github.com/dshills/richeditor/internal/engine/block"
)

// WriteBlocks prints one line per block: index, id, kind and content.
func WriteBlocks(w io.Writer, blocks []block.Block) error {
	for i, b := range blocks {
		var err error
		switch b := b.(type) {
		case block.TextBlock:
			_, err = fmt.Fprintf(w, "%d\t%s\ttext\t%q\n", i, b.ID, b.Text)
		case block.ImageBlock:
			_, err = fmt.Fprintf(w, "%d\t%s\timage\t%dx%d\n", i, b.ID, b.Image.Width, b.Image.Height)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
