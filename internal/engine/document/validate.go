package document

import (
	"fmt"

	"github.com/dshills/richeditor/internal/engine/block"
)

// Validate checks the structural invariants of the document:
//
//   - the sequence is non-empty and holds at least one TextBlock
//   - no two ImageBlocks are adjacent
//   - every block id is unique
//
// Two adjacent TextBlocks are legal; removing an image does not merge
// its neighbours.
func (d *Document) Validate() error {
	if len(d.blocks) == 0 {
		return fmt.Errorf("empty document: %w", ErrInvariant)
	}
	if d.TextBlocks() == 0 {
		return fmt.Errorf("no text block: %w", ErrInvariant)
	}

	seen := make(map[block.ID]int, len(d.blocks))
	for i, b := range d.blocks {
		if prev, dup := seen[b.BlockID()]; dup {
			return fmt.Errorf("id %d at %d and %d: %w", b.BlockID(), prev, i, ErrInvariant)
		}
		seen[b.BlockID()] = i

		if i > 0 && block.IsImage(b) && block.IsImage(d.blocks[i-1]) {
			return fmt.Errorf("adjacent images at %d and %d: %w", i-1, i, ErrInvariant)
		}
	}
	return nil
}
