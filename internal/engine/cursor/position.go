package cursor

import (
	"fmt"

	"github.com/dshills/richeditor/internal/engine/block"
)

// Position is a caret location. Position is an immutable value type.
type Position struct {
	Block  block.ID
	Offset int
}

// At returns the position offset within the block id.
func At(id block.ID, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	return Position{Block: id, Offset: offset}
}

// MoveTo returns the position at a different offset of the same block.
func (p Position) MoveTo(offset int) Position {
	return At(p.Block, offset)
}

// IsStart reports whether the caret is at the beginning of its block.
func (p Position) IsStart() bool {
	return p.Offset == 0
}

// Equals reports whether two positions are identical.
func (p Position) Equals(other Position) bool {
	return p == other
}

// String returns a debug representation.
func (p Position) String() string {
	return fmt.Sprintf("Cursor(%d:%d)", p.Block, p.Offset)
}
