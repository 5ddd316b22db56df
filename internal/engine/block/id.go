package block

import (
	"strconv"
	"sync/atomic"
)

// ID identifies a block for the lifetime of its document.
// The zero ID is never assigned.
type ID uint64

// String returns the decimal form of the id.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Sequence hands out monotonically increasing block IDs starting at 1.
// The zero value is ready to use and safe for concurrent use.
type Sequence struct {
	last atomic.Uint64
}

// Next returns a fresh ID.
func (s *Sequence) Next() ID {
	return ID(s.last.Add(1))
}

// Last returns the most recently issued ID, or 0 if none was issued.
func (s *Sequence) Last() ID {
	return ID(s.last.Load())
}
