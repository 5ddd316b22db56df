package block

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Len returns the number of grapheme clusters in s.
func Len(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// ByteOffset converts a grapheme offset into a byte index into s.
// Offsets past the end map to len(s). ok is false when offset is
// outside [0, Len(s)].
func ByteOffset(s string, offset int) (idx int, ok bool) {
	if offset < 0 {
		return 0, false
	}
	if offset == 0 {
		return 0, true
	}
	g := uniseg.NewGraphemes(s)
	n := 0
	for g.Next() {
		n++
		if n == offset {
			_, end := g.Positions()
			return end, true
		}
	}
	return len(s), false
}

// SplitAt splits s at the grapheme offset. Offsets are clamped to the
// text bounds.
func SplitAt(s string, offset int) (left, right string) {
	idx, _ := ByteOffset(s, offset)
	return s[:idx], s[idx:]
}

// Trim strips leading and trailing white space.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// IsBlank reports whether s contains only white space.
func IsBlank(s string) bool {
	return Trim(s) == ""
}

// ClampOffset limits offset to [0, Len(s)].
func ClampOffset(s string, offset int) int {
	if offset < 0 {
		return 0
	}
	if n := Len(s); offset > n {
		return n
	}
	return offset
}
