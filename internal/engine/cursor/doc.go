// Package cursor tracks the caret of a rich document.
//
// The caret always sits inside a TextBlock. It is described by a
// Position: the id of the active TextBlock and a grapheme offset into
// its text. Keying on block ids instead of positions keeps the caret
// stable while blocks are inserted or removed around it.
//
// A Tracker does not own any blocks. It reads text through a TextSource
// (normally the document) to validate offsets.
//
// When the active block is removed, the tracker enters a "no active
// block" state until focus is set again. The editing engine resolves that
// state before an operation returns.
//
// Tracker is not safe for concurrent use.
package cursor
