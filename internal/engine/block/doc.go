// Package block defines the content units of a rich document.
//
// A document is a linear sequence of blocks. Two kinds exist:
//
//   - TextBlock: an editable run of plain text
//   - ImageBlock: an embedded picture with a fixed aspect ratio
//
// Blocks are immutable value types. Mutating a document replaces the
// block value held at a position; the block identity (ID) is preserved.
//
// IDs come from a Sequence owned by the document. A sequence only moves
// forward, so an ID is never handed out twice, even after the block that
// carried it has been removed.
//
// Text offsets used throughout the engine count grapheme clusters, the
// characters a user perceives, rather than bytes or runes. The helpers in
// text.go convert between the two.
package block
