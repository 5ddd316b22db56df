// Package document holds the ordered block sequence of a rich document.
//
// Document exposes a deliberately small set of structural primitives:
//
//   - InsertAt / RemoveAt: positional insertion and removal
//   - ReplaceText: in-place text replacement on a TextBlock
//   - IndexOf / BlockAt: lookups
//
// No merge, split or repair logic lives here. Higher-level editing
// behavior composes these primitives and is responsible for keeping the
// document invariants (see Validate).
//
// Every successful mutation is reported to registered listeners, in
// order, before the primitive returns.
//
// Document is not safe for concurrent use; the editing engine serializes
// access to it.
package document
