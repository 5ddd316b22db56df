// Package events defines the topics and payloads published by the
// editing engine.
//
// Topic hierarchy:
//
//	document.block.inserted   a block entered the sequence
//	document.block.removed    a block left the sequence
//	document.text.changed     a TextBlock's text was replaced
//	document.image.attached   a deferred image attachment resolved
//	cursor.moved              the caret moved
//	input.dismissed           the on-screen input method should close
package events
