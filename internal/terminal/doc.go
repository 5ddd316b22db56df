// Package terminal is a Presentation Adapter that draws the document on a
// tcell screen.
//
// A View mirrors the block sequence from engine.Presenter callbacks and
// serves as the engine.Host. Text blocks are drawn one per row with the
// placeholder hint when empty. Image blocks reserve rows in proportion to
// their aspect ratio; the box is filled with the image's swatch colour
// once the deferred attachment fires. Every image carries a [x] close
// marker.
//
// Keys:
//
//	printable   insert at the caret
//	Left/Right  move within the text block
//	Up/Down     move to the previous or next text block
//	Backspace   delete, or join with the previous block at offset 0
//	Ctrl-O      prompt for an image path and insert it
//	Esc/Ctrl-Q  quit
//
// Lock order is always engine before View: presenter callbacks take the
// View lock under the engine lock, so the View never calls the engine
// while holding its own lock.
package terminal
