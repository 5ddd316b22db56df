// Package engine implements the editing core of the rich document editor.
//
// A document is a linear sequence of text segments and embedded images.
// The Editor owns that sequence and a single caret, and implements the
// structural edits a user can trigger:
//
//   - InsertImage: split the active text segment at the caret and place
//     an image between the halves
//   - BackspaceAtBoundary: at the start of a text segment, delete the
//     preceding image or merge with the preceding text segment
//   - RemoveImage: delete an image through its close control
//
// # Presenters and hosts
//
// The Editor never draws anything. A Presenter receives every structural
// change in order (block inserted, block removed, text changed, caret
// moved, input method dismissed, image attached) and mirrors it on
// screen. A Host supplies the viewport width and decodes image files.
// Presenter callbacks run while the Editor holds its lock and must not
// call back into the Editor.
//
// # Deferred attachment
//
// After an image is inserted the Editor waits a short delay before it
// calls OnImageAttached. Attachments fire in insertion order and resolve
// the image position against the document as it is when they fire. An
// image removed before its attachment fires is never attached.
//
// # Basic usage
//
//	ed := engine.New(
//	    engine.WithPresenter(view),
//	    engine.WithHost(view),
//	)
//	defer ed.Close(context.Background())
//
//	ed.ReportTextEdit(first, "hello world")
//	ed.ReportFocus(first, 5)
//	ed.InsertImage(640, ref) // [hello][image][world]
//
// # Errors
//
// All errors describe misuse of the API (unknown block, wrong block kind,
// invalid offset) and are values from the document and cursor packages,
// re-exported here for errors.Is checks.
package engine
