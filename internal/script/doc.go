// Package script drives an engine.Editor from Lua.
//
// A State is a sandboxed gopher-lua interpreter with only the base, table,
// string and math libraries. The editor module installs a global editor
// table:
//
//	editor.insert_image(w, h [, name]) -> id
//	editor.insert_image_file(path)     -> id
//	editor.backspace(id)
//	editor.remove_image(id)
//	editor.focus(id [, offset])        offset defaults to end of text
//	editor.set_text(id, text)
//	editor.blocks()                    -> { {id=, kind=, text=, width=, height=}, ... }
//	editor.cursor()                    -> id, offset
//	editor.validate()                  -> true
//
// Engine errors are raised as Lua errors. Pending image attachments are
// flushed after every editing call.
package script
