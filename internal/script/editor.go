package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/richeditor/internal/engine"
	"github.com/dshills/richeditor/internal/engine/block"
)

// DefaultViewportWidth is the layout width used by insert_image.
const DefaultViewportWidth = 80

// EditorModule implements the editor table.
type EditorModule struct {
	ed       *engine.Editor
	viewport int
	flush    func() int
}

// ModuleOption configures an EditorModule.
type ModuleOption func(*EditorModule)

// WithViewportWidth sets the width passed to InsertImage.
func WithViewportWidth(w int) ModuleOption {
	return func(m *EditorModule) {
		if w > 0 {
			m.viewport = w
		}
	}
}

// WithFlush sets the function run after each editing call, typically
// attach.Manual.RunPending.
func WithFlush(fn func() int) ModuleOption {
	return func(m *EditorModule) {
		m.flush = fn
	}
}

// NewEditorModule creates the editor module for ed.
func NewEditorModule(ed *engine.Editor, opts ...ModuleOption) *EditorModule {
	m := &EditorModule{ed: ed, viewport: DefaultViewportWidth}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the module name.
func (m *EditorModule) Name() string {
	return "editor"
}

// Register registers the module into the Lua state.
func (m *EditorModule) Register(L *lua.LState) error {
	mod := L.NewTable()
	L.SetField(mod, "insert_image", L.NewFunction(m.insertImage))
	L.SetField(mod, "insert_image_file", L.NewFunction(m.insertImageFile))
	L.SetField(mod, "backspace", L.NewFunction(m.backspace))
	L.SetField(mod, "remove_image", L.NewFunction(m.removeImage))
	L.SetField(mod, "focus", L.NewFunction(m.focus))
	L.SetField(mod, "set_text", L.NewFunction(m.setText))
	L.SetField(mod, "blocks", L.NewFunction(m.blocks))
	L.SetField(mod, "cursor", L.NewFunction(m.cursor))
	L.SetField(mod, "validate", L.NewFunction(m.validate))
	L.SetGlobal(m.Name(), mod)
	return nil
}

func (m *EditorModule) done() {
	if m.flush != nil {
		m.flush()
	}
}

func checkID(L *lua.LState, n int) block.ID {
	id := L.CheckInt64(n)
	if id <= 0 {
		L.ArgError(n, "block id must be positive")
	}
	return block.ID(id)
}

// insert_image(w, h [, name]) -> id
func (m *EditorModule) insertImage(L *lua.LState) int {
	w := L.CheckInt(1)
	h := L.CheckInt(2)
	name := L.OptString(3, "")
	if w <= 0 || h <= 0 {
		L.RaiseError("insert_image: dimensions must be positive, got %dx%d", w, h)
		return 0
	}

	id, err := m.ed.InsertImage(m.viewport, block.ImageRef{Handle: name, Width: w, Height: h})
	if err != nil {
		L.RaiseError("insert_image: %v", err)
		return 0
	}
	m.done()
	L.Push(lua.LNumber(id))
	return 1
}

// insert_image_file(path) -> id
func (m *EditorModule) insertImageFile(L *lua.LState) int {
	path := L.CheckString(1)
	id, err := m.ed.InsertImageFromPath(path)
	if err != nil {
		L.RaiseError("insert_image_file: %v", err)
		return 0
	}
	m.done()
	L.Push(lua.LNumber(id))
	return 1
}

// backspace(id) applies a backspace at offset 0 of the text block.
func (m *EditorModule) backspace(L *lua.LState) int {
	if err := m.ed.BackspaceAtBoundary(checkID(L, 1)); err != nil {
		L.RaiseError("backspace: %v", err)
	}
	m.done()
	return 0
}

// remove_image(id)
func (m *EditorModule) removeImage(L *lua.LState) int {
	if err := m.ed.RemoveImage(checkID(L, 1)); err != nil {
		L.RaiseError("remove_image: %v", err)
	}
	m.done()
	return 0
}

// focus(id [, offset])
func (m *EditorModule) focus(L *lua.LState) int {
	id := checkID(L, 1)
	offset := L.OptInt(2, -1)
	if err := m.ed.ReportFocus(id, offset); err != nil {
		L.RaiseError("focus: %v", err)
	}
	return 0
}

// set_text(id, text)
func (m *EditorModule) setText(L *lua.LState) int {
	id := checkID(L, 1)
	text := L.CheckString(2)
	if err := m.ed.ReportTextEdit(id, text); err != nil {
		L.RaiseError("set_text: %v", err)
	}
	return 0
}

// blocks() -> array of block tables
func (m *EditorModule) blocks(L *lua.LState) int {
	list := L.NewTable()
	for _, b := range m.ed.Blocks() {
		t := L.NewTable()
		t.RawSetString("id", lua.LNumber(b.BlockID()))
		t.RawSetString("kind", lua.LString(b.Kind().String()))
		switch b := b.(type) {
		case block.TextBlock:
			t.RawSetString("text", lua.LString(b.Text))
		case block.ImageBlock:
			t.RawSetString("width", lua.LNumber(b.Image.Width))
			t.RawSetString("height", lua.LNumber(b.Image.Height))
		}
		list.Append(t)
	}
	L.Push(list)
	return 1
}

// cursor() -> id, offset | nil
func (m *EditorModule) cursor(L *lua.LState) int {
	pos, ok := m.ed.Cursor()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(pos.Block))
	L.Push(lua.LNumber(pos.Offset))
	return 2
}

// validate() -> true
func (m *EditorModule) validate(L *lua.LState) int {
	if err := m.ed.Validate(); err != nil {
		L.RaiseError("validate: %v", err)
		return 0
	}
	L.Push(lua.LTrue)
	return 1
}
