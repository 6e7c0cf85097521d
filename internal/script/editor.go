package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keyline/internal/engine"
)

// registerEditor installs the editor table.
func (s *State) registerEditor() {
	L := s.L
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"text":          s.text,
		"line":          s.line,
		"line_count":    s.lineCount,
		"cursor":        s.cursor,
		"set_cursor":    s.setCursor,
		"select":        s.selectRange,
		"selection":     s.selection,
		"selected_text": s.selectedText,
		"insert":        s.insert,
		"erase":         s.erase,
		"extract":       s.extract,
		"indent":        s.indent,
		"dedent":        s.dedent,
		"on":            s.on,
		"off":           s.off,
	})
	L.SetGlobal("editor", mod)
}

// checkPoint reads a 1-based line and column at argument n and n+1.
func checkPoint(L *lua.LState, n int) engine.Point {
	line := L.CheckInt(n)
	col := L.CheckInt(n + 1)
	if line < 1 {
		L.ArgError(n, "line must be >= 1")
	}
	if col < 1 {
		L.ArgError(n+1, "column must be >= 1")
	}
	return engine.Point{Line: line - 1, Column: col - 1}
}

func pushPoint(L *lua.LState, p engine.Point) {
	L.Push(lua.LNumber(p.Line + 1))
	L.Push(lua.LNumber(p.Column + 1))
}

// text() -> string
func (s *State) text(L *lua.LState) int {
	L.Push(lua.LString(s.ed.Text()))
	return 1
}

// line(n) -> string
func (s *State) line(L *lua.LState) int {
	n := L.CheckInt(1)
	if n < 1 || n > s.ed.LineCount() {
		L.ArgError(1, "line out of range")
		return 0
	}
	L.Push(lua.LString(s.ed.LineText(n - 1)))
	return 1
}

// line_count() -> number
func (s *State) lineCount(L *lua.LState) int {
	L.Push(lua.LNumber(s.ed.LineCount()))
	return 1
}

// cursor() -> line, col
func (s *State) cursor(L *lua.LState) int {
	pushPoint(L, s.ed.Cursor().Pos)
	return 2
}

// set_cursor(line, col)
// Positions past the end of the document are clamped.
func (s *State) setCursor(L *lua.LState) int {
	s.ed.MoveTo(checkPoint(L, 1))
	return 0
}

// select(l1, c1, l2, c2)
// Anchors at (l1, c1) and puts the caret at (l2, c2).
func (s *State) selectRange(L *lua.LState) int {
	s.ed.Select(checkPoint(L, 1), checkPoint(L, 3))
	return 0
}

// selection() -> l1, c1, l2, c2 | nil
// Returns the ordered bounds, or nil without a selection.
func (s *State) selection(L *lua.LState) int {
	c := s.ed.Cursor()
	if !c.HasSelection {
		L.Push(lua.LNil)
		return 1
	}
	pushPoint(L, c.Begin)
	pushPoint(L, c.End)
	return 4
}

// selected_text() -> string
func (s *State) selectedText(L *lua.LState) int {
	b, err := s.ed.Selected()
	if err != nil {
		L.RaiseError("selected_text: %v", err)
		return 0
	}
	L.Push(lua.LString(b))
	return 1
}

// insert(text)
// Inserts at the caret and moves the caret after the text.
func (s *State) insert(L *lua.LState) int {
	text := L.CheckString(1)
	if err := s.ed.InsertText(s.ed.Cursor().Pos, []byte(text)); err != nil {
		L.RaiseError("insert: %v", err)
	}
	return 0
}

// erase(l1, c1, l2, c2)
func (s *State) erase(L *lua.LState) int {
	if err := s.ed.EraseRange(checkPoint(L, 1), checkPoint(L, 3)); err != nil {
		L.RaiseError("erase: %v", err)
	}
	return 0
}

// extract(l1, c1, l2, c2) -> string
func (s *State) extract(L *lua.LState) int {
	b, err := s.ed.ExtractRange(checkPoint(L, 1), checkPoint(L, 3))
	if err != nil {
		L.RaiseError("extract: %v", err)
		return 0
	}
	L.Push(lua.LString(b))
	return 1
}

// indent()
// Indents the selected lines, or inserts spaces at the caret.
func (s *State) indent(L *lua.LState) int {
	if err := s.ed.Tab(); err != nil {
		L.RaiseError("indent: %v", err)
	}
	return 0
}

// dedent()
// Dedents the selected lines or the caret's line.
func (s *State) dedent(L *lua.LState) int {
	if err := s.ed.ShiftTab(); err != nil {
		L.RaiseError("dedent: %v", err)
	}
	return 0
}
