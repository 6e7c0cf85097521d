package cursor

import (
	"testing"

	"github.com/dshills/keyline/internal/engine/buffer"
)

func pt(line, col int) Point {
	return Point{Line: line, Column: col}
}

func TestNewCursor(t *testing.T) {
	c := New()
	if c.Pos() != pt(0, 0) || c.Anchor() != pt(0, 0) {
		t.Errorf("expected cursor at origin, got %s", c.Selection())
	}
	if c.HasSelection() {
		t.Error("new cursor should have no selection")
	}
	if c.Mode() != ModeIdle {
		t.Errorf("expected idle mode, got %s", c.Mode())
	}
}

func TestUpdateSelectionOrders(t *testing.T) {
	c := New()
	c.SetPos(pt(2, 5))
	c.SetAnchor(pt(1, 3))
	c.UpdateSelection()

	begin, end := c.Bounds()
	if begin != pt(1, 3) || end != pt(2, 5) {
		t.Errorf("expected bounds (1:3)-(2:5), got %s-%s", begin, end)
	}
	if !c.HasSelection() {
		t.Error("expected a selection")
	}

	c.UpdateSelection()
	b2, e2 := c.Bounds()
	if b2 != begin || e2 != end {
		t.Errorf("second update changed bounds: %s-%s", b2, e2)
	}
}

func TestUpdateSelectionSameLine(t *testing.T) {
	c := New()
	c.SetPos(pt(0, 1))
	c.SetAnchor(pt(0, 7))
	c.UpdateSelection()

	begin, end := c.Bounds()
	if begin != pt(0, 1) || end != pt(0, 7) {
		t.Errorf("expected bounds (0:1)-(0:7), got %s-%s", begin, end)
	}
	if !c.Selection().IsBackward() {
		t.Error("caret before anchor should be a backward selection")
	}
}

func TestZeroWidthSelection(t *testing.T) {
	c := New()
	c.SetPos(pt(3, 2))
	c.SetAnchor(pt(3, 2))
	c.UpdateSelection()
	if c.HasSelection() {
		t.Error("caret == anchor must not count as a selection")
	}
}

func TestStopSelecting(t *testing.T) {
	c := New()
	c.StartShiftSelection()
	c.SetPos(pt(1, 4))
	c.UpdateSelection()
	if c.Mode() != ModeShiftSelecting || !c.HasSelection() {
		t.Fatalf("expected live shift selection, got %s mode", c.Mode())
	}

	c.StopSelecting()
	if c.Mode() != ModeIdle {
		t.Errorf("expected idle, got %s", c.Mode())
	}
	if c.HasSelection() {
		t.Error("selection should be collapsed")
	}
	begin, end := c.Bounds()
	if begin != pt(1, 4) || end != pt(1, 4) || c.Anchor() != pt(1, 4) {
		t.Errorf("expected everything collapsed to (1:4), got %s-%s anchor %s", begin, end, c.Anchor())
	}
}

func TestStartShiftSelectionKeepsAnchor(t *testing.T) {
	c := New()
	c.MoveTo(pt(0, 2))
	c.StartShiftSelection()
	c.SetPos(pt(0, 5))
	c.UpdateSelection()

	// A second call while already extending must not move the anchor.
	c.StartShiftSelection()
	if c.Anchor() != pt(0, 2) {
		t.Errorf("anchor moved to %s", c.Anchor())
	}
}

func TestContinueSelection(t *testing.T) {
	c := New()
	c.Select(pt(0, 0), pt(0, 3))
	if c.Mode() != ModeIdle {
		t.Fatalf("Select should not change mode, got %s", c.Mode())
	}

	c.ContinueSelection()
	if c.Mode() != ModeShiftSelecting {
		t.Errorf("expected shift-selecting, got %s", c.Mode())
	}

	c.StartShiftSelection()
	if c.Anchor() != pt(0, 0) {
		t.Errorf("continued selection lost its anchor: %s", c.Anchor())
	}
}

func TestSettle(t *testing.T) {
	c := New()
	c.MoveTo(pt(0, 3))
	c.StartShiftSelection()
	c.SetPos(pt(0, 4))
	c.Settle()
	if !c.HasSelection() || c.Mode() != ModeShiftSelecting {
		t.Fatalf("expected live selection after settle, got %s", c.Selection())
	}

	c.SetPos(pt(0, 3))
	c.Settle()
	if c.HasSelection() {
		t.Error("caret back on anchor should leave no selection")
	}
	if c.Mode() != ModeIdle {
		t.Errorf("empty selection should leave shift mode, got %s", c.Mode())
	}
}

func TestMouseLifecycle(t *testing.T) {
	c := New()
	c.MouseDown(pt(1, 2))
	if c.Mode() != ModeMouseSelecting {
		t.Fatalf("expected mouse-selecting, got %s", c.Mode())
	}
	if c.HasSelection() {
		t.Error("mouse down alone should not select")
	}

	if !c.MouseDrag(pt(0, 1)) {
		t.Error("drag to a new position should report a change")
	}
	if c.MouseDrag(pt(0, 1)) {
		t.Error("drag to the same position should not report a change")
	}
	begin, end := c.Bounds()
	if begin != pt(0, 1) || end != pt(1, 2) {
		t.Errorf("expected bounds (0:1)-(1:2), got %s-%s", begin, end)
	}
	if c.ColMax() != 1 {
		t.Errorf("expected colMax 1, got %d", c.ColMax())
	}

	c.MouseUp()
	if c.Mode() != ModeIdle {
		t.Errorf("expected idle after mouse up, got %s", c.Mode())
	}
	if !c.HasSelection() {
		t.Error("mouse up should keep the selection")
	}
	if c.MouseDrag(pt(3, 3)) {
		t.Error("drag after mouse up should be ignored")
	}
}

func TestMoveToResetsColMax(t *testing.T) {
	c := New()
	c.SetColMax(12)
	c.MoveTo(pt(2, 3))
	if c.ColMax() != 3 {
		t.Errorf("expected colMax 3, got %d", c.ColMax())
	}
	c.SetColMax(-4)
	if c.ColMax() != 0 {
		t.Errorf("negative colMax should clamp to 0, got %d", c.ColMax())
	}
}

func TestSelectAll(t *testing.T) {
	doc, err := buffer.NewDocumentFromBytes([]byte("one\ntwo\nthree"))
	if err != nil {
		t.Fatal(err)
	}
	c := New()
	c.SelectAll(doc)

	begin, end := c.Bounds()
	if begin != pt(0, 0) || end != pt(2, 5) {
		t.Errorf("expected (0:0)-(2:5), got %s-%s", begin, end)
	}
	if c.Pos() != pt(2, 5) {
		t.Errorf("caret should be at document end, got %s", c.Pos())
	}
}

func TestClamp(t *testing.T) {
	doc, err := buffer.NewDocumentFromBytes([]byte("ab\nc"))
	if err != nil {
		t.Fatal(err)
	}
	c := New()
	c.Select(pt(0, 9), pt(7, 7))
	c.Clamp(doc)

	if c.Pos() != pt(1, 1) {
		t.Errorf("expected caret (1:1), got %s", c.Pos())
	}
	if c.Anchor() != pt(0, 2) {
		t.Errorf("expected anchor (0:2), got %s", c.Anchor())
	}
	begin, end := c.Bounds()
	if begin != pt(0, 2) || end != pt(1, 1) {
		t.Errorf("expected bounds (0:2)-(1:1), got %s-%s", begin, end)
	}
}

func TestReset(t *testing.T) {
	c := New()
	c.MouseDown(pt(4, 4))
	c.MouseDrag(pt(5, 0))
	c.Reset()
	if c.Pos() != pt(0, 0) || c.HasSelection() || c.Mode() != ModeIdle || c.ColMax() != 0 {
		t.Errorf("reset left state behind: %s mode %s", c.Selection(), c.Mode())
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeIdle, "idle"},
		{ModeMouseSelecting, "mouse-selecting"},
		{ModeShiftSelecting, "shift-selecting"},
		{Mode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

// Selection Tests

func TestSelection(t *testing.T) {
	s := Selection{Anchor: pt(2, 0), Head: pt(1, 4)}
	if s.IsEmpty() {
		t.Error("selection should not be empty")
	}
	if !s.IsBackward() {
		t.Error("expected backward selection")
	}
	r := s.Range()
	if r.Start != pt(1, 4) || r.End != pt(2, 0) {
		t.Errorf("unexpected range %s", r)
	}

	caret := Selection{Anchor: pt(0, 3), Head: pt(0, 3)}
	if !caret.IsEmpty() || caret.IsBackward() {
		t.Error("caret should be empty and not backward")
	}
	if caret.String() != "Cursor(0:3)" {
		t.Errorf("unexpected string %q", caret.String())
	}
	if s.String() != "Selection((2:0)←(1:4))" {
		t.Errorf("unexpected string %q", s.String())
	}
}

func TestSelectionTracksCursor(t *testing.T) {
	c := New()
	c.Select(pt(3, 1), pt(0, 2))
	s := c.Selection()
	if s.Anchor != pt(3, 1) || s.Head != pt(0, 2) || !s.IsBackward() {
		t.Errorf("unexpected snapshot %s", s)
	}
	begin, end := c.Bounds()
	if r := s.Range(); r.Start != begin || r.End != end {
		t.Errorf("snapshot range %s disagrees with bounds %s-%s", r, begin, end)
	}
}
