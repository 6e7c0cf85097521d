package term

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyline/internal/engine"
	"github.com/dshills/keyline/internal/input"
)

// statusRows is the height of the status line.
const statusRows = 1

// Styles are the colours used for each part of the screen.
type Styles struct {
	Text      tcell.Style
	Gutter    tcell.Style
	Selection tcell.Style
	Status    tcell.Style
}

// DefaultStyles returns the terminal's default colours with a dim gutter
// and reversed selection and status line.
func DefaultStyles() Styles {
	return Styles{
		Text:      tcell.StyleDefault,
		Gutter:    tcell.StyleDefault.Foreground(tcell.ColorGray),
		Selection: tcell.StyleDefault.Reverse(true),
		Status:    tcell.StyleDefault.Reverse(true),
	}
}

// Draw renders a snapshot taken with engine.View for the rows of vp,
// followed by the status line, and shows the result.
func (t *Terminal) Draw(v engine.View, vp input.Viewport, status string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
	gutter := input.GutterWidth(v.LineCount)
	sel := v.Cursor.Selection.Range()

	for i, line := range v.Lines {
		y := v.FirstLine + i - vp.FirstLine
		if y < 0 || y >= vp.Rows {
			continue
		}
		n := v.FirstLine + i
		t.drawGutter(y, n+1, gutter)

		for x := gutter; x < vp.Cols; x++ {
			col := vp.FirstColumn + x - gutter
			p := engine.Point{Line: n, Column: col}
			selected := v.Cursor.HasSelection && sel.Contains(p)
			style := t.styles.Text
			if selected {
				style = t.styles.Selection
			}
			switch {
			case col < len(line):
				t.screen.SetContent(x, y, rune(line[col]), nil, style)
			case col == len(line) && selected:
				// The line break is part of the selection.
				t.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}

	if x, y, ok := vp.PointToScreen(v.Cursor.Pos, v.LineCount); ok {
		t.screen.ShowCursor(x, y)
	} else {
		t.screen.HideCursor()
	}

	t.drawStatus(vp.Rows, vp.Cols, status)
	t.screen.Show()
}

// drawGutter writes the 1-based line number right aligned, leaving the
// last gutter cell blank.
func (t *Terminal) drawGutter(y, number, width int) {
	s := strconv.Itoa(number)
	x := width - 1 - len(s)
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, t.styles.Gutter)
		x++
	}
}

func (t *Terminal) drawStatus(y, width int, status string) {
	x := 0
	for _, r := range status {
		if x >= width {
			break
		}
		t.screen.SetContent(x, y, r, nil, t.styles.Status)
		x++
	}
	for ; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, t.styles.Status)
	}
}
