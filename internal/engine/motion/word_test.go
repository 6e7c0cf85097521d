package motion

import (
	"testing"

	"github.com/dshills/keyline/internal/engine/buffer"
)

func doc(t *testing.T, text string) *buffer.Document {
	t.Helper()
	d, err := buffer.NewDocumentFromBytes([]byte(text))
	if err != nil {
		t.Fatalf("NewDocumentFromBytes(%q): %v", text, err)
	}
	return d
}

func pt(line, col int) Point {
	return Point{Line: line, Column: col}
}

func TestIsWordByte(t *testing.T) {
	for _, c := range []byte("azAZ09") {
		if !IsWordByte(c) {
			t.Errorf("%q should be a word byte", c)
		}
	}
	for _, c := range []byte(" _-.\t(\x00\xc3") {
		if IsWordByte(c) {
			t.Errorf("%q should not be a word byte", c)
		}
	}
}

func TestNextWordBoundary(t *testing.T) {
	tests := []struct {
		name string
		text string
		from Point
		want Point
	}{
		{"stops after first word", "foo  bar", pt(0, 0), pt(0, 3)},
		{"skips leading delimiters", "foo  bar", pt(0, 3), pt(0, 8)},
		{"mid word", "hello world", pt(0, 2), pt(0, 5)},
		{"punctuation ends word", "a.b", pt(0, 0), pt(0, 1)},
		{"only delimiters", "  -- ", pt(0, 0), pt(0, 5)},
		{"wraps at line end", "ab\n  cd ef", pt(0, 2), pt(1, 4)},
		{"wraps onto empty line", "ab\n\ncd", pt(0, 2), pt(1, 0)},
		{"document end saturates", "ab\ncd", pt(1, 2), pt(1, 2)},
		{"empty document", "", pt(0, 0), pt(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := doc(t, tt.text)
			if got := NextWordBoundary(d, tt.from); got != tt.want {
				t.Errorf("NextWordBoundary(%s) = %s, want %s", tt.from, got, tt.want)
			}
		})
	}
}

func TestPrevWordBoundary(t *testing.T) {
	tests := []struct {
		name string
		text string
		from Point
		want Point
	}{
		{"to word start", "foo  bar", pt(0, 8), pt(0, 5)},
		{"skips trailing delimiters", "foo  bar", pt(0, 5), pt(0, 0)},
		{"mid word", "hello world", pt(0, 9), pt(0, 6)},
		{"only delimiters", "  -- ", pt(0, 5), pt(0, 0)},
		{"wraps at column zero", "ab cd\nef", pt(1, 0), pt(0, 3)},
		{"wraps onto empty line", "\nab", pt(1, 0), pt(0, 0)},
		{"origin saturates", "ab\ncd", pt(0, 0), pt(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := doc(t, tt.text)
			if got := PrevWordBoundary(d, tt.from); got != tt.want {
				t.Errorf("PrevWordBoundary(%s) = %s, want %s", tt.from, got, tt.want)
			}
		})
	}
}

func TestWordBoundaryClampsInput(t *testing.T) {
	d := doc(t, "ab cd")
	if got := NextWordBoundary(d, pt(9, 9)); got != pt(0, 5) {
		t.Errorf("expected clamp to document end, got %s", got)
	}
	if got := PrevWordBoundary(d, pt(-1, -1)); got != pt(0, 0) {
		t.Errorf("expected clamp to origin, got %s", got)
	}
}

func TestWordBoundaryProgress(t *testing.T) {
	d := doc(t, "int main(void) {\n    return 0;\n}\n")

	// Repeated forward motion must reach the end without stalling.
	p := pt(0, 0)
	for i := 0; i < 100 && p != d.End(); i++ {
		next := NextWordBoundary(d, p)
		if !next.After(p) {
			t.Fatalf("no progress from %s", p)
		}
		p = next
	}
	if p != d.End() {
		t.Fatalf("did not reach end, stopped at %s", p)
	}

	for i := 0; i < 100 && p != pt(0, 0); i++ {
		prev := PrevWordBoundary(d, p)
		if !prev.Before(p) {
			t.Fatalf("no progress from %s", p)
		}
		p = prev
	}
	if p != pt(0, 0) {
		t.Fatalf("did not reach origin, stopped at %s", p)
	}
}
