package buffer

import (
	"errors"
	"strings"
	"testing"
)

func TestNewLine(t *testing.T) {
	l, err := NewLine([]byte("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.String() != "hello" {
		t.Errorf("expected %q, got %q", "hello", l.String())
	}
	if l.Len() != 5 {
		t.Errorf("expected length 5, got %d", l.Len())
	}
	if l.Cap() < LineMinCapacity {
		t.Errorf("capacity %d below floor", l.Cap())
	}
}

func TestNewLineRejectsNewline(t *testing.T) {
	_, err := NewLine([]byte("a\nb"))
	if !errors.Is(err, ErrNewline) {
		t.Errorf("expected ErrNewline, got %v", err)
	}
}

func TestLineInsert(t *testing.T) {
	tests := []struct {
		name   string
		init   string
		offset int
		text   string
		want   string
	}{
		{"at start", "world", 0, "hello ", "hello world"},
		{"at end", "hello", 5, " world", "hello world"},
		{"in middle", "helo", 2, "l", "hello"},
		{"into empty", "", 0, "abc", "abc"},
		{"empty text", "abc", 1, "", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := NewLine([]byte(tt.init))
			if err := l.Insert(tt.offset, []byte(tt.text)); err != nil {
				t.Fatalf("insert failed: %v", err)
			}
			if l.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, l.String())
			}
		})
	}
}

func TestLineInsertOutOfRange(t *testing.T) {
	l, _ := NewLine([]byte("abc"))

	for _, offset := range []int{-1, 4, 100} {
		err := l.Insert(offset, []byte("x"))
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("offset %d: expected ErrOutOfRange, got %v", offset, err)
		}
	}
	if l.String() != "abc" {
		t.Errorf("line modified by failed insert: %q", l.String())
	}
}

func TestLineInsertRepeat(t *testing.T) {
	l, _ := NewLine([]byte("code"))
	if err := l.InsertRepeat(0, ' ', 4); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if l.String() != "    code" {
		t.Errorf("expected indented line, got %q", l.String())
	}
	if err := l.InsertRepeat(0, '\n', 1); !errors.Is(err, ErrNewline) {
		t.Errorf("expected ErrNewline, got %v", err)
	}
}

func TestLineErase(t *testing.T) {
	l, _ := NewLine([]byte("hello world"))

	if err := l.Erase(5, 6); err != nil {
		t.Fatalf("erase failed: %v", err)
	}
	if l.String() != "hello" {
		t.Errorf("expected %q, got %q", "hello", l.String())
	}

	if err := l.Erase(0, 0); err != nil {
		t.Fatalf("zero-length erase failed: %v", err)
	}

	if err := l.Erase(0, 5); err != nil {
		t.Fatalf("erase all failed: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("expected empty line, got %q", l.String())
	}
}

func TestLineEraseOutOfRange(t *testing.T) {
	l, _ := NewLine([]byte("abc"))

	cases := [][2]int{{-1, 1}, {0, 4}, {3, 1}, {2, -1}, {4, 0}}
	for _, c := range cases {
		if err := l.Erase(c[0], c[1]); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("erase(%d, %d): expected ErrOutOfRange, got %v", c[0], c[1], err)
		}
	}
}

func TestLineGrowShrink(t *testing.T) {
	l, _ := NewLine(nil)
	if l.Cap() != LineMinCapacity {
		t.Fatalf("expected capacity %d, got %d", LineMinCapacity, l.Cap())
	}

	if err := l.Append([]byte(strings.Repeat("x", 100))); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if l.Cap() != 256 {
		t.Errorf("expected capacity 256 for 100 bytes, got %d", l.Cap())
	}

	if err := l.Erase(0, 99); err != nil {
		t.Fatalf("erase failed: %v", err)
	}
	if l.Cap() != LineMinCapacity {
		t.Errorf("expected capacity to shrink to floor, got %d", l.Cap())
	}
	if l.String() != "x" {
		t.Errorf("content damaged by shrink: %q", l.String())
	}
}

func TestLineInsertAllocationFailure(t *testing.T) {
	l, _ := NewLine([]byte("abc"))

	allocLimit = 8
	defer func() { allocLimit = 0 }()

	err := l.Insert(1, []byte(strings.Repeat("z", 20)))
	if !errors.Is(err, ErrAllocationFailed) {
		t.Fatalf("expected ErrAllocationFailed, got %v", err)
	}
	if l.String() != "abc" {
		t.Errorf("failed insert modified line: %q", l.String())
	}
}

func TestLineClone(t *testing.T) {
	l, _ := NewLine([]byte("abc"))
	c, err := l.Clone()
	if err != nil {
		t.Fatalf("clone failed: %v", err)
	}
	_ = c.Append([]byte("d"))
	if l.String() != "abc" {
		t.Errorf("clone shares storage with original: %q", l.String())
	}
}
