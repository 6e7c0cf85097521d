// Package clipboard provides the clipboards the editor copies to and pastes
// from: the system clipboard, an in-process one, and a combination that
// falls back to the in-process clipboard when the system one is unavailable.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no system clipboard utility is present.
var ErrUnavailable = errors.New("system clipboard unavailable")

// Clipboard stores flat text.
type Clipboard interface {
	Get() ([]byte, error)
	Set(text []byte) error
}

// System is the operating system clipboard.
type System struct{}

// Available reports whether the platform has a usable clipboard.
func (System) Available() bool {
	return !clipboard.Unsupported
}

// Get reads the system clipboard. CRLF and lone CR line breaks become LF.
func (s System) Get() ([]byte, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read clipboard: %w", err)
	}
	return normalizeNewlines([]byte(text)), nil
}

// Set writes text to the system clipboard.
func (s System) Set(text []byte) error {
	if !s.Available() {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(string(text)); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Memory is an in-process clipboard. The zero value is empty and ready.
type Memory struct {
	mu   sync.Mutex
	text []byte
}

// Get returns a copy of the stored text.
func (m *Memory) Get() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return bytes.Clone(m.text), nil
}

// Set stores a copy of text.
func (m *Memory) Set(text []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = bytes.Clone(text)
	return nil
}

// Fallback writes to both clipboards and reads from the primary, using the
// secondary when the primary fails.
type Fallback struct {
	Primary   Clipboard
	Secondary Clipboard
}

// Get reads Primary, or Secondary if Primary fails.
func (f *Fallback) Get() ([]byte, error) {
	text, err := f.Primary.Get()
	if err == nil {
		return text, nil
	}
	return f.Secondary.Get()
}

// Set writes text to Secondary and then to Primary. A Primary failure is
// not reported since Secondary holds the text.
func (f *Fallback) Set(text []byte) error {
	if err := f.Secondary.Set(text); err != nil {
		return err
	}
	_ = f.Primary.Set(text)
	return nil
}

// New returns the clipboard to use. With useSystem set and a system
// clipboard present it returns a Fallback over System and Memory; otherwise
// a Memory clipboard.
func New(useSystem bool) Clipboard {
	mem := &Memory{}
	if useSystem && (System{}).Available() {
		return &Fallback{Primary: System{}, Secondary: mem}
	}
	return mem
}

func normalizeNewlines(b []byte) []byte {
	b = bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(b, []byte("\r"), []byte("\n"))
}
