package engine

import "github.com/dshills/keyline/internal/engine/edit"

// Default configuration values.
const (
	DefaultTabSize = edit.DefaultTabSize
	MaxTabSize     = 32
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
func WithContent(content []byte) Option {
	return func(e *Engine) {
		e.initContent = content
	}
}

// WithTabSize sets the indent width used by Tab and ShiftTab.
// Values outside 1..MaxTabSize are ignored.
func WithTabSize(size int) Option {
	return func(e *Engine) {
		if size > 0 && size <= MaxTabSize {
			e.tabSize = size
		}
	}
}

// WithReadOnly creates a read-only engine.
// Write operations will return ErrReadOnly.
func WithReadOnly() Option {
	return func(e *Engine) {
		e.readOnly = true
	}
}
