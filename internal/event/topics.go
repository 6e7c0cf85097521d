package event

import (
	"github.com/dshills/keyline/internal/engine"
	"github.com/dshills/keyline/internal/event/topic"
)

// Topics published by the application.
const (
	// TopicBufferChanged is published after the document content changed.
	TopicBufferChanged topic.Topic = "buffer.changed"

	// TopicCursorMoved is published after the caret or selection changed.
	TopicCursorMoved topic.Topic = "cursor.moved"

	// TopicBufferSaved is published after the document was written to disk.
	TopicBufferSaved topic.Topic = "buffer.saved"

	// TopicConfigReloaded is published after the configuration file was reloaded.
	TopicConfigReloaded topic.Topic = "config.reloaded"
)

// BufferChanged is the payload for TopicBufferChanged.
type BufferChanged struct {
	// LineCount is the number of lines after the change.
	LineCount int

	// Revision is the engine revision after the change.
	Revision uint64
}

// CursorMoved is the payload for TopicCursorMoved.
type CursorMoved struct {
	// Pos is the caret position.
	Pos engine.Point

	// Begin and End are the ordered selection bounds.
	Begin engine.Point
	End   engine.Point

	// HasSelection is true if Begin != End.
	HasSelection bool

	// Selection is the anchor and caret in the order they were set.
	Selection engine.Selection
}

// BufferSaved is the payload for TopicBufferSaved.
type BufferSaved struct {
	// Path is the file written.
	Path string

	// Bytes is the number of bytes written.
	Bytes int
}

// ConfigReloaded is the payload for TopicConfigReloaded.
type ConfigReloaded struct {
	// Path is the configuration file that changed.
	Path string
}
