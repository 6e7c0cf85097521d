package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/dshills/keyline/internal/engine"
	"github.com/dshills/keyline/internal/engine/edit"
)

// DefaultName is the file name used when the editor starts without one.
const DefaultName = "unnamed"

// Document is the file being edited together with its engine.
type Document struct {
	// Path is the file the document is saved to.
	Path string

	// Name is the display name.
	Name string

	// Engine holds the text and the cursor.
	Engine *engine.Engine

	// savedRev is the engine revision last written to Path.
	savedRev atomic.Uint64
}

// OpenDocument loads path into a new engine. A missing file yields an empty
// document that will be created on save. Bytes a document cannot hold
// (control characters, tabs, non-ASCII) are dropped.
func OpenDocument(path string, opts ...engine.Option) (*Document, error) {
	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		content = nil
	case err != nil:
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}

	eng, err := engine.New(append(opts, engine.WithContent(edit.Clean(content)))...)
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}

	doc := &Document{
		Path:   path,
		Name:   filepath.Base(path),
		Engine: eng,
	}
	doc.savedRev.Store(eng.Revision())
	return doc, nil
}

// UnusedName returns DefaultName, or "unnamed (n)" with the smallest n
// for which no file exists in dir.
func UnusedName(dir string) string {
	name := DefaultName
	for n := 1; exists(filepath.Join(dir, name)); n++ {
		name = fmt.Sprintf("%s (%d)", DefaultName, n)
	}
	return name
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// IsModified reports whether the document changed since it was opened or
// last saved.
func (d *Document) IsModified() bool {
	return d.Engine.Revision() != d.savedRev.Load()
}

// IsReadOnly reports whether edits and saves are refused.
func (d *Document) IsReadOnly() bool {
	return d.Engine.IsReadOnly()
}

// Save writes the whole document to Path and returns the number of bytes
// written.
func (d *Document) Save() (int, error) {
	if d.IsReadOnly() {
		return 0, ErrReadOnly
	}

	data, rev, err := d.Engine.Contents()
	if err != nil {
		return 0, &FileError{Op: "save", Path: d.Path, Err: err}
	}
	if err := os.WriteFile(d.Path, data, 0o644); err != nil {
		return 0, &FileError{Op: "save", Path: d.Path, Err: err}
	}
	d.savedRev.Store(rev)
	return len(data), nil
}
