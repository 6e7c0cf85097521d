package app

import (
	"context"
	"fmt"

	"github.com/dshills/keyline/internal/event"
)

// SaveDocument writes the document to disk and publishes buffer.saved.
func (app *Application) SaveDocument(ctx context.Context) error {
	n, err := app.doc.Save()
	if err != nil {
		app.setMessage("save failed: %v", err)
		return err
	}

	app.metrics.RecordSave()
	app.setMessage("wrote %d bytes to %s", n, app.doc.Name)
	app.Logger().WithComponent("document").Info("saved %s (%d bytes)", app.doc.Path, n)

	ev := event.NewEvent(event.TopicBufferSaved, event.BufferSaved{Path: app.doc.Path, Bytes: n}, eventSource)
	return app.publish(ctx, ev)
}

// Quit stops the event loop. Unsaved changes are discarded unless force is
// false, in which case the first request only warns.
func (app *Application) Quit(force bool) error {
	if !force && app.doc.IsModified() && !app.quitWarned {
		app.quitWarned = true
		app.setMessage("unsaved changes: press Ctrl+Q again to quit")
		return nil
	}
	return ErrQuit
}

// reloadConfig re-reads the configuration file and applies the settings
// that can change while running.
func (app *Application) reloadConfig(ctx context.Context) error {
	cfg, err := loadConfig(app.opts.ConfigPath)
	if err != nil {
		app.setMessage("config: %v", err)
		return err
	}

	app.config = cfg
	app.applyConfig()
	app.setMessage("reloaded %s", app.opts.ConfigPath)
	app.Logger().WithComponent("config").Info("reloaded %s", app.opts.ConfigPath)

	ev := event.NewEvent(event.TopicConfigReloaded, event.ConfigReloaded{Path: app.opts.ConfigPath}, eventSource)
	return app.publish(ctx, ev)
}

// setMessage sets the transient status line message.
func (app *Application) setMessage(format string, args ...any) {
	app.message = fmt.Sprintf(format, args...)
}
