package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/keyline/internal/event"
	"github.com/dshills/keyline/internal/input"
)

// handleEvent applies one input event and publishes what it changed.
// It returns ErrQuit when the application should exit.
func (app *Application) handleEvent(ctx context.Context, ev input.Event) error {
	msg := app.message
	if _, ok := ev.(input.KeyEvent); ok {
		app.message = ""
	}

	timer := StartTimer()
	res, err := app.handler.Handle(ev)
	app.metrics.RecordInput(timer.Elapsed(), err)

	switch {
	case errors.Is(err, input.ErrInvalidInput):
		app.Logger().WithComponent("input").Debug("dropped %T: %v", ev, err)
	case err != nil:
		app.setMessage("%v", err)
		app.Logger().WithComponent("input").Warn("%T: %v", ev, err)
	}

	if res.Scrolled || app.message != msg {
		app.dirty = true
	}
	if res.Action != input.ActionQuit {
		app.quitWarned = false
	}

	eng := app.doc.Engine
	if res.Edited {
		payload := event.BufferChanged{LineCount: eng.LineCount(), Revision: eng.Revision()}
		_ = app.publish(ctx, event.NewEvent(event.TopicBufferChanged, payload, eventSource))
	}
	if res.Moved {
		c := eng.Cursor()
		payload := event.CursorMoved{Pos: c.Pos, Begin: c.Begin, End: c.End, HasSelection: c.HasSelection, Selection: c.Selection}
		_ = app.publish(ctx, event.NewEvent(event.TopicCursorMoved, payload, eventSource))
	}

	switch res.Action {
	case input.ActionSave:
		_ = app.SaveDocument(ctx)
		app.dirty = true
	case input.ActionQuit:
		app.dirty = true
		return app.Quit(false)
	}
	return nil
}

// draw renders the visible part of the document and the status line.
func (app *Application) draw() {
	timer := StartTimer()
	v := app.doc.Engine.View(app.view.FirstLine, app.view.FirstLine+app.view.Rows)
	app.term.Draw(v, app.view, app.statusLine())
	app.metrics.RecordRender(timer.Elapsed())
	app.dirty = false
}

// statusLine describes the document and caret, followed by the last
// message.
func (app *Application) statusLine() string {
	var b strings.Builder
	b.WriteString(app.doc.Name)
	if app.doc.IsModified() {
		b.WriteString(" [+]")
	}
	if app.doc.IsReadOnly() {
		b.WriteString(" [RO]")
	}

	c := app.doc.Engine.Cursor()
	fmt.Fprintf(&b, "  Ln %d, Col %d", c.Pos.Line+1, c.Pos.Column+1)
	if c.HasSelection {
		n := c.End.Line - c.Begin.Line + 1
		fmt.Fprintf(&b, " (%d lines selected)", n)
	}
	if app.message != "" {
		b.WriteString("  ")
		b.WriteString(app.message)
	}
	return b.String()
}
