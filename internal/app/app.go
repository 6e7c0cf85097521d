// Package app wires the Keyline editor together: configuration, logging,
// the document and its engine, the clipboard, the event bus, Lua scripts,
// configuration reload and the terminal event loop.
package app

import (
	"context"
	"errors"
	"io"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/dshills/keyline/internal/clipboard"
	"github.com/dshills/keyline/internal/config"
	"github.com/dshills/keyline/internal/config/watcher"
	"github.com/dshills/keyline/internal/engine"
	"github.com/dshills/keyline/internal/event"
	"github.com/dshills/keyline/internal/input"
	"github.com/dshills/keyline/internal/script"
	"github.com/dshills/keyline/internal/term"
)

// Application is the central coordinator for all Keyline components.
// Everything except Run's watcher callbacks runs on the event loop
// goroutine.
type Application struct {
	// Core infrastructure
	config    *config.Config
	logger    *Logger
	logCloser io.Closer
	bus       *event.Bus
	subs      *subscriptionManager
	metrics   *Metrics
	sessionID string

	// Editor components
	doc     *Document
	clip    clipboard.Clipboard
	view    input.Viewport
	handler *input.Handler
	script  *script.State

	// Host
	term    *term.Terminal
	watcher *watcher.Watcher

	// State
	message    string
	dirty      bool
	quitWarned bool
	running    atomic.Bool

	// Options
	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty uses
	// defaults and environment variables only.
	ConfigPath string

	// File is the file to edit. Empty picks an unused "unnamed" file in
	// the working directory.
	File string

	// LogLevel overrides logging.level when set.
	LogLevel string

	// ReadOnly opens the file in read-only mode.
	ReadOnly bool

	// Screen is the tcell screen to run on. Nil uses the controlling
	// terminal.
	Screen tcell.Screen
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:      opts,
		metrics:   NewMetrics(),
		sessionID: uuid.NewString(),
	}

	if err := app.bootstrap(); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	cfg, err := loadConfig(app.opts.ConfigPath)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
	}
	app.config = cfg

	// 2. Logger
	logger, closer, err := OpenLogFile(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return &InitError{Component: "logger", Err: err}
	}
	app.logger = logger.WithField("session", app.sessionID)
	app.logCloser = closer

	// 3. Document
	path := app.opts.File
	if path == "" {
		path = UnusedName(".")
	}
	engOpts := []engine.Option{engine.WithTabSize(cfg.Editor.TabSize)}
	if app.opts.ReadOnly || cfg.Editor.ReadOnly {
		engOpts = append(engOpts, engine.WithReadOnly())
	}
	doc, err := OpenDocument(path, engOpts...)
	if err != nil {
		return &InitError{Component: "document", Err: err}
	}
	app.doc = doc
	app.Logger().WithComponent("document").Info("opened %s (%d lines)", doc.Path, doc.Engine.LineCount())

	// 4. Clipboard and input
	app.clip = clipboard.New(cfg.Clipboard.System)
	app.handler = input.NewHandler(doc.Engine, app.clip, &app.view, scrollConfig(cfg))

	// 5. Event bus
	app.bus = event.NewBus()
	app.subs = newSubscriptionManager(app)
	if err := app.subs.setupSubscriptions(); err != nil {
		return &InitError{Component: "event bus", Err: err}
	}

	// 6. Scripting
	app.script = script.NewState(doc.Engine,
		script.WithBus(app.bus),
		script.WithOutput(func(s string) {
			app.setMessage("%s", s)
			app.Logger().WithComponent("script").Info("%s", s)
		}),
	)
	if cfg.Script.Init != "" {
		if err := app.script.DoFile(cfg.Script.Init); err != nil {
			// A broken init script should not keep the file from opening.
			app.setMessage("script: %v", err)
			app.logComponentError("script", err)
		}
	}
	return nil
}

// loadConfig reads the configuration file at path.
func loadConfig(path string) (*config.Config, error) {
	return config.Load(path)
}

// scrollConfig converts the wheel settings of cfg.
func scrollConfig(cfg *config.Config) input.ScrollConfig {
	return input.ScrollConfig{
		XMultiplier: cfg.Scroll.XMultiplier,
		YMultiplier: cfg.Scroll.YMultiplier,
		InvertX:     cfg.Scroll.InvertX,
		InvertY:     cfg.Scroll.InvertY,
	}
}

// applyConfig pushes the settings that can change at runtime to the
// components using them. Read-only mode, the clipboard and the log file
// only take effect on restart.
func (app *Application) applyConfig() {
	app.doc.Engine.SetTabSize(app.config.Editor.TabSize)
	app.handler.SetScroll(scrollConfig(app.config))
	level := app.config.Logging.Level
	if app.opts.LogLevel != "" {
		level = app.opts.LogLevel
	}
	app.Logger().SetLevel(ParseLogLevel(level))
}

// Run opens the terminal and processes events until the user quits, the
// terminal closes or ctx is canceled.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.openTerminal(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	defer app.term.Fini()

	app.startWatcher(ctx)
	defer app.stopWatcher()

	stop := context.AfterFunc(ctx, func() {
		_ = app.term.Post(func() {})
	})
	defer stop()

	cols, rows := app.term.Size()
	app.view.Resize(cols, rows)
	app.draw()

	app.Logger().Info("running")
	for {
		ev, err := app.term.PollEvent()
		if err != nil {
			if errors.Is(err, term.ErrClosed) {
				return nil
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if ev != nil {
			if err := app.handleEvent(ctx, ev); errors.Is(err, ErrQuit) {
				app.Logger().Info("quit")
				return nil
			}
		}
		if app.dirty {
			app.draw()
		}
	}
}

func (app *Application) openTerminal() error {
	if app.opts.Screen != nil {
		app.term = term.NewWithScreen(app.opts.Screen)
	} else {
		t, err := term.New()
		if err != nil {
			return err
		}
		app.term = t
	}
	return app.term.Init()
}

// startWatcher reloads the configuration when its file changes. Failures
// are logged; editing works without live reload.
func (app *Application) startWatcher(ctx context.Context) {
	if app.opts.ConfigPath == "" {
		return
	}
	log := app.Logger().WithComponent("watcher")

	w, err := watcher.New(watcher.WithErrorHandler(func(err error) {
		log.Warn("%v", err)
	}))
	if err != nil {
		log.Warn("disabled: %v", err)
		return
	}
	if err := w.Watch(app.opts.ConfigPath); err != nil {
		log.Warn("disabled: %v", err)
		_ = w.Stop()
		return
	}

	w.OnChange(func(ev watcher.Event) {
		log.Debug("%s %s", ev.Op, ev.Path)
		if ev.Op == watcher.OpRemove {
			return
		}
		_ = app.term.Post(func() {
			_ = app.reloadConfig(ctx)
		})
	})
	w.Start()
	app.watcher = w
}

func (app *Application) stopWatcher() {
	if app.watcher != nil {
		_ = app.watcher.Stop()
		app.watcher = nil
	}
}

// Close releases the script state, the subscriptions and the log file.
func (app *Application) Close() error {
	var errs []error
	if app.script != nil {
		errs = append(errs, app.script.Close())
	}
	if app.subs != nil {
		app.subs.cleanup()
	}
	if app.metrics != nil && app.logger != nil {
		s := app.metrics.Snapshot()
		app.logger.Debug("inputs=%d errors=%d avg=%s renders=%d avg=%s saves=%d uptime=%s",
			s.Inputs, s.InputErrors, s.AvgInput, s.Renders, s.AvgRender, s.Saves, s.Uptime)
	}
	if app.logCloser != nil {
		errs = append(errs, app.logCloser.Close())
		app.logCloser = nil
	}
	return errors.Join(errs...)
}

// Document returns the document being edited.
func (app *Application) Document() *Document {
	return app.doc
}

// Bus returns the application event bus.
func (app *Application) Bus() *event.Bus {
	return app.bus
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// SessionID identifies this run in the log.
func (app *Application) SessionID() string {
	return app.sessionID
}

// Message returns the status line message.
func (app *Application) Message() string {
	return app.message
}
