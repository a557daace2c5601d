// Package app provides the main application structure and coordination
// for the hecto editor. It wires the engine, the renderer and the backend
// together and runs the single control loop.
package app

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/xolve/hecto/internal/config"
	"github.com/xolve/hecto/internal/engine"
	"github.com/xolve/hecto/internal/engine/buffer"
	"github.com/xolve/hecto/internal/renderer"
	"github.com/xolve/hecto/internal/renderer/backend"
)

// HelpMessage is shown on the status bar at startup.
const HelpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit"

// Application is the central coordinator for all hecto components.
// It owns the engine and is driven by one event at a time; it is not safe
// for concurrent use apart from posting events to the backend.
type Application struct {
	engine   *engine.Engine
	backend  backend.Backend
	renderer *renderer.Renderer
	config   *config.Config
	logger   *Logger

	// message is the transient status bar text, cleared on the next key.
	message string
	prompt  *prompt

	running atomic.Bool
	opts    Options
}

// Options configures the application.
type Options struct {
	// File is the file to open on startup. Empty starts an unnamed buffer.
	File string

	// Config is the resolved configuration. Nil uses config.Default().
	Config *config.Config

	// Logger receives application logs. Nil discards them.
	Logger *Logger

	// Version is shown in the welcome message.
	Version string

	// ReadOnly opens the file in read-only mode.
	ReadOnly bool
}

// New creates a new Application with the given options.
// A file that cannot be opened is reported on the status bar and the editor
// starts with an empty unnamed buffer.
func New(opts Options) *Application {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = NullLogger
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	app := &Application{
		config:  opts.Config,
		logger:  opts.Logger.WithComponent("app"),
		message: HelpMessage,
		opts:    opts,
	}

	buf := buffer.New()
	if opts.File != "" {
		opened, err := buffer.Open(opts.File)
		if err != nil {
			app.logger.Error("open %s: %v", opts.File, err)
			app.message = err.Error()
		} else {
			app.logger.Info("opened %s (%d lines)", opts.File, opened.LineCount())
			buf = opened
		}
	}

	engineOpts := []engine.Option{engine.WithBuffer(buf)}
	if opts.ReadOnly {
		engineOpts = append(engineOpts, engine.WithReadOnly())
	}
	app.engine = engine.New(engineOpts...)

	return app
}

// SetBackend sets the terminal backend. Must be called before Run.
func (app *Application) SetBackend(b backend.Backend) {
	app.backend = b
}

// Engine returns the editing engine.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// Message returns the current status bar message.
func (app *Application) Message() string {
	if app.prompt != nil {
		return app.prompt.text()
	}
	return app.message
}

// IsRunning returns true while Run is executing.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Run initializes the backend and runs the control loop until the user
// quits or an interrupt event arrives. A normal quit returns nil.
func (app *Application) Run() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	var renderOpts []renderer.Option
	if app.config.UI.Welcome {
		renderOpts = append(renderOpts, renderer.WithWelcome(fmt.Sprintf("Hecto editor -- version %s", app.opts.Version)))
	}
	app.renderer = renderer.New(app.backend, renderOpts...)
	app.resize(app.backend.Size())

	app.logger.Info("session started")
	err := app.eventLoop()
	if errors.Is(err, ErrQuit) {
		app.logger.Info("session ended")
		return nil
	}
	return err
}

// eventLoop renders a frame, waits for one event and applies it, forever.
// Rendering always follows a fully applied event.
func (app *Application) eventLoop() error {
	for {
		app.render()

		if err := app.handleEvent(app.backend.PollEvent()); err != nil {
			return err
		}
	}
}

func (app *Application) render() {
	frame := renderer.Project(app.engine, app.Message(), app.prompt != nil)
	app.renderer.Render(frame)

	if app.logger.Enabled(LogLevelDebug) {
		app.logger.Debug("frame cursor=%v offset=%v size=%dx%d",
			app.engine.Cursor(), app.engine.Offset(), frame.Width, frame.Height)
	}
}

// resize fits the viewport to a terminal of the given size.
func (app *Application) resize(width, height int) {
	app.engine.ReconcileViewport(renderer.TextArea(width, height))
}
