package app

import (
	"errors"
	"strings"

	"github.com/xolve/hecto/internal/engine"
	"github.com/xolve/hecto/internal/input/key"
	"github.com/xolve/hecto/internal/renderer/backend"
)

// Status bar messages.
const (
	msgSaved         = "File saved successfully."
	msgSaveAborted   = "Save aborted"
	msgReadOnly      = "Buffer is read-only"
	promptSaveAs     = "Save as: "
	promptSaveOnQuit = "Unsaved changes. Save before exit? (y/n): "
)

// handleEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.resize(ev.Width, ev.Height)
		return nil
	case backend.EventInterrupt:
		app.logger.Info("interrupted")
		return ErrQuit
	case backend.EventKey:
		k := key.Decode(ev)
		if app.prompt != nil {
			return app.handlePromptKey(k)
		}
		app.message = ""
		return app.handleKey(k)
	default:
		return nil
	}
}

// handleKey applies one decoded key to the engine.
func (app *Application) handleKey(k key.Event) error {
	var err error

	switch k.Kind {
	case key.Char:
		err = app.engine.InsertChar(k.Rune)
	case key.Newline:
		err = app.engine.Newline()
	case key.Backspace:
		err = app.engine.Backspace()
	case key.Delete:
		err = app.engine.DeleteForward()
	case key.Move:
		app.engine.Move(k.Direction)
	case key.Save:
		return app.save(func() error { return nil })
	case key.Quit:
		return app.quit()
	}

	if err != nil {
		app.report(err)
	}
	return nil
}

// save writes the buffer and then calls next. An unnamed buffer is saved
// after asking for a filename. A failed or aborted save reports the problem
// and does not call next.
func (app *Application) save(next func() error) error {
	if app.engine.IsReadOnly() {
		app.report(engine.ErrReadOnly)
		return nil
	}

	if app.engine.Buffer().Filename() == "" {
		app.ask(promptSaveAs, func(answer string) error {
			if answer == "" {
				app.message = msgSaveAborted
				return nil
			}
			return app.finishSave(app.engine.SaveAs(answer), next)
		}, func() error {
			app.message = msgSaveAborted
			return nil
		})
		return nil
	}

	return app.finishSave(app.engine.Save(), next)
}

func (app *Application) finishSave(err error, next func() error) error {
	name := app.engine.Buffer().Filename()
	if err != nil {
		app.logger.Error("save %s: %v", name, err)
		app.report(err)
		return nil
	}

	app.logger.Info("saved %s (%d lines)", name, app.engine.Buffer().LineCount())
	app.message = msgSaved
	return next()
}

// quit exits, first offering to save unsaved changes when configured to.
func (app *Application) quit() error {
	if !app.engine.Buffer().IsModified() || !app.config.Editor.ConfirmQuit {
		return ErrQuit
	}

	app.ask(promptSaveOnQuit, func(answer string) error {
		if strings.HasPrefix(strings.ToLower(answer), "y") {
			return app.save(func() error { return ErrQuit })
		}
		return ErrQuit
	}, func() error {
		return nil
	})
	return nil
}

// report shows err on the status bar.
func (app *Application) report(err error) {
	if errors.Is(err, engine.ErrReadOnly) {
		app.message = msgReadOnly
		return
	}
	app.message = err.Error()
}
