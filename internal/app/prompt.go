package app

import (
	"github.com/xolve/hecto/internal/input/key"
)

// prompt is a one-line question asked on the status bar. While a prompt is
// open every key goes to it instead of the engine.
type prompt struct {
	label  string
	answer []rune

	submit func(answer string) error
	cancel func() error
}

func (p *prompt) text() string {
	return p.label + string(p.answer)
}

// ask opens a prompt. submit receives the answer on Enter; cancel runs on
// Escape. Either may return ErrQuit.
func (app *Application) ask(label string, submit func(string) error, cancel func() error) {
	app.prompt = &prompt{label: label, submit: submit, cancel: cancel}
}

// handlePromptKey edits or closes the open prompt. The prompt is closed
// before its callback runs, so a callback may open a new one.
func (app *Application) handlePromptKey(k key.Event) error {
	p := app.prompt

	switch {
	case k.Kind == key.Newline:
		app.prompt = nil
		app.message = ""
		return p.submit(string(p.answer))
	case k.Kind == key.Cancel:
		app.prompt = nil
		app.message = ""
		return p.cancel()
	case k.Kind == key.Backspace:
		if len(p.answer) > 0 {
			p.answer = p.answer[:len(p.answer)-1]
		}
	case k.IsPrintable():
		p.answer = append(p.answer, k.Rune)
	}
	return nil
}
