package key

import (
	"github.com/xolve/hecto/internal/engine/cursor"
	"github.com/xolve/hecto/internal/renderer/backend"
)

var motions = map[backend.Key]cursor.Direction{
	backend.KeyUp:       cursor.Up,
	backend.KeyDown:     cursor.Down,
	backend.KeyLeft:     cursor.Left,
	backend.KeyRight:    cursor.Right,
	backend.KeyHome:     cursor.Home,
	backend.KeyEnd:      cursor.End,
	backend.KeyPageUp:   cursor.PageUp,
	backend.KeyPageDown: cursor.PageDown,
}

var commands = map[backend.Key]Kind{
	backend.KeyEnter:     Newline,
	backend.KeyBackspace: Backspace,
	backend.KeyDelete:    Delete,
	backend.KeyCtrlS:     Save,
	backend.KeyCtrlQ:     Quit,
	backend.KeyEscape:    Cancel,
}

// Decode converts a terminal event into an editor intent.
// Non-key events and unbound keys decode to None.
func Decode(ev backend.Event) Event {
	if ev.Type != backend.EventKey {
		return Event{}
	}

	switch ev.Key {
	case backend.KeyRune:
		if ev.Rune == 0 || ev.Mod.Has(backend.ModCtrl) || ev.Mod.Has(backend.ModAlt) {
			return Event{}
		}
		return CharEvent(ev.Rune)
	case backend.KeyTab:
		return CharEvent('\t')
	}

	if d, ok := motions[ev.Key]; ok {
		return MoveEvent(d)
	}
	if k, ok := commands[ev.Key]; ok {
		return Event{Kind: k}
	}
	return Event{}
}
