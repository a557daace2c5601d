package key

import (
	"fmt"
	"unicode"

	"github.com/xolve/hecto/internal/engine/cursor"
)

// Kind identifies an editor intent.
type Kind uint8

const (
	// None carries no intent.
	None Kind = iota

	Char
	Newline
	Backspace
	Delete
	Move
	Save
	Quit

	// Cancel aborts a prompt.
	Cancel
)

var kindNames = [...]string{
	None:      "None",
	Char:      "Char",
	Newline:   "Newline",
	Backspace: "Backspace",
	Delete:    "Delete",
	Move:      "Move",
	Save:      "Save",
	Quit:      "Quit",
	Cancel:    "Cancel",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Event is a decoded key press.
type Event struct {
	Kind Kind

	// Rune is the character for Char events.
	Rune rune

	// Direction is the motion for Move events.
	Direction cursor.Direction
}

// CharEvent creates an event inserting r.
func CharEvent(r rune) Event {
	return Event{Kind: Char, Rune: r}
}

// MoveEvent creates a motion event.
func MoveEvent(d cursor.Direction) Event {
	return Event{Kind: Move, Direction: d}
}

// IsPrintable reports whether the event inserts a printable character.
// Prompts accept only these.
func (e Event) IsPrintable() bool {
	return e.Kind == Char && unicode.IsPrint(e.Rune)
}

// String returns a short representation, e.g. "Char('a')" or "Move(Down)".
func (e Event) String() string {
	switch e.Kind {
	case Char:
		return fmt.Sprintf("Char(%q)", e.Rune)
	case Move:
		return "Move(" + e.Direction.String() + ")"
	default:
		return e.Kind.String()
	}
}
