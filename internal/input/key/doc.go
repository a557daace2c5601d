// Package key decodes terminal key events into editor intents.
//
// The control loop never looks at raw terminal keys. Each backend event is
// decoded once into an Event whose Kind names what the user asked for:
//
//   - Char: insert the Rune (Tab decodes to Char '\t')
//   - Newline, Backspace, Delete: the composite edit operations
//   - Move: a cursor motion in Direction
//   - Save, Quit, Cancel: file and session commands
//
// Events that carry no intent (unknown keys, Ctrl-modified runes, resize)
// decode to None.
package key
