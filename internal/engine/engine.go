package engine

import (
	"github.com/xolve/hecto/internal/engine/buffer"
	"github.com/xolve/hecto/internal/engine/cursor"
	"github.com/xolve/hecto/internal/renderer/viewport"
)

// Re-export commonly used types for convenience.
type (
	// Position is a (column, row) location in the buffer.
	Position = buffer.Position

	// Direction identifies a cursor motion.
	Direction = cursor.Direction
)

// Engine coordinates a Buffer, the cursor within it and the viewport onto
// it. Every edit or motion leaves the cursor on a valid position and the
// viewport scrolled so the cursor is visible.
//
// Engine is not safe for concurrent use; it belongs to the control loop.
type Engine struct {
	buf      *buffer.Buffer
	cursor   cursor.Cursor
	view     *viewport.Viewport
	readOnly bool
}

// New creates an engine. Without WithBuffer it edits a new empty buffer.
func New(opts ...Option) *Engine {
	e := &Engine{
		view: viewport.NewViewport(DefaultWidth, DefaultHeight),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.buf == nil {
		e.buf = buffer.New()
	}

	return e
}

// Read Operations

// Buffer returns the buffer being edited. Callers must not edit it directly.
func (e *Engine) Buffer() *buffer.Buffer {
	return e.buf
}

// Cursor returns the cursor position.
func (e *Engine) Cursor() Position {
	return e.cursor.Position()
}

// Offset returns the buffer coordinate shown at the viewport's top-left.
func (e *Engine) Offset() Position {
	return Position{X: e.view.LeftColumn(), Y: e.view.TopLine()}
}

// Viewport returns the viewport.
func (e *Engine) Viewport() *viewport.Viewport {
	return e.view
}

// IsReadOnly returns true if edits are rejected.
func (e *Engine) IsReadOnly() bool {
	return e.readOnly
}

// Cursor Operations

// Move applies a motion and scrolls the viewport to keep the cursor visible.
func (e *Engine) Move(d Direction) {
	e.cursor = e.cursor.Move(d, e.buf, e.view.Height())
	e.reveal()
}

// SetCursor places the cursor at the valid position nearest to pos.
func (e *Engine) SetCursor(pos Position) {
	e.cursor = cursor.New(pos).Clamp(e.buf)
	e.reveal()
}

// ReconcileViewport records the current viewport size and scrolls the least
// distance needed to keep the cursor visible.
func (e *Engine) ReconcileViewport(width, height int) {
	e.view.Resize(width, height)
	e.reveal()
}

func (e *Engine) reveal() {
	e.view.Reveal(e.cursor.Y(), e.cursor.X())
}

// Edit Operations

// InsertChar types ch at the cursor and moves the cursor past it.
// A '\n' behaves like Newline.
func (e *Engine) InsertChar(ch rune) error {
	if ch == '\n' {
		return e.Newline()
	}
	if e.readOnly {
		return ErrReadOnly
	}

	e.buf.Insert(e.cursor.Position(), ch)
	e.Move(cursor.Right)
	return nil
}

// Newline splits the line at the cursor and moves the cursor to the start of
// the new line.
func (e *Engine) Newline() error {
	if e.readOnly {
		return ErrReadOnly
	}

	e.buf.SplitLine(e.cursor.Position())
	e.Move(cursor.Down)
	e.Move(cursor.Home)
	return nil
}

// Backspace deletes the codepoint before the cursor, joining with the
// previous line at column 0. It does nothing at the origin.
func (e *Engine) Backspace() error {
	if e.readOnly {
		return ErrReadOnly
	}
	if e.cursor.Position().IsZero() {
		return nil
	}

	e.Move(cursor.Left)
	e.buf.Delete(e.cursor.Position())
	return nil
}

// DeleteForward deletes the codepoint under the cursor, joining the next
// line at end of line. The cursor does not move.
func (e *Engine) DeleteForward() error {
	if e.readOnly {
		return ErrReadOnly
	}

	e.buf.Delete(e.cursor.Position())
	e.reveal()
	return nil
}

// Persistence

// Save writes the buffer to its file.
func (e *Engine) Save() error {
	if e.readOnly {
		return ErrReadOnly
	}
	return e.buf.Save()
}

// SaveAs writes the buffer to path and binds it to that file.
func (e *Engine) SaveAs(path string) error {
	if e.readOnly {
		return ErrReadOnly
	}
	return e.buf.SaveAs(path)
}
