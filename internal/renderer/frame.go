package renderer

import (
	"github.com/xolve/hecto/internal/engine"
	"github.com/xolve/hecto/internal/renderer/core"
	"github.com/xolve/hecto/internal/renderer/statusline"
)

// Frame is the projection of the editor state drawn for one loop iteration.
// It is computed entirely from the engine, so drawing never observes a
// half-applied edit.
type Frame struct {
	// Lines holds the visible slice of each buffer line for rows
	// [offset.y, offset.y+height). Rows past the end of the buffer are absent.
	Lines []string

	// Width and Height are the text area dimensions.
	Width, Height int

	// Cursor is the cursor position relative to the viewport.
	Cursor core.ScreenPos

	// Empty reports whether the buffer has no lines.
	Empty bool

	// Status is the state shown on the status bar.
	Status statusline.Info
}

// Project computes the frame for the engine's current state. A non-empty
// message replaces the filename on the status bar; prompting places the
// terminal cursor after the message instead of in the text area.
func Project(e *engine.Engine, message string, prompting bool) Frame {
	view := e.Viewport()
	buf := e.Buffer()
	offset := e.Offset()
	pos := e.Cursor()

	f := Frame{
		Width:  view.Width(),
		Height: view.Height(),
		Cursor: core.ScreenPos{
			Row: pos.Y - offset.Y,
			Col: pos.X - offset.X,
		},
		Empty: buf.IsEmpty(),
		Status: statusline.Info{
			Filename:  buf.Filename(),
			Modified:  buf.IsModified(),
			Line:      pos.Y + 1,
			Total:     buf.LineCount(),
			Message:   message,
			Prompting: prompting,
		},
	}

	start, end := view.VisibleLineRange()
	end = min(end, buf.LineCount())
	for y := start; y < end; y++ {
		f.Lines = append(f.Lines, buf.Line(y).Render(offset.X, offset.X+f.Width))
	}

	return f
}
