// Package engine provides the core editing engine for hecto.
//
// The engine package serves as the main facade, combining the line buffer,
// the cursor and the viewport into one coordinator that the control loop
// drives with one call per keypress.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - buffer: Lines, the Buffer that owns them, load and save
//   - cursor: directional motions over the current buffer content
//   - viewport (in the renderer tree): the scroll origin and its
//     minimal-scroll policy
//
// # Composite Edits
//
// Typing and deleting are composed from buffer edits and cursor motions in a
// fixed order so the cursor always lands right after inserted content:
//
//   - InsertChar: Buffer.Insert, then Right
//   - Newline: Buffer.SplitLine, then Down, then Home
//   - Backspace: Left, then Buffer.Delete at the new position (no-op at 0:0)
//   - DeleteForward: Buffer.Delete; the cursor stays in place
//
// After each composite the viewport is reconciled, so a caller can render
// immediately.
//
// # Basic Usage
//
//	buf, _ := buffer.Open("notes.txt")
//	e := engine.New(engine.WithBuffer(buf))
//	e.ReconcileViewport(width, height)
//
//	e.InsertChar('x')
//	e.Move(cursor.Down)
//	e.Backspace()
//
//	if err := e.Save(); err != nil {
//	    // report and keep going
//	}
//
// # Thread Safety
//
// Engine is owned by a single control loop and performs no locking.
package engine
