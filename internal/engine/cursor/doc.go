// Package cursor provides cursor positioning for text editing.
//
// The cursor package handles:
//
//   - The Cursor value type, a logical Position within a buffer
//   - Directional motions (arrows, Home/End, paging) evaluated against the
//     current buffer content
//   - Clamping a cursor back onto a valid position after a motion
//
// Motion Model:
//
// Motions never read cached line lengths; each call consults the Lines view
// it is given, so a motion issued right after an edit sees the edit. Left at
// the start of a line wraps to the end of the previous line and Right at the
// end of a line wraps to the start of the next. The row after the last line
// (the synthetic end-of-buffer row) is reachable and always has length 0.
//
// After every motion the column is clamped to the length of the destination
// row, so moving vertically onto a shorter line cannot leave the cursor past
// the end of that line.
//
// Basic usage:
//
//	c := cursor.New(buffer.Position{})
//	c = c.Move(cursor.Right, buf, pageHeight)
//	c = c.Move(cursor.Down, buf, pageHeight)
//	pos := c.Position()
package cursor
