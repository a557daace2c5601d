package cursor

import (
	"fmt"

	"github.com/xolve/hecto/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Lines is the read-only view of a buffer that motions are evaluated against.
type Lines interface {
	// LineCount returns the number of real lines.
	LineCount() int
	// LineLen returns the codepoint length of row y, 0 for rows past the end.
	LineLen(y int) int
}

// Cursor represents an insertion point in the buffer.
// Cursor is an immutable value type.
type Cursor struct {
	pos Position
}

// New creates a cursor at the given position. Negative coordinates are
// clamped to 0.
func New(pos Position) Cursor {
	return Cursor{pos: Position{X: max(0, pos.X), Y: max(0, pos.Y)}}
}

// Position returns the cursor's position.
func (c Cursor) Position() Position {
	return c.pos
}

// X returns the cursor column.
func (c Cursor) X() int {
	return c.pos.X
}

// Y returns the cursor row.
func (c Cursor) Y() int {
	return c.pos.Y
}

// Clamp returns a cursor moved onto the nearest valid position of lines:
// the row is limited to [0, LineCount()] and the column to the row length.
func (c Cursor) Clamp(lines Lines) Cursor {
	y := min(max(0, c.pos.Y), lines.LineCount())
	x := min(max(0, c.pos.X), lines.LineLen(y))
	return Cursor{pos: Position{X: x, Y: y}}
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor%s", c.pos)
}

// Equals returns true if two cursors are at the same position.
func (c Cursor) Equals(other Cursor) bool {
	return c.pos == other.pos
}
