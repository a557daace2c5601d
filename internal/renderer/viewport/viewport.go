// Package viewport provides viewport management for the renderer.
package viewport

// Viewport represents the visible portion of the buffer: a scroll origin in
// buffer coordinates plus a size in screen cells.
type Viewport struct {
	// Position in buffer (first visible row and column)
	topLine    int
	leftColumn int

	// Size in screen cells
	width  int
	height int
}

// NewViewport creates a viewport with the given size.
// Width and height are clamped to a minimum of 1 to prevent underflow.
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		width:  max(1, width),
		height: max(1, height),
	}
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the viewport height.
func (v *Viewport) Height() int {
	return v.height
}

// TopLine returns the first visible row.
func (v *Viewport) TopLine() int {
	return v.topLine
}

// LeftColumn returns the first visible column.
func (v *Viewport) LeftColumn() int {
	return v.leftColumn
}

// RightColumn returns the last visible column (exclusive).
func (v *Viewport) RightColumn() int {
	return v.leftColumn + v.width
}

// Resize updates the viewport size.
// Width and height are clamped to a minimum of 1 to prevent underflow.
// The scroll origin is left alone; call Reveal afterwards to bring the
// cursor back into view.
func (v *Viewport) Resize(width, height int) {
	v.width = max(1, width)
	v.height = max(1, height)
}

// ScrollTo sets the scroll origin directly. Negative values clamp to 0.
func (v *Viewport) ScrollTo(line, col int) {
	v.topLine = max(0, line)
	v.leftColumn = max(0, col)
}

// Reveal scrolls the least distance needed to make (line, col) visible.
// It never re-centers: a row above the viewport becomes the top row, a row
// below it becomes the bottom row, and columns behave the same way.
func (v *Viewport) Reveal(line, col int) {
	if line < v.topLine {
		v.topLine = line
	} else if line >= v.topLine+v.height {
		v.topLine = line - v.height + 1
	}

	if col < v.leftColumn {
		v.leftColumn = col
	} else if col >= v.leftColumn+v.width {
		v.leftColumn = col - v.width + 1
	}
}

// VisibleLineRange returns the half-open range [start, end) of visible rows.
func (v *Viewport) VisibleLineRange() (start, end int) {
	return v.topLine, v.topLine + v.height
}

// IsLineVisible returns true if the row is within the viewport.
func (v *Viewport) IsLineVisible(line int) bool {
	return line >= v.topLine && line < v.topLine+v.height
}

// IsPositionVisible returns true if the position is within the viewport.
func (v *Viewport) IsPositionVisible(line, col int) bool {
	return v.IsLineVisible(line) &&
		col >= v.leftColumn && col < v.leftColumn+v.width
}

// BufferToScreen converts buffer coordinates to viewport-relative screen
// coordinates. The result may lie outside the viewport.
func (v *Viewport) BufferToScreen(line, col int) (screenRow, screenCol int) {
	return line - v.topLine, col - v.leftColumn
}

// ScreenToBuffer converts screen coordinates to buffer coordinates.
func (v *Viewport) ScreenToBuffer(screenRow, screenCol int) (line, col int) {
	return v.topLine + screenRow, v.leftColumn + screenCol
}
