package cursor

// Direction identifies a cursor motion.
type Direction uint8

// Motion directions.
const (
	Up Direction = iota
	Down
	Left
	Right
	Home
	End
	PageUp
	PageDown
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Home:
		return "Home"
	case End:
		return "End"
	case PageUp:
		return "PageUp"
	case PageDown:
		return "PageDown"
	default:
		return "Unknown"
	}
}

// IsVertical returns true for motions that change the row.
func (d Direction) IsVertical() bool {
	switch d {
	case Up, Down, PageUp, PageDown:
		return true
	}
	return false
}

// Move returns the cursor after applying d against the current content of
// lines. pageHeight is the number of rows PageUp and PageDown travel; values
// below 1 are treated as 1.
func (c Cursor) Move(d Direction, lines Lines, pageHeight int) Cursor {
	if pageHeight < 1 {
		pageHeight = 1
	}

	x, y := c.pos.X, c.pos.Y
	count := lines.LineCount()

	switch d {
	case Up:
		y = max(0, y-1)
	case Down:
		y = min(count, y+1)
	case Left:
		if x > 0 {
			x--
		} else if y > 0 {
			y--
			x = lines.LineLen(y)
		}
	case Right:
		if x < lines.LineLen(y) {
			x++
		} else if y < count {
			y++
			x = 0
		}
	case Home:
		x = 0
	case End:
		x = lines.LineLen(y)
	case PageUp:
		y = max(0, y-pageHeight)
	case PageDown:
		y = min(count, y+pageHeight)
	}

	return Cursor{pos: Position{X: x, Y: y}}.Clamp(lines)
}
