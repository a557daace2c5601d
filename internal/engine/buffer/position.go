package buffer

import "fmt"

// Position represents a column and row location in a Buffer.
// Both X and Y are 0-indexed and measured in codepoints.
type Position struct {
	X int // column
	Y int // row
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Y, p.X)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
// Rows are compared before columns.
func (p Position) Compare(other Position) int {
	if p.Y < other.Y {
		return -1
	}
	if p.Y > other.Y {
		return 1
	}
	if p.X < other.X {
		return -1
	}
	if p.X > other.X {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// IsZero returns true if this is the origin (0:0).
func (p Position) IsZero() bool {
	return p.X == 0 && p.Y == 0
}
